package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/api/health", c.health.HealthCheck)
	router.POST("/api/auth/login", c.auth.Login)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerCommonRoutes(api, c)
		a.registerAdminRoutes(api, c)
	}
}

// registerCommonRoutes covers endpoints open to any authenticated user.
func (a *App) registerCommonRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/users/me", c.user.Me)

	rg.GET("/courses", c.course.GetAll)

	rg.GET("/learning-paths", c.path.GetAll)
	rg.GET("/learning-paths/:id", c.path.GetByID)

	rg.GET("/assignments", c.assignment.GetAll)
	rg.GET("/assignments/employee/:employeeId", c.assignment.GetByEmployee)

	rg.GET("/progress", c.progress.GetAll)
	rg.POST("/progress", c.progress.Start)
	rg.PUT("/progress/:id", c.progress.Update)
	rg.GET("/progress/user/:userId", c.progress.GetByUser)
	rg.GET("/progress/assignment/:assignmentId/course/:courseId", c.progress.GetByAssignmentAndCourse)
	rg.POST("/progress/:id/certificate", c.progress.UploadCertificate)

	rg.GET("/skills", c.skill.GetMySkills)
	rg.GET("/skills/catalog", c.skill.GetCatalog)
	rg.POST("/skills", c.skill.AddSkill)
	rg.DELETE("/skills/:skillId", c.skill.RemoveSkill)

	rg.GET("/dashboard/employee", c.dashboard.GetEmployeeOverview)
}

// registerAdminRoutes covers management endpoints restricted to ADMIN.
func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.GetEmployees)
		admin.POST("/users", c.user.CreateEmployee)
		admin.PUT("/users/:id", c.user.UpdateEmployee)
		admin.DELETE("/users/:id", c.user.DeleteEmployee)

		admin.POST("/courses", c.course.Create)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)

		admin.POST("/learning-paths", c.path.Create)
		admin.PUT("/learning-paths/:id", c.path.Update)
		admin.DELETE("/learning-paths/:id", c.path.Delete)
		admin.POST("/learning-paths/:id/courses", c.path.AddCourses)
		admin.DELETE("/learning-paths/:id/courses/:courseId", c.path.RemoveCourse)

		admin.POST("/assignments", c.assignment.Create)
		admin.PUT("/assignments/:id", c.assignment.Update)
		admin.DELETE("/assignments/:id", c.assignment.Delete)

		admin.GET("/dashboard/summary", c.dashboard.GetSummary)
	}
}
