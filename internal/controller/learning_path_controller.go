package controller

import (
	"errors"
	"strconv"

	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LearningPathController struct {
	PathService *service.LearningPathService
}

func NewLearningPathController(pathService *service.LearningPathService) *LearningPathController {
	return &LearningPathController{PathService: pathService}
}

// swagger:model LearningPathRequest
type LearningPathRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CourseIDs   []uint `json:"courseIds"`
}

// Create godoc
// @Summary Create a learning path with an ordered curriculum
// @Tags learning-paths
// @Accept json
// @Produce json
// @Param body body LearningPathRequest true "path with ordered course ids"
// @Success 201 {object} util.Response{data=model.LearningPath}
// @Failure 400 {object} util.Response
// @Router /api/learning-paths [post]
func (c *LearningPathController) Create(ctx *gin.Context) {
	var req LearningPathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Create(req.Title, req.Description, req.CourseIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.BadRequest(ctx, "One or more courses do not exist.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, path)
}

// GetAll godoc
// @Summary List all learning paths with their curricula
// @Tags learning-paths
// @Produce json
// @Success 200 {object} util.Response{data=[]model.LearningPath}
// @Router /api/learning-paths [get]
func (c *LearningPathController) GetAll(ctx *gin.Context) {
	paths, err := c.PathService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, paths)
}

// GetByID godoc
// @Summary Fetch a learning path
// @Tags learning-paths
// @Produce json
// @Param id path int true "path id"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 404 {object} util.Response
// @Router /api/learning-paths/{id} [get]
func (c *LearningPathController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid learning path id")
		return
	}

	path, err := c.PathService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Learning path not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, path)
}

// Update godoc
// @Summary Replace a learning path's fields and entire curriculum
// @Tags learning-paths
// @Accept json
// @Produce json
// @Param id path int true "path id"
// @Param body body LearningPathRequest true "replacement path"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 404 {object} util.Response
// @Router /api/learning-paths/{id} [put]
func (c *LearningPathController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid learning path id")
		return
	}

	var req LearningPathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.Update(uint(id), req.Title, req.Description, req.CourseIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Learning path not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, path)
}

// Delete godoc
// @Summary Delete a learning path
// @Tags learning-paths
// @Produce json
// @Param id path int true "path id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning-paths/{id} [delete]
func (c *LearningPathController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid learning path id")
		return
	}

	if err := c.PathService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Learning path not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Learning path deleted successfully."})
}

// swagger:model AddCoursesRequest
type AddCoursesRequest struct {
	CourseIDs []uint `json:"courseIds" binding:"required,min=1"`
}

// AddCourses godoc
// @Summary Append courses to a learning path
// @Tags learning-paths
// @Accept json
// @Produce json
// @Param id path int true "path id"
// @Param body body AddCoursesRequest true "course ids"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Failure 404 {object} util.Response
// @Router /api/learning-paths/{id}/courses [post]
func (c *LearningPathController) AddCourses(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid learning path id")
		return
	}

	var req AddCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.PathService.AddCourses(uint(id), req.CourseIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Learning path or course not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, path)
}

// RemoveCourse godoc
// @Summary Remove one course from a learning path
// @Tags learning-paths
// @Produce json
// @Param id path int true "path id"
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning-paths/{id}/courses/{courseId} [delete]
func (c *LearningPathController) RemoveCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid learning path id")
		return
	}
	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.PathService.RemoveCourse(uint(id), uint(courseID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Learning path not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Course removed from learning path successfully."})
}
