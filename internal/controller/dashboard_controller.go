package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetSummary godoc
// @Summary Admin dashboard summary
// @Description Aggregate counts, completion rate and employee rankings.
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response{data=service.Summary}
// @Router /api/dashboard/summary [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.DashboardService.GetSummary(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// GetEmployeeOverview godoc
// @Summary Caller's course assignments grouped by completion status
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response{data=service.EmployeeOverview}
// @Router /api/dashboard/employee [get]
func (c *DashboardController) GetEmployeeOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	overview, err := c.DashboardService.GetEmployeeOverview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
