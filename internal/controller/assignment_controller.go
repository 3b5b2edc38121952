package controller

import (
	"errors"
	"strconv"

	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// swagger:model CreateAssignmentRequest
type CreateAssignmentRequest struct {
	EmployeeID     uint  `json:"employeeId" binding:"required"`
	CourseID       *uint `json:"courseId"`
	LearningPathID *uint `json:"learningPathId"`
}

// Create godoc
// @Summary Assign a course or learning path to an employee
// @Description A learning-path assignment expands into per-course assignments, skipping courses already assigned.
// @Tags assignments
// @Accept json
// @Produce json
// @Param body body CreateAssignmentRequest true "assignment target"
// @Success 201 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.AssignmentService.Create(req.EmployeeID, req.CourseID, req.LearningPathID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssignmentTargetRequired):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrCourseAlreadyAssigned):
			util.BadRequest(ctx, "Course is already assigned to the employee.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx, "Employee, course or learning path not found.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"message":        "Assignments created successfully.",
		"newAssignments": created,
	})
}

// GetAll godoc
// @Summary List every assignment with user, course and learning path
// @Tags assignments
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) GetAll(ctx *gin.Context) {
	assignments, err := c.AssignmentService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// GetByEmployee godoc
// @Summary List an employee's course assignments with progress
// @Tags assignments
// @Produce json
// @Param employeeId path int true "employee id"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Failure 404 {object} util.Response
// @Router /api/assignments/employee/{employeeId} [get]
func (c *AssignmentController) GetByEmployee(ctx *gin.Context) {
	employeeID, err := strconv.ParseUint(ctx.Param("employeeId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid employee id")
		return
	}

	assignments, err := c.AssignmentService.GetByEmployee(uint(employeeID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "No course assignments found for this employee.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, assignments)
}

// swagger:model UpdateAssignmentRequest
type UpdateAssignmentRequest struct {
	UserID         *uint `json:"userId"`
	CourseID       *uint `json:"courseId"`
	LearningPathID *uint `json:"learningPathId"`
}

// Update godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "assignment id"
// @Param body body UpdateAssignmentRequest true "fields to update"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}

	var req UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Update(uint(id), service.AssignmentUpdate{
		UserID:         req.UserID,
		CourseID:       req.CourseID,
		LearningPathID: req.LearningPathID,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx, "Assignment not found.")
		case errors.Is(err, util.ErrAssignmentTargetRequired),
			errors.Is(err, util.ErrCourseAlreadyAssigned):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, assignment)
}

// Delete godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}

	if err := c.AssignmentService.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Assignment not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Assignment deleted successfully."})
}
