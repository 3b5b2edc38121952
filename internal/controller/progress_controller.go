package controller

import (
	"errors"
	"strconv"

	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	StorageService  *service.StorageService
}

func NewProgressController(progressService *service.ProgressService, storageService *service.StorageService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		StorageService:  storageService,
	}
}

// swagger:model StartProgressRequest
type StartProgressRequest struct {
	UserID       uint `json:"userId" binding:"required"`
	CourseID     uint `json:"courseId" binding:"required"`
	AssignmentID uint `json:"assignmentId" binding:"required"`
}

// Start godoc
// @Summary Start a course
// @Description Creates the progress record at 0% with status IN_PROGRESS.
// @Tags progress
// @Accept json
// @Produce json
// @Param body body StartProgressRequest true "assignment-course pair"
// @Success 201 {object} util.Response{data=model.CourseProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress [post]
func (c *ProgressController) Start(ctx *gin.Context) {
	var req StartProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.Start(req.UserID, req.CourseID, req.AssignmentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProgressExists):
			util.BadRequest(ctx, "Course progress already exists for this assignment.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx, "Assignment not found.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, progress)
}

// swagger:model UpdateProgressRequest
type UpdateProgressRequest struct {
	Progress           *float64 `json:"progress" binding:"omitempty,min=0,max=100"`
	Score              *float64 `json:"score"`
	TimeInvested       *int     `json:"timeInvested" binding:"omitempty,min=0"`
	CompletionStatus   *string  `json:"completionStatus" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
	CertificateURL     *string  `json:"certificateUrl"`
	QuizScore          *int     `json:"quizScore"`
	AssignmentScore    *int     `json:"assignmentScore"`
	ParticipationCount *int     `json:"participationCount"`
	TimeSpentOnQuizzes *int     `json:"timeSpentOnQuizzes"`
}

// Update godoc
// @Summary Update a progress record
// @Description Merges the supplied fields; 100% forces status COMPLETED.
// @Tags progress
// @Accept json
// @Produce json
// @Param id path int true "progress id"
// @Param body body UpdateProgressRequest true "fields to update"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Failure 404 {object} util.Response
// @Router /api/progress/{id} [put]
func (c *ProgressController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid progress id")
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := service.ProgressUpdate{
		Progress:           req.Progress,
		Score:              req.Score,
		TimeInvested:       req.TimeInvested,
		CertificateURL:     req.CertificateURL,
		QuizScore:          req.QuizScore,
		AssignmentScore:    req.AssignmentScore,
		ParticipationCount: req.ParticipationCount,
		TimeSpentOnQuizzes: req.TimeSpentOnQuizzes,
	}
	if req.CompletionStatus != nil {
		status := model.CompletionStatus(*req.CompletionStatus)
		patch.CompletionStatus = &status
	}

	progress, err := c.ProgressService.Update(uint(id), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Course progress not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// GetAll godoc
// @Summary List every progress record
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CourseProgress}
// @Router /api/progress [get]
func (c *ProgressController) GetAll(ctx *gin.Context) {
	records, err := c.ProgressService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetByUser godoc
// @Summary List a user's progress records
// @Tags progress
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} util.Response{data=[]model.CourseProgress}
// @Router /api/progress/user/{userId} [get]
func (c *ProgressController) GetByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	records, err := c.ProgressService.GetByUser(uint(userID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetByAssignmentAndCourse godoc
// @Summary Fetch the progress record of one assignment-course pair
// @Tags progress
// @Produce json
// @Param assignmentId path int true "assignment id"
// @Param courseId path int true "course id"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Failure 404 {object} util.Response
// @Router /api/progress/assignment/{assignmentId}/course/{courseId} [get]
func (c *ProgressController) GetByAssignmentAndCourse(ctx *gin.Context) {
	assignmentID, err := strconv.ParseUint(ctx.Param("assignmentId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}
	courseID, err := strconv.ParseUint(ctx.Param("courseId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	progress, err := c.ProgressService.GetByAssignmentAndCourse(uint(assignmentID), uint(courseID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Course progress not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// UploadCertificate godoc
// @Summary Upload a completion certificate for a progress record
// @Tags progress
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "progress id"
// @Param certificate formData file true "certificate file"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{id}/certificate [post]
func (c *ProgressController) UploadCertificate(ctx *gin.Context) {
	if c.StorageService == nil {
		util.Error(ctx, 503, "Certificate storage is not configured.")
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid progress id")
		return
	}

	fileHeader, err := ctx.FormFile("certificate")
	if err != nil {
		util.BadRequest(ctx, "certificate file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadCertificate(
		ctx.Request.Context(),
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	progress, err := c.ProgressService.AttachCertificate(uint(id), url)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Course progress not found.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}
