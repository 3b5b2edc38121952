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

type SkillController struct {
	SkillService *service.SkillService
}

func NewSkillController(skillService *service.SkillService) *SkillController {
	return &SkillController{SkillService: skillService}
}

// GetCatalog godoc
// @Summary List the skill catalog
// @Tags skills
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Skill}
// @Router /api/skills/catalog [get]
func (c *SkillController) GetCatalog(ctx *gin.Context) {
	skills, err := c.SkillService.GetCatalog()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// GetMySkills godoc
// @Summary List the caller's skills
// @Tags skills
// @Produce json
// @Success 200 {object} util.Response{data=[]model.UserSkill}
// @Router /api/skills [get]
func (c *SkillController) GetMySkills(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	skills, err := c.SkillService.GetUserSkills(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// swagger:model AddSkillRequest
type AddSkillRequest struct {
	SkillID          uint   `json:"skillId" binding:"required"`
	ProficiencyLevel string `json:"proficiencyLevel" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

// AddSkill godoc
// @Summary Add a skill to the caller's profile
// @Tags skills
// @Accept json
// @Produce json
// @Param body body AddSkillRequest true "skill and proficiency"
// @Success 201 {object} util.Response{data=model.UserSkill}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/skills [post]
func (c *SkillController) AddSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	var req AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userSkill, err := c.SkillService.AddUserSkill(claims.UserID, req.SkillID, model.ProficiencyLevel(req.ProficiencyLevel))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSkillAlreadyAdded):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx, "Skill not found.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, userSkill)
}

// RemoveSkill godoc
// @Summary Remove a skill from the caller's profile
// @Tags skills
// @Produce json
// @Param skillId path int true "skill id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/skills/{skillId} [delete]
func (c *SkillController) RemoveSkill(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	skillID, err := strconv.ParseUint(ctx.Param("skillId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid skill id")
		return
	}

	if err := c.SkillService.RemoveUserSkill(claims.UserID, uint(skillID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "Skill not found on profile.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Skill removed successfully."})
}
