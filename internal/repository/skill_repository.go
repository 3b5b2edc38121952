package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

func (r *SkillRepository) FindAll() ([]model.Skill, error) {
	var skills []model.Skill
	err := r.DB.Order("name asc").Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindByID(id uint) (*model.Skill, error) {
	var skill model.Skill
	err := r.DB.First(&skill, id).Error
	return &skill, err
}

func (r *SkillRepository) FindUserSkills(userID uint, limit int) ([]model.UserSkill, error) {
	var skills []model.UserSkill
	query := r.DB.Where("user_id = ?", userID).Preload("Skill").Order("id asc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) FindUserSkill(userID, skillID uint) (*model.UserSkill, error) {
	var skill model.UserSkill
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		First(&skill).Error
	return &skill, err
}

func (r *SkillRepository) CreateUserSkill(userSkill *model.UserSkill) error {
	return r.DB.Create(userSkill).Error
}

func (r *SkillRepository) DeleteUserSkill(userID, skillID uint) error {
	return r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&model.UserSkill{}).Error
}
