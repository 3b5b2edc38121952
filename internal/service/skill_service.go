package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

// userSkillListLimit caps the skills shown on a profile.
const userSkillListLimit = 5

type SkillService struct {
	SkillRepo *repository.SkillRepository
}

func NewSkillService(skillRepo *repository.SkillRepository) *SkillService {
	return &SkillService{SkillRepo: skillRepo}
}

func (s *SkillService) GetCatalog() ([]model.Skill, error) {
	return s.SkillRepo.FindAll()
}

func (s *SkillService) GetUserSkills(userID uint) ([]model.UserSkill, error) {
	return s.SkillRepo.FindUserSkills(userID, userSkillListLimit)
}

func (s *SkillService) AddUserSkill(userID, skillID uint, level model.ProficiencyLevel) (*model.UserSkill, error) {
	if _, err := s.SkillRepo.FindByID(skillID); err != nil {
		return nil, err
	}

	_, err := s.SkillRepo.FindUserSkill(userID, skillID)
	if err == nil {
		return nil, util.ErrSkillAlreadyAdded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userSkill := &model.UserSkill{
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: level,
	}
	if err := s.SkillRepo.CreateUserSkill(userSkill); err != nil {
		return nil, err
	}
	return userSkill, nil
}

func (s *SkillService) RemoveUserSkill(userID, skillID uint) error {
	return s.SkillRepo.DeleteUserSkill(userID, skillID)
}
