package service

import (
	"errors"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

func (s *CourseService) Create(title string, duration int, difficulty model.DifficultyLevel) (*model.Course, error) {
	_, err := s.CourseRepo.FindByTitle(title)
	if err == nil {
		return nil, util.ErrCourseTitleTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course := &model.Course{
		Title:           title,
		Duration:        duration,
		DifficultyLevel: difficulty,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetAll() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) Update(id uint, title string, duration int, difficulty model.DifficultyLevel) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if title != "" && title != course.Title {
		existing, err := s.CourseRepo.FindByTitle(title)
		if err == nil && existing.ID != course.ID {
			return nil, util.ErrCourseTitleTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		course.Title = title
	}
	if duration > 0 {
		course.Duration = duration
	}
	if difficulty != "" {
		course.DifficultyLevel = difficulty
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}
