package service

import (
	"lms_backend/internal/model"
	"lms_backend/internal/repository"

	"gorm.io/gorm"
)

type LearningPathService struct {
	PathRepo   *repository.LearningPathRepository
	CourseRepo *repository.CourseRepository
	DB         *gorm.DB
}

func NewLearningPathService(
	pathRepo *repository.LearningPathRepository,
	courseRepo *repository.CourseRepository,
	db *gorm.DB,
) *LearningPathService {
	return &LearningPathService{
		PathRepo:   pathRepo,
		CourseRepo: courseRepo,
		DB:         db,
	}
}

// Create inserts the path and one curriculum row per course, ordered by the
// 1-based position of each id in courseIDs, atomically.
func (s *LearningPathService) Create(title, description string, courseIDs []uint) (*model.LearningPath, error) {
	var pathID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		path := &model.LearningPath{
			Title:       title,
			Description: description,
		}
		if err := tx.Create(path).Error; err != nil {
			return err
		}
		pathID = path.ID

		for i, courseID := range courseIDs {
			if err := tx.First(&model.Course{}, courseID).Error; err != nil {
				return err
			}
			row := model.LearningPathCourse{
				LearningPathID: path.ID,
				CourseID:       courseID,
				Order:          i + 1,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.PathRepo.FindByID(pathID)
}

func (s *LearningPathService) GetAll() ([]model.LearningPath, error) {
	paths, err := s.PathRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range paths {
		if paths[i].Courses == nil {
			paths[i].Courses = []model.LearningPathCourse{}
		}
	}
	return paths, nil
}

func (s *LearningPathService) GetByID(id uint) (*model.LearningPath, error) {
	path, err := s.PathRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if path.Courses == nil {
		path.Courses = []model.LearningPathCourse{}
	}
	return path, nil
}

// Update is a full curriculum replace: every existing row is removed and the
// supplied courseIDs are re-inserted with fresh 1-based order values. There
// is no partial-update path.
func (s *LearningPathService) Update(id uint, title, description string, courseIDs []uint) (*model.LearningPath, error) {
	if _, err := s.PathRepo.FindByID(id); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":       title,
			"description": description,
		}
		if err := tx.Model(&model.LearningPath{}).Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("learning_path_id = ?", id).
			Delete(&model.LearningPathCourse{}).Error; err != nil {
			return err
		}

		for i, courseID := range courseIDs {
			if err := tx.First(&model.Course{}, courseID).Error; err != nil {
				return err
			}
			row := model.LearningPathCourse{
				LearningPathID: id,
				CourseID:       courseID,
				Order:          i + 1,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.PathRepo.FindByID(id)
}

func (s *LearningPathService) Delete(id uint) error {
	if _, err := s.PathRepo.FindByID(id); err != nil {
		return err
	}
	return s.PathRepo.Delete(id)
}

// AddCourses appends courses after the current end of the curriculum.
// Surrounding order values are never renumbered; order is display-only.
func (s *LearningPathService) AddCourses(id uint, courseIDs []uint) (*model.LearningPath, error) {
	if _, err := s.PathRepo.FindByID(id); err != nil {
		return nil, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.LearningPathCourse{}).
			Where("learning_path_id = ?", id).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}

		for i, courseID := range courseIDs {
			if err := tx.First(&model.Course{}, courseID).Error; err != nil {
				return err
			}
			row := model.LearningPathCourse{
				LearningPathID: id,
				CourseID:       courseID,
				Order:          maxOrder + i + 1,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.PathRepo.FindByID(id)
}

// RemoveCourse deletes the matching curriculum row without renumbering the
// remaining positions.
func (s *LearningPathService) RemoveCourse(pathID, courseID uint) error {
	if _, err := s.PathRepo.FindByID(pathID); err != nil {
		return err
	}
	return s.PathRepo.RemoveCourse(pathID, courseID)
}
