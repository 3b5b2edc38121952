package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type LearningPathRepository struct {
	DB *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) *LearningPathRepository {
	return &LearningPathRepository{DB: db}
}

func (r *LearningPathRepository) Create(path *model.LearningPath) error {
	return r.DB.Create(path).Error
}

func (r *LearningPathRepository) FindByID(id uint) (*model.LearningPath, error) {
	var path model.LearningPath
	err := r.DB.
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Courses.Course").
		First(&path, id).Error
	return &path, err
}

func (r *LearningPathRepository) FindAll() ([]model.LearningPath, error) {
	var paths []model.LearningPath
	err := r.DB.
		Preload("Courses", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Courses.Course").
		Order("id asc").
		Find(&paths).Error
	return paths, err
}

func (r *LearningPathRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningPath{}).Count(&count).Error
	return count, err
}

func (r *LearningPathRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("learning_path_id = ?", id).
			Delete(&model.LearningPathCourse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.LearningPath{}, id).Error
	})
}

// CourseIDsInOrder returns the curriculum's course ids sorted by position.
func (r *LearningPathRepository) CourseIDsInOrder(pathID uint) ([]uint, error) {
	var rows []model.LearningPathCourse
	err := r.DB.Where("learning_path_id = ?", pathID).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.CourseID)
	}
	return ids, nil
}

func (r *LearningPathRepository) RemoveCourse(pathID, courseID uint) error {
	return r.DB.Where("learning_path_id = ? AND course_id = ?", pathID, courseID).
		Delete(&model.LearningPathCourse{}).Error
}
