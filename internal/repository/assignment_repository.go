package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, id).Error
	return &assignment, err
}

func (r *AssignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Preload("User").
		Preload("Course").
		Preload("LearningPath").
		Order("id asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&assignment).Error
	return &assignment, err
}

func (r *AssignmentRepository) FindByUserAndPath(userID, pathID uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.Where("user_id = ? AND learning_path_id = ?", userID, pathID).
		First(&assignment).Error
	return &assignment, err
}

// FindCourseAssignmentsByUser returns only course-level assignments
// (learning-path rows are excluded), with course and progress attached.
func (r *AssignmentRepository) FindCourseAssignmentsByUser(userID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Where("user_id = ? AND course_id IS NOT NULL", userID).
		Preload("Course").
		Preload("CourseProgress").
		Order("id asc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Update(assignment *model.Assignment) error {
	return r.DB.Save(assignment).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}
