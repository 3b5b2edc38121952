package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.CourseProgress) error {
	return r.DB.Create(progress).Error
}

func (r *ProgressRepository) FindByID(id uint) (*model.CourseProgress, error) {
	var progress model.CourseProgress
	err := r.DB.First(&progress, id).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.CourseProgress, error) {
	var records []model.CourseProgress
	err := r.DB.Where("user_id = ?", userID).
		Preload("Course").
		Preload("Assignment").
		Order("id asc").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByAssignmentAndCourse(assignmentID, courseID uint) (*model.CourseProgress, error) {
	var progress model.CourseProgress
	err := r.DB.Where("assignment_id = ? AND course_id = ?", assignmentID, courseID).
		Preload("Course").
		Preload("Assignment").
		First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindAll() ([]model.CourseProgress, error) {
	var records []model.CourseProgress
	err := r.DB.
		Preload("User").
		Preload("Course").
		Preload("Assignment").
		Order("id asc").
		Find(&records).Error
	return records, err
}

func (r *ProgressRepository) Update(progress *model.CourseProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseProgress{}).Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountByStatus(status model.CompletionStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseProgress{}).
		Where("completion_status = ?", status).
		Count(&count).Error
	return count, err
}

// CompletedCountByUser maps user id to number of completed course progress
// rows, for leaderboard-style rankings.
func (r *ProgressRepository) CompletedCountByUser() (map[uint]int, error) {
	type row struct {
		UserID uint
		Total  int
	}

	var rows []row
	err := r.DB.Model(&model.CourseProgress{}).
		Select("user_id, COUNT(*) as total").
		Where("completion_status = ?", model.Completed).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.Total
	}
	return counts, nil
}
