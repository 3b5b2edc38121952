package model

import "time"

// swagger:model LearningPath
type LearningPath struct {
	BaseModel
	Title       string               `gorm:"size:255;not null" json:"title"`
	Description string               `gorm:"type:text" json:"description"`
	Courses     []LearningPathCourse `gorm:"foreignKey:LearningPathID" json:"learningPathCourses"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// LearningPathCourse links a course into a path's curriculum. Order is a
// 1-based display position; rows are hard-deleted so the (path, course)
// unique index stays usable after a full curriculum replace.
// swagger:model LearningPathCourse
type LearningPathCourse struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	LearningPathID uint      `gorm:"not null;uniqueIndex:idx_path_course" json:"learningPathId"`
	CourseID       uint      `gorm:"not null;uniqueIndex:idx_path_course" json:"courseId"`
	Order          int       `gorm:"column:position;not null" json:"order"`
	CreatedAt      time.Time `json:"createdAt"`
	Course         *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (LearningPathCourse) TableName() string {
	return "learning_path_courses"
}
