package model

import "time"

// Assignment says "this user must complete X" where X is exactly one of a
// course or a learning path. The composite unique indexes allow at most one
// row per (user, course) and per (user, path); NULL columns do not collide.
// swagger:model Assignment
type Assignment struct {
	ID             uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint             `gorm:"not null;index;uniqueIndex:idx_user_course;uniqueIndex:idx_user_path" json:"userId"`
	CourseID       *uint            `gorm:"uniqueIndex:idx_user_course" json:"courseId"`
	LearningPathID *uint            `gorm:"uniqueIndex:idx_user_path" json:"learningPathId"`
	AssignedAt     time.Time        `gorm:"autoCreateTime" json:"assignedAt"`
	User           *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course         *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	LearningPath   *LearningPath    `gorm:"foreignKey:LearningPathID" json:"learningPath,omitempty"`
	CourseProgress []CourseProgress `gorm:"foreignKey:AssignmentID" json:"courseProgress"`
}

func (Assignment) TableName() string {
	return "assignments"
}
