package model

import "time"

type CompletionStatus string

const (
	NotStarted CompletionStatus = "NOT_STARTED"
	InProgress CompletionStatus = "IN_PROGRESS"
	Completed  CompletionStatus = "COMPLETED"
)

// CourseProgress tracks one employee's advancement through one course under
// one assignment; (assignment, course) is unique.
// swagger:model CourseProgress
type CourseProgress struct {
	ID                 uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint             `gorm:"not null;index" json:"userId"`
	CourseID           uint             `gorm:"not null;uniqueIndex:idx_assignment_course" json:"courseId"`
	AssignmentID       uint             `gorm:"not null;uniqueIndex:idx_assignment_course" json:"assignmentId"`
	Progress           float64          `gorm:"default:0" json:"progress"` // 0-100
	Score              float64          `gorm:"default:0" json:"score"`
	TimeInvested       int              `gorm:"default:0" json:"timeInvested"` // cumulative minutes
	CompletionStatus   CompletionStatus `gorm:"type:varchar(20);default:'NOT_STARTED'" json:"completionStatus"`
	CertificateURL     *string          `gorm:"size:512" json:"certificateUrl"`
	QuizScore          int              `gorm:"default:0" json:"quizScore"`
	AssignmentScore    int              `gorm:"default:0" json:"assignmentScore"`
	ParticipationCount int              `gorm:"default:0" json:"participationCount"`
	TimeSpentOnQuizzes int              `gorm:"default:0" json:"timeSpentOnQuizzes"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	User               *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course             *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Assignment         *Assignment      `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}
