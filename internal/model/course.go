package model

type DifficultyLevel string

const (
	Easy   DifficultyLevel = "EASY"
	Medium DifficultyLevel = "MEDIUM"
	Hard   DifficultyLevel = "HARD"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title           string          `gorm:"size:255;unique;not null" json:"title"`
	Duration        int             `gorm:"not null" json:"duration"` // minutes
	DifficultyLevel DifficultyLevel `gorm:"type:varchar(20);not null" json:"difficultyLevel"`
}

func (Course) TableName() string {
	return "courses"
}
