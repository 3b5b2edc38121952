package model

import "time"

type ProficiencyLevel string

const (
	Beginner     ProficiencyLevel = "BEGINNER"
	Intermediate ProficiencyLevel = "INTERMEDIATE"
	Advanced     ProficiencyLevel = "ADVANCED"
)

// swagger:model Skill
type Skill struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Skill) TableName() string {
	return "skills"
}

// UserSkill is a user's self-declared proficiency for a catalog skill.
// swagger:model UserSkill
type UserSkill struct {
	ID               uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint             `gorm:"not null;uniqueIndex:idx_user_skill" json:"userId"`
	SkillID          uint             `gorm:"not null;uniqueIndex:idx_user_skill" json:"skillId"`
	ProficiencyLevel ProficiencyLevel `gorm:"type:varchar(20);not null" json:"proficiencyLevel"`
	CreatedAt        time.Time        `json:"createdAt"`
	Skill            *Skill           `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}
