package model

import (
	"time"
)

type UserRole string

const (
	Admin    UserRole = "ADMIN"
	Employee UserRole = "EMPLOYEE"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:100;unique;not null" json:"email"`
	Password string    `gorm:"size:100;not null" json:"-"`
	Role     UserRole  `gorm:"type:varchar(20);default:'EMPLOYEE'" json:"role"`
	LastSeen time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
