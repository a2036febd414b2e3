package entity

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleCoach   Role = "coach"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User is a coach, athlete or admin account. Athletes are users with
// RoleStudent; list views sort by the Kana reading.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName  string         `gorm:"not null" json:"displayName"`
	Kana         string         `gorm:"index" json:"kana"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         Role           `gorm:"not null;default:student" json:"role"`
	Active       bool           `gorm:"not null;default:true" json:"active"`
	Gender       Gender         `json:"gender"`
	JoinedAt     time.Time      `json:"joinedAt"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Records []SwimRecord `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) IsCoach() bool {
	return u.Role == RoleCoach || u.Role == RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
