package dto

import (
	"time"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type CreateAthleteRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"required"`
	Kana        string `json:"kana"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	Role        string `json:"role" validate:"omitempty,oneof=coach student admin"`
	JoinedAt    string `json:"joinedAt" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateAthleteRequest) ToEntity() entity.User {
	role := entity.Role(r.Role)
	if role == "" {
		role = entity.RoleStudent
	}
	joined := time.Now()
	if r.JoinedAt != "" {
		joined, _ = time.Parse("2006-01-02", r.JoinedAt)
	}
	return entity.User{
		Username:    r.Username,
		DisplayName: r.DisplayName,
		Kana:        r.Kana,
		Gender:      entity.Gender(r.Gender),
		Role:        role,
		Active:      true,
		JoinedAt:    joined,
	}
}

type UpdateAthleteRequest struct {
	DisplayName string `json:"displayName" validate:"omitempty"`
	Kana        string `json:"kana"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female"`
	Active      *bool  `json:"active"`
	Password    string `json:"password" validate:"omitempty,min=8"`
}
