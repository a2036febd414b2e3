package dto

import (
	"time"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type CompetitionRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

func (r CompetitionRequest) ToEntity() entity.Competition {
	date, _ := time.Parse("2006-01-02", r.Date)
	return entity.Competition{
		Name:        r.Name,
		Location:    r.Location,
		Date:        date,
		Level:       r.Level,
		Description: r.Description,
	}
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type AnnouncementRequest struct {
	Content string `json:"content" validate:"required"`
}
