package dto

import (
	"time"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type RecordRequest struct {
	StudentID     uint   `json:"studentId" validate:"required"`
	Style         string `json:"style" validate:"required"`
	Distance      int    `json:"distance" validate:"required,gt=0"`
	Time          string `json:"time" validate:"required"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	PoolLength    int    `json:"poolLength" validate:"required,oneof=15 25 50"`
	IsCompetition bool   `json:"isCompetition"`
	CompetitionID *uint  `json:"competitionId"`
}

// ToEntity builds the record; the date has already passed validation.
func (r RecordRequest) ToEntity() entity.SwimRecord {
	date, _ := time.Parse("2006-01-02", r.Date)
	return entity.SwimRecord{
		StudentID:     r.StudentID,
		Style:         entity.Style(r.Style),
		Distance:      r.Distance,
		Time:          r.Time,
		Date:          date,
		PoolLength:    r.PoolLength,
		IsCompetition: r.IsCompetition,
		CompetitionID: r.CompetitionID,
	}
}
