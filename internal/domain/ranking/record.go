package ranking

import (
	"time"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

// Record is the flat, denormalized shape every ranking function works on.
// It is built from the store's query result and carries everything a view
// needs, so the functions here never call back into the database.
type Record struct {
	ID              uint          `json:"id"`
	StudentID       uint          `json:"studentId"`
	AthleteName     string        `json:"athleteName"`
	Gender          entity.Gender `json:"gender"`
	Style           entity.Style  `json:"style"`
	Distance        int           `json:"distance"`
	PoolLength      int           `json:"poolLength"`
	Time            string        `json:"time"`
	Date            time.Time     `json:"date"`
	IsCompetition   bool          `json:"isCompetition"`
	CompetitionID   *uint         `json:"competitionId,omitempty"`
	CompetitionName string        `json:"competitionName,omitempty"`
}

// FromEntity flattens a SwimRecord and its preloaded student into a Record.
func FromEntity(r entity.SwimRecord) Record {
	return Record{
		ID:              r.ID,
		StudentID:       r.StudentID,
		AthleteName:     r.Student.DisplayName,
		Gender:          r.Student.Gender,
		Style:           r.Style,
		Distance:        r.Distance,
		PoolLength:      r.PoolLength,
		Time:            r.Time,
		Date:            r.Date,
		IsCompetition:   r.IsCompetition,
		CompetitionID:   r.CompetitionID,
		CompetitionName: r.CompetitionName,
	}
}

// FromEntities converts a query result into the flat ranking input.
func FromEntities(records []entity.SwimRecord) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, FromEntity(r))
	}
	return out
}
