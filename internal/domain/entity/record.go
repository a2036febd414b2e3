package entity

import (
	"time"
)

type Style string

const (
	StyleFreestyle        Style = "自由形"
	StyleBackstroke       Style = "背泳ぎ"
	StyleBreaststroke     Style = "平泳ぎ"
	StyleButterfly        Style = "バタフライ"
	StyleIndividualMedley Style = "個人メドレー"
)

var Styles = []Style{
	StyleFreestyle,
	StyleBackstroke,
	StyleBreaststroke,
	StyleButterfly,
	StyleIndividualMedley,
}

// AllowedDistances maps a pool length in meters to the distances that can be
// swum in it.
var AllowedDistances = map[int][]int{
	15: {15, 30, 60, 120},
	25: {25, 50, 100, 200, 400},
	50: {50, 100, 200, 400, 800, 1500},
}

// SwimRecord is a single timed swim. Time is stored as "MM:SS.hh"; the
// competition name and location are denormalized so that deleting a
// competition does not touch its records.
type SwimRecord struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	StudentID           uint      `gorm:"not null;index" json:"studentId"`
	Student             User      `gorm:"foreignKey:StudentID" json:"-"`
	Style               Style     `gorm:"not null;index" json:"style"`
	Distance            int       `gorm:"not null" json:"distance"`
	Time                string    `gorm:"not null" json:"time"`
	Date                time.Time `gorm:"not null;index" json:"date"`
	PoolLength          int       `gorm:"not null" json:"poolLength"`
	IsCompetition       bool      `gorm:"not null;default:false" json:"isCompetition"`
	CompetitionID       *uint     `json:"competitionId,omitempty"`
	CompetitionName     string    `json:"competitionName,omitempty"`
	CompetitionLocation string    `json:"competitionLocation,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// DistanceAllowed reports whether distance can be swum in a pool of the given
// length.
func DistanceAllowed(poolLength, distance int) bool {
	for _, d := range AllowedDistances[poolLength] {
		if d == distance {
			return true
		}
	}
	return false
}

func ValidStyle(s Style) bool {
	for _, style := range Styles {
		if style == s {
			return true
		}
	}
	return false
}
