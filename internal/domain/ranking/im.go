package ranking

import (
	"sort"
	"time"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

// IM monthly rankings are only held in the 15m pool over these distances.
const IMPoolLength = 15

var IMDistances = []int{60, 120}

var Genders = []entity.Gender{entity.GenderMale, entity.GenderFemale}

// RankedRecord is a record with its 1-based position in a ranking cell.
type RankedRecord struct {
	Rank int `json:"rank"`
	Record
}

// IMResult holds the monthly individual-medley podium per distance and
// gender. Cells with no qualifying records are empty slices, not errors.
type IMResult map[int]map[entity.Gender][]RankedRecord

// imQualifies reports whether a record counts for IM rankings at all.
func imQualifies(r Record) bool {
	return r.Style == entity.StyleIndividualMedley &&
		r.PoolLength == IMPoolLength &&
		ValidTime(r.Time)
}

// CalculateIMRankings ranks the individual-medley records of the target
// month, split by distance and gender, fastest first, keeping the top 3.
func CalculateIMRankings(records []Record, year int, month time.Month) IMResult {
	result := make(IMResult, len(IMDistances))
	for _, distance := range IMDistances {
		result[distance] = make(map[entity.Gender][]RankedRecord, len(Genders))
		for _, gender := range Genders {
			result[distance][gender] = []RankedRecord{}
		}
	}

	for _, r := range records {
		if !imQualifies(r) {
			continue
		}
		if r.Date.Year() != year || r.Date.Month() != month {
			continue
		}
		byGender, ok := result[r.Distance]
		if !ok {
			continue
		}
		if _, ok := byGender[r.Gender]; !ok {
			continue
		}
		byGender[r.Gender] = append(byGender[r.Gender], RankedRecord{Record: r})
	}

	for _, byGender := range result {
		for gender, cell := range byGender {
			sort.SliceStable(cell, func(i, j int) bool {
				return seconds(cell[i].Record) < seconds(cell[j].Record)
			})
			if len(cell) > 3 {
				cell = cell[:3]
			}
			for i := range cell {
				cell[i].Rank = i + 1
			}
			byGender[gender] = cell
		}
	}
	return result
}
