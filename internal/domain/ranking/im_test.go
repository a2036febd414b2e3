package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

func imRec(id, studentID uint, gender entity.Gender, distance int, timeStr, date string) Record {
	r := rec(id, studentID, entity.StyleIndividualMedley, distance, IMPoolLength, timeStr, date)
	r.Gender = gender
	return r
}

func TestCalculateIMRankingsTopThree(t *testing.T) {
	records := []Record{
		imRec(1, 1, entity.GenderMale, 60, "00:48.00", "2024-06-08"),
		imRec(2, 2, entity.GenderMale, 60, "00:45.50", "2024-06-08"),
		imRec(3, 3, entity.GenderMale, 60, "00:47.20", "2024-06-08"),
		imRec(4, 4, entity.GenderMale, 60, "00:51.00", "2024-06-08"),
		imRec(5, 5, entity.GenderFemale, 60, "00:49.90", "2024-06-08"),
		imRec(6, 6, entity.GenderFemale, 120, "01:45.00", "2024-06-08"),
		// Wrong month, wrong pool and wrong style must all be ignored.
		imRec(7, 7, entity.GenderMale, 60, "00:40.00", "2024-05-11"),
		rec(8, 8, entity.StyleFreestyle, 60, IMPoolLength, "00:39.00", "2024-06-08"),
	}
	records[7].Gender = entity.GenderMale
	offPool := imRec(9, 9, entity.GenderMale, 60, "00:41.00", "2024-06-08")
	offPool.PoolLength = 25
	records = append(records, offPool)

	result := CalculateIMRankings(records, 2024, time.June)

	men60 := result[60][entity.GenderMale]
	require.Len(t, men60, 3)
	assert.Equal(t, []uint{2, 3, 1}, []uint{men60[0].ID, men60[1].ID, men60[2].ID})
	for i, e := range men60 {
		assert.Equal(t, i+1, e.Rank)
	}

	women60 := result[60][entity.GenderFemale]
	require.Len(t, women60, 1)
	assert.Equal(t, 1, women60[0].Rank)

	assert.Len(t, result[120][entity.GenderFemale], 1)
	assert.Empty(t, result[120][entity.GenderMale])
}

func TestCalculateIMRankingsEmptyInput(t *testing.T) {
	result := CalculateIMRankings(nil, 2024, time.June)
	for _, distance := range IMDistances {
		for _, gender := range Genders {
			assert.Empty(t, result[distance][gender])
		}
	}
}

func TestCalculateIMRankingsNeverExceedsThree(t *testing.T) {
	var records []Record
	for i := uint(1); i <= 10; i++ {
		records = append(records, imRec(i, i, entity.GenderFemale, 120, "01:50.00", "2024-08-03"))
	}
	result := CalculateIMRankings(records, 2024, time.August)
	cell := result[120][entity.GenderFemale]
	require.Len(t, cell, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{cell[0].Rank, cell[1].Rank, cell[2].Rank})
	// Stable sort keeps insertion order on equal times.
	assert.Equal(t, uint(1), cell[0].ID)
}
