package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

func TestCalculateGrowthRankingsNoDataUnderTwoEvenMonths(t *testing.T) {
	// One even month only; odd-month records do not open a period.
	records := []Record{
		imRec(1, 1, entity.GenderMale, 60, "00:45.00", "2024-02-10"),
		imRec(2, 1, entity.GenderMale, 60, "00:44.00", "2024-03-10"),
	}
	result := CalculateGrowthRankings(records, 0)
	assert.Nil(t, result.Periods)
	assert.Empty(t, result.Entries)

	result = CalculateGrowthRankings(nil, 0)
	assert.Nil(t, result.Periods)
}

func TestCalculateGrowthRankingsSingleAthlete(t *testing.T) {
	records := []Record{
		imRec(1, 1, entity.GenderMale, 60, "00:45.00", "2024-02-10"),
		imRec(2, 1, entity.GenderMale, 60, "00:43.00", "2024-04-10"),
	}
	result := CalculateGrowthRankings(records, 0)

	require.NotNil(t, result.Periods)
	assert.Equal(t, Period{2024, time.April}, result.Periods.Current)
	assert.Equal(t, Period{2024, time.February}, result.Periods.Previous)

	require.Len(t, result.Entries, 1)
	e := result.Entries[0]
	assert.Equal(t, 1, e.Rank)
	assert.Equal(t, uint(1), e.StudentID)
	assert.Equal(t, "00:45.00", e.BestTime)
	assert.Equal(t, "00:43.00", e.CurrentTime)
	assert.InDelta(t, 2.0, e.ImprovementSeconds, 0.0001)
	assert.InDelta(t, 2.0/45.0*100, e.GrowthRate, 0.01)
}

func TestCalculateGrowthRankingsSignConvention(t *testing.T) {
	records := []Record{
		// Athlete 1 got faster, athlete 2 got slower.
		imRec(1, 1, entity.GenderMale, 60, "00:50.00", "2024-04-06"),
		imRec(2, 1, entity.GenderMale, 60, "00:48.00", "2024-06-08"),
		imRec(3, 2, entity.GenderMale, 60, "00:40.00", "2024-04-06"),
		imRec(4, 2, entity.GenderMale, 60, "00:42.00", "2024-06-08"),
	}
	result := CalculateGrowthRankings(records, 0)
	require.Len(t, result.Entries, 2)

	assert.Equal(t, uint(1), result.Entries[0].StudentID)
	assert.Positive(t, result.Entries[0].GrowthRate)
	assert.Equal(t, uint(2), result.Entries[1].StudentID)
	assert.Negative(t, result.Entries[1].GrowthRate)
	assert.Equal(t, []int{1, 2}, []int{result.Entries[0].Rank, result.Entries[1].Rank})
}

func TestCalculateGrowthRankingsCurrentStrictlyMoreRecent(t *testing.T) {
	records := []Record{
		imRec(1, 1, entity.GenderFemale, 120, "01:50.00", "2023-12-02"),
		imRec(2, 1, entity.GenderFemale, 120, "01:48.00", "2024-02-03"),
		imRec(3, 1, entity.GenderFemale, 120, "01:47.00", "2024-04-06"),
	}
	result := CalculateGrowthRankings(records, 0)
	require.NotNil(t, result.Periods)
	cur, prev := result.Periods.Current, result.Periods.Previous
	assert.True(t, cur.after(prev))
	assert.Equal(t, Period{2024, time.April}, cur)
	assert.Equal(t, Period{2024, time.February}, prev)

	// Best excludes the current-period record but spans all other months,
	// including December of the previous year.
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "01:48.00", result.Entries[0].BestTime)
}

func TestCalculateGrowthRankingsLimit(t *testing.T) {
	var records []Record
	id := uint(1)
	for s := uint(1); s <= 12; s++ {
		prev := imRec(id, s, entity.GenderMale, 60, "00:50.00", "2024-02-10")
		id++
		cur := imRec(id, s, entity.GenderMale, 60, FormatSeconds(44+float64(s)/10), "2024-04-10")
		id++
		records = append(records, prev, cur)
	}

	capped := CalculateGrowthRankings(records, 10)
	assert.Len(t, capped.Entries, 10)
	assert.Equal(t, 10, capped.Entries[9].Rank)

	full := CalculateGrowthRankings(records, 0)
	assert.Len(t, full.Entries, 12)

	// Descending growth rate throughout.
	for i := 1; i < len(full.Entries); i++ {
		assert.GreaterOrEqual(t, full.Entries[i-1].GrowthRate, full.Entries[i].GrowthRate)
	}
}

func TestCalculateGrowthRankingsSkipsFirstTimers(t *testing.T) {
	records := []Record{
		imRec(1, 1, entity.GenderMale, 60, "00:45.00", "2024-02-10"),
		imRec(2, 1, entity.GenderMale, 60, "00:43.00", "2024-04-10"),
		// Athlete 2 only has a current-period swim.
		imRec(3, 2, entity.GenderMale, 60, "00:41.00", "2024-04-10"),
	}
	result := CalculateGrowthRankings(records, 0)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, uint(1), result.Entries[0].StudentID)
}
