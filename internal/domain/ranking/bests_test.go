package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

func rec(id, studentID uint, style entity.Style, distance, pool int, timeStr, date string) Record {
	d, _ := time.Parse("2006-01-02", date)
	return Record{
		ID:         id,
		StudentID:  studentID,
		Style:      style,
		Distance:   distance,
		PoolLength: pool,
		Time:       timeStr,
		Date:       d,
	}
}

func TestPersonalBestsIsMinimumPerGroup(t *testing.T) {
	records := []Record{
		rec(1, 1, entity.StyleFreestyle, 50, 25, "00:35.10", "2024-01-05"),
		rec(2, 1, entity.StyleFreestyle, 50, 25, "00:33.80", "2024-02-05"),
		rec(3, 1, entity.StyleFreestyle, 50, 50, "00:36.90", "2024-02-10"),
		rec(4, 2, entity.StyleFreestyle, 50, 25, "00:34.50", "2024-02-12"),
		rec(5, 1, entity.StyleBackstroke, 50, 25, "00:40.00", "2024-02-15"),
	}

	bests := PersonalBests(records, ByStyleDistancePool)
	require.Len(t, bests, 3)
	assert.Equal(t, uint(2), bests["自由形-50-25"].ID)
	assert.Equal(t, uint(3), bests["自由形-50-50"].ID)

	// Every record in a group is at least as slow as the group's best.
	for _, r := range records {
		best := bests[ByStyleDistancePool(r)]
		assert.LessOrEqual(t, seconds(best), seconds(r))
	}

	perStudent := PersonalBests(records, ByStyleDistancePoolStudent)
	assert.Equal(t, uint(2), perStudent["自由形-50-25-1"].ID)
	assert.Equal(t, uint(4), perStudent["自由形-50-25-2"].ID)
}

func TestPersonalBestsFirstEncounteredWinsTies(t *testing.T) {
	records := []Record{
		rec(1, 1, entity.StyleButterfly, 100, 25, "01:10.00", "2024-01-05"),
		rec(2, 2, entity.StyleButterfly, 100, 25, "01:10.00", "2024-01-06"),
	}
	bests := PersonalBests(records, ByStyleDistance)
	assert.Equal(t, uint(1), bests["バタフライ-100"].ID)
}

func TestBestTimesByStyleFiltersPoolAndStyle(t *testing.T) {
	records := []Record{
		rec(1, 1, entity.StyleFreestyle, 50, 25, "00:35.10", "2024-01-05"),
		rec(2, 1, entity.StyleFreestyle, 50, 50, "00:37.20", "2024-01-06"),
		rec(3, 1, entity.StyleBreaststroke, 50, 25, "00:44.00", "2024-01-07"),
	}

	all := BestTimesByStyle(records, BestTimeFilter{})
	assert.Len(t, all, 2)

	shortCourse := BestTimesByStyle(records, BestTimeFilter{PoolLength: 25})
	require.Contains(t, shortCourse, entity.StyleFreestyle)
	assert.Equal(t, uint(1), shortCourse[entity.StyleFreestyle][50].ID)

	freeOnly := BestTimesByStyle(records, BestTimeFilter{Style: entity.StyleFreestyle})
	assert.Len(t, freeOnly, 1)
}

func TestBestTimesByDistanceInvertsNesting(t *testing.T) {
	records := []Record{
		rec(1, 1, entity.StyleFreestyle, 50, 25, "00:35.10", "2024-01-05"),
		rec(2, 1, entity.StyleBreaststroke, 50, 25, "00:44.00", "2024-01-07"),
		rec(3, 1, entity.StyleFreestyle, 100, 25, "01:20.00", "2024-01-08"),
	}
	byDistance := BestTimesByDistance(records, BestTimeFilter{})
	require.Contains(t, byDistance, 50)
	assert.Len(t, byDistance[50], 2)
	assert.Equal(t, uint(3), byDistance[100][entity.StyleFreestyle].ID)
}
