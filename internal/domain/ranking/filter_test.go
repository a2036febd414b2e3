package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

func TestFilterByDateRangeNamedWindows(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	records := []Record{
		rec(1, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2024-06-01"),
		rec(2, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2024-04-01"),
		rec(3, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2024-01-10"),
		rec(4, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2023-05-01"),
	}

	ids := func(rs []Record) []uint {
		var out []uint
		for _, r := range rs {
			out = append(out, r.ID)
		}
		return out
	}

	assert.Equal(t, []uint{1}, ids(FilterByDateRange(records, DateRange{Window: WindowOneMonth}, now)))
	assert.Equal(t, []uint{1, 2}, ids(FilterByDateRange(records, DateRange{Window: WindowThreeMonths}, now)))
	assert.Equal(t, []uint{1, 2, 3}, ids(FilterByDateRange(records, DateRange{Window: WindowSixMonths}, now)))
	assert.Equal(t, []uint{1, 2, 3}, ids(FilterByDateRange(records, DateRange{Window: WindowOneYear}, now)))
	assert.Len(t, FilterByDateRange(records, DateRange{Window: WindowAll}, now), 4)
}

func TestFilterByDateRangeCustomBounds(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	records := []Record{
		rec(1, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2024-03-01"),
		rec(2, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2024-03-15"),
		rec(3, 1, entity.StyleFreestyle, 50, 25, "00:35.00", "2024-04-01"),
	}
	from := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	got := FilterByDateRange(records, DateRange{From: from, To: to}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// Zero range is a passthrough.
	assert.Len(t, FilterByDateRange(records, DateRange{}, now), 3)
}
