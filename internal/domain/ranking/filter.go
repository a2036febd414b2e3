package ranking

import "time"

// Window is a named relative date range for the history view.
type Window string

const (
	WindowAll         Window = "all"
	WindowOneMonth    Window = "1m"
	WindowThreeMonths Window = "3m"
	WindowSixMonths   Window = "6m"
	WindowOneYear     Window = "1y"
)

// DateRange selects records either by a named window relative to now, or by
// an explicit custom [From, To] pair when Window is empty.
type DateRange struct {
	Window Window
	From   time.Time
	To     time.Time
}

// FilterByDateRange returns the records falling inside the range. now is
// supplied by the caller so the function stays deterministic.
func FilterByDateRange(records []Record, dr DateRange, now time.Time) []Record {
	from, to := dr.Bounds(now)
	if from.IsZero() && to.IsZero() {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !from.IsZero() && r.Date.Before(from) {
			continue
		}
		if !to.IsZero() && r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Bounds resolves the range to concrete time bounds; zero times mean open.
func (dr DateRange) Bounds(now time.Time) (time.Time, time.Time) {
	switch dr.Window {
	case WindowOneMonth:
		return now.AddDate(0, -1, 0), now
	case WindowThreeMonths:
		return now.AddDate(0, -3, 0), now
	case WindowSixMonths:
		return now.AddDate(0, -6, 0), now
	case WindowOneYear:
		return now.AddDate(-1, 0, 0), now
	case WindowAll:
		return time.Time{}, time.Time{}
	}
	return dr.From, dr.To
}
