package ranking

import (
	"sort"
	"time"
)

// Period is a calendar month.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (p Period) contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

func (p Period) after(other Period) bool {
	if p.Year != other.Year {
		return p.Year > other.Year
	}
	return p.Month > other.Month
}

// GrowthPeriods names the two measurement months. Records are taken at
// even-month time trials, so only even months qualify.
type GrowthPeriods struct {
	Current  Period `json:"current"`
	Previous Period `json:"previous"`
}

// GrowthEntry is one athlete-distance line of the growth ranking.
type GrowthEntry struct {
	Rank               int     `json:"rank"`
	StudentID          uint    `json:"studentId"`
	AthleteName        string  `json:"athleteName"`
	Distance           int     `json:"distance"`
	BestTime           string  `json:"bestTime"`
	CurrentTime        string  `json:"currentTime"`
	ImprovementSeconds float64 `json:"improvementSeconds"`
	GrowthRate         float64 `json:"growthRate"`
}

// GrowthResult is the growth ranking. Periods is nil when fewer than two
// qualifying even months exist; that is "no data", not an error.
type GrowthResult struct {
	Periods *GrowthPeriods `json:"periods"`
	Entries []GrowthEntry  `json:"entries"`
}

// CalculateGrowthRankings compares each athlete's newest even-month
// individual-medley time against their best over every other qualifying
// record of the same distance, and ranks athletes by percentage improvement.
// A positive growth rate means the current time beat the historical best.
// limit caps the entry count; limit <= 0 returns the full list.
func CalculateGrowthRankings(records []Record, limit int) GrowthResult {
	var qualifying []Record
	for _, r := range records {
		if imQualifies(r) {
			qualifying = append(qualifying, r)
		}
	}

	periods := evenPeriods(qualifying)
	if len(periods) < 2 {
		return GrowthResult{Periods: nil, Entries: []GrowthEntry{}}
	}
	current, previous := periods[0], periods[1]

	// The current-period record per athlete and distance; the fastest one
	// counts when an athlete swam the event more than once that month.
	type cell struct {
		studentID uint
		distance  int
	}
	currents := make(map[cell]Record)
	for _, r := range qualifying {
		if !current.contains(r.Date) {
			continue
		}
		k := cell{r.StudentID, r.Distance}
		if prev, ok := currents[k]; !ok || seconds(r) < seconds(prev) {
			currents[k] = r
		}
	}

	entries := []GrowthEntry{}
	for k, cur := range currents {
		currentSeconds := seconds(cur)
		bestSeconds := 0.0
		bestTime := ""
		for _, r := range qualifying {
			if r.ID == cur.ID {
				continue
			}
			if r.StudentID != k.studentID || r.Distance != k.distance || r.Gender != cur.Gender {
				continue
			}
			if s := seconds(r); bestTime == "" || s < bestSeconds {
				bestSeconds = s
				bestTime = r.Time
			}
		}
		if bestTime == "" {
			// First recorded swim over this distance, nothing to compare.
			continue
		}

		improvement := bestSeconds - currentSeconds
		entries = append(entries, GrowthEntry{
			StudentID:          k.studentID,
			AthleteName:        cur.AthleteName,
			Distance:           k.distance,
			BestTime:           bestTime,
			CurrentTime:        cur.Time,
			ImprovementSeconds: improvement,
			GrowthRate:         improvement / bestSeconds * 100,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].GrowthRate > entries[j].GrowthRate
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return GrowthResult{
		Periods: &GrowthPeriods{Current: current, Previous: previous},
		Entries: entries,
	}
}

// evenPeriods returns the distinct even calendar months that contain at
// least one qualifying record, most recent first.
func evenPeriods(qualifying []Record) []Period {
	seen := make(map[Period]bool)
	var periods []Period
	for _, r := range qualifying {
		if int(r.Date.Month())%2 != 0 {
			continue
		}
		p := Period{Year: r.Date.Year(), Month: r.Date.Month()}
		if !seen[p] {
			seen[p] = true
			periods = append(periods, p)
		}
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].after(periods[j])
	})
	return periods
}
