package ranking

import (
	"fmt"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

// GroupKey derives a grouping key from a record. The four keys below are the
// ones the views actually use; every view shares this one fold instead of
// re-deriving its own grouping.
type GroupKey func(Record) string

func ByStyle(r Record) string {
	return string(r.Style)
}

func ByStyleDistance(r Record) string {
	return fmt.Sprintf("%s-%d", r.Style, r.Distance)
}

func ByStyleDistancePool(r Record) string {
	return fmt.Sprintf("%s-%d-%d", r.Style, r.Distance, r.PoolLength)
}

func ByStyleDistancePoolStudent(r Record) string {
	return fmt.Sprintf("%s-%d-%d-%d", r.Style, r.Distance, r.PoolLength, r.StudentID)
}

// PersonalBests folds records into the fastest record per group. On an exact
// tie the first record encountered wins.
func PersonalBests(records []Record, key GroupKey) map[string]Record {
	bests := make(map[string]Record)
	for _, r := range records {
		k := key(r)
		best, ok := bests[k]
		if !ok || seconds(r) < seconds(best) {
			bests[k] = r
		}
	}
	return bests
}

// BestTimeFilter narrows the record set before best-time grouping.
// Zero values mean "no filter".
type BestTimeFilter struct {
	PoolLength int
	Style      entity.Style
}

func applyFilter(records []Record, f BestTimeFilter) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if f.PoolLength != 0 && r.PoolLength != f.PoolLength {
			continue
		}
		if f.Style != "" && r.Style != f.Style {
			continue
		}
		out = append(out, r)
	}
	return out
}

// BestTimesByStyle groups the filtered records by style then distance,
// keeping the fastest record per cell.
func BestTimesByStyle(records []Record, f BestTimeFilter) map[entity.Style]map[int]Record {
	out := make(map[entity.Style]map[int]Record)
	for _, r := range applyFilter(records, f) {
		byDistance, ok := out[r.Style]
		if !ok {
			byDistance = make(map[int]Record)
			out[r.Style] = byDistance
		}
		best, ok := byDistance[r.Distance]
		if !ok || seconds(r) < seconds(best) {
			byDistance[r.Distance] = r
		}
	}
	return out
}

// BestTimesByDistance is the inverted nesting used by the all-time view.
func BestTimesByDistance(records []Record, f BestTimeFilter) map[int]map[entity.Style]Record {
	out := make(map[int]map[entity.Style]Record)
	for _, r := range applyFilter(records, f) {
		byStyle, ok := out[r.Distance]
		if !ok {
			byStyle = make(map[entity.Style]Record)
			out[r.Distance] = byStyle
		}
		best, ok := byStyle[r.Style]
		if !ok || seconds(r) < seconds(best) {
			byStyle[r.Style] = r
		}
	}
	return out
}
