package ranking

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
)

// timePattern matches the stored "MM:SS.hh" time format.
var timePattern = regexp.MustCompile(`^(\d{2}):(\d{2})\.(\d{2})$`)

// ValidTime reports whether s is a well-formed "MM:SS.hh" time string.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// TimeToSeconds converts a "MM:SS.hh" time string to total seconds.
// Times are always compared through this conversion; comparing the raw
// strings is only correct while every time shares the same minute width.
func TimeToSeconds(s string) (float64, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, errorz.ErrInvalidTimeFormat
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	hundredths, _ := strconv.Atoi(m[3])
	return float64(minutes)*60 + float64(seconds) + float64(hundredths)/100, nil
}

// FormatSeconds renders total seconds back to "MM:SS.hh".
func FormatSeconds(total float64) string {
	minutes := int(total) / 60
	return fmt.Sprintf("%02d:%05.2f", minutes, total-float64(minutes)*60)
}

// seconds is TimeToSeconds for records already known to be well formed;
// malformed times sort last instead of failing the whole view.
func seconds(r Record) float64 {
	s, err := TimeToSeconds(r.Time)
	if err != nil {
		return maxSeconds
	}
	return s
}

// One above the largest representable "99:59.99".
const maxSeconds = 100 * 60
