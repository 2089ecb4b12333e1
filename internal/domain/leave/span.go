package leave

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Precision tells which path produced a day count.
type Precision int

const (
	// Both dates parsed as Gregorian calendar dates.
	PrecisionExact Precision = iota
	// Dates only had the YYYY-MM-DD shape (e.g. Bikram Sambat); months count as 30
	// days and years as 365.
	PrecisionApproximate
	// Nothing could be parsed; the span counts as a single day.
	PrecisionDefault
)

func (p Precision) String() string {
	switch p {
	case PrecisionExact:
		return "exact"
	case PrecisionApproximate:
		return "approximate"
	default:
		return "default"
	}
}

var reDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Days returns the inclusive number of days between start and end, never less than 1.
func Days(start, end string) int {
	n, _ := CountDays(start, end)
	return n
}

// CountDays is Days plus the precision of the result. Reversed ranges are counted
// by their absolute distance.
func CountDays(start, end string) (int, Precision) {
	s, errS := time.Parse(dateLayout, strings.TrimSpace(start))
	e, errE := time.Parse(dateLayout, strings.TrimSpace(end))
	if errS == nil && errE == nil {
		// midnight UTC on both sides, so seconds divide evenly into days
		days := (e.Unix() - s.Unix()) / secondsPerDay
		if days < 0 {
			days = -days
		}
		return int(days) + 1, PrecisionExact
	}

	sy, sm, sd, okS := splitDate(start)
	ey, em, ed, okE := splitDate(end)
	if okS && okE {
		diff := (ey-sy)*365 + (em-sm)*30 + (ed - sd)
		return max(1, diff+1), PrecisionApproximate
	}
	return 1, PrecisionDefault
}

func splitDate(s string) (y, m, d int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var out [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		out[i] = n
	}
	return out[0], out[1], out[2], true
}

// ValidDate reports whether s has the YYYY-MM-DD shape. The calendar is not checked,
// so non-Gregorian dates such as 2081-01-32 pass.
func ValidDate(s string) bool { return reDateShape.MatchString(s) }

// After reports whether a falls after b. Gregorian dates are compared as times;
// anything else falls back to comparing the fixed-width strings.
func After(a, b string) bool {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA == nil && errB == nil {
		return ta.After(tb)
	}
	return a > b
}
