package status

import (
	"strings"
	"time"
)

// Reset-time normalization. Status reports never state the year and the
// 5h limit omits the date entirely, so partial expressions are resolved
// to the next upcoming occurrence relative to the current instant. A
// report always describes a future reset, never a past one.

// NextTimeOfDay returns the next instant strictly after now whose wall
// clock reads hour:min in now's location. If today's occurrence is not
// strictly in the future, it rolls forward one day.
func NextTimeOfDay(now time.Time, hour, min int) time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	if !t.After(now) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// NextMonthDay resolves a month/day/clock expression to the next
// calendar occurrence on-or-after now's date: if the month has already
// passed this year, or it is the current month with an earlier day, the
// year advances by one. A same-day expression stays in the current year
// even when its time of day has already passed.
//
// Impossible dates (Feb 30) return ok=false rather than the normalized
// date time.Date would silently produce.
func NextMonthDay(now time.Time, month time.Month, day, hour, min int) (t time.Time, ok bool) {
	year := now.Year()
	if month < now.Month() || (month == now.Month() && day < now.Day()) {
		year++
	}
	t = time.Date(year, month, day, hour, min, 0, 0, now.Location())
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// monthByName resolves a month name or abbreviation, case-insensitively.
func monthByName(name string) (time.Month, bool) {
	if len(name) < 3 {
		return 0, false
	}
	switch strings.ToLower(name)[:3] {
	case "jan":
		return time.January, true
	case "feb":
		return time.February, true
	case "mar":
		return time.March, true
	case "apr":
		return time.April, true
	case "may":
		return time.May, true
	case "jun":
		return time.June, true
	case "jul":
		return time.July, true
	case "aug":
		return time.August, true
	case "sep":
		return time.September, true
	case "oct":
		return time.October, true
	case "nov":
		return time.November, true
	case "dec":
		return time.December, true
	}
	return 0, false
}
