package status

import (
	"regexp"
	"time"
)

// Codex CLI renders three limits in its /status report:
//
//	5h limit:       [████████████░░░░░░░░] 62% left (resets 14:00)
//	Weekly limit:   [██████████████████░░] 89% left (resets 09:00 on 14 Jan)
//	Context window:   52% left (129K used / 258K)
//
// Percentages and reset clauses are matched separately so a limit whose
// reset clause failed to render still yields its percentage.
var codexPatterns = struct {
	FiveHour      *regexp.Regexp
	Weekly        *regexp.Regexp
	Context       *regexp.Regexp
	FiveHourReset *regexp.Regexp
	WeeklyReset   *regexp.Regexp
}{
	FiveHour:      regexp.MustCompile(`(?is)5h limit:[^\d]*(\d+)%\s*left`),
	Weekly:        regexp.MustCompile(`(?is)Weekly limit:[^\d]*(\d+)%\s*left`),
	Context:       regexp.MustCompile(`(?is)context[^\d]*(\d+)%\s*left`),
	FiveHourReset: regexp.MustCompile(`(?is)5h limit:[^\d]*\d+%\s*left[^(]*\(resets\s+(\d{1,2}):(\d{2})\)`),
	WeeklyReset:   regexp.MustCompile(`(?is)Weekly limit:[^\d]*\d+%\s*left[^(]*\(resets\s+(\d{1,2}):(\d{2})\s+on\s+(\d{1,2})\s+([A-Za-z]+)\)`),
}

// ParseCodex extracts a CodexStatus from sanitized screen text. The
// report states reset times without a year (and the 5h limit without a
// date), so they are resolved against now with next-occurrence
// semantics. Unmatched sections leave their fields nil; ParseCodex
// never fails.
func ParseCodex(text string, now time.Time) *CodexStatus {
	s := &CodexStatus{}

	if m := codexPatterns.FiveHour.FindStringSubmatch(text); m != nil {
		s.FiveHourLeft = percent(atoi(m[1]))
	}
	if m := codexPatterns.Weekly.FindStringSubmatch(text); m != nil {
		s.WeeklyLeft = percent(atoi(m[1]))
	}
	if m := codexPatterns.Context.FindStringSubmatch(text); m != nil {
		s.ContextLeft = percent(atoi(m[1]))
	}

	if m := codexPatterns.FiveHourReset.FindStringSubmatch(text); m != nil {
		if hour, min, ok := clockValues(m[1], m[2]); ok {
			s.FiveHourResets = timePtr(NextTimeOfDay(now, hour, min))
		}
	}
	if m := codexPatterns.WeeklyReset.FindStringSubmatch(text); m != nil {
		hour, min, ok := clockValues(m[1], m[2])
		month, monthOK := monthByName(m[4])
		if ok && monthOK {
			if t, valid := NextMonthDay(now, month, atoi(m[3]), hour, min); valid {
				s.WeeklyResets = timePtr(t)
			}
		}
	}

	return s
}

// clockValues validates an HH:MM pair captured from the report.
func clockValues(hh, mm string) (hour, min int, ok bool) {
	hour, min = atoi(hh), atoi(mm)
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, false
	}
	return hour, min, true
}
