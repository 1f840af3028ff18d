// Package status parses the rendered /status screens of Claude Code and
// Codex CLI into normalized usage records.
//
// The parsers are deliberately forgiving: they locate each section by its
// label, tolerate progress-bar glyphs and reflowed whitespace between the
// label and the number, and leave a field nil rather than fail when a
// section is missing or malformed.
package status

import (
	"strconv"
	"time"
)

// ClaudeStatus is the normalized result of one Claude Code probe.
// Percentages are remaining (0-100); reset strings are kept verbatim
// because the source format omits the year (and for sessions, the date).
type ClaudeStatus struct {
	SessionLeft      *int    `json:"session_left"`
	WeeklyAllLeft    *int    `json:"weekly_all_left"`
	WeeklySonnetLeft *int    `json:"weekly_sonnet_left"`
	SessionResets    *string `json:"session_resets"`
	WeeklyResets     *string `json:"weekly_resets"`
	DebugFile        string  `json:"_debug,omitempty"`
}

// Empty reports whether the primary quota fields are all absent.
// Sonnet-only usage and reset strings are secondary: a record carrying
// only those still counts as empty for retry purposes.
func (s *ClaudeStatus) Empty() bool {
	return s.SessionLeft == nil && s.WeeklyAllLeft == nil
}

// SetDebug attaches the path of a debug artifact to the record.
func (s *ClaudeStatus) SetDebug(path string) { s.DebugFile = path }

// CodexStatus is the normalized result of one Codex CLI probe.
// Percentages are remaining (0-100); reset times are absolute local
// timestamps formatted "2006-01-02 15:04".
type CodexStatus struct {
	FiveHourLeft   *int    `json:"5h_left"`
	WeeklyLeft     *int    `json:"weekly_left"`
	ContextLeft    *int    `json:"context_left"`
	FiveHourResets *string `json:"5h_resets"`
	WeeklyResets   *string `json:"weekly_resets"`
	DebugFile      string  `json:"_debug,omitempty"`
}

// Empty reports whether the primary quota field is absent.
func (s *CodexStatus) Empty() bool { return s.FiveHourLeft == nil }

// SetDebug attaches the path of a debug artifact to the record.
func (s *CodexStatus) SetDebug(path string) { s.DebugFile = path }

// ResetTimeLayout is the output format for normalized reset timestamps.
const ResetTimeLayout = "2006-01-02 15:04"

// remaining converts a "used" percentage to a remaining pointer,
// rejecting values outside 0-100.
func remaining(used int) *int {
	if used < 0 || used > 100 {
		return nil
	}
	left := 100 - used
	return &left
}

// percent validates a directly-reported "left" percentage.
func percent(left int) *int {
	if left < 0 || left > 100 {
		return nil
	}
	return &left
}

func strPtr(s string) *string { return &s }

// atoi parses a matched digit run; out-of-range values map to -1 so the
// percentage validators reject them.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}

// timePtr formats t with ResetTimeLayout and returns a pointer to it.
func timePtr(t time.Time) *string { return strPtr(t.Format(ResetTimeLayout)) }
