package status

import "regexp"

// Claude Code renders three usage gauges on the /status Usage tab:
//
//	Current session
//	████████████████████████▌                          49% used
//	Resets 11am (Europe/Paris)
//
//	Current week (all models)
//	██████▌                                            13% used
//	Resets Jan 15, 9am (Europe/Paris)
//
//	Current week (Sonnet only)
//	█                                                  2% used
//	Resets 8pm (Europe/Paris)
//
// Each section is located by label; [^\d]* skips the progress bar glyphs
// between label and percentage.
var claudePatterns = struct {
	Session      *regexp.Regexp
	WeeklyAll    *regexp.Regexp
	WeeklySonnet *regexp.Regexp
	SessionReset *regexp.Regexp
	WeeklyReset  *regexp.Regexp
}{
	Session:      regexp.MustCompile(`(?is)Current session[^\d]*(\d+)%\s*used`),
	WeeklyAll:    regexp.MustCompile(`(?is)Current week\s*\(all models\)[^\d]*(\d+)%\s*used`),
	WeeklySonnet: regexp.MustCompile(`(?is)Current week\s*\(Sonnet only\)[^\d]*(\d+)%\s*used`),
	// Session resets are a bare hour token ("11am"); weekly resets carry
	// month, day and hour ("Jan 15, 9am"). Both are stored verbatim.
	SessionReset: regexp.MustCompile(`(?is)Current session.*?Resets\s+(\d{1,2}(?:am|pm))`),
	WeeklyReset:  regexp.MustCompile(`(?is)Current week\s*\(all models\).*?Resets\s+([A-Za-z]+\s+\d{1,2},?\s+\d{1,2}(?:am|pm))`),
}

// ParseClaude extracts a ClaudeStatus from sanitized screen text.
// Unmatched sections leave their fields nil; ParseClaude never fails.
func ParseClaude(text string) *ClaudeStatus {
	s := &ClaudeStatus{}

	if m := claudePatterns.Session.FindStringSubmatch(text); m != nil {
		s.SessionLeft = remaining(atoi(m[1]))
	}
	if m := claudePatterns.WeeklyAll.FindStringSubmatch(text); m != nil {
		s.WeeklyAllLeft = remaining(atoi(m[1]))
	}
	if m := claudePatterns.WeeklySonnet.FindStringSubmatch(text); m != nil {
		s.WeeklySonnetLeft = remaining(atoi(m[1]))
	}
	if m := claudePatterns.SessionReset.FindStringSubmatch(text); m != nil {
		s.SessionResets = strPtr(m[1])
	}
	if m := claudePatterns.WeeklyReset.FindStringSubmatch(text); m != nil {
		s.WeeklyResets = strPtr(m[1])
	}

	return s
}
