package status

import (
	"regexp"
	"strings"
)

// ansiEscapeRegex matches ANSI/VT escape sequences: CSI sequences
// (including private-mode and intermediate bytes), OSC sequences
// terminated by BEL or ST, and single-character Fe escapes.
var ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\a\x1b]*(?:\a|\x1b\\)|\x1b[@-Z\\-_]`)

// StripANSI removes terminal escape sequences from s. Bytes that are not
// part of a recognized sequence pass through unchanged, so the function
// is idempotent and never fails.
func StripANSI(s string) string {
	return ansiEscapeRegex.ReplaceAllString(s, "")
}

// Sanitize joins captured screen lines and strips escape sequences,
// producing the only form of text the parsers accept.
func Sanitize(lines []string) string {
	return StripANSI(strings.Join(lines, "\n"))
}
