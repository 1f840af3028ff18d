package iterm

import "errors"

// Availability and resolution failures. The first two are expected
// environment preconditions (reported on stdout with a zero exit); the
// rest are fatal: without a resolved caller there is no safe place to
// return focus to, and without a window there is nowhere to put the
// worker tab.
var (
	ErrNotITerm        = errors.New("not running inside iTerm2")
	ErrNoAutomation    = errors.New("osascript not available; iTerm2 automation requires macOS")
	ErrSessionNotFound = errors.New("caller session not found")
	ErrWindowNotFound  = errors.New("no window contains the caller session")
)
