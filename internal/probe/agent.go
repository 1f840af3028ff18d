package probe

import (
	"time"

	"github.com/ai8future/rcodegen/internal/status"
)

// Record is the normalized outcome of one probe attempt. Both agent
// record shapes in internal/status satisfy it.
type Record interface {
	// Empty reports whether the primary quota fields are all absent,
	// which is the (sole) condition for the single retry.
	Empty() bool
	// SetDebug attaches the path of a debug artifact.
	SetDebug(path string)
}

// ParseFunc turns sanitized screen text into a Record. now anchors
// relative reset-time expressions.
type ParseFunc func(text string, now time.Time) Record

// Step is one injected keystroke plus the fixed pause that lets the
// hosted UI process it. There is no completion signal to wait on; the
// pauses are the synchronization mechanism.
type Step struct {
	Text  string
	Pause time.Duration
}

// Timing holds every delay constant of a probe. All values are plain
// data so they can be tuned from configuration without touching the
// pipeline (see internal/config).
type Timing struct {
	// Warmup is the wait after the worker tab is created, before any
	// input is sent. The agent needs this to finish starting up.
	Warmup time.Duration
	// KeyPause follows the clear-line control and the command text.
	KeyPause time.Duration
	// CommandSettle follows the carriage return that submits the
	// status command.
	CommandSettle time.Duration
	// RenderSettle is the final wait before the screen is captured.
	RenderSettle time.Duration
	// QuitPause follows the quit command during teardown.
	QuitPause time.Duration
	// RetryDelay is the extra wait before the second attempt.
	RetryDelay time.Duration
	// RetrySettleFactor stretches CommandSettle and RenderSettle on the
	// second attempt. Values below 1 are treated as 1.
	RetrySettleFactor int
}

// settleFactor returns the multiplier for the given attempt number.
func (t Timing) settleFactor(attempt int) time.Duration {
	if attempt <= 1 || t.RetrySettleFactor < 1 {
		return 1
	}
	return time.Duration(t.RetrySettleFactor)
}

// Agent describes one probeable CLI agent: how to launch it, how to ask
// it for status, how to navigate its UI, and how its screen parses.
type Agent struct {
	// Name tags warnings and debug artifacts ("claude", "codex").
	Name string
	// Command launches the agent (typically a wrapper script that sets
	// up PATH and execs the binary).
	Command string
	// StatusCmd is the slash command that opens the status UI.
	StatusCmd string
	// Nav is sent after StatusCmd, e.g. Tab keys to reach the Usage tab.
	Nav []Step
	// QuitCmd, when non-empty, is sent (with a carriage return) before
	// the worker tab is closed.
	QuitCmd string
	Timing  Timing
	Parse   ParseFunc
}

// Control bytes injected into the worker session.
const (
	ctrlU          = "\x15" // clear the input line
	carriageReturn = "\r"
	tabKey         = "\t"
)

// TabStep is a convenience for UI navigation via the Tab key.
func TabStep(pause time.Duration) Step { return Step{Text: tabKey, Pause: pause} }

// script builds the ordered keystroke sequence for one attempt. The
// clear-line prefix discards any input left over from a previous
// attempt in the same worker session.
func (a Agent) script(attempt int) []Step {
	f := a.Timing.settleFactor(attempt)
	steps := []Step{
		{Text: ctrlU, Pause: a.Timing.KeyPause},
		{Text: a.StatusCmd, Pause: a.Timing.KeyPause},
		{Text: carriageReturn, Pause: a.Timing.CommandSettle * f},
	}
	return append(steps, a.Nav...)
}

// ClaudeParse adapts the Claude parser to ParseFunc. Claude reset
// strings stay verbatim, so now is unused.
func ClaudeParse(text string, _ time.Time) Record { return status.ParseClaude(text) }

// CodexParse adapts the Codex parser to ParseFunc.
func CodexParse(text string, now time.Time) Record { return status.ParseCodex(text, now) }
