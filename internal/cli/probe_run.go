package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ai8future/rcodegen/internal/config"
	"github.com/ai8future/rcodegen/internal/iterm"
	"github.com/ai8future/rcodegen/internal/output"
	"github.com/ai8future/rcodegen/internal/probe"
)

// claudeAgent builds the Claude Code probe profile. The status screen
// opens on the first tab of the /status dialog; two Tab keys reach the
// Usage tab where the quota lines live.
func claudeAgent(c config.AgentConfig) probe.Agent {
	nav := []probe.Step{
		probe.TabStep(c.NavPause()),
		probe.TabStep(c.NavPause()),
	}
	return probe.Agent{
		Name:      "claude",
		Command:   c.Command,
		StatusCmd: "/status",
		Nav:       nav,
		QuitCmd:   "/quit",
		Timing:    c.Timing(),
		Parse:     probe.ClaudeParse,
	}
}

// codexAgent builds the Codex probe profile. /status prints the limits
// inline, so there is no navigation and no quit command; closing the
// tab is enough.
func codexAgent(c config.AgentConfig) probe.Agent {
	return probe.Agent{
		Name:      "codex",
		Command:   c.Command,
		StatusCmd: "/status",
		Timing:    c.Timing(),
		Parse:     probe.CodexParse,
	}
}

// runProbe executes the full pipeline for one agent: environment check,
// caller resolution, probe, emission. The returned error is non-nil
// only for fatal conditions; "not in iTerm2" style preconditions emit
// the error shape on stdout and succeed, so cron jobs and scripts can
// treat the tool as "no data here" outside its habitat.
func runProbe(agent probe.Agent, debug bool, render func(probe.Record) []string) error {
	ctx := context.Background()

	client := iterm.NewClient()
	if err := client.Available(); err != nil {
		return emitUnavailable(err)
	}

	sessionID, err := iterm.CallerSessionID()
	if err != nil {
		return emitUnavailable(err)
	}

	caller, err := client.LocateSession(ctx, sessionID)
	if err != nil {
		return emitFatal(err)
	}

	prober := probe.New(client, agent)
	prober.Debug = debug

	rec, err := prober.Run(ctx, probe.Target{
		WindowID:  caller.WindowID,
		CallerTab: caller.TabIndex,
	})
	if err != nil {
		return emitFatal(err)
	}

	form := probeFormatter(textFlag)
	if form.IsText() {
		output.PrintLines(form.Writer(), render(rec)...)
		return nil
	}
	return form.JSON(rec)
}

// probeFormatter selects the emission mode for the probe commands: JSON
// is the contract, text is strictly opt-in even on a terminal.
func probeFormatter(text bool) *output.Formatter {
	return output.New(output.WithText(text))
}

// emitUnavailable writes the error shape to stdout and reports success.
func emitUnavailable(err error) error {
	kind, _ := errorKind(err)
	if werr := output.WriteError(os.Stdout, kind, err.Error()); werr != nil {
		return werr
	}
	return nil
}

// emitFatal writes the error shape to stderr and returns the error
// wrapped so Execute exits non-zero without printing it again.
func emitFatal(err error) error {
	kind, _ := errorKind(err)
	if werr := output.WriteError(os.Stderr, kind, err.Error()); werr != nil {
		return werr
	}
	return &emittedError{err: err}
}

// errorKind maps pipeline sentinels to the stable error kinds of the
// JSON error shape, and classifies whether the condition is fatal.
func errorKind(err error) (kind string, fatal bool) {
	switch {
	case errors.Is(err, iterm.ErrNotITerm):
		return output.KindNotITerm, false
	case errors.Is(err, iterm.ErrNoAutomation):
		return output.KindNoAutomation, false
	case errors.Is(err, iterm.ErrSessionNotFound):
		return output.KindNoSession, true
	case errors.Is(err, iterm.ErrWindowNotFound):
		return output.KindNoWindow, true
	case errors.Is(err, probe.ErrWorkerCreate):
		return output.KindWorkerFailed, true
	default:
		return output.KindWorkerFailed, true
	}
}

// resetLabel dereferences an optional reset string for display.
func resetLabel(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// debugLine renders the debug artifact path when one was written.
func debugLine(path string) []string {
	if path == "" {
		return nil
	}
	return []string{fmt.Sprintf("debug: %s", path)}
}
