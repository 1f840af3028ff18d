// Package probe drives an ephemeral terminal tab through an agent's
// /status UI and extracts a normalized usage record from its screen.
//
// A probe is one create-drive-capture-teardown cycle. The hosted UIs
// expose no "finished rendering" signal, so every synchronization point
// is a fixed, configurable delay. The worker tab is torn down on every
// exit path; teardown failures are reported as warnings, never as probe
// failures, because the captured data matters more than tidy cleanup.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ai8future/rcodegen/internal/status"
)

// ErrWorkerCreate marks a failure to provision the worker tab. It is
// fatal: without a worker there is nothing to capture.
var ErrWorkerCreate = errors.New("failed to create worker tab")

// Host is the terminal-automation surface a probe drives. It is the
// subset of the host application's windowing API the pipeline needs;
// internal/iterm provides the real implementation and tests provide
// fakes.
type Host interface {
	// CreateTab opens a new tab in the given window running command and
	// returns the new tab's session ID and its tab index.
	CreateTab(ctx context.Context, windowID, command string) (sessionID string, tab int, err error)
	// SelectTab focuses a tab.
	SelectTab(ctx context.Context, windowID string, tab int) error
	// SendText injects literal text (including control bytes) into a session.
	SendText(ctx context.Context, sessionID, text string) error
	// ScreenContents reads the session's full visible screen as lines.
	ScreenContents(ctx context.Context, sessionID string) ([]string, error)
	// CloseTab closes a tab.
	CloseTab(ctx context.Context, windowID string, tab int) error
}

// Target names where the worker tab goes and where focus returns to.
type Target struct {
	WindowID string
	// CallerTab is the tab index of the invoking session; focus is
	// restored to it right after the worker tab is created. Zero means
	// unknown, in which case no reselect happens.
	CallerTab int
}

// Prober runs status probes for one agent against a Host.
type Prober struct {
	Host  Host
	Agent Agent
	// Debug writes raw and sanitized screen text for each attempt to a
	// temp file and records the path on the result.
	Debug bool
	// Warnings receives non-fatal problems (teardown failures, focus
	// restore failures). Defaults to os.Stderr.
	Warnings io.Writer

	// sleep and now are injection points for tests.
	sleep func(time.Duration)
	now   func() time.Time
}

// New returns a Prober for the given host and agent.
func New(host Host, agent Agent) *Prober {
	return &Prober{Host: host, Agent: agent}
}

// Run executes one probe: create the worker tab, restore the caller's
// focus, drive the status UI, capture and parse the screen, and retry
// exactly once (with stretched settle delays) if the first attempt
// yielded no primary data. The worker tab is torn down before Run
// returns, whatever happens after creation succeeded.
func (p *Prober) Run(ctx context.Context, target Target) (Record, error) {
	sessionID, tab, err := p.Host.CreateTab(ctx, target.WindowID, p.Agent.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkerCreate, err)
	}
	defer p.teardown(ctx, target.WindowID, sessionID, tab)

	// Give the user their focus back before doing anything slow. Losing
	// this race is cosmetic, so a failure is only a warning.
	if target.CallerTab > 0 {
		if err := p.Host.SelectTab(ctx, target.WindowID, target.CallerTab); err != nil {
			p.warnf("could not restore focus to caller tab: %v", err)
		}
	}

	p.pause(p.Agent.Timing.Warmup)

	rec := p.attempt(ctx, sessionID, 1)
	if rec.Empty() {
		p.pause(p.Agent.Timing.RetryDelay)
		// Second attempt wins even if it is still incomplete. There is
		// no third: an unresponsive UI will not become responsive with
		// more waiting, and each attempt costs seconds of wall clock.
		rec = p.attempt(ctx, sessionID, 2)
	}
	return rec, nil
}

// attempt drives one send-command-and-capture cycle. Capture and send
// problems degrade to an empty record (and a warning) rather than an
// error, so the retry policy treats them like a parse miss.
func (p *Prober) attempt(ctx context.Context, sessionID string, n int) Record {
	for _, step := range p.Agent.script(n) {
		if err := p.Host.SendText(ctx, sessionID, step.Text); err != nil {
			p.warnf("attempt %d: send failed: %v", n, err)
			return p.Agent.Parse("", p.clock())
		}
		p.pause(step.Pause)
	}
	p.pause(p.Agent.Timing.RenderSettle * p.Agent.Timing.settleFactor(n))

	lines, err := p.Host.ScreenContents(ctx, sessionID)
	if err != nil {
		p.warnf("attempt %d: screen capture failed: %v", n, err)
		return p.Agent.Parse("", p.clock())
	}

	raw := strings.Join(lines, "\n")
	clean := status.Sanitize(lines)

	rec := p.Agent.Parse(clean, p.clock())
	if p.Debug {
		if path, err := writeDebugArtifact(p.Agent.Name, n, raw, clean); err != nil {
			p.warnf("attempt %d: debug artifact: %v", n, err)
		} else {
			rec.SetDebug(path)
		}
	}
	return rec
}

// teardown quits the hosted agent (when it has a quit command) and
// closes the worker tab. Failures here are warnings only: the probe's
// data has already been captured.
func (p *Prober) teardown(ctx context.Context, windowID, sessionID string, tab int) {
	if p.Agent.QuitCmd != "" {
		if err := p.Host.SendText(ctx, sessionID, p.Agent.QuitCmd+carriageReturn); err != nil {
			p.warnf("teardown: quit command failed: %v", err)
		} else {
			p.pause(p.Agent.Timing.QuitPause)
		}
	}
	if err := p.Host.CloseTab(ctx, windowID, tab); err != nil {
		p.warnf("teardown: failed to close worker tab: %v", err)
	}
}

func (p *Prober) pause(d time.Duration) {
	if d <= 0 {
		return
	}
	if p.sleep != nil {
		p.sleep(d)
		return
	}
	time.Sleep(d)
}

func (p *Prober) clock() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}

func (p *Prober) warnf(format string, args ...interface{}) {
	w := p.Warnings
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "warning: %s: "+format+"\n", append([]interface{}{p.Agent.Name}, args...)...)
}
