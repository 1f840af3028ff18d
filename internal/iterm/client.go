// Package iterm drives iTerm2 through its AppleScript automation
// surface by shelling out to osascript. It provides the caller-session
// resolution and the window/tab/session operations the probe pipeline
// consumes through the probe.Host interface.
package iterm

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// SessionEnvVar carries the identifier of the session that launched the
// tool, in the form "<pane-id>:<session-uuid>" (e.g. "w0t0p0:ABC-123").
const SessionEnvVar = "ITERM_SESSION_ID"

// Client executes AppleScript against iTerm2.
type Client struct{}

// NewClient creates a new iTerm2 automation client.
func NewClient() *Client {
	return &Client{}
}

// Available reports whether the probe can run at all: the process must
// have been launched from an iTerm2 session and osascript must be on
// PATH. Both conditions failing are environment facts, not probe
// failures; callers translate them into the "feature unavailable"
// output shape.
func (c *Client) Available() error {
	if os.Getenv(SessionEnvVar) == "" {
		return ErrNotITerm
	}
	if _, err := exec.LookPath("osascript"); err != nil {
		return ErrNoAutomation
	}
	return nil
}

// CallerSessionID returns the bare session UUID of the invoking
// session, with any pane-id prefix stripped.
func CallerSessionID() (string, error) {
	raw := os.Getenv(SessionEnvVar)
	if raw == "" {
		return "", ErrNotITerm
	}
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		raw = raw[i+1:]
	}
	if raw == "" {
		return "", ErrNotITerm
	}
	return raw, nil
}

// run executes one AppleScript and returns its trimmed stdout.
func (c *Client) run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}
