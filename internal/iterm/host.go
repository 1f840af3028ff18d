package iterm

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Caller identifies the session that launched the tool and where it
// lives, so focus can be returned to it after the worker tab opens.
type Caller struct {
	SessionID string
	WindowID  string
	TabIndex  int // 1-based
}

// LocateSession resolves a bare session UUID to its window and tab.
// ErrSessionNotFound means no open session has the ID at all;
// ErrWindowNotFound means the session exists but no window claims it
// (seen with detached or closing windows).
func (c *Client) LocateSession(ctx context.Context, sessionID string) (*Caller, error) {
	exists, err := c.run(ctx, sessionExistsScript(sessionID))
	if err != nil {
		return nil, fmt.Errorf("looking up caller session: %w", err)
	}
	if exists != "yes" {
		return nil, ErrSessionNotFound
	}

	out, err := c.run(ctx, locateScript(sessionID))
	if err != nil {
		return nil, fmt.Errorf("locating caller window: %w", err)
	}
	windowID, tab, ok := splitPair(out)
	if !ok {
		return nil, ErrWindowNotFound
	}

	return &Caller{SessionID: sessionID, WindowID: windowID, TabIndex: tab}, nil
}

// CreateTab opens a new tab in the window running command and returns
// the new tab's session ID and 1-based tab index.
func (c *Client) CreateTab(ctx context.Context, windowID, command string) (string, int, error) {
	out, err := c.run(ctx, createTabScript(windowID, command))
	if err != nil {
		return "", 0, err
	}
	sessionID, tab, ok := splitPair(out)
	if !ok {
		return "", 0, fmt.Errorf("unexpected create tab reply %q", out)
	}
	return sessionID, tab, nil
}

// SelectTab focuses a tab of the window.
func (c *Client) SelectTab(ctx context.Context, windowID string, tab int) error {
	_, err := c.run(ctx, selectTabScript(windowID, tab))
	return err
}

// SendText injects literal text, control bytes included, into the
// session. No newline is appended; callers send explicit carriage
// returns when they mean to submit.
func (c *Client) SendText(ctx context.Context, sessionID, text string) error {
	body := fmt.Sprintf(`tell s to write text %s newline NO
					return "ok"`, appleString(text))
	_, err := c.run(ctx, withSessionScript(sessionID, body))
	return err
}

// ScreenContents reads the session's full visible screen as lines.
func (c *Client) ScreenContents(ctx context.Context, sessionID string) ([]string, error) {
	out, err := c.run(ctx, withSessionScript(sessionID, "return contents of s"))
	if err != nil {
		return nil, err
	}
	return strings.Split(out, "\n"), nil
}

// CloseTab closes a tab of the window.
func (c *Client) CloseTab(ctx context.Context, windowID string, tab int) error {
	_, err := c.run(ctx, closeTabScript(windowID, tab))
	return err
}

// splitPair parses the "left|number" replies the locate and create
// scripts produce.
func splitPair(out string) (string, int, bool) {
	left, right, found := strings.Cut(strings.TrimSpace(out), "|")
	if !found || left == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil || n < 1 {
		return "", 0, false
	}
	return left, n, true
}
