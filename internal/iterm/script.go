package iterm

import (
	"fmt"
	"strings"
)

// appleString renders s as an AppleScript string expression. Printable
// runs become quoted literals; control bytes (the probe injects Ctrl+U,
// carriage returns and Tab keys) become `character id N` terms, since
// AppleScript literals cannot contain them.
func appleString(s string) string {
	if s == "" {
		return `""`
	}

	var parts []string
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, `"`+lit.String()+`"`)
			lit.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '"':
			lit.WriteString(`\"`)
		case r == '\\':
			lit.WriteString(`\\`)
		case r < 0x20 || r == 0x7f:
			flush()
			parts = append(parts, fmt.Sprintf("(character id %d)", r))
		default:
			lit.WriteRune(r)
		}
	}
	flush()

	return strings.Join(parts, " & ")
}

// withSessionScript wraps body in a scan for the session with the given
// ID. iTerm2's AppleScript dictionary has no direct session-by-id
// lookup, so every session of every tab of every window is visited.
// body must end in a `return`; the script errors when no session
// matches.
func withSessionScript(sessionID, body string) string {
	return fmt.Sprintf(`tell application "iTerm2"
	repeat with w in windows
		repeat with t in tabs of w
			repeat with s in sessions of t
				if id of s is %s then
					%s
				end if
			end repeat
		end repeat
	end repeat
	error "no session with id %s"
end tell`, appleString(sessionID), body, sessionID)
}

// locateScript resolves the window ID and 1-based tab index containing
// the session, as "windowID|tabIndex", or "" when absent.
func locateScript(sessionID string) string {
	return fmt.Sprintf(`tell application "iTerm2"
	repeat with w in windows
		set ti to 0
		repeat with t in tabs of w
			set ti to ti + 1
			repeat with s in sessions of t
				if id of s is %s then
					return (id of w as text) & "|" & ti
				end if
			end repeat
		end repeat
	end repeat
	return ""
end tell`, appleString(sessionID))
}

// sessionExistsScript returns "yes" when any open session has the ID.
func sessionExistsScript(sessionID string) string {
	return fmt.Sprintf(`tell application "iTerm2"
	repeat with w in windows
		repeat with t in tabs of w
			repeat with s in sessions of t
				if id of s is %s then
					return "yes"
				end if
			end repeat
		end repeat
	end repeat
	return "no"
end tell`, appleString(sessionID))
}

// createTabScript opens a tab running command in the window and returns
// "newSessionID|tabCount" (the new tab is appended last).
func createTabScript(windowID, command string) string {
	return fmt.Sprintf(`tell application "iTerm2"
	tell window id %s
		set t to (create tab with default profile command %s)
		return (id of current session of t) & "|" & (count of tabs)
	end tell
end tell`, windowID, appleString(command))
}

// selectTabScript focuses the 1-based tab index of the window.
func selectTabScript(windowID string, tab int) string {
	return fmt.Sprintf(`tell application "iTerm2"
	tell window id %s
		select tab %d
	end tell
end tell`, windowID, tab)
}

// closeTabScript closes the 1-based tab index of the window.
func closeTabScript(windowID string, tab int) string {
	return fmt.Sprintf(`tell application "iTerm2"
	tell window id %s
		close tab %d
	end tell
end tell`, windowID, tab)
}
