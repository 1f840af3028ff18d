package iterm

import (
	"strings"
	"testing"

	"github.com/ai8future/rcodegen/internal/probe"
)

// The client must satisfy the probe's host surface.
var _ probe.Host = (*Client)(nil)

func TestCallerSessionID(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		want    string
		wantErr bool
	}{
		{
			name: "pane prefix stripped",
			env:  "w0t0p0:8E915937-0D32-4C58-9266-A1BFA3F52E2C",
			want: "8E915937-0D32-4C58-9266-A1BFA3F52E2C",
		},
		{
			name: "bare uuid passes through",
			env:  "8E915937-0D32-4C58-9266-A1BFA3F52E2C",
			want: "8E915937-0D32-4C58-9266-A1BFA3F52E2C",
		},
		{
			name: "only first colon splits",
			env:  "w0t0p0:uuid:with:colons",
			want: "uuid:with:colons",
		},
		{
			name:    "unset is an error",
			env:     "",
			wantErr: true,
		},
		{
			name:    "prefix with empty id is an error",
			env:     "w0t0p0:",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(SessionEnvVar, tt.env)
			got, err := CallerSessionID()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CallerSessionID() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CallerSessionID() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CallerSessionID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAvailableOutsideITerm(t *testing.T) {
	t.Setenv(SessionEnvVar, "")
	if err := NewClient().Available(); err != ErrNotITerm {
		t.Errorf("Available() = %v, want ErrNotITerm", err)
	}
}

func TestAppleString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text quoted",
			input: "/status",
			want:  `"/status"`,
		},
		{
			name:  "empty string",
			input: "",
			want:  `""`,
		},
		{
			name:  "quotes escaped",
			input: `say "hi"`,
			want:  `"say \"hi\""`,
		},
		{
			name:  "backslash escaped",
			input: `a\b`,
			want:  `"a\\b"`,
		},
		{
			name:  "control byte becomes character id",
			input: "\x15",
			want:  "(character id 21)",
		},
		{
			name:  "carriage return",
			input: "\r",
			want:  "(character id 13)",
		},
		{
			name:  "mixed text and control bytes",
			input: "/quit\r",
			want:  `"/quit" & (character id 13)`,
		},
		{
			name:  "tab key",
			input: "\t",
			want:  "(character id 9)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appleString(tt.input)
			if got != tt.want {
				t.Errorf("appleString(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestScriptBuilders(t *testing.T) {
	create := createTabScript("12345", "/opt/rcodegen/claude_wrapper.sh")
	for _, want := range []string{
		`tell window id 12345`,
		`create tab with default profile command "/opt/rcodegen/claude_wrapper.sh"`,
		`count of tabs`,
	} {
		if !strings.Contains(create, want) {
			t.Errorf("createTabScript missing %q:\n%s", want, create)
		}
	}

	sel := selectTabScript("12345", 2)
	if !strings.Contains(sel, "select tab 2") {
		t.Errorf("selectTabScript missing select: %s", sel)
	}

	closeScript := closeTabScript("12345", 3)
	if !strings.Contains(closeScript, "close tab 3") {
		t.Errorf("closeTabScript missing close: %s", closeScript)
	}

	locate := locateScript("ABC-123")
	if !strings.Contains(locate, `if id of s is "ABC-123"`) {
		t.Errorf("locateScript missing session match: %s", locate)
	}

	// Session lookup must not allow quote injection from the ID.
	inject := sessionExistsScript(`x" & (do shell script "true") & "`)
	if strings.Contains(inject, `"x" &`) {
		t.Errorf("session ID not escaped: %s", inject)
	}
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		in     string
		left   string
		n      int
		wantOK bool
	}{
		{"4321|2", "4321", 2, true},
		{"SESSION-UUID|14", "SESSION-UUID", 14, true},
		{" 4321|2 ", "4321", 2, true},
		{"", "", 0, false},
		{"noseparator", "", 0, false},
		{"left|", "", 0, false},
		{"left|zero", "", 0, false},
		{"left|0", "", 0, false},
		{"|3", "", 0, false},
	}

	for _, tt := range tests {
		left, n, ok := splitPair(tt.in)
		if ok != tt.wantOK || left != tt.left || n != tt.n {
			t.Errorf("splitPair(%q) = %q, %d, %v; want %q, %d, %v",
				tt.in, left, n, ok, tt.left, tt.n, tt.wantOK)
		}
	}
}
