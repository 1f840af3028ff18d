package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestWriteJSONCompact(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSON(&buf, map[string]interface{}{"session_left": 51}, false)
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	got := buf.String()
	if got != "{\"session_left\":51}\n" {
		t.Errorf("WriteJSON() = %q", got)
	}
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]int{"a": 1}, true); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"a\": 1\n") {
		t.Errorf("WriteJSON() pretty = %q", buf.String())
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteError(&buf, KindNotITerm, "Not running in iTerm2."); err != nil {
		t.Fatalf("WriteError() error = %v", err)
	}

	var got CLIError
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	if got.Kind != "not_iterm2" {
		t.Errorf("Kind = %q, want not_iterm2", got.Kind)
	}
	if got.Message == "" {
		t.Error("Message empty")
	}
}

func TestFormatterDefaultsToJSON(t *testing.T) {
	f := New()
	if f.IsText() {
		t.Error("default format should be JSON")
	}
	if New(WithText(true)).IsText() != true {
		t.Error("WithText(true) should select text")
	}
	if New(WithText(false)).IsText() {
		t.Error("WithText(false) should stay JSON")
	}
}

func TestFormatterJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	f := New(WithWriter(&buf))
	if err := f.JSON(map[string]interface{}{"weekly_left": nil}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\"weekly_left\":null") {
		t.Errorf("explicit null missing: %q", buf.String())
	}

	buf.Reset()
	pretty := New(WithWriter(&buf), WithPretty(true))
	if err := pretty.JSON(map[string]int{"a": 1}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"a\": 1\n") {
		t.Errorf("WithPretty should indent: %q", buf.String())
	}
}

func TestIsTerminalOnNonTTY(t *testing.T) {
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("IsTerminal should be false for a non-tty file")
	}
}

func TestGaugeLine(t *testing.T) {
	left := 51
	line := GaugeLine("Session", &left, "11am")
	if !strings.Contains(line, "51% left") {
		t.Errorf("gauge missing percentage: %q", line)
	}
	if !strings.Contains(line, "resets 11am") {
		t.Errorf("gauge missing reset: %q", line)
	}

	absent := GaugeLine("Weekly", nil, "")
	if !strings.Contains(absent, "n/a") {
		t.Errorf("nil gauge should render n/a: %q", absent)
	}

	zero := 0
	if !strings.Contains(GaugeLine("Session", &zero, ""), "0% left") {
		t.Error("zero percent should render")
	}
	full := 100
	if !strings.Contains(GaugeLine("Session", &full, ""), "100% left") {
		t.Error("full percent should render")
	}
}
