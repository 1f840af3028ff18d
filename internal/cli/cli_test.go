package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ai8future/rcodegen/internal/config"
	"github.com/ai8future/rcodegen/internal/iterm"
	"github.com/ai8future/rcodegen/internal/output"
	"github.com/ai8future/rcodegen/internal/probe"
	"github.com/ai8future/rcodegen/internal/status"
	"github.com/ai8future/rcodegen/internal/weather"
)

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantKind  string
		wantFatal bool
	}{
		{"not iterm", iterm.ErrNotITerm, output.KindNotITerm, false},
		{"no osascript", iterm.ErrNoAutomation, output.KindNoAutomation, false},
		{"session gone", iterm.ErrSessionNotFound, output.KindNoSession, true},
		{"window gone", iterm.ErrWindowNotFound, output.KindNoWindow, true},
		{"worker create", fmt.Errorf("%w: boom", probe.ErrWorkerCreate), output.KindWorkerFailed, true},
		{"unknown", errors.New("boom"), output.KindWorkerFailed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, fatal := errorKind(tt.err)
			if kind != tt.wantKind || fatal != tt.wantFatal {
				t.Errorf("errorKind() = (%q, %v), want (%q, %v)", kind, fatal, tt.wantKind, tt.wantFatal)
			}
		})
	}
}

func TestEmittedErrorUnwraps(t *testing.T) {
	inner := iterm.ErrSessionNotFound
	wrapped := &emittedError{err: inner}
	if !errors.Is(wrapped, iterm.ErrSessionNotFound) {
		t.Error("emittedError should unwrap to the original sentinel")
	}
}

func TestClaudeAgentProfile(t *testing.T) {
	cfg := config.Default().Claude
	agent := claudeAgent(cfg)

	if agent.StatusCmd != "/status" {
		t.Errorf("StatusCmd = %q", agent.StatusCmd)
	}
	if agent.QuitCmd != "/quit" {
		t.Errorf("QuitCmd = %q", agent.QuitCmd)
	}
	if len(agent.Nav) != 2 {
		t.Fatalf("Nav steps = %d, want 2", len(agent.Nav))
	}
	for i, step := range agent.Nav {
		if step.Text != "\t" {
			t.Errorf("Nav[%d].Text = %q, want tab", i, step.Text)
		}
		if step.Pause != 300*time.Millisecond {
			t.Errorf("Nav[%d].Pause = %v", i, step.Pause)
		}
	}
}

func TestCodexAgentProfile(t *testing.T) {
	agent := codexAgent(config.Default().Codex)

	if agent.StatusCmd != "/status" {
		t.Errorf("StatusCmd = %q", agent.StatusCmd)
	}
	if agent.QuitCmd != "" {
		t.Errorf("QuitCmd = %q, want none", agent.QuitCmd)
	}
	if len(agent.Nav) != 0 {
		t.Errorf("Nav steps = %d, want 0", len(agent.Nav))
	}
}

func TestRenderClaude(t *testing.T) {
	left := 51
	reset := "11am"
	lines := renderClaude(&status.ClaudeStatus{
		SessionLeft:   &left,
		SessionResets: &reset,
	})

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "51% left") {
		t.Errorf("missing session gauge: %q", joined)
	}
	if !strings.Contains(joined, "resets 11am") {
		t.Errorf("missing reset: %q", joined)
	}
	if !strings.Contains(joined, "n/a") {
		t.Errorf("absent fields should render n/a: %q", joined)
	}
}

func TestRenderCodexIncludesDebugPath(t *testing.T) {
	st := &status.CodexStatus{}
	st.SetDebug("/tmp/rstatus_codex_1.txt")

	joined := strings.Join(renderCodex(st), "\n")
	if !strings.Contains(joined, "/tmp/rstatus_codex_1.txt") {
		t.Errorf("debug path missing: %q", joined)
	}
}

func TestRenderWrongRecordType(t *testing.T) {
	if lines := renderClaude(&status.CodexStatus{}); lines != nil {
		t.Errorf("renderClaude on codex record = %v", lines)
	}
	if lines := renderCodex(&status.ClaudeStatus{}); lines != nil {
		t.Errorf("renderCodex on claude record = %v", lines)
	}
}

func TestProbeFormatterSelectsMode(t *testing.T) {
	if probeFormatter(false).IsText() {
		t.Error("probe output should default to JSON")
	}
	if !probeFormatter(true).IsText() {
		t.Error("--text should select the human view")
	}
}

func TestWeatherFormatterSelectsMode(t *testing.T) {
	tests := []struct {
		name     string
		jsonFlag bool
		terminal bool
		wantText bool
	}{
		{"terminal default", false, true, true},
		{"piped", false, false, false},
		{"json flag on terminal", true, true, false},
		{"json flag piped", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weatherFormatter(tt.jsonFlag, tt.terminal).IsText(); got != tt.wantText {
				t.Errorf("IsText() = %v, want %v", got, tt.wantText)
			}
		})
	}
}

func TestRenderWeather(t *testing.T) {
	lines := renderWeather(&weather.Info{
		City:         "Berlin",
		Country:      "DE",
		TemperatureC: 21.4,
		FeelsLikeC:   20.9,
		Humidity:     48,
		Description:  "scattered clouds",
		WindSpeed:    3.6,
	})

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Berlin, DE", "21.4°C", "feels like 20.9°C", "48%", "3.6 m/s", "Scattered clouds"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in %q", want, joined)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"scattered clouds", "Scattered clouds"},
		{"überwiegend bewölkt", "Überwiegend bewölkt"},
		{"été orageux", "Été orageux"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
