// Package config loads the rstatus configuration. Every delay the probe
// pipeline sleeps on is a named value here, so timing can be tuned per
// environment without touching the capture or parsing logic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ai8future/rcodegen/internal/probe"
)

// DebugEnvVar enables debug artifacts when set to 1/true/yes, in
// addition to the --debug flag.
const DebugEnvVar = "RCODEGEN_DEBUG"

// Config is the top-level rstatus configuration.
type Config struct {
	Debug   bool          `toml:"debug"`
	Claude  AgentConfig   `toml:"claude"`
	Codex   AgentConfig   `toml:"codex"`
	Weather WeatherConfig `toml:"weather"`
}

// AgentConfig holds the launcher command and the timing profile for one
// agent. All delays are milliseconds; they are tuned constants, not
// derived from any observable signal, because the driven UIs expose no
// completion events.
type AgentConfig struct {
	// Command launches the agent; typically a wrapper script that sets
	// up PATH and execs the binary.
	Command string `toml:"command"`
	// WarmupMS is the wait after tab creation before any input.
	WarmupMS int `toml:"warmup_ms"`
	// KeyPauseMS follows the clear-line control and the command text.
	KeyPauseMS int `toml:"key_pause_ms"`
	// CommandSettleMS follows the carriage return submitting /status.
	CommandSettleMS int `toml:"command_settle_ms"`
	// NavPauseMS follows each UI navigation keystroke.
	NavPauseMS int `toml:"nav_pause_ms"`
	// RenderSettleMS is the final wait before the screen capture.
	RenderSettleMS int `toml:"render_settle_ms"`
	// QuitPauseMS follows the quit command during teardown.
	QuitPauseMS int `toml:"quit_pause_ms"`
	// RetryDelayMS is the extra wait before the single retry.
	RetryDelayMS int `toml:"retry_delay_ms"`
	// RetrySettleFactor stretches the settle delays on the retry.
	RetrySettleFactor int `toml:"retry_settle_factor"`
}

// Timing converts the millisecond fields to the probe's timing profile.
func (a AgentConfig) Timing() probe.Timing {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return probe.Timing{
		Warmup:            ms(a.WarmupMS),
		KeyPause:          ms(a.KeyPauseMS),
		CommandSettle:     ms(a.CommandSettleMS),
		RenderSettle:      ms(a.RenderSettleMS),
		QuitPause:         ms(a.QuitPauseMS),
		RetryDelay:        ms(a.RetryDelayMS),
		RetrySettleFactor: a.RetrySettleFactor,
	}
}

// NavPause returns the per-navigation-keystroke pause.
func (a AgentConfig) NavPause() time.Duration {
	return time.Duration(a.NavPauseMS) * time.Millisecond
}

// WeatherConfig holds the OpenWeatherMap client settings.
type WeatherConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the request timeout.
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// Default returns the built-in configuration. The timing numbers are
// empirical: Claude Code needs ~4s to start and renders the Usage tab
// within ~1s of the second Tab keystroke; Codex starts faster but takes
// ~2s to load rate-limit data after /status.
func Default() Config {
	return Config{
		Claude: AgentConfig{
			Command:           "claude",
			WarmupMS:          4000,
			KeyPauseMS:        100,
			CommandSettleMS:   1500,
			NavPauseMS:        300,
			RenderSettleMS:    1000,
			QuitPauseMS:       500,
			RetryDelayMS:      3000,
			RetrySettleFactor: 2,
		},
		Codex: AgentConfig{
			Command:           "codex",
			WarmupMS:          3000,
			KeyPauseMS:        100,
			CommandSettleMS:   2000,
			NavPauseMS:        300,
			RenderSettleMS:    0,
			QuitPauseMS:       0,
			RetryDelayMS:      5000,
			RetrySettleFactor: 2,
		},
		Weather: WeatherConfig{
			BaseURL:        "https://api.openweathermap.org",
			TimeoutSeconds: 10,
		},
	}
}

// Path returns the default config file location
// (~/.config/rcodegen/config.toml).
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rcodegen", "config.toml")
}

// Load reads the config at path, or the default location when path is
// empty, layered over the built-in defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = Path()
	}
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// DebugFromEnv reports whether the debug env toggle is on.
func DebugFromEnv() bool {
	switch strings.ToLower(os.Getenv(DebugEnvVar)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
