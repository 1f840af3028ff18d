// Package cli implements the rstatus command surface: one subcommand
// per probeable agent plus the weather lookup, all emitting a single
// JSON object per invocation.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ai8future/rcodegen/internal/config"
)

var (
	cfgFile   string
	debugFlag bool
	textFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "rstatus",
	Short: "Extract usage quotas from AI coding agents' status screens",
	Long: `rstatus drives a throwaway iTerm2 tab through an agent's /status UI,
captures the rendered screen, and prints the usage quotas as one JSON
object on stdout.

  rstatus claude           # Claude Code session + weekly quotas
  rstatus codex            # Codex 5h/weekly/context quotas
  rstatus weather Berlin   # current conditions (OpenWeatherMap)

Run it from inside iTerm2; the worker tab opens next to yours and is
closed when the probe finishes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// emittedError wraps an error whose JSON shape has already been written,
// so Execute does not print it a second time.
type emittedError struct{ err error }

func (e *emittedError) Error() string { return e.err.Error() }
func (e *emittedError) Unwrap() error { return e.err }

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		var emitted *emittedError
		if !errors.As(err, &emitted) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

// loadConfig layers the config file over defaults and folds in the
// debug toggles.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	if debugFlag || config.DebugFromEnv() {
		cfg.Debug = true
	}
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/rcodegen/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write raw/sanitized screen captures to a temp file and report its path")
	rootCmd.PersistentFlags().BoolVar(&textFlag, "text", false, "human-readable gauges instead of JSON")

	rootCmd.AddCommand(claudeCmd)
	rootCmd.AddCommand(codexCmd)
	rootCmd.AddCommand(weatherCmd)
}
