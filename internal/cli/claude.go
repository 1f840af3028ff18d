package cli

import (
	"github.com/spf13/cobra"

	"github.com/ai8future/rcodegen/internal/output"
	"github.com/ai8future/rcodegen/internal/probe"
	"github.com/ai8future/rcodegen/internal/status"
)

var claudeCmd = &cobra.Command{
	Use:   "claude",
	Short: "Probe Claude Code's /status Usage tab",
	Long: `Opens a worker tab running Claude Code, drives /status to the Usage
tab, and prints the session and weekly quotas as JSON:

  {"session_left":51,"weekly_all_left":73,"weekly_sonnet_left":96,
   "session_resets":"11am","weekly_resets":"Jan 15, 9am"}

Absent values are null. The probe retries once, with longer waits, when
no quota line parsed at all.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runProbe(claudeAgent(cfg.Claude), cfg.Debug, renderClaude)
	},
}

func renderClaude(rec probe.Record) []string {
	st, ok := rec.(*status.ClaudeStatus)
	if !ok {
		return nil
	}
	lines := []string{
		output.Heading("Claude Code usage"),
		output.GaugeLine("Session", st.SessionLeft, resetLabel(st.SessionResets)),
		output.GaugeLine("Week (all)", st.WeeklyAllLeft, resetLabel(st.WeeklyResets)),
		output.GaugeLine("Week (Sonnet)", st.WeeklySonnetLeft, ""),
	}
	return append(lines, debugLine(st.DebugFile)...)
}
