package cli

import (
	"github.com/spf13/cobra"

	"github.com/ai8future/rcodegen/internal/output"
	"github.com/ai8future/rcodegen/internal/probe"
	"github.com/ai8future/rcodegen/internal/status"
)

var codexCmd = &cobra.Command{
	Use:   "codex",
	Short: "Probe Codex's /status limits",
	Long: `Opens a worker tab running Codex, submits /status, and prints the
rate limits as JSON:

  {"5h_left":62,"weekly_left":81,"context_left":94,
   "5h_resets":"2026-08-23 14:00","weekly_resets":"2026-08-28 00:00"}

Reset clock times are normalized to the next future occurrence. Absent
values are null. The probe retries once, with longer waits, when the 5h
limit line did not parse.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runProbe(codexAgent(cfg.Codex), cfg.Debug, renderCodex)
	},
}

func renderCodex(rec probe.Record) []string {
	st, ok := rec.(*status.CodexStatus)
	if !ok {
		return nil
	}
	lines := []string{
		output.Heading("Codex usage"),
		output.GaugeLine("5h limit", st.FiveHourLeft, resetLabel(st.FiveHourResets)),
		output.GaugeLine("Weekly limit", st.WeeklyLeft, resetLabel(st.WeeklyResets)),
		output.GaugeLine("Context", st.ContextLeft, ""),
	}
	return append(lines, debugLine(st.DebugFile)...)
}
