package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Gauge colors by remaining headroom.
var (
	gaugeOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	gaugeWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange
	gaugeCrit = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

const (
	gaugeWidth = 20
	labelWidth = 16
)

// GaugeLine renders one labeled quota gauge, e.g.
//
//	Session         [██████████░░░░░░░░░░] 51% left   resets 11am
//
// A nil percentage renders as an empty bar with "n/a". reset may be
// empty.
func GaugeLine(label string, left *int, reset string) string {
	padded := runewidth.FillRight(label, labelWidth)

	if left == nil {
		line := padded + "[" + dimStyle.Render(repeat('░', gaugeWidth)) + "] n/a"
		if reset != "" {
			line += "   " + dimStyle.Render("resets "+reset)
		}
		return line
	}

	filled := *left * gaugeWidth / 100
	if filled > gaugeWidth {
		filled = gaugeWidth
	}

	style := gaugeCrit
	switch {
	case *left >= 50:
		style = gaugeOK
	case *left >= 20:
		style = gaugeWarn
	}

	bar := style.Render(repeat('█', filled)) + dimStyle.Render(repeat('░', gaugeWidth-filled))
	line := fmt.Sprintf("%s[%s] %d%% left", padded, bar, *left)
	if reset != "" {
		line += "   " + dimStyle.Render("resets "+reset)
	}
	return line
}

// Heading renders a bold section heading.
func Heading(s string) string { return headStyle.Render(s) }

// PrintLines writes lines to w, one per row.
func PrintLines(w io.Writer, lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func repeat(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
