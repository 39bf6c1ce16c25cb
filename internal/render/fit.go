package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// BuildRows lays out a pane of exactly height rows: the title first, then the
// most recent lines that fit, then blank rows.
func BuildRows(title string, lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	rows := make([]string, height)
	rows[0] = title
	if keep := height - 1; len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	copy(rows[1:], lines)
	return rows
}

// FitRow truncates or right-pads text to exactly width terminal cells.
func FitRow(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = ansi.Truncate(text, width, "")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
