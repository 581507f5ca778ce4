package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PanelWidth is the inner width of framed panels in terminal columns.
const PanelWidth = 48

// Panel frames rows in a fixed-width box. Widths are measured in terminal
// columns so emoji and wide characters line up. Rows wider than the panel
// are truncated.
func Panel(rows []string) string {
	var b strings.Builder
	border := "+" + strings.Repeat("=", PanelWidth+2) + "+\n"

	b.WriteString(border)
	for _, row := range rows {
		row = runewidth.Truncate(row, PanelWidth, "…")
		b.WriteString("| ")
		b.WriteString(runewidth.FillRight(row, PanelWidth))
		b.WriteString(" |\n")
	}
	b.WriteString(border)
	return b.String()
}

// Banner centers text between repeated decoration runs.
func Banner(text, decoration string, width int) string {
	line := strings.Repeat(decoration, width/max(runewidth.StringWidth(decoration), 1))
	pad := (runewidth.StringWidth(line) - runewidth.StringWidth(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return line + "\n" + strings.Repeat(" ", pad) + text + "\n" + line
}
