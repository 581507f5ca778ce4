package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Message colors.
var (
	ColorDamage  = tcell.ColorOrangeRed
	ColorHurt    = tcell.ColorRed
	ColorHeal    = tcell.ColorLimeGreen
	ColorGold    = tcell.ColorGold
	ColorLevelUp = tcell.ColorViolet
	ColorWarning = tcell.ColorYellow
)

// Colorize wraps text in a 24-bit ANSI foreground escape for color.
// Invalid colors (such as tcell.ColorDefault) leave the text unchanged.
func Colorize(text string, color tcell.Color) string {
	if !color.Valid() {
		return text
	}
	r, g, b := color.RGB()
	if r < 0 {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}
