package combat

import "github.com/gdamore/tcell/v2"

type colored interface {
	Color() tcell.Color
}

type glyphed interface {
	Glyph() string
}

// enemyColor returns the display color of foe, or the terminal default.
func enemyColor(foe Combatant) tcell.Color {
	if c, ok := foe.(colored); ok {
		return c.Color()
	}
	return tcell.ColorDefault
}

// enemyGlyph returns the emoji foe appears with, if it has one.
func enemyGlyph(foe Combatant) string {
	if g, ok := foe.(glyphed); ok {
		return g.Glyph() + " "
	}
	return ""
}
