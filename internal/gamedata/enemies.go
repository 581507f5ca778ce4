package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef is an immutable enemy template loaded from JSON.
// Live enemies are copied from it for every encounter.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "slime")
	Name        string `json:"name"`        // Display name (e.g., "Slime")
	Glyph       string `json:"glyph"`       // Emoji shown when the enemy appears
	Color       string `json:"color"`       // Hex color code for the name
	HP          int    `json:"hp"`          // Starting and maximum hit points
	Attack      int    `json:"attack"`      // Attack midpoint
	GoldReward  int    `json:"goldReward"`  // Gold granted on defeat
	ExpReward   int    `json:"expReward"`   // Experience granted on defeat
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
