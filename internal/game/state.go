// Package game provides the session controller and main game loop.
package game

// Ending is how a session finished.
type Ending int

const (
	// EndingNone means the session did not finish (interrupted or failed).
	EndingNone Ending = iota
	// EndingQuit is an explicit Quit from the main menu.
	EndingQuit
	// EndingRetired is declining to continue after an exploration.
	EndingRetired
	// EndingDefeated is losing a battle.
	EndingDefeated
)

// String returns a human-readable ending name.
func (e Ending) String() string {
	switch e {
	case EndingNone:
		return "none"
	case EndingQuit:
		return "quit"
	case EndingRetired:
		return "retired"
	case EndingDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// menuAction is a top-level menu entry.
type menuAction int

const (
	actionExplore menuAction = iota
	actionShop
	actionStatus
	actionQuit
)

var menuLabels = []string{"Explore the Forest", "Go to the Shop", "Check Status", "Quit"}
