// Package world provides the forest and its random exploration events.
package world

// Event is one possible outcome of exploring the forest.
type Event int

const (
	EventTreasure Event = iota
	EventEnemy
	EventNothing
	EventShop
	EventHealingSpring
)

// Events lists every exploration event; each is equally likely.
var Events = []Event{EventTreasure, EventEnemy, EventNothing, EventShop, EventHealingSpring}

// String returns the event identifier.
func (e Event) String() string {
	switch e {
	case EventTreasure:
		return "treasure"
	case EventEnemy:
		return "enemy"
	case EventNothing:
		return "nothing"
	case EventShop:
		return "shop"
	case EventHealingSpring:
		return "healing_spring"
	default:
		return "unknown"
	}
}
