// Package entity provides the player character and enemies.
package entity

import (
	"github.com/samdwyer/forestquest/internal/combat"
)

// Starting stats for a new adventurer.
const (
	StartingHP     = 100
	StartingAttack = 20
	StartingGold   = 50

	// ExpPerLevel scales the experience threshold: a level-L player levels up
	// once experience reaches L*ExpPerLevel.
	ExpPerLevel = 100

	LevelUpHP     = 20
	LevelUpAttack = 5
)

// Player is the adventurer controlled by the operator.
type Player struct {
	Name       string
	HP, MaxHP  int
	Attack     int
	Gold       int
	Inventory  []string // Item names in acquisition order; duplicates allowed
	Level      int
	Experience int // Total earned; never reset on level-up
}

// NewPlayer creates a level 1 player with the starting stats.
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		HP:        StartingHP,
		MaxHP:     StartingHP,
		Attack:    StartingAttack,
		Gold:      StartingGold,
		Inventory: []string{},
		Level:     1,
	}
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// GetAttack returns the attack midpoint.
func (p *Player) GetAttack() int { return p.Attack }

// GetLevel returns the current level.
func (p *Player) GetLevel() int { return p.Level }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.HP {
		actual = p.HP
	}
	p.HP -= actual
	return actual
}

// Heal restores HP and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 || p.HP >= p.MaxHP {
		return 0
	}
	actual := amount
	if p.HP+actual > p.MaxHP {
		actual = p.MaxHP - p.HP
	}
	p.HP += actual
	return actual
}

// =============================================================================
// Progression
// =============================================================================

// GainExperience adds exp and levels up at most once when the threshold for
// the current level is reached. Reports whether a level-up happened.
//
// A gain large enough to cross two thresholds still levels only once; the
// next gain re-checks against the new level.
func (p *Player) GainExperience(exp int) bool {
	if exp > 0 {
		p.Experience += exp
	}
	if p.Experience >= p.Level*ExpPerLevel {
		p.LevelUp()
		return true
	}
	return false
}

// LevelUp raises the level, grows max HP and attack, and fully heals.
func (p *Player) LevelUp() {
	p.Level++
	p.MaxHP += LevelUpHP
	p.HP = p.MaxHP
	p.Attack += LevelUpAttack
}

// RaiseAttack permanently increases attack.
func (p *Player) RaiseAttack(amount int) {
	if amount > 0 {
		p.Attack += amount
	}
}

// RaiseMaxHP increases max HP and current HP by the same amount.
// This is a direct grant, not a heal to the new cap.
func (p *Player) RaiseMaxHP(amount int) {
	if amount <= 0 {
		return
	}
	p.MaxHP += amount
	p.HP += amount
}

// =============================================================================
// Gold and inventory
// =============================================================================

// AddGold adds gold; non-positive amounts are ignored.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// SpendGold deducts price if the player can afford it.
func (p *Player) SpendGold(price int) bool {
	if price < 0 || p.Gold < price {
		return false
	}
	p.Gold -= price
	return true
}

// AddItem appends an item to the inventory.
func (p *Player) AddItem(name string) {
	p.Inventory = append(p.Inventory, name)
}

// HasItem reports whether the inventory holds at least one of name.
func (p *Player) HasItem(name string) bool {
	return p.CountItem(name) > 0
}

// CountItem returns how many of name the inventory holds.
func (p *Player) CountItem(name string) int {
	n := 0
	for _, item := range p.Inventory {
		if item == name {
			n++
		}
	}
	return n
}

// RemoveItem removes the first instance of name, reporting whether one was found.
func (p *Player) RemoveItem(name string) bool {
	for i, item := range p.Inventory {
		if item == name {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Ensure Player implements combat.Hero
var _ combat.Hero = (*Player)(nil)
