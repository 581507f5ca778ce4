package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/forestquest/internal/combat"
	"github.com/samdwyer/forestquest/internal/gamedata"
)

// Enemy is a live opponent copied from a template.
type Enemy struct {
	Def        *gamedata.EnemyDef // Template this enemy was copied from (read-only)
	Name       string
	HP, MaxHP  int
	Attack     int
	GoldReward int
	ExpReward  int
}

// NewEnemyFromDef creates an independent live enemy from a template.
// Damage to the returned enemy never touches the template.
func NewEnemyFromDef(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Def:        def,
		Name:       def.Name,
		HP:         def.HP,
		MaxHP:      def.HP,
		Attack:     def.Attack,
		GoldReward: def.GoldReward,
		ExpReward:  def.ExpReward,
	}
}

// ID returns the enemy's template identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// Color returns the tcell color for this enemy's name.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorWhite
}

// Glyph returns the emoji shown when the enemy appears.
func (e *Enemy) Glyph() string {
	if e.Def != nil && e.Def.Glyph != "" {
		return e.Def.Glyph
	}
	return "👾"
}

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// IsAlive returns true if the enemy has HP remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// GetHP returns current HP.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum HP.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// GetAttack returns the attack midpoint.
func (e *Enemy) GetAttack() int { return e.Attack }

// GetGoldReward returns gold granted on defeat.
func (e *Enemy) GetGoldReward() int { return e.GoldReward }

// GetExpReward returns experience granted on defeat.
func (e *Enemy) GetExpReward() int { return e.ExpReward }

// TakeDamage reduces HP and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.HP {
		actual = e.HP
	}
	e.HP -= actual
	return actual
}

var _ combat.Foe = (*Enemy)(nil)
