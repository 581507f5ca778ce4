// Package combat provides the turn-based battle system.
package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/forestquest/internal/dice"
	"github.com/samdwyer/forestquest/internal/gamedata"
	"github.com/samdwyer/forestquest/internal/telemetry"
	"github.com/samdwyer/forestquest/internal/ui"
)

const (
	PlayerSpread  = 5   // Player damage is attack +/- PlayerSpread
	EnemySpread   = 3   // Enemy damage is attack +/- EnemySpread
	FleeChance    = 0.7 // Probability a flee attempt succeeds
	DropChance    = 0.3 // Probability a defeated enemy leaves a potion
	PotionHealMin = 30
	PotionHealMax = 50
)

// Combatant is the interface for any entity that can participate in combat.
// Both the player and enemies implement this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetMaxHP() int
	GetAttack() int

	// TakeDamage reduces HP, clamped at 0, and returns actual damage taken.
	TakeDamage(amount int) int
}

// Hero is the player side of a battle.
type Hero interface {
	Combatant

	GetLevel() int
	Heal(amount int) int
	RemoveItem(name string) bool
	AddItem(name string)
	AddGold(amount int)
	GainExperience(exp int) bool
}

// Foe is the enemy side of a battle.
type Foe interface {
	Combatant

	GetGoldReward() int
	GetExpReward() int
}

// Action is a choice the player makes on their turn.
type Action int

const (
	ActionAttack Action = iota
	ActionFlee
	ActionPotion
)

var actionLabels = []string{"Attack", "Flee", "Use Potion"}

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionFlee:
		return "flee"
	case ActionPotion:
		return "potion"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	// OutcomeUndecided is reported when a battle is abandoned by an input error.
	OutcomeUndecided Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeUndecided:
		return "undecided"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Survived reports whether the player is still standing after the battle.
func (o Outcome) Survived() bool {
	return o != OutcomeDefeat
}

// Report summarizes a finished battle.
type Report struct {
	Outcome     Outcome
	Turns       int // Attack and flee turns; potion turns are free
	DamageDealt int
	DamageTaken int
	PotionsUsed int
	GoldGained  int
	ExpGained   int
	LeveledUp   bool
	PotionDrop  bool
}

// Resolver runs battles between the player and one enemy.
type Resolver struct {
	roller  dice.Roller
	console ui.Prompter
}

// NewResolver creates a resolver that rolls with roller and talks through console.
func NewResolver(roller dice.Roller, console ui.Prompter) *Resolver {
	return &Resolver{
		roller:  roller,
		console: console,
	}
}

// Battle runs the turn loop until the enemy falls, the player falls, or the
// player flees. Errors only come from the console (interrupt, closed input);
// the partial report is returned with them.
func (r *Resolver) Battle(ctx context.Context, hero Hero, foe Foe) (Report, error) {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.battle")
	defer span.End()

	span.SetAttributes(
		attribute.String("enemy", foe.GetName()),
		attribute.Int("enemy.hp", foe.GetHP()),
		attribute.Int("player.hp", hero.GetHP()),
		attribute.Int("player.level", hero.GetLevel()),
	)

	report, err := r.fight(ctx, hero, foe)

	span.SetAttributes(
		attribute.String("outcome", report.Outcome.String()),
		attribute.Int("turns_taken", report.Turns),
		attribute.Int("damage_dealt", report.DamageDealt),
		attribute.Int("damage_taken", report.DamageTaken),
		attribute.Int("potions_used", report.PotionsUsed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return report, err
}

func (r *Resolver) fight(ctx context.Context, hero Hero, foe Foe) (Report, error) {
	var report Report
	name := r.console.Paint(foe.GetName(), enemyColor(foe))

	r.console.Say("\n⚔️  %s%s appears!", enemyGlyph(foe), name)
	r.console.Say("%s: HP %d, Attack %d", name, foe.GetHP(), foe.GetAttack())

	for foe.IsAlive() && hero.IsAlive() {
		choice, err := r.console.Choose(ctx, "What will you do?", actionLabels)
		if err != nil {
			return report, fmt.Errorf("battle with %s: %w", foe.GetName(), err)
		}

		switch Action(choice) {
		case ActionAttack:
			report.Turns++
			dealt := r.PlayerStrike(hero, foe)
			report.DamageDealt += dealt
			r.console.Say("\n💥 You deal %s damage to %s!", r.console.Paint(fmt.Sprint(dealt), ui.ColorDamage), name)

			if foe.IsAlive() {
				r.console.Say("%s: HP %d/%d", name, foe.GetHP(), foe.GetMaxHP())
				report.DamageTaken += r.counterAttack(hero, foe, name)
			}

		case ActionFlee:
			report.Turns++
			if r.roller.Chance(FleeChance) {
				r.console.Say("\n💨 You got away safely!")
				report.Outcome = OutcomeFled
				return report, nil
			}
			r.console.Say("\n❌ You couldn't escape!")
			report.DamageTaken += r.counterAttack(hero, foe, name)

		case ActionPotion:
			if !hero.RemoveItem(gamedata.HealingPotion) {
				r.console.Say("\n❌ You have no potions!")
				continue
			}
			report.PotionsUsed++
			amount := r.roller.Between(PotionHealMin, PotionHealMax)
			hero.Heal(amount)
			r.console.Say("\n🧪 You drink a %s and recover %s HP!", gamedata.HealingPotion, r.console.Paint(fmt.Sprint(amount), ui.ColorHeal))
			r.console.Say("Your HP: %d/%d", hero.GetHP(), hero.GetMaxHP())
		}
	}

	if !hero.IsAlive() {
		report.Outcome = OutcomeDefeat
		return report, nil
	}

	report.Outcome = OutcomeVictory
	r.reward(hero, foe, name, &report)
	return report, nil
}

// PlayerStrike rolls the player's attack against foe and applies it.
// Damage is uniform in [attack-PlayerSpread, attack+PlayerSpread].
func (r *Resolver) PlayerStrike(hero Combatant, foe Combatant) int {
	damage := r.roller.Between(hero.GetAttack()-PlayerSpread, hero.GetAttack()+PlayerSpread)
	foe.TakeDamage(damage)
	return damage
}

// EnemyStrike rolls foe's attack against the player and applies it.
// Damage is uniform in [attack-EnemySpread, attack+EnemySpread].
func (r *Resolver) EnemyStrike(foe Combatant, hero Combatant) int {
	damage := r.roller.Between(foe.GetAttack()-EnemySpread, foe.GetAttack()+EnemySpread)
	hero.TakeDamage(damage)
	return damage
}

func (r *Resolver) counterAttack(hero Hero, foe Foe, name string) int {
	damage := r.EnemyStrike(foe, hero)
	r.console.Say("💔 %s attacks! You take %s damage!", name, r.console.Paint(fmt.Sprint(damage), ui.ColorHurt))
	r.console.Say("Your HP: %d/%d", hero.GetHP(), hero.GetMaxHP())
	return damage
}

func (r *Resolver) reward(hero Hero, foe Foe, name string, report *Report) {
	r.console.Say("\n🎉 You defeated %s!", name)

	report.GoldGained = foe.GetGoldReward()
	report.ExpGained = foe.GetExpReward()
	hero.AddGold(report.GoldGained)
	report.LeveledUp = hero.GainExperience(report.ExpGained)

	if report.LeveledUp {
		r.console.Say("\n%s", r.console.Paint(fmt.Sprintf("🎉 Level up! You are now level %d!", hero.GetLevel()), ui.ColorLevelUp))
		r.console.Say("HP: %d, Attack: %d", hero.GetMaxHP(), hero.GetAttack())
	}
	r.console.Say("💰 Gained %s gold!", r.console.Paint(fmt.Sprint(report.GoldGained), ui.ColorGold))
	r.console.Say("✨ Gained %d experience!", report.ExpGained)

	if r.roller.Chance(DropChance) {
		hero.AddItem(gamedata.HealingPotion)
		report.PotionDrop = true
		r.console.Say("🎁 You found a %s!", gamedata.HealingPotion)
	}
}
