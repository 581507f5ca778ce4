package world

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/forestquest/internal/combat"
	"github.com/samdwyer/forestquest/internal/dice"
	"github.com/samdwyer/forestquest/internal/entity"
	"github.com/samdwyer/forestquest/internal/gamedata"
	"github.com/samdwyer/forestquest/internal/shop"
	"github.com/samdwyer/forestquest/internal/telemetry"
	"github.com/samdwyer/forestquest/internal/ui"
)

// Excursion is the result of one trip into the forest.
type Excursion struct {
	Event    Event
	Survived bool           // False only when a battle was lost
	Battle   *combat.Report // Set for EventEnemy
	Gold     int            // Gold found
	Healed   int            // HP restored
}

// Forest dispatches exploration events.
type Forest struct {
	def      *gamedata.ForestDef
	enemies  *gamedata.EnemyRegistry
	resolver *combat.Resolver
	shop     *shop.Shop
	roller   dice.Roller
	console  ui.Prompter
}

// Deps bundles what the forest routes events to.
type Deps struct {
	Def      *gamedata.ForestDef
	Enemies  *gamedata.EnemyRegistry
	Resolver *combat.Resolver
	Shop     *shop.Shop
	Roller   dice.Roller
	Console  ui.Prompter
}

// NewForest creates a forest from its dependencies.
func NewForest(deps Deps) (*Forest, error) {
	switch {
	case deps.Def == nil:
		return nil, errors.New("forest: missing forest definition")
	case deps.Enemies == nil || deps.Enemies.Count() == 0:
		return nil, errors.New("forest: no enemy templates")
	case deps.Resolver == nil || deps.Shop == nil:
		return nil, errors.New("forest: missing combat resolver or shop")
	case deps.Roller == nil || deps.Console == nil:
		return nil, errors.New("forest: missing roller or console")
	}
	return &Forest{
		def:      deps.Def,
		enemies:  deps.Enemies,
		resolver: deps.Resolver,
		shop:     deps.Shop,
		roller:   deps.Roller,
		console:  deps.Console,
	}, nil
}

// RollEvent picks one event uniformly.
func (f *Forest) RollEvent() Event {
	return Events[f.roller.Pick(len(Events))]
}

// Explore rolls an event and resolves it against the player.
func (f *Forest) Explore(ctx context.Context, p *entity.Player) (Excursion, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "forest.explore")
	defer span.End()

	ex := Excursion{Event: f.RollEvent(), Survived: true}
	span.SetAttributes(attribute.String("event", ex.Event.String()))

	var err error
	switch ex.Event {
	case EventTreasure:
		ex.Gold = f.roller.Between(f.def.Treasure.Min, f.def.Treasure.Max)
		p.AddGold(ex.Gold)
		f.console.Say("\n💎 You found a treasure chest with %s gold!", f.console.Paint(fmt.Sprint(ex.Gold), ui.ColorGold))
		span.SetAttributes(attribute.Int("gold", ex.Gold))

	case EventEnemy:
		def := f.enemies.SpawnRandom(f.roller)
		enemy := entity.NewEnemyFromDef(def)
		var report combat.Report
		report, err = f.resolver.Battle(ctx, p, enemy)
		ex.Battle = &report
		ex.Survived = report.Outcome.Survived()
		span.SetAttributes(
			attribute.String("enemy", enemy.ID()),
			attribute.String("outcome", report.Outcome.String()),
		)

	case EventNothing:
		msg := f.def.Flavor[f.roller.Pick(len(f.def.Flavor))]
		f.console.Say("\n🌲 %s", msg)

	case EventShop:
		f.console.Say("\n🏪 You meet a travelling merchant deep in the forest!")
		err = f.shop.Visit(ctx, p)

	case EventHealingSpring:
		amount := f.roller.Between(f.def.Spring.Min, f.def.Spring.Max)
		ex.Healed = p.Heal(amount)
		f.console.Say("\n⛲ You found a healing spring! Recovered %s HP!", f.console.Paint(fmt.Sprint(amount), ui.ColorHeal))
		f.console.Say("Current HP: %d/%d", p.HP, p.MaxHP)
		span.SetAttributes(attribute.Int("healed", ex.Healed))
	}

	span.SetAttributes(attribute.Bool("survived", ex.Survived))
	if err != nil {
		span.RecordError(err)
		return ex, fmt.Errorf("explore %s: %w", ex.Event, err)
	}
	return ex, nil
}
