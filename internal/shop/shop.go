// Package shop sells the fixed item catalog to the player.
package shop

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/forestquest/internal/entity"
	"github.com/samdwyer/forestquest/internal/gamedata"
	"github.com/samdwyer/forestquest/internal/telemetry"
	"github.com/samdwyer/forestquest/internal/ui"
)

// InsufficientGoldError is returned when the buyer cannot afford an item.
type InsufficientGoldError struct {
	Item  string
	Price int
	Gold  int
}

// Shortfall returns how much more gold the purchase needs.
func (e *InsufficientGoldError) Shortfall() int {
	return e.Price - e.Gold
}

func (e *InsufficientGoldError) Error() string {
	return fmt.Sprintf("not enough gold for %s: need %d more", e.Item, e.Shortfall())
}

// Shop sells a catalog of items.
type Shop struct {
	items   *gamedata.ItemRegistry
	console ui.Prompter
}

// New creates a shop over the given catalog.
func New(items *gamedata.ItemRegistry, console ui.Prompter) *Shop {
	return &Shop{
		items:   items,
		console: console,
	}
}

// Catalog returns the items for sale in display order.
func (s *Shop) Catalog() []gamedata.ItemDef {
	return s.items.All()
}

// Buy charges the player for item and applies its effect.
// On failure nothing about the player changes.
func (s *Shop) Buy(ctx context.Context, p *entity.Player, item *gamedata.ItemDef) error {
	_, span := telemetry.Tracer("shop").Start(ctx, "shop.purchase")
	defer span.End()
	span.SetAttributes(
		attribute.String("item", item.ID),
		attribute.Int("price", item.Price),
		attribute.Int("gold_before", p.Gold),
	)

	if !p.SpendGold(item.Price) {
		span.SetAttributes(attribute.Bool("success", false))
		return &InsufficientGoldError{Item: item.Name, Price: item.Price, Gold: p.Gold}
	}

	switch item.Effect {
	case gamedata.EffectStock:
		p.AddItem(item.Name)
	case gamedata.EffectAttack:
		p.RaiseAttack(item.Amount)
	case gamedata.EffectMaxHP:
		p.RaiseMaxHP(item.Amount)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return nil
}

// Visit runs the shop menu until the player leaves.
func (s *Shop) Visit(ctx context.Context, p *entity.Player) error {
	s.console.Say("\n🏪 Welcome to the magic shop!")

	catalog := s.Catalog()
	options := make([]string, 0, len(catalog)+1)
	for _, item := range catalog {
		options = append(options, fmt.Sprintf("Buy %s (%dG)", item.Name, item.Price))
	}
	options = append(options, "Leave")

	for {
		s.console.Say("\n💰 Gold: %s", s.console.Paint(fmt.Sprint(p.Gold), ui.ColorGold))
		s.console.Say("\nFor sale:")
		for _, item := range catalog {
			s.console.Say("- %s: %d gold", item.Name, item.Price)
		}

		choice, err := s.console.Choose(ctx, "What would you like to buy?", options)
		if err != nil {
			return fmt.Errorf("shop: %w", err)
		}
		if choice == len(catalog) {
			s.console.Say("\n👋 Come again!")
			return nil
		}

		item := &catalog[choice]
		if err := s.Buy(ctx, p, item); err != nil {
			s.console.Say("\n%s", s.console.Paint("❌ "+describeFailure(err), ui.ColorWarning))
			continue
		}
		s.console.Say("\n✅ %s", describePurchase(p, item))
	}
}

func describePurchase(p *entity.Player, item *gamedata.ItemDef) string {
	switch item.Effect {
	case gamedata.EffectAttack:
		return fmt.Sprintf("Attack rose by %d! Current attack: %d", item.Amount, p.Attack)
	case gamedata.EffectMaxHP:
		return fmt.Sprintf("Max HP rose by %d! Current HP: %d/%d", item.Amount, p.HP, p.MaxHP)
	default:
		return fmt.Sprintf("You bought a %s!", item.Name)
	}
}

func describeFailure(err error) string {
	var e *InsufficientGoldError
	if errors.As(err, &e) {
		return fmt.Sprintf("Not enough gold! You need %d more.", e.Shortfall())
	}
	return err.Error()
}
