package gamedata

import "fmt"

// HealingPotion is the inventory name of the consumable used in battle.
const HealingPotion = "Healing Potion"

// EffectType is what buying an item does to the buyer.
type EffectType string

const (
	// EffectStock adds the item to the inventory by name.
	EffectStock EffectType = "stock"
	// EffectAttack raises attack by Amount.
	EffectAttack EffectType = "attack"
	// EffectMaxHP raises max HP and current HP by Amount.
	EffectMaxHP EffectType = "max_hp"
)

// ItemDef is a shop catalog entry loaded from JSON.
type ItemDef struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Price  int        `json:"price"`
	Effect EffectType `json:"effect"`
	Amount int        `json:"amount"` // Stat increase; unused for EffectStock
}

// Validate checks the definition for values the shop cannot apply.
func (d *ItemDef) Validate() error {
	if d.Price <= 0 {
		return fmt.Errorf("item %s: price must be positive, got %d", d.ID, d.Price)
	}
	switch d.Effect {
	case EffectStock:
	case EffectAttack, EffectMaxHP:
		if d.Amount <= 0 {
			return fmt.Errorf("item %s: %s amount must be positive, got %d", d.ID, d.Effect, d.Amount)
		}
	default:
		return fmt.Errorf("item %s: unknown effect %q", d.ID, d.Effect)
	}
	return nil
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads the shop catalog from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Items {
		if err := file.Items[i].Validate(); err != nil {
			return nil, fmt.Errorf("items.json: %w", err)
		}
	}
	return file.Items, nil
}
