package shop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/samdwyer/forestquest/internal/entity"
	"github.com/samdwyer/forestquest/internal/gamedata"
	"github.com/samdwyer/forestquest/internal/ui"
)

func newTestShop(input string) (*Shop, *bytes.Buffer) {
	var out bytes.Buffer
	console := ui.NewConsole(strings.NewReader(input), &out, ui.Options{})
	return New(gamedata.MustLoadItemRegistry(), console), &out
}

func item(t *testing.T, s *Shop, id string) *gamedata.ItemDef {
	t.Helper()
	def := s.items.GetByID(id)
	if def == nil {
		t.Fatalf("item %q not in catalog", id)
	}
	return def
}

func TestBuyEffects(t *testing.T) {
	s, _ := newTestShop("")
	ctx := context.Background()

	tests := []struct {
		id    string
		check func(p *entity.Player) bool
	}{
		{"healing_potion", func(p *entity.Player) bool {
			return p.CountItem(gamedata.HealingPotion) == 1 && p.Attack == 20 && p.MaxHP == 100
		}},
		{"attack_tonic", func(p *entity.Player) bool {
			return p.Attack == 30 && len(p.Inventory) == 0 && p.MaxHP == 100
		}},
		{"vitality_tonic", func(p *entity.Player) bool {
			return p.MaxHP == 130 && p.HP == 90 && p.Attack == 20 && len(p.Inventory) == 0
		}},
	}

	for _, tt := range tests {
		p := entity.NewPlayer("Buyer")
		p.Gold = 500
		p.HP = 60
		def := item(t, s, tt.id)

		if err := s.Buy(ctx, p, def); err != nil {
			t.Fatalf("Buy(%s) error = %v", tt.id, err)
		}
		if p.Gold != 500-def.Price {
			t.Errorf("Buy(%s): gold = %d, want %d", tt.id, p.Gold, 500-def.Price)
		}
		if !tt.check(p) {
			t.Errorf("Buy(%s): unexpected player state %+v", tt.id, p)
		}
	}
}

func TestBuyExactGold(t *testing.T) {
	s, _ := newTestShop("")
	p := entity.NewPlayer("Buyer")
	p.Gold = 30

	if err := s.Buy(context.Background(), p, item(t, s, "healing_potion")); err != nil {
		t.Fatalf("Buy() with exact gold error = %v", err)
	}
	if p.Gold != 0 {
		t.Errorf("gold = %d, want 0", p.Gold)
	}
}

func TestBuyInsufficientGold(t *testing.T) {
	s, _ := newTestShop("")
	p := entity.NewPlayer("Buyer")
	before := *p

	err := s.Buy(context.Background(), p, item(t, s, "vitality_tonic"))

	var goldErr *InsufficientGoldError
	if !errors.As(err, &goldErr) {
		t.Fatalf("Buy() error = %v, want *InsufficientGoldError", err)
	}
	if goldErr.Shortfall() != 100 {
		t.Errorf("Shortfall() = %d, want 100", goldErr.Shortfall())
	}
	if !strings.Contains(goldErr.Error(), "need 100 more") {
		t.Errorf("Error() = %q", goldErr.Error())
	}
	if p.Gold != 50 || p.HP != before.HP || p.MaxHP != before.MaxHP || p.Attack != before.Attack || len(p.Inventory) != 0 {
		t.Errorf("failed purchase changed the player: %+v", p)
	}
}

func TestVisitReportsShortfall(t *testing.T) {
	// Try the Max-HP Tonic with 50 gold, then leave.
	s, out := newTestShop("3\n4\n")
	p := entity.NewPlayer("Buyer")

	if err := s.Visit(context.Background(), p); err != nil {
		t.Fatalf("Visit() error = %v", err)
	}

	if p.Gold != 50 {
		t.Errorf("gold = %d, want 50", p.Gold)
	}
	text := out.String()
	if !strings.Contains(text, "You need 100 more.") {
		t.Errorf("shortfall message missing:\n%s", text)
	}
	if n := strings.Count(text, "What would you like to buy?"); n != 2 {
		t.Errorf("catalog shown %d times, want 2", n)
	}
	if !strings.Contains(text, "Come again!") {
		t.Error("farewell missing")
	}
}

func TestVisitBuysRepeatedly(t *testing.T) {
	s, out := newTestShop("1\n1\n1\n4\n")
	p := entity.NewPlayer("Buyer")
	p.Gold = 70

	if err := s.Visit(context.Background(), p); err != nil {
		t.Fatalf("Visit() error = %v", err)
	}

	if got := p.CountItem(gamedata.HealingPotion); got != 2 {
		t.Errorf("potions = %d, want 2", got)
	}
	if p.Gold != 10 {
		t.Errorf("gold = %d, want 10", p.Gold)
	}
	if !strings.Contains(out.String(), "You need 20 more.") {
		t.Error("third potion should report a shortfall of 20")
	}
}

func TestVisitInputClosed(t *testing.T) {
	s, _ := newTestShop("")
	err := s.Visit(context.Background(), entity.NewPlayer("Buyer"))
	if !errors.Is(err, io.EOF) {
		t.Errorf("Visit() error = %v, want io.EOF", err)
	}
}
