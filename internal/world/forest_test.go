package world

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/samdwyer/forestquest/internal/combat"
	"github.com/samdwyer/forestquest/internal/dice"
	"github.com/samdwyer/forestquest/internal/entity"
	"github.com/samdwyer/forestquest/internal/gamedata"
	"github.com/samdwyer/forestquest/internal/shop"
	"github.com/samdwyer/forestquest/internal/ui"
)

func newTestForest(t *testing.T, roller dice.Roller, input string) (*Forest, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	console := ui.NewConsole(strings.NewReader(input), &out, ui.Options{})

	forest, err := NewForest(Deps{
		Def:      gamedata.MustLoadForest(),
		Enemies:  gamedata.MustLoadEnemyRegistry(),
		Resolver: combat.NewResolver(roller, console),
		Shop:     shop.New(gamedata.MustLoadItemRegistry(), console),
		Roller:   roller,
		Console:  console,
	})
	if err != nil {
		t.Fatalf("NewForest() error = %v", err)
	}
	return forest, &out
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{EventTreasure, "treasure"},
		{EventEnemy, "enemy"},
		{EventNothing, "nothing"},
		{EventShop, "shop"},
		{EventHealingSpring, "healing_spring"},
		{Event(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.expected {
			t.Errorf("Event(%d).String() = %q, want %q", tt.event, got, tt.expected)
		}
	}
}

func TestRollEventUniform(t *testing.T) {
	forest, _ := newTestForest(t, dice.NewRand(31337), "")

	counts := make(map[Event]int)
	for i := 0; i < 10000; i++ {
		counts[forest.RollEvent()]++
	}
	for _, e := range Events {
		if c := counts[e]; c < 1700 || c > 2300 {
			t.Errorf("%s rolled %d times out of 10000, expected about 2000", e, c)
		}
	}
}

func TestExploreTreasure(t *testing.T) {
	forest, out := newTestForest(t, &dice.Sequence{Picks: []int{0}, Rolls: []int{55}}, "")
	p := entity.NewPlayer("Aria")

	ex, err := forest.Explore(context.Background(), p)
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	if ex.Event != EventTreasure || !ex.Survived {
		t.Errorf("Excursion = %+v, want surviving treasure", ex)
	}
	if ex.Gold != 55 || p.Gold != 105 {
		t.Errorf("found %d, gold %d; want 55, 105", ex.Gold, p.Gold)
	}
	if !strings.Contains(out.String(), "treasure chest") {
		t.Error("treasure message missing")
	}
}

func TestExploreTreasureRange(t *testing.T) {
	forest, _ := newTestForest(t, dice.NewRand(5), "")
	for i := 0; i < 2000; i++ {
		p := entity.NewPlayer("Aria")
		ex, err := forest.Explore(context.Background(), p)
		if ex.Event != EventTreasure {
			continue
		}
		if err != nil {
			t.Fatalf("Explore() error = %v", err)
		}
		if ex.Gold < 20 || ex.Gold > 80 {
			t.Fatalf("treasure gold %d outside [20,80]", ex.Gold)
		}
	}
}

func TestExploreHealingSpring(t *testing.T) {
	tests := []struct {
		name       string
		hp         int
		roll       int
		wantHP     int
		wantHealed int
	}{
		{"partial", 50, 25, 75, 25},
		{"capped", 90, 40, 100, 10},
	}

	for _, tt := range tests {
		forest, _ := newTestForest(t, &dice.Sequence{Picks: []int{4}, Rolls: []int{tt.roll}}, "")
		p := entity.NewPlayer("Aria")
		p.HP = tt.hp

		ex, err := forest.Explore(context.Background(), p)
		if err != nil {
			t.Fatalf("%s: Explore() error = %v", tt.name, err)
		}
		if ex.Event != EventHealingSpring {
			t.Fatalf("%s: event = %v", tt.name, ex.Event)
		}
		if p.HP != tt.wantHP || ex.Healed != tt.wantHealed {
			t.Errorf("%s: HP %d healed %d; want %d, %d", tt.name, p.HP, ex.Healed, tt.wantHP, tt.wantHealed)
		}
	}
}

func TestExploreNothing(t *testing.T) {
	forest, out := newTestForest(t, &dice.Sequence{Picks: []int{2, 3}}, "")
	p := entity.NewPlayer("Aria")
	before := *p

	ex, err := forest.Explore(context.Background(), p)
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	if ex.Event != EventNothing || !ex.Survived {
		t.Errorf("Excursion = %+v", ex)
	}
	if p.HP != before.HP || p.Gold != before.Gold || p.Experience != before.Experience {
		t.Error("an uneventful walk changed the player")
	}
	want := gamedata.MustLoadForest().Flavor[3]
	if !strings.Contains(out.String(), want) {
		t.Errorf("output missing flavor %q:\n%s", want, out.String())
	}
}

func TestExploreShop(t *testing.T) {
	forest, out := newTestForest(t, &dice.Sequence{Picks: []int{3}}, "1\n4\n")
	p := entity.NewPlayer("Aria")

	ex, err := forest.Explore(context.Background(), p)
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	if ex.Event != EventShop {
		t.Errorf("event = %v, want shop", ex.Event)
	}
	if p.Gold != 20 || p.CountItem(gamedata.HealingPotion) != 1 {
		t.Errorf("gold %d potions %d; want 20, 1", p.Gold, p.CountItem(gamedata.HealingPotion))
	}
	if !strings.Contains(out.String(), "travelling merchant") {
		t.Error("merchant message missing")
	}
}

func TestExploreEnemyVictory(t *testing.T) {
	seq := &dice.Sequence{Picks: []int{1, 0}, Rolls: []int{25, 10, 25}}
	forest, _ := newTestForest(t, seq, "1\n1\n")
	p := entity.NewPlayer("Aria")

	ex, err := forest.Explore(context.Background(), p)
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	if ex.Event != EventEnemy || !ex.Survived || ex.Battle == nil {
		t.Fatalf("Excursion = %+v, want surviving battle", ex)
	}
	if ex.Battle.Outcome != combat.OutcomeVictory {
		t.Errorf("outcome = %v, want victory", ex.Battle.Outcome)
	}
	if p.Gold != 70 || p.Experience != 25 || p.HP != 90 {
		t.Errorf("player gold %d exp %d hp %d; want 70, 25, 90", p.Gold, p.Experience, p.HP)
	}
}

func TestExploreEnemyDefeat(t *testing.T) {
	seq := &dice.Sequence{Picks: []int{1, 3}, Rolls: []int{20, 40}}
	forest, out := newTestForest(t, seq, "1\n")
	p := entity.NewPlayer("Aria")
	p.HP = 5

	ex, err := forest.Explore(context.Background(), p)
	if err != nil {
		t.Fatalf("Explore() error = %v", err)
	}

	if ex.Survived || p.IsAlive() {
		t.Errorf("Survived = %v, HP %d; want defeat", ex.Survived, p.HP)
	}
	if ex.Battle.Outcome != combat.OutcomeDefeat {
		t.Errorf("outcome = %v", ex.Battle.Outcome)
	}
	if !strings.Contains(out.String(), "Dragon") {
		t.Error("expected a dragon encounter")
	}
}

func TestExploreInputClosed(t *testing.T) {
	forest, _ := newTestForest(t, &dice.Sequence{Picks: []int{1, 0}}, "")

	ex, err := forest.Explore(context.Background(), entity.NewPlayer("Aria"))
	if !errors.Is(err, io.EOF) {
		t.Errorf("Explore() error = %v, want io.EOF", err)
	}
	if !ex.Survived {
		t.Error("an aborted battle is not a defeat")
	}
}

func TestNewForestValidates(t *testing.T) {
	if _, err := NewForest(Deps{}); err == nil {
		t.Error("NewForest() with no deps should fail")
	}

	console := ui.NewConsole(strings.NewReader(""), io.Discard, ui.Options{})
	_, err := NewForest(Deps{
		Def:     gamedata.MustLoadForest(),
		Enemies: gamedata.NewEnemyRegistry(nil),
		Roller:  dice.NewRand(1),
		Console: console,
	})
	if err == nil {
		t.Error("NewForest() with an empty enemy catalog should fail")
	}
}
