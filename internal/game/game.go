package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/forestquest/internal/combat"
	"github.com/samdwyer/forestquest/internal/dice"
	"github.com/samdwyer/forestquest/internal/entity"
	"github.com/samdwyer/forestquest/internal/gamedata"
	"github.com/samdwyer/forestquest/internal/shop"
	"github.com/samdwyer/forestquest/internal/telemetry"
	"github.com/samdwyer/forestquest/internal/ui"
	"github.com/samdwyer/forestquest/internal/world"
)

// Game holds the entire session state.
type Game struct {
	cfg       Config
	console   *ui.Console
	enemies   *gamedata.EnemyRegistry
	shop      *shop.Shop
	forest    *world.Forest
	player    *entity.Player
	sessionID string
}

// New creates a new game instance talking through console.
// If roller is nil, one is seeded from cfg.Seed.
func New(cfg Config, console *ui.Console, roller dice.Roller) (*Game, error) {
	if console == nil {
		return nil, errors.New("game: nil console")
	}
	if roller == nil {
		roller = dice.NewRand(cfg.Seed)
	}

	enemies, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemies: %w", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	forestDef, err := gamedata.LoadForest()
	if err != nil {
		return nil, fmt.Errorf("load forest: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		console:   console,
		enemies:   enemies,
		shop:      shop.New(items, console),
		sessionID: uuid.NewString(),
	}

	g.forest, err = world.NewForest(world.Deps{
		Def:      forestDef,
		Enemies:  enemies,
		Resolver: combat.NewResolver(roller, console),
		Shop:     g.shop,
		Roller:   roller,
		Console:  console,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Player returns the session's player, or nil before Run has created one.
func (g *Game) Player() *entity.Player {
	return g.player
}

// SessionID returns the identifier attached to this session's telemetry.
func (g *Game) SessionID() string {
	return g.sessionID
}

// Run executes the session from name entry to exit. It returns how the
// session ended; errors come from the console (ui.ErrInterrupted, io.EOF).
func (g *Game) Run(ctx context.Context) (Ending, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.session")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", g.sessionID))

	ending, err := g.run(ctx)

	span.SetAttributes(attribute.String("ending", ending.String()))
	if g.player != nil {
		span.SetAttributes(
			attribute.Int("player.level", g.player.Level),
			attribute.Int("player.gold", g.player.Gold),
			attribute.Int("player.experience", g.player.Experience),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return ending, err
}

func (g *Game) run(ctx context.Context) (Ending, error) {
	if err := g.intro(ctx); err != nil {
		return EndingNone, err
	}

	ending, err := g.loop(ctx)
	if err != nil {
		return EndingNone, err
	}

	if ending == EndingDefeated {
		g.console.Say("\n💀 GAME OVER")
		g.console.Say("Try again!")
	}
	g.console.Say("\nThe adventure is over. Thanks for playing!")
	return ending, nil
}

// intro shows the banner, asks for a name and creates the player.
func (g *Game) intro(ctx context.Context) error {
	_, span := telemetry.Tracer("game").Start(ctx, "session.start")
	defer span.End()
	span.SetAttributes(attribute.String("session.id", g.sessionID))

	g.console.Clear()
	banner := strings.Split(ui.Banner("✨ Welcome to the Enchanted Forest Adventure! ✨", "🌟", 60), "\n")
	g.console.Say("%s", banner[0])
	if err := g.console.Typewrite(ctx, banner[1]); err != nil {
		return err
	}
	g.console.Say("%s", banner[2])

	name, err := g.console.AskNonEmpty(ctx, "\n🧙 What is your name? ")
	if err != nil {
		return err
	}
	g.player = entity.NewPlayer(name)

	g.console.Say("\nWelcome, %s!", name)
	g.console.Say("Your adventure in the enchanted forest begins.")
	g.console.Say("Defeat monsters, gather treasure, and grow stronger!")

	return g.console.WaitForEnter(ctx, "\nPress Enter to begin your adventure...")
}

// loop runs the main menu while the player is alive.
func (g *Game) loop(ctx context.Context) (Ending, error) {
	for g.player.IsAlive() {
		g.showStatus()

		choice, err := g.console.Choose(ctx, "What will you do?", menuLabels)
		if err != nil {
			return EndingNone, err
		}

		switch menuAction(choice) {
		case actionExplore:
			g.console.Say("\n🌲 You head deeper into the forest...")
			if err := g.console.Pause(ctx); err != nil {
				return EndingNone, err
			}

			ex, err := g.forest.Explore(ctx, g.player)
			if err != nil {
				return EndingNone, err
			}
			if !ex.Survived {
				g.console.Say("\n💀 You have fallen...")
				return EndingDefeated, nil
			}

			again, err := g.console.Choose(ctx, "Continue adventuring?", []string{"Yes", "No"})
			if err != nil {
				return EndingNone, err
			}
			if again == 1 {
				return EndingRetired, nil
			}

		case actionShop:
			if err := g.shop.Visit(ctx, g.player); err != nil {
				return EndingNone, err
			}

		case actionStatus:
			// The status panel is shown at the top of every iteration.

		case actionQuit:
			g.console.Say("\n👋 Well done on your adventure, %s!", g.player.Name)
			g.console.Say("Final level: %d", g.player.Level)
			g.console.Say("Final gold: %d", g.player.Gold)
			return EndingQuit, nil
		}
	}
	return EndingDefeated, nil
}

// showStatus prints the player's status panel.
func (g *Game) showStatus() {
	p := g.player
	rows := []string{
		fmt.Sprintf("🧙 %s | Level: %d", p.Name, p.Level),
		fmt.Sprintf("❤️  HP: %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("⚔️  Attack: %d", p.Attack),
		fmt.Sprintf("💰 Gold: %d", p.Gold),
		fmt.Sprintf("✨ Experience: %d", p.Experience),
	}
	if len(p.Inventory) > 0 {
		rows = append(rows, "🎒 Items: "+strings.Join(p.Inventory, ", "))
	}
	g.console.Say("\n%s", strings.TrimSuffix(ui.Panel(rows), "\n"))
}
