package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tkhalil/sealquest/internal/entity"
	"github.com/tkhalil/sealquest/internal/quest"
	"github.com/tkhalil/sealquest/internal/questdata"
	"github.com/tkhalil/sealquest/internal/telemetry"
	"github.com/tkhalil/sealquest/internal/ui"
	"github.com/tkhalil/sealquest/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen      *ui.Screen
	renderer    *ui.Renderer
	desert      *world.Desert
	hero        *entity.Hero
	state       *quest.GameState
	catalog     *questdata.Registry
	mode        Mode
	seed        int64
	lastMessage string
	running     bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	catalog, err := questdata.LoadRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, catalog),
		catalog:  catalog,
		mode:     ModeJourney,
		seed:     cfg.Seed,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.desert = world.NewDesert(world.DefaultWidth, world.DefaultHeight, rng)
	g.desert.Generate(ctx)

	catalog, err := g.catalog.BuildCatalog()
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}

	hero := quest.NewCharacter("Amir ibn Khalid", "Wayfarer")
	g.state = quest.NewGameState(hero, catalog)

	startX, startY := g.desert.StartPosition()
	g.hero = entity.NewHero(hero, startX, startY)
	g.lastMessage = "The seal lies shattered. Seek its fragments at the four shrines."

	initSpan.SetAttributes(
		attribute.Int("quest.fragment_count", g.state.Total()),
		attribute.Int64("desert.seed", seed),
		attribute.Int("hero.start_x", startX),
		attribute.Int("hero.start_y", startY),
	)
	initSpan.End()

	// Main game loop
	for g.running {
		g.renderer.Render(g.desert, g.hero, g.state, g.lastMessage, g.mode == ModeComplete)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove attempts to move the hero by the given delta, visiting any
// shrine the hero steps onto.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	newX := g.hero.X + dx
	newY := g.hero.Y + dy

	if !g.desert.IsPassable(newX, newY) {
		return
	}
	g.hero.Move(dx, dy)

	if region, ok := g.desert.ShrineAt(newX, newY); ok {
		g.visitShrine(ctx, region)
	}
}

// visitShrine recovers the shrine's fragment and applies driver
// policy: a full seal ends the journey.
func (g *Game) visitShrine(ctx context.Context, region quest.Region) {
	if !g.state.RecoverFragment(region) {
		g.lastMessage = "The shrine of the " + region.String() + " stands empty."
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.recover_fragment")
	span.SetAttributes(
		attribute.String("quest.region", region.ID()),
		attribute.Int("quest.recovered", g.state.Recovered()),
		attribute.Float64("quest.progress", g.state.Progress()),
	)
	span.End()

	g.lastMessage = "A seal fragment recovered in the " + region.String() + "!"
	if def := g.catalog.GetByRegion(region); def != nil && def.Hint != "" {
		g.lastMessage = def.Hint
	}

	if g.state.Complete() {
		g.mode = ModeComplete
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
