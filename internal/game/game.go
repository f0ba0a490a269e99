package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wildrealm/internal/gamedata"
	"github.com/samdwyer/wildrealm/internal/telemetry"
	"github.com/samdwyer/wildrealm/internal/ui"
	"github.com/samdwyer/wildrealm/internal/world"
)

// travelDelay is the pause between auto-travel steps.
const travelDelay = 30 * time.Millisecond

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	styles   *gamedata.StyleRegistry
	session  *Session
	state    State
	target   world.Point
	message  string
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	if err := cfg.mapGen().Validate(); err != nil {
		return nil, err
	}
	if cfg.SightRadius < 1 {
		cfg.SightRadius = defaultSightRadius
	}
	styles, err := gamedata.LoadStyleRegistry()
	if err != nil {
		return nil, fmt.Errorf("load styles: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, styles),
		styles:   styles,
		state:    StateExplore,
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	w, err := world.NewWorld(ctx, g.cfg.Seed, g.cfg.mapGen())
	if err != nil {
		initSpan.End()
		g.screen.Close()
		return err
	}
	g.session = NewSession(w, g.cfg.SightRadius)
	initSpan.SetAttributes(
		attribute.Int("world.dungeons", len(w.Dungeons)),
		attribute.Int("player.start_x", w.Spawn.X),
		attribute.Int("player.start_y", w.Spawn.Y),
	)
	initSpan.End()

	for g.running {
		g.render()

		if g.state == StateTravel {
			g.travelStep()
			if g.screen.HasPendingEvent() {
				g.state = StateExplore
			}
			time.Sleep(travelDelay)
			continue
		}

		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

func (g *Game) render() {
	view := ui.View{
		Map:    g.session.Map(),
		Player: g.session.Player,
		Status: statusLines(g.session, g.state, g.message),
	}
	if style, ok := g.session.Style(); ok {
		view.Style = g.styles.ByID(style.String())
	}
	g.renderer.Render(view)
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
	g.message = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.TryMove(0, -1)
	case tcell.KeyDown:
		g.session.TryMove(0, 1)
	case tcell.KeyLeft:
		g.session.TryMove(-1, 0)
	case tcell.KeyRight:
		g.session.TryMove(1, 0)

	case tcell.KeyRune:
		g.handleRune(ctx, ev.Rune())
	}
}

// runeMoves maps the vi-keys to movement deltas.
var runeMoves = map[rune][2]int{
	'h': {-1, 0}, 'j': {0, 1}, 'k': {0, -1}, 'l': {1, 0},
	'y': {-1, -1}, 'u': {1, -1}, 'b': {-1, 1}, 'n': {1, 1},
}

func (g *Game) handleRune(ctx context.Context, r rune) {
	if d, ok := runeMoves[r]; ok {
		g.session.TryMove(d[0], d[1])
		return
	}

	switch r {
	case 'q', 'Q':
		g.running = false
	case '>':
		if !g.session.Descend() {
			g.message = gotext.Get("There is no way down here.")
			return
		}
		g.traceLevelChange(ctx, "game.descend")
	case '<':
		if !g.session.Ascend() {
			g.message = gotext.Get("There is no way up here.")
			return
		}
		g.traceLevelChange(ctx, "game.ascend")
	case 'g':
		target, ok := g.session.Destination()
		if !ok {
			g.message = gotext.Get("You know of nowhere to go.")
			return
		}
		g.target = target
		g.state = StateTravel
	}
}

func (g *Game) traceLevelChange(ctx context.Context, name string) {
	_, span := telemetry.Tracer("game").Start(ctx, name)
	span.SetAttributes(
		attribute.String("location", g.session.Location.String()),
		attribute.Int("turn", g.session.Turn()),
	)
	span.End()
}

// travelStep advances auto-travel by one step, dropping back to explore
// mode on arrival or when the path is blocked.
func (g *Game) travelStep() {
	if g.session.Position() == g.target {
		g.state = StateExplore
		return
	}
	if !g.session.StepToward(g.target) {
		g.message = gotext.Get("The way is blocked.")
		g.state = StateExplore
		return
	}
	if g.session.Position() == g.target {
		g.state = StateExplore
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
