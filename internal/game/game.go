package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snake/internal/gamedata"
	"github.com/samdwyer/snake/internal/sim"
	"github.com/samdwyer/snake/internal/telemetry"
	"github.com/samdwyer/snake/internal/ui"
)

// Summary reports what happened during a session.
type Summary struct {
	Rounds int // Rounds started
	Best   int // Highest score reached
}

// Game owns the terminal, the game state and the loop driver. Only Run's
// goroutine touches them.
type Game struct {
	term     ui.Terminal
	renderer *ui.Renderer
	state    *sim.State
	driver   *Driver
	log      zerolog.Logger

	roundSpan trace.Span
	best      int
	running   bool
}

// New creates a new game on the real terminal.
func New(cfg Config, logger zerolog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	g, err := newGame(cfg, screen, logger)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame wires a game onto any terminal.
func newGame(cfg Config, term ui.Terminal, logger zerolog.Logger) (*Game, error) {
	themes, err := gamedata.LoadThemeRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load themes: %w", err)
	}
	theme, err := themes.Resolve(cfg.Theme)
	if err != nil {
		return nil, err
	}

	seed := cfg.seed()
	logger.Info().
		Int("tile_count", cfg.TileCount).
		Dur("tick_interval", cfg.TickInterval).
		Int64("seed", seed).
		Str("theme", theme.ID).
		Msg("game created")

	return &Game{
		term:     term,
		renderer: ui.NewRenderer(term, theme),
		state:    sim.New(cfg.Rules(), seed),
		driver:   NewDriver(cfg.TickInterval),
		log:      logger,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("grid.tile_count", g.state.Grid.Size),
		attribute.Int64("tick_interval_ms", g.driver.Interval().Milliseconds()),
		attribute.Int("food.x", g.state.Food.X),
		attribute.Int("food.y", g.state.Food.Y),
	)
	initSpan.End()

	g.render()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := g.term.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case now := <-frames.C:
			g.frame(now)
		}
	}

	if g.roundSpan != nil {
		g.endRound("quit")
	}

	// Cleanup
	g.term.Close()
	return nil
}

// Summary returns the session statistics.
func (g *Game) Summary() Summary {
	best := g.best
	if g.state.Score > best {
		best = g.state.Score
	}
	return Summary{Rounds: g.state.Round, Best: best}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.term.Sync()
		g.render()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	in, quit := inputFromKey(ev)
	if quit {
		g.running = false
		return
	}

	if g.state.HandleInput(in) {
		g.startRound(ctx)
		g.render()
	}
}

// frame runs one display frame: at most one simulation step, then a redraw.
func (g *Game) frame(now time.Time) {
	if !g.driver.Frame(now) {
		return
	}

	outcome := g.state.Step()
	switch {
	case outcome == sim.OutcomeAte:
		g.roundSpan.AddEvent("food.eaten", trace.WithAttributes(
			attribute.Int("score", g.state.Score),
			attribute.Int("length", g.state.Snake.Len()),
			attribute.Int("tick", g.state.Ticks),
		))
		g.log.Debug().Int("score", g.state.Score).Int("length", g.state.Snake.Len()).Msg("food eaten")
	case outcome.Ended():
		g.endRound(outcome.String())
	}

	g.render()
}

// startRound arms the driver and opens the round span.
func (g *Game) startRound(ctx context.Context) {
	g.driver.Start()

	tracer := telemetry.Tracer("game")
	_, g.roundSpan = tracer.Start(ctx, "game.round")
	g.roundSpan.SetAttributes(attribute.Int("round", g.state.Round))

	g.log.Info().Int("round", g.state.Round).Msg("round started")
}

// endRound stops the driver, records the result and closes the round span.
func (g *Game) endRound(outcome string) {
	g.driver.Stop()
	if g.state.Score > g.best {
		g.best = g.state.Score
	}

	g.roundSpan.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("score", g.state.Score),
		attribute.Int("length", g.state.Snake.Len()),
		attribute.Int("ticks", g.state.Ticks),
	)
	g.roundSpan.End()
	g.roundSpan = nil

	g.log.Info().
		Int("round", g.state.Round).
		Str("outcome", outcome).
		Int("score", g.state.Score).
		Int("ticks", g.state.Ticks).
		Msg("round ended")
}

// render draws the current state.
func (g *Game) render() {
	g.renderer.Render(g.state, ui.HUD{Best: g.best})
}
