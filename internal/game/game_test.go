package game

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/snake/internal/entity"
	"github.com/samdwyer/snake/internal/sim"
	"github.com/samdwyer/snake/internal/world"
)

// fakeTerminal is an in-memory ui.Terminal fed from a channel.
type fakeTerminal struct {
	events chan tcell.Event
	shows  int
	syncs  int
	closed bool
}

func newFakeTerminal() *fakeTerminal {
	return &fakeTerminal{events: make(chan tcell.Event, 16)}
}

func (f *fakeTerminal) Clear()                                       {}
func (f *fakeTerminal) SetContent(x, y int, r rune, st tcell.Style) {}
func (f *fakeTerminal) Show()                                        { f.shows++ }
func (f *fakeTerminal) Sync()                                        { f.syncs++ }
func (f *fakeTerminal) PollEvent() tcell.Event                       { return <-f.events }

func (f *fakeTerminal) Close() {
	if !f.closed {
		f.closed = true
		close(f.events)
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestGame(t *testing.T) (*Game, *fakeTerminal) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 2024
	term := newFakeTerminal()
	g, err := newGame(cfg, term, zerolog.Nop())
	if err != nil {
		t.Fatalf("newGame() error: %v", err)
	}
	return g, term
}

func TestNewGameUnknownTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "plaid"
	if _, err := newGame(cfg, newFakeTerminal(), zerolog.Nop()); err == nil {
		t.Error("newGame() with an unknown theme should fail")
	}
}

func TestGameStartsOnAnyKey(t *testing.T) {
	g, term := newTestGame(t)
	ctx := context.Background()

	if g.state.Phase != sim.PhaseReady || g.driver.Running() {
		t.Fatal("new game should be ready with a stopped driver")
	}

	g.handleEvent(ctx, runeKey('x'))

	if !g.state.Running() {
		t.Error("any key in ready should start the round")
	}
	if !g.driver.Running() {
		t.Error("starting a round should start the driver")
	}
	if term.shows == 0 {
		t.Error("starting a round should redraw")
	}
}

func TestGameFrameThrottlesSteps(t *testing.T) {
	g, _ := newTestGame(t)
	g.handleEvent(context.Background(), runeKey(' '))

	// Keep the food out of the way
	g.state.Food = world.Cell{X: 0, Y: 0}
	base := time.Unix(5000, 0)

	g.frame(base)
	if g.state.Ticks != 1 {
		t.Fatalf("Ticks after first frame = %d, want 1", g.state.Ticks)
	}
	g.frame(base.Add(frameInterval))
	if g.state.Ticks != 1 {
		t.Errorf("Ticks after early frame = %d, want 1", g.state.Ticks)
	}
	g.frame(base.Add(100 * time.Millisecond))
	if g.state.Ticks != 2 {
		t.Errorf("Ticks after one interval = %d, want 2", g.state.Ticks)
	}
	if head := g.state.Snake.Head(); head != (world.Cell{X: 12, Y: 10}) {
		t.Errorf("Head = %v, want {12 10}", head)
	}
}

func TestGameSteeringAndReversal(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	g.handleEvent(ctx, key(tcell.KeyEnter))

	g.handleEvent(ctx, key(tcell.KeyLeft))
	if g.state.Pending() != world.Right {
		t.Errorf("reversing key changed direction to %v", g.state.Pending())
	}

	g.handleEvent(ctx, runeKey('w'))
	if g.state.Pending() != world.Up {
		t.Errorf("Pending() = %v, want up", g.state.Pending())
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, _ := newTestGame(t)
	ctx := context.Background()
	g.handleEvent(ctx, runeKey(' '))

	// Park the head against the right wall with some score
	g.state.Snake = &entity.Snake{Body: []world.Cell{{X: 19, Y: 5}, {X: 18, Y: 5}}}
	g.state.Food = world.Cell{X: 0, Y: 0}
	g.state.Score = 70

	g.frame(time.Unix(6000, 0))

	if g.state.Phase != sim.PhaseOver {
		t.Fatalf("Phase = %v, want over", g.state.Phase)
	}
	if g.driver.Running() {
		t.Error("game over should stop the driver")
	}
	if g.roundSpan != nil {
		t.Error("game over should close the round span")
	}
	if g.best != 70 {
		t.Errorf("best = %d, want 70", g.best)
	}

	// Arrows do nothing on the game-over screen
	g.handleEvent(ctx, key(tcell.KeyUp))
	if g.state.Phase != sim.PhaseOver {
		t.Error("arrow key should not leave game over")
	}

	// Confirm starts a fresh round
	g.handleEvent(ctx, runeKey(' '))
	if !g.state.Running() || g.state.Score != 0 || g.state.Snake.Len() != 1 {
		t.Errorf("after restart: running=%v score=%d len=%d",
			g.state.Running(), g.state.Score, g.state.Snake.Len())
	}
	if !g.driver.Running() {
		t.Error("restart should start the driver")
	}

	summary := g.Summary()
	if summary.Rounds != 2 || summary.Best != 70 {
		t.Errorf("Summary() = %+v, want {Rounds:2 Best:70}", summary)
	}
}

func TestGameEatRecordsScore(t *testing.T) {
	g, _ := newTestGame(t)
	g.handleEvent(context.Background(), runeKey(' '))

	head := g.state.Snake.Head()
	g.state.Food = head.Add(world.Right)

	g.frame(time.Unix(7000, 0))

	if g.state.Score != 10 {
		t.Errorf("Score = %d, want 10", g.state.Score)
	}
	if g.state.Snake.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.state.Snake.Len())
	}
}

func TestGameResizeSyncs(t *testing.T) {
	g, term := newTestGame(t)
	g.handleEvent(context.Background(), tcell.NewEventResize(100, 40))

	if term.syncs != 1 {
		t.Errorf("syncs = %d, want 1", term.syncs)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	g, term := newTestGame(t)

	term.events <- runeKey(' ')
	term.events <- runeKey('q')

	errc := make(chan error, 1)
	go func() { errc <- g.Run(context.Background()) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after quit key")
	}

	if !term.closed {
		t.Error("Run() should close the terminal")
	}
	if g.Summary().Rounds != 1 {
		t.Errorf("Rounds = %d, want 1", g.Summary().Rounds)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	g, term := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}

	if !term.closed {
		t.Error("Run() should close the terminal")
	}
}
