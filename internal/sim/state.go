// Package sim holds the snake game rules: state, stepping, food placement
// and input handling. It has no terminal dependency.
package sim

import (
	"math/rand"

	"github.com/samdwyer/snake/internal/entity"
	"github.com/samdwyer/snake/internal/world"
)

// Phase represents where the game is in its lifecycle.
type Phase int

const (
	// PhaseReady shows the start panel and waits for any key.
	PhaseReady Phase = iota
	// PhaseRunning advances the snake every tick.
	PhaseRunning
	// PhaseOver shows the final score and waits for confirm.
	PhaseOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Rules are the fixed parameters of a game.
type Rules struct {
	TileCount    int // Cells along each side of the grid
	ScorePerFood int // Points awarded per food eaten
}

// DefaultRules returns the classic 20x20 board scoring 10 per food.
func DefaultRules() Rules {
	return Rules{
		TileCount:    world.DefaultTileCount,
		ScorePerFood: 10,
	}
}

// State is the complete game state. It is owned by a single caller and
// mutated only through its methods.
type State struct {
	Grid  world.Grid
	Snake *entity.Snake
	Food  world.Cell
	Dir   world.Direction // Direction applied on the last tick
	Score int
	Phase Phase
	Ticks int // Ticks taken in the current round
	Round int // Rounds started since creation

	pending world.Direction
	rules   Rules
	seed    int64
	rng     *rand.Rand
}

// New creates a game in PhaseReady. The seed drives food placement; each
// round derives its own sequence from it.
func New(rules Rules, seed int64) *State {
	s := &State{
		Grid:  world.NewGrid(rules.TileCount),
		rules: rules,
		seed:  seed,
	}
	s.Reset()
	return s
}

// Rules returns the parameters the state was created with.
func (s *State) Rules() Rules {
	return s.rules
}

// Running reports whether the snake is currently moving.
func (s *State) Running() bool {
	return s.Phase == PhaseRunning
}

// Pending returns the direction that the next tick will apply.
func (s *State) Pending() world.Direction {
	return s.pending
}

// Reset restores the initial layout: a one-cell snake in the centre, no
// direction, zero score and freshly placed food. Resetting again before the
// next Start yields the same layout.
func (s *State) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed + int64(s.Round)))
	s.Snake = entity.NewSnake(s.Grid.Center())
	s.Dir = world.None
	s.pending = world.None
	s.Score = 0
	s.Ticks = 0
	s.Phase = PhaseReady
	s.PlaceFood()
}

// Start begins a round from PhaseReady, heading right.
// It returns false if the game is not waiting to start.
func (s *State) Start() bool {
	if s.Phase != PhaseReady {
		return false
	}
	s.Phase = PhaseRunning
	s.Dir = world.Right
	s.pending = world.Right
	s.Round++
	return true
}

// PlaceFood moves the food to a random cell not covered by the snake.
// It returns false, leaving the food untouched, when no free cell exists.
func (s *State) PlaceFood() bool {
	if s.Snake.Len() >= s.Grid.Area() {
		return false
	}
	for {
		c := s.Grid.RandomCell(s.rng)
		if !s.Snake.Occupies(c) {
			s.Food = c
			return true
		}
	}
}
