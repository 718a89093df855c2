package sim

// Outcome describes what a single Step did.
type Outcome int

const (
	// OutcomeIdle means the game was not running and nothing changed.
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the snake moved without eating.
	OutcomeMoved
	// OutcomeAte means the snake ate the food and grew by one.
	OutcomeAte
	// OutcomeWall means the head left the grid.
	OutcomeWall
	// OutcomeSelf means the head ran into the body.
	OutcomeSelf
	// OutcomeBoardFull means the snake covers every cell.
	OutcomeBoardFull
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Ended reports whether the outcome finished the round.
func (o Outcome) Ended() bool {
	return o == OutcomeWall || o == OutcomeSelf || o == OutcomeBoardFull
}

// Step advances the snake one cell in the pending direction.
//
// The new head ends the round if it leaves the grid or lands on any current
// body cell, the tail included. Otherwise it is prepended; eating the food
// scores and relocates it, any other move drops the tail.
func (s *State) Step() Outcome {
	if s.Phase != PhaseRunning {
		return OutcomeIdle
	}

	s.Dir = s.pending
	s.Ticks++

	head := s.Snake.Head().Add(s.Dir)

	if !s.Grid.Contains(head) {
		s.Phase = PhaseOver
		return OutcomeWall
	}
	if s.Snake.Occupies(head) {
		s.Phase = PhaseOver
		return OutcomeSelf
	}

	if head != s.Food {
		s.Snake.Advance(head)
		return OutcomeMoved
	}

	s.Snake.Grow(head)
	s.Score += s.rules.ScorePerFood
	if !s.PlaceFood() {
		s.Phase = PhaseOver
		return OutcomeBoardFull
	}
	return OutcomeAte
}
