package sim

import "github.com/samdwyer/snake/internal/world"

// Input is an abstract key press, independent of the terminal.
type Input int

const (
	// InputOther is any key without a game meaning.
	InputOther Input = iota
	// InputUp and the other arrows steer while running.
	InputUp
	InputDown
	InputLeft
	InputRight
	// InputConfirm restarts after game over.
	InputConfirm
)

// String returns a human-readable input name.
func (in Input) String() string {
	switch in {
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputConfirm:
		return "confirm"
	default:
		return "other"
	}
}

// Direction returns the steering direction for arrow inputs, or world.None.
func (in Input) Direction() world.Direction {
	switch in {
	case InputUp:
		return world.Up
	case InputDown:
		return world.Down
	case InputLeft:
		return world.Left
	case InputRight:
		return world.Right
	default:
		return world.None
	}
}

// Turn requests a new direction for the next tick. A request that reverses
// the direction of the last tick is ignored. Later requests before the next
// tick replace earlier ones.
func (s *State) Turn(d world.Direction) bool {
	if s.Phase != PhaseRunning || d == world.None {
		return false
	}
	if d.Reverses(s.Dir) {
		return false
	}
	s.pending = d
	return true
}

// HandleInput applies a key press according to the current phase and
// reports whether it started a new round.
//
// Ready: any input starts. Over: only confirm resets and starts.
// Running: arrows steer.
func (s *State) HandleInput(in Input) bool {
	switch s.Phase {
	case PhaseReady:
		return s.Start()
	case PhaseOver:
		if in != InputConfirm {
			return false
		}
		s.Reset()
		return s.Start()
	default:
		s.Turn(in.Direction())
		return false
	}
}
