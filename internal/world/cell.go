// Package world provides the grid the snake moves on.
package world

// Cell is a single grid position.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell one step in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

var (
	// None is the zero direction used before a round starts.
	None = Direction{0, 0}
	// Up decreases Y (screen coordinates).
	Up = Direction{0, -1}
	// Down increases Y.
	Down = Direction{0, 1}
	// Left decreases X.
	Left = Direction{-1, 0}
	// Right increases X.
	Right = Direction{1, 0}
)

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Reverses reports whether moving in d would turn straight back onto current.
func (d Direction) Reverses(current Direction) bool {
	return d != None && d == current.Opposite()
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
