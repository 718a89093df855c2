package world

import "math/rand"

// DefaultTileCount is the number of cells along each side of the grid.
const DefaultTileCount = 20

// Grid is the square TileCount x TileCount lattice.
type Grid struct {
	Size int
}

// NewGrid creates a square grid with the given side length.
func NewGrid(size int) Grid {
	return Grid{Size: size}
}

// Contains returns true if the cell lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{X: g.Size / 2, Y: g.Size / 2}
}

// Area returns the total number of cells.
func (g Grid) Area() int {
	return g.Size * g.Size
}

// RandomCell picks a cell uniformly at random.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.Size), Y: rng.Intn(g.Size)}
}
