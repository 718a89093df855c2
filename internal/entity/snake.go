// Package entity provides the snake that moves around the grid.
package entity

import "github.com/samdwyer/snake/internal/world"

// Snake is an ordered body of cells, head first.
// The body always holds at least one cell.
type Snake struct {
	Body []world.Cell
}

// NewSnake creates a one-cell snake at the given position.
func NewSnake(start world.Cell) *Snake {
	return &Snake{Body: []world.Cell{start}}
}

// Head returns the first body cell.
func (s *Snake) Head() world.Cell {
	return s.Body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() world.Cell {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies returns true if any body cell equals c.
func (s *Snake) Occupies(c world.Cell) bool {
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// Grow prepends a new head, lengthening the snake by one.
func (s *Snake) Grow(head world.Cell) {
	s.Body = append(s.Body, world.Cell{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = head
}

// Advance prepends a new head and drops the tail, keeping the length.
func (s *Snake) Advance(head world.Cell) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head
}
