package world

import "testing"

func TestCellAdd(t *testing.T) {
	c := Cell{X: 10, Y: 10}

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{Up, Cell{10, 9}},
		{Down, Cell{10, 11}},
		{Left, Cell{9, 10}},
		{Right, Cell{11, 10}},
		{None, Cell{10, 10}},
	}

	for _, tt := range tests {
		if got := c.Add(tt.dir); got != tt.expected {
			t.Errorf("Add(%s) = %v, want %v", tt.dir, got, tt.expected)
		}
	}
}

func TestDirectionReverses(t *testing.T) {
	tests := []struct {
		next, current Direction
		expected      bool
	}{
		{Left, Right, true},
		{Right, Left, true},
		{Up, Down, true},
		{Down, Up, true},
		{Up, Right, false},
		{Right, Right, false},
		{Left, None, false},
		{None, None, false},
	}

	for _, tt := range tests {
		if got := tt.next.Reverses(tt.current); got != tt.expected {
			t.Errorf("%s.Reverses(%s) = %v, want %v", tt.next, tt.current, got, tt.expected)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{None, "none"},
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
		{Direction{2, 3}, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.expected {
			t.Errorf("Direction%v.String() = %q, want %q", tt.dir, got, tt.expected)
		}
	}
}
