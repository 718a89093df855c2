package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/gamedata"
	"github.com/samdwyer/snake/internal/sim"
	"github.com/samdwyer/snake/internal/world"
)

const (
	// CellWidth is the number of terminal columns per grid cell. Terminal
	// cells are roughly twice as tall as wide, so two columns keep the
	// board square.
	CellWidth = 2

	hudRow   = 0 // Score line
	boardTop = 1 // Row of the top border
)

// HUD carries values shown on screen that live outside the game state.
type HUD struct {
	Best int // Best score this session
}

// Renderer handles drawing the game to a surface.
type Renderer struct {
	surface Surface

	snake  tcell.Style
	head   tcell.Style
	food   tcell.Style
	border tcell.Style
	text   tcell.Style
	panel  tcell.Style

	snakeGlyph rune
	headGlyph  rune
	foodGlyph  rune
}

// NewRenderer creates a renderer drawing onto surface with the given theme.
func NewRenderer(surface Surface, theme *gamedata.Theme) *Renderer {
	return &Renderer{
		surface:    surface,
		snake:      theme.Snake.Style(),
		head:       theme.Head.Style(),
		food:       theme.Food.Style(),
		border:     theme.Border.Style(),
		text:       theme.Text.Style(),
		panel:      theme.Panel.Style().Bold(true),
		snakeGlyph: theme.Snake.GlyphRune(),
		headGlyph:  theme.Head.GlyphRune(),
		foodGlyph:  theme.Food.GlyphRune(),
	}
}

// CellOrigin returns the screen position of the left column of a grid cell.
func CellOrigin(c world.Cell) (x, y int) {
	return 1 + c.X*CellWidth, boardTop + 1 + c.Y
}

// Render draws the full frame for the given state. It never modifies state.
func (r *Renderer) Render(state *sim.State, hud HUD) {
	r.surface.Clear()

	r.drawHUD(state, hud)
	r.drawBorder(state.Grid.Size)

	r.drawCell(state.Food, r.foodGlyph, r.food)
	for i, segment := range state.Snake.Body {
		if i == 0 {
			continue
		}
		r.drawCell(segment, r.snakeGlyph, r.snake)
	}
	// Head last so its eyes sit on top of anything underneath
	r.drawCell(state.Snake.Head(), r.headGlyph, r.head)

	switch state.Phase {
	case sim.PhaseReady:
		r.drawPanel(state.Grid.Size,
			"S N A K E",
			"",
			"Press any key to start",
			"Arrows/WASD steer, q quits",
		)
	case sim.PhaseOver:
		r.drawPanel(state.Grid.Size,
			"GAME OVER",
			fmt.Sprintf("Final score: %d", state.Score),
			"",
			"Press SPACE to play again",
		)
	}

	r.surface.Show()
}

// drawHUD writes the score line above the board.
func (r *Renderer) drawHUD(state *sim.State, hud HUD) {
	best := hud.Best
	if state.Score > best {
		best = state.Score
	}
	r.drawText(1, hudRow, fmt.Sprintf("SCORE %d   BEST %d   LENGTH %d", state.Score, best, state.Snake.Len()), r.text)
}

// drawBorder frames a size x size board.
func (r *Renderer) drawBorder(size int) {
	left, top := 0, boardTop
	right, bottom := 1+size*CellWidth, boardTop+size+1

	for x := left + 1; x < right; x++ {
		r.surface.SetContent(x, top, tcell.RuneHLine, r.border)
		r.surface.SetContent(x, bottom, tcell.RuneHLine, r.border)
	}
	for y := top + 1; y < bottom; y++ {
		r.surface.SetContent(left, y, tcell.RuneVLine, r.border)
		r.surface.SetContent(right, y, tcell.RuneVLine, r.border)
	}
	r.surface.SetContent(left, top, tcell.RuneULCorner, r.border)
	r.surface.SetContent(right, top, tcell.RuneURCorner, r.border)
	r.surface.SetContent(left, bottom, tcell.RuneLLCorner, r.border)
	r.surface.SetContent(right, bottom, tcell.RuneLRCorner, r.border)
}

// drawCell fills both columns of a grid cell.
func (r *Renderer) drawCell(c world.Cell, glyph rune, style tcell.Style) {
	x, y := CellOrigin(c)
	for i := 0; i < CellWidth; i++ {
		r.surface.SetContent(x+i, y, glyph, style)
	}
}

// drawPanel draws a centred box over the board containing the given lines.
func (r *Renderer) drawPanel(size int, lines ...string) {
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	width += 4
	height := len(lines) + 2

	boardWidth := size*CellWidth + 2
	boardHeight := size + 2
	x0 := (boardWidth - width) / 2
	if x0 < 0 {
		x0 = 0
	}
	y0 := boardTop + (boardHeight-height)/2
	if y0 < boardTop {
		y0 = boardTop
	}

	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.surface.SetContent(x, y, ' ', r.panel)
		}
	}
	for i, line := range lines {
		n := len([]rune(line))
		r.drawText(x0+(width-n)/2, y0+1+i, line, r.panel)
	}
}

// drawText writes a single line of text starting at (x, y).
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	i := 0
	for _, ch := range msg {
		r.surface.SetContent(x+i, y, ch, style)
		i++
	}
}
