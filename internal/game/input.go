package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/snake/internal/sim"
)

// inputFromKey maps a terminal key press to a game input. quit is true for
// keys that leave the program.
func inputFromKey(ev *tcell.EventKey) (in sim.Input, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return sim.InputOther, true

	case tcell.KeyUp:
		return sim.InputUp, false
	case tcell.KeyDown:
		return sim.InputDown, false
	case tcell.KeyLeft:
		return sim.InputLeft, false
	case tcell.KeyRight:
		return sim.InputRight, false
	case tcell.KeyEnter:
		return sim.InputConfirm, false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return sim.InputOther, true
		case ' ':
			return sim.InputConfirm, false
		case 'w', 'W':
			return sim.InputUp, false
		case 's', 'S':
			return sim.InputDown, false
		case 'a', 'A':
			return sim.InputLeft, false
		case 'd', 'D':
			return sim.InputRight, false
		}
	}
	return sim.InputOther, false
}
