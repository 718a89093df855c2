package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Swatch is how one kind of board element is drawn.
type Swatch struct {
	Glyph string `json:"glyph,omitempty"` // Character drawn in each column of a cell
	Fg    string `json:"fg,omitempty"`    // Foreground hex colour
	Bg    string `json:"bg,omitempty"`    // Background hex colour
}

// GlyphRune returns the first rune of the glyph, or a space if unset.
func (s Swatch) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(s.Glyph)
	if size == 0 || r == utf8.RuneError {
		return ' '
	}
	return r
}

// Style builds the tcell style for the swatch. Unparseable colours fall
// back to the terminal default.
func (s Swatch) Style() tcell.Style {
	style := tcell.StyleDefault
	if s.Fg != "" {
		if c, err := ParseHexColor(s.Fg); err == nil {
			style = style.Foreground(c)
		}
	}
	if s.Bg != "" {
		if c, err := ParseHexColor(s.Bg); err == nil {
			style = style.Background(c)
		}
	}
	return style
}

// Theme defines the look of the board loaded from JSON.
type Theme struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "neon")
	Name   string `json:"name"`   // Display name
	Snake  Swatch `json:"snake"`  // Body segments
	Head   Swatch `json:"head"`   // Head cell; the glyph is drawn as eyes
	Food   Swatch `json:"food"`   // Food cell
	Border Swatch `json:"border"` // Board frame
	Text   Swatch `json:"text"`   // HUD line
	Panel  Swatch `json:"panel"`  // Start and game-over overlays
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []Theme `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]Theme, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}
