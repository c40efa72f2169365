// Package render draws a game into a core.Screen. It only reads game state;
// the terminal front end decides when to draw and how to show the buffer.
package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme is the cell used for each board element.
type Theme struct {
	Head     core.Cell
	Body     core.Cell
	Food     core.Cell
	Obstacle core.Cell
	Wall     core.Cell
	HUD      core.Color
}

// NewTheme builds a Theme from its configuration.
func NewTheme(cfg config.ThemeConfig) (Theme, error) {
	palette, err := cfg.Colors.Parse()
	if err != nil {
		return Theme{}, fmt.Errorf("render: %w", err)
	}

	glyph := func(name, s string) (rune, error) {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || size != len(s) {
			return 0, fmt.Errorf("render: glyph %s %q must be a single character", name, s)
		}
		return r, nil
	}

	var th Theme
	cells := []struct {
		name  string
		glyph string
		color core.Color
		dst   *core.Cell
	}{
		{"head", cfg.Glyphs.Head, palette.Head, &th.Head},
		{"body", cfg.Glyphs.Body, palette.Body, &th.Body},
		{"food", cfg.Glyphs.Food, palette.Food, &th.Food},
		{"obstacle", cfg.Glyphs.Obstacle, palette.Obstacle, &th.Obstacle},
		{"wall", cfg.Glyphs.Wall, palette.Wall, &th.Wall},
	}
	for _, c := range cells {
		r, err := glyph(c.name, c.glyph)
		if err != nil {
			return Theme{}, err
		}
		*c.dst = core.Cell{Rune: r, Color: c.color}
	}
	th.HUD = palette.HUD
	return th, nil
}

// DefaultTheme is the theme of the built-in configuration.
func DefaultTheme() Theme {
	th, err := NewTheme(config.DefaultConfig().Theme)
	if err != nil {
		panic(err) // built-in theme is static
	}
	return th
}

// ASCIITheme is the plain theme used by previews and --ascii output.
func ASCIITheme() Theme {
	th, err := NewTheme(config.ThemeConfig{Glyphs: config.ASCIIGlyphs()})
	if err != nil {
		panic(err)
	}
	return th
}
