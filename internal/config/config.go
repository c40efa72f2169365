// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for a game session.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Game  GameConfig  `yaml:"game"`
	Theme ThemeConfig `yaml:"theme"`

	// Source is the file the values were read from, or "embedded".
	Source string `yaml:"-"`
}

// BoardConfig defines the playing field. Sizes include the border ring.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameConfig defines progression and pacing.
type GameConfig struct {
	StartLevel int  `yaml:"start_level"`
	Endless    bool `yaml:"endless"`
	FPS        int  `yaml:"fps"` // Input polling rate
}

// ThemeConfig defines how the board is drawn.
type ThemeConfig struct {
	Glyphs GlyphConfig `yaml:"glyphs"`
	Colors ColorConfig `yaml:"colors"`
}

// GlyphConfig holds one character per board element.
type GlyphConfig struct {
	Head     string `yaml:"head"`
	Body     string `yaml:"body"`
	Food     string `yaml:"food"`
	Obstacle string `yaml:"obstacle"`
	Wall     string `yaml:"wall"`
}

// ColorConfig holds color names such as "green" or "bright_red".
type ColorConfig struct {
	Head     string `yaml:"head"`
	Body     string `yaml:"body"`
	Food     string `yaml:"food"`
	Obstacle string `yaml:"obstacle"`
	Wall     string `yaml:"wall"`
	HUD      string `yaml:"hud"`
}

// Limits checked by Validate.
const (
	MinBoardSize = 5
	MinFPS       = 1
	MaxFPS       = 240
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width < MinBoardSize || c.Board.Height < MinBoardSize {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, MinBoardSize, MinBoardSize))
	}
	if c.Game.FPS < MinFPS || c.Game.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("fps %d outside %d..%d", c.Game.FPS, MinFPS, MaxFPS))
	}
	if c.Game.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("start_level %d must be at least 1", c.Game.StartLevel))
	}

	glyphs := map[string]string{
		"head":     c.Theme.Glyphs.Head,
		"body":     c.Theme.Glyphs.Body,
		"food":     c.Theme.Glyphs.Food,
		"obstacle": c.Theme.Glyphs.Obstacle,
		"wall":     c.Theme.Glyphs.Wall,
	}
	for _, name := range []string{"head", "body", "food", "obstacle", "wall"} {
		if utf8.RuneCountInString(glyphs[name]) != 1 {
			errs = append(errs, fmt.Errorf("glyph %s %q must be a single character", name, glyphs[name]))
		}
	}

	if _, err := c.Theme.Colors.Parse(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Palette is a ColorConfig resolved to terminal colors.
type Palette struct {
	Head, Body, Food, Obstacle, Wall, HUD core.Color
}

// Parse resolves the color names.
func (c ColorConfig) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"head", c.Head, &p.Head},
		{"body", c.Body, &p.Body},
		{"food", c.Food, &p.Food},
		{"obstacle", c.Obstacle, &p.Obstacle},
		{"wall", c.Wall, &p.Wall},
		{"hud", c.HUD, &p.HUD},
	}
	for _, f := range fields {
		color, err := core.ParseColor(f.src)
		if err != nil {
			return Palette{}, fmt.Errorf("color %s: %w", f.name, err)
		}
		*f.dst = color
	}
	return p, nil
}
