package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// SourceEmbedded is Config.Source when no file was found.
const SourceEmbedded = "embedded"

// DefaultConfig returns the built-in configuration.
// It matches defaults/snake.yaml and backs it if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  30,
			Height: 20,
		},
		Game: GameConfig{
			StartLevel: 1,
			Endless:    false,
			FPS:        60,
		},
		Theme: ThemeConfig{
			Glyphs: GlyphConfig{
				Head:     "●",
				Body:     "○",
				Food:     "@",
				Obstacle: "■",
				Wall:     "█",
			},
			Colors: ColorConfig{
				Head:     "bright_green",
				Body:     "green",
				Food:     "bright_red",
				Obstacle: "blue",
				Wall:     "gray",
				HUD:      "bright_cyan",
			},
		},
		Source: SourceEmbedded,
	}
}

// ASCIIGlyphs is a glyph set for terminals without Unicode block characters.
func ASCIIGlyphs() GlyphConfig {
	return GlyphConfig{
		Head:     "O",
		Body:     "o",
		Food:     "*",
		Obstacle: "X",
		Wall:     "#",
	}
}
