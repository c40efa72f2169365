package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestNewThemeFromConfig(t *testing.T) {
	th, err := NewTheme(config.DefaultConfig().Theme)

	require.NoError(t, err)
	assert.Equal(t, core.Cell{Rune: '●', Color: core.ColorBrightGreen}, th.Head)
	assert.Equal(t, core.Cell{Rune: '@', Color: core.ColorBrightRed}, th.Food)
	assert.Equal(t, core.ColorBrightCyan, th.HUD)
}

func TestNewThemeRejectsBadGlyphs(t *testing.T) {
	cfg := config.DefaultConfig().Theme
	cfg.Glyphs.Wall = "##"
	_, err := NewTheme(cfg)
	assert.Error(t, err)

	cfg = config.DefaultConfig().Theme
	cfg.Colors.Head = "ultraviolet"
	_, err = NewTheme(cfg)
	assert.Error(t, err)
}

func TestASCIIThemeIsUncolored(t *testing.T) {
	th := ASCIITheme()

	assert.Equal(t, 'O', th.Head.Rune)
	assert.Equal(t, '#', th.Wall.Rune)
	assert.Equal(t, core.ColorDefault, th.Wall.Color)
}

func TestPreviewOpenField(t *testing.T) {
	got := Preview(1, 5, 5, ASCIITheme()).String()

	want := strings.Join([]string{
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestPreviewDrawsObstacles(t *testing.T) {
	scr := Preview(2, 20, 15, ASCIITheme())

	for _, p := range levels.For(2, 20, 15).Points() {
		assert.Equal(t, 'X', scr.Get(p.X, p.Y), "obstacle at %v", p)
	}
	assert.Equal(t, ' ', scr.Get(1, 1))
	assert.Equal(t, '#', scr.Get(0, 7))
	assert.Equal(t, '#', scr.Get(19, 14))
}

func TestFrameLayout(t *testing.T) {
	s, err := snake.New(20, 15, snake.WithSeed(1))
	require.NoError(t, err)

	scr := Frame(s, ASCIITheme(), "q: quit")

	w, h := FrameSize(20, 15, true)
	require.Equal(t, w, scr.Width())
	require.Equal(t, h, scr.Height())

	assert.Contains(t, scr.Row(0), "Score: 0")
	assert.Contains(t, scr.Row(0), "Level 1 - Food: 0/5")
	assert.Contains(t, scr.Row(0), "Speed: 0.40s")
	assert.Contains(t, scr.Row(1), "Level 1: Open Field - Learn the basics")
	assert.Contains(t, scr.Row(h-1), "q: quit")

	head := s.Snake().Head()
	assert.Equal(t, 'O', scr.Get(head.X, HUDHeight+head.Y))
	food := s.Food()
	assert.Equal(t, '*', scr.Get(food.X, HUDHeight+food.Y))
	assert.Equal(t, '#', scr.Get(0, HUDHeight))
}

func TestFrameWithoutFooter(t *testing.T) {
	s, err := snake.New(8, 8, snake.WithSeed(3), snake.WithEndless())
	require.NoError(t, err)

	scr := Frame(s, DefaultTheme(), "")

	assert.Equal(t, HUDHeight+8, scr.Height())
	assert.Contains(t, scr.Row(0), "(endless)")

	head := s.Snake().Head()
	assert.Equal(t, core.Cell{Rune: '●', Color: core.ColorBrightGreen}, scr.GetCell(head.X, HUDHeight+head.Y))
}
