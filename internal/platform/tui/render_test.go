package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRowSpansGroupByColor(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawTextColored(3, 0, "x", core.ColorRed)

	spans := rowSpans(s, 0)
	require.Len(t, spans, 4)
	assert.Equal(t, span{color: core.ColorGreen, text: []rune("ab")}, spans[0])
	assert.Equal(t, span{color: core.ColorDefault, text: []rune(" ")}, spans[1])
	assert.Equal(t, span{color: core.ColorRed, text: []rune("x")}, spans[2])
	assert.Equal(t, span{color: core.ColorDefault, text: []rune(" ")}, spans[3])
}

func TestRenderScreenPlainProfile(t *testing.T) {
	DisableColor()

	s := core.NewScreen(3, 2)
	s.DrawTextColored(0, 0, "●○", core.ColorBrightGreen)
	s.DrawText(0, 1, "@#")

	assert.Equal(t, s.String(), RenderScreen(s))
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := range ansiCodes {
		_, ok := cellStyles[c]
		assert.True(t, ok, "color %v", c)
	}
	_, ok := cellStyles[core.ColorDefault]
	assert.False(t, ok, "default renders unstyled")
}
