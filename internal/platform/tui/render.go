package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ansiCodes gives the terminal colour for each core.Color.
// ColorDefault is absent and renders unstyled.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// cellStyles is built once from ansiCodes.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// Text styles for the menu screens.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 3)
)

// DisableColor makes every style render as plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// span is a run of same-coloured cells within a row.
type span struct {
	color core.Color
	text  []rune
}

// rowSpans splits row y of s into maximal same-colour runs.
func rowSpans(s *core.Screen, y int) []span {
	var spans []span
	for x := range s.Width() {
		c := s.GetCell(x, y)
		if n := len(spans); n > 0 && spans[n-1].color == c.Color {
			spans[n-1].text = append(spans[n-1].text, c.Rune)
			continue
		}
		spans = append(spans, span{color: c.Color, text: []rune{c.Rune}})
	}
	return spans
}

// RenderScreen turns a Screen into styled text, one escape sequence per
// colour run rather than per cell.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var b strings.Builder
		for _, sp := range rowSpans(s, y) {
			style, ok := cellStyles[sp.color]
			if !ok {
				b.WriteString(string(sp.text))
				continue
			}
			b.WriteString(style.Render(string(sp.text)))
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
