package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Game is the read-only view of a game the renderer needs.
// *snake.State satisfies it.
type Game interface {
	Width() int
	Height() int
	Obstacles() levels.Obstacles
	Food() core.Point
	Snake() snake.Snake
	Score() int
	Progress() snake.Progress
	Speed() time.Duration
	Description() string
	Endless() bool
}

// HUDHeight is the number of rows above the board: stats, level line, rule.
const HUDHeight = 3

// FrameSize returns the screen size Frame needs for a width×height board
// with an optional footer line.
func FrameSize(width, height int, footer bool) (int, int) {
	h := HUDHeight + height
	if footer {
		h++
	}
	return max(width, hudMinWidth), h
}

// hudMinWidth keeps the stats line readable on the smallest boards.
const hudMinWidth = 60

// Frame draws the HUD, the board and an optional footer into a new screen.
func Frame(g Game, th Theme, footer string) *core.Screen {
	w, h := FrameSize(g.Width(), g.Height(), footer != "")
	dst := core.NewScreen(w, h)

	HUD(dst, g, th)
	Board(dst, core.Pt(0, HUDHeight), g, th)
	if footer != "" {
		dst.DrawText(0, h-1, footer)
	}
	return dst
}

// HUD writes the stats and level lines and the separator rule at the top of dst.
func HUD(dst *core.Screen, g Game, th Theme) {
	p := g.Progress()
	stats := fmt.Sprintf("Score: %-6d %s  Speed: %.2fs", g.Score(), p, g.Speed().Seconds())
	if g.Endless() {
		stats += "  (endless)"
	}
	dst.DrawTextColored(0, 0, stats, th.HUD)
	dst.DrawText(0, 1, fmt.Sprintf("Level %d: %s", p.Level, g.Description()))
	dst.DrawText(0, 2, strings.Repeat("─", dst.Width()))
}

// Board draws the playing field with its top-left corner at origin.
// Later layers win: wall, obstacles, food, body, head.
func Board(dst *core.Screen, origin core.Point, g Game, th Theme) {
	drawField(dst, origin, g.Width(), g.Height(), g.Obstacles(), th)

	put := func(p core.Point, c core.Cell) {
		dst.SetCell(origin.X+p.X, origin.Y+p.Y, c)
	}

	put(g.Food(), th.Food)

	body := g.Snake().Body()
	for i := len(body) - 1; i >= 1; i-- {
		put(body[i], th.Body)
	}
	if len(body) > 0 {
		put(body[0], th.Head)
	}
}

func drawField(dst *core.Screen, origin core.Point, width, height int, obs levels.Obstacles, th Theme) {
	interior := core.Interior(width, height)
	core.NewRect(0, 0, width, height).Each(func(p core.Point) {
		if !interior.Contains(p) {
			dst.SetCell(origin.X+p.X, origin.Y+p.Y, th.Wall)
		}
	})
	for _, p := range obs.Points() {
		dst.SetCell(origin.X+p.X, origin.Y+p.Y, th.Obstacle)
	}
}

// Preview draws a level's layout on an empty board: walls and obstacles only.
func Preview(level, width, height int, th Theme) *core.Screen {
	dst := core.NewScreen(width, height)
	drawField(dst, core.Point{}, width, height, levels.For(level, width, height), th)
	return dst
}
