package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func startView(th render.Theme) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString("Steer with W/A/S/D or the arrow keys.\n")
	fmt.Fprintf(&b, "Eat food (%c) to grow and score.\n", th.Food.Rune)
	b.WriteString("Walls, obstacles and your own tail are fatal.\n")
	fmt.Fprintf(&b, "Eat %d to clear a level; each one is faster\n", snake.FoodsPerLevel)
	b.WriteString("and brings a new obstacle layout.\n\n")
	fmt.Fprintf(&b, "%d levels. Clear them all to win.\n\n", levels.MaxLevel)
	b.WriteString(dimStyle.Render("i: instructions   q: quit   any other key: start"))
	return panelStyle.Render(b.String())
}

func instructionsView(th render.Theme) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("INSTRUCTIONS"))
	b.WriteString("\n\n")

	b.WriteString("Scoring\n")
	fmt.Fprintf(&b, "  food eaten        +%d\n", snake.FoodScore)
	fmt.Fprintf(&b, "  level completed   +%d\n\n", snake.LevelBonus)

	b.WriteString("Levels\n")
	for level := 1; level <= levels.MaxLevel; level++ {
		fmt.Fprintf(&b, "  %2d  %s\n", level, levels.Description(level))
	}
	b.WriteString("\n")

	b.WriteString("Symbols\n")
	fmt.Fprintf(&b, "  %c head   %c body   %c food   %c obstacle   %c wall\n\n",
		th.Head.Rune, th.Body.Rune, th.Food.Rune, th.Obstacle.Rune, th.Wall.Rune)

	b.WriteString(dimStyle.Render("any key: back"))
	return panelStyle.Render(b.String())
}

func pausedView(g *snake.State) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("PAUSED"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score:    %d\n", g.Score())
	fmt.Fprintf(&b, "Level:    %d\n", g.Level())
	p := g.Progress()
	fmt.Fprintf(&b, "Progress: %d/%d\n\n", p.FoodsEaten, p.FoodsPerLevel)
	b.WriteString(dimStyle.Render("p: resume   q: quit"))
	return panelStyle.Render(b.String())
}

func levelCompleteView(g *snake.State, completed int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LEVEL COMPLETE"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Level %d cleared!\n", completed)
	fmt.Fprintf(&b, "Score: %d (bonus +%d)\n\n", g.Score(), snake.LevelBonus)
	fmt.Fprintf(&b, "Next: level %d\n", g.Level())
	b.WriteString(levels.Description(g.Level()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("any key: continue"))
	return panelStyle.Render(b.String())
}

func endView(g *snake.State) string {
	var b strings.Builder
	if g.IsGameWon() {
		b.WriteString(titleStyle.Render("YOU WIN!"))
		b.WriteString("\n\nEvery level cleared.\n")
	} else {
		b.WriteString(alertStyle.Render("GAME OVER"))
		b.WriteString("\n\n")
		b.WriteString(causeText(g.Cause()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Final score:    %d\n", g.Score())
	fmt.Fprintf(&b, "Level reached:  %d\n", g.Level())
	fmt.Fprintf(&b, "Food eaten:     %d\n", g.FoodsTotal())
	if n := g.LevelsCleared(); n > 0 {
		fmt.Fprintf(&b, "Levels cleared: %d\n", n)
	}
	b.WriteString("\nPlay again?\n\n")
	b.WriteString(dimStyle.Render("y: play again   n: quit   i: instructions"))
	return panelStyle.Render(b.String())
}

func causeText(c snake.Cause) string {
	switch c {
	case snake.CauseWall:
		return "You hit the wall."
	case snake.CauseObstacle:
		return "You hit an obstacle."
	case snake.CauseSelf:
		return "You bit yourself."
	case snake.CauseBoardFull:
		return "No room left for food."
	default:
		return ""
	}
}

func tooSmallView(needW, needH, haveW, haveH int) string {
	return alertStyle.Render("Window too small") + "\n" +
		fmt.Sprintf("need %dx%d, have %dx%d\n", needW, needH, haveW, haveH) +
		dimStyle.Render("resize to continue")
}
