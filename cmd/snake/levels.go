package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/levels"
)

var flagLevelsCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `Shows every campaign level with its speed and the number of obstacles
it places on the configured board.

Examples:
  snake levels
  snake levels --width 40 --height 25
  snake levels --count 15`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width including the border")
	levelsCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height including the border")
	levelsCmd.Flags().IntVar(&flagLevelsCount, "count", levels.MaxLevel, "Number of levels to list")
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagLevelsCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", flagLevelsCount)
	}
	w, h := cfg.Board.Width, cfg.Board.Height

	// Calculate column widths
	maxNameLen := len("Name")
	for level := 1; level <= flagLevelsCount; level++ {
		maxNameLen = max(maxNameLen, len(levels.Name(level)))
	}

	fmt.Printf("Levels on a %dx%d board:\n\n", w, h)
	fmt.Printf("  %5s  %-*s  %6s  %9s\n", "Level", maxNameLen, "Name", "Speed", "Obstacles")
	fmt.Printf("  %5s  %-*s  %6s  %9s\n", "-----", maxNameLen, "----", "-----", "---------")

	for level := 1; level <= flagLevelsCount; level++ {
		fmt.Printf("  %5d  %-*s  %5.2fs  %9d\n",
			level, maxNameLen, levels.Name(level),
			levels.Speed(level).Seconds(), levels.For(level, w, h).Len())
	}

	fmt.Println()
	fmt.Println("Run 'snake preview <level>' to see a layout.")
	return nil
}
