package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview <level>",
	Short: "Draw a level's obstacle layout",
	Long: `Prints a level's walls and obstacles in plain ASCII.

Examples:
  snake preview 2
  snake preview 9 --width 50 --height 30`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width including the border")
	previewCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height including the border")
}

func runPreview(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[0])
	if err != nil || level < 1 {
		return fmt.Errorf("level must be a positive number, got %q", args[0])
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	w, h := cfg.Board.Width, cfg.Board.Height

	fmt.Printf("Level %d: %s\n", level, levels.Description(level))
	fmt.Printf("Speed %.2fs, %d obstacles\n\n", levels.Speed(level).Seconds(), levels.For(level, w, h).Len())
	fmt.Println(render.Preview(level, w, h, render.ASCIITheme()).String())
	return nil
}
