package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/pilot"
	"github.com/vovakirdan/tui-snake/internal/sim"
)

var (
	flagGames    int
	flagPilot    string
	flagMaxTicks int
	flagWorkers  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless games with an autopilot",
	Long: `Plays many games without a terminal, steered by an autopilot, and prints
score, level and death statistics. Games run in parallel; the same seed
always gives the same report.

Examples:
  snake simulate
  snake simulate --games 1000 --pilot greedy --seed 42
  snake simulate --pilot random --level 5 --endless`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width including the border")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height including the border")
	simulateCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level")
	simulateCmd.Flags().BoolVar(&flagEndless, "endless", false, "Keep going past the last level")
	simulateCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games")
	simulateCmd.Flags().StringVar(&flagPilot, "pilot", "greedy", "Autopilot: "+pilotNames())
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 10000, "Cut a game off after this many ticks")
	simulateCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel games (0 = one per CPU)")
}

func pilotNames() string {
	var names []string
	for _, p := range pilot.List() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := sim.NewRunner(logger, nil).Run(ctx, sim.Options{
		Games:      flagGames,
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		StartLevel: cfg.Game.StartLevel,
		Endless:    cfg.Game.Endless,
		Pilot:      flagPilot,
		Seed:       seed,
		MaxTicks:   flagMaxTicks,
		Workers:    flagWorkers,
	})
	if err != nil {
		return err
	}

	if err := report.Print(os.Stdout); err != nil {
		return fmt.Errorf("print report: %w", err)
	}
	return nil
}
