// snake is a terminal snake game with ten hand-made levels.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play with the start menu
//	snake levels             - List levels with speed and obstacle count
//	snake preview <level>    - Draw a level's obstacle layout
//	snake simulate           - Run headless games with an autopilot
//	snake config             - Print the resolved configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--seed <value>      - Set RNG seed for reproducible games
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal snake game with procedural levels",
	Long: `Snake is a classic snake game for the terminal. Eat food to grow,
clear a level every 5 foods and work through 10 levels of obstacles.

Available commands:
  play      - Play the game (default)
  levels    - Show the level table
  preview   - Draw a level layout
  simulate  - Run headless games with an autopilot
  config    - Print the resolved configuration

Examples:
  snake
  snake play --level 3 --endless
  snake preview 5 --width 40 --height 20
  snake simulate --games 500 --pilot greedy --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, nil
}

// openLogFile returns the --log-file logger, or a silent one when the flag is unset.
// The TUI owns the terminal, so the interactive game never logs to stderr.
func openLogFile() (*log.Logger, func() error, error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() error { return nil }, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f.Close, nil
}
