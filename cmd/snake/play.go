package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/render"
)

var (
	flagWidth   int
	flagHeight  int
	flagLevel   int
	flagEndless bool
	flagFPS     int
	flagNoColor bool
	flagASCII   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the start menu.

Controls:
  W/A/S/D, arrows  - Steer
  P                - Pause / resume
  I                - Instructions (menus)
  Y / N            - Play again / quit (end screen)
  Q/Ctrl+C         - Quit

Flags override the config file. Sizes include the border.

Examples:
  snake play
  snake play --width 40 --height 25
  snake play --level 6 --endless
  snake play --ascii --no-color`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares
// them so that a bare "snake" plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagWidth, "width", 0, "Board width including the border")
	cmd.Flags().IntVar(&flagHeight, "height", 0, "Board height including the border")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start level")
	cmd.Flags().BoolVar(&flagEndless, "endless", false, "Keep going past the last level")
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Input polling rate (frames per second)")
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")
	cmd.Flags().BoolVar(&flagASCII, "ascii", false, "Use plain ASCII glyphs")
}

// loadConfig resolves the config file and applies the flags that were set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Board.Height = flagHeight
	}
	if flags.Changed("level") {
		cfg.Game.StartLevel = flagLevel
	}
	if flags.Changed("endless") {
		cfg.Game.Endless = flagEndless
	}
	if flags.Changed("fps") {
		cfg.Game.FPS = flagFPS
	}
	if flags.Changed("ascii") && flagASCII {
		cfg.Theme.Glyphs = config.ASCIIGlyphs()
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	theme, err := render.NewTheme(cfg.Theme)
	if err != nil {
		return err
	}
	if flagNoColor {
		tui.DisableColor()
	}

	// Reject a board the terminal cannot show before the game starts.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := render.FrameSize(cfg.Board.Width, cfg.Board.Height, true)
		if w < needW || h < needH {
			return fmt.Errorf("a %dx%d board needs a %dx%d terminal, have %dx%d",
				cfg.Board.Width, cfg.Board.Height, needW, needH, w, h)
		}
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("config loaded", "source", cfg.Source,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"start_level", cfg.Game.StartLevel, "endless", cfg.Game.Endless)

	return tui.Run(tui.Options{
		Width:      cfg.Board.Width,
		Height:     cfg.Board.Height,
		StartLevel: cfg.Game.StartLevel,
		Endless:    cfg.Game.Endless,
		Seed:       flagSeed,
		FPS:        cfg.Game.FPS,
		Theme:      theme,
		Logger:     logger,
	})
}
