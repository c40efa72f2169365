// Package sim runs headless games driven by an autopilot. Each game has its
// own State and its own generators, so games run in parallel without sharing
// anything but the results slice, where each writes only its own slot.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/pilot"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a batch of games.
type Options struct {
	Games      int
	Width      int
	Height     int
	StartLevel int
	Endless    bool
	Pilot      string
	Seed       int64
	MaxTicks   int // Per game; a game still running at the limit is cut off
	Workers    int // 0 means GOMAXPROCS
}

// Validate checks the options before any game is built.
func (o Options) Validate() error {
	switch {
	case o.Games < 1:
		return fmt.Errorf("sim: games must be at least 1, got %d", o.Games)
	case o.MaxTicks < 1:
		return fmt.Errorf("sim: max ticks must be at least 1, got %d", o.MaxTicks)
	case o.Workers < 0:
		return fmt.Errorf("sim: workers must not be negative, got %d", o.Workers)
	case !pilot.Exists(o.Pilot):
		return fmt.Errorf("sim: unknown pilot %q", o.Pilot)
	}
	if o.Width < snake.MinBoardSize || o.Height < snake.MinBoardSize {
		return fmt.Errorf("sim: %w: got %dx%d", snake.ErrBoardTooSmall, o.Width, o.Height)
	}
	return nil
}

// Result is the outcome of one game.
type Result struct {
	Game      int
	Seed      int64
	Score     int
	Level     int
	Foods     int
	Ticks     uint64
	Status    snake.Status
	Cause     snake.Cause
	TimedOut  bool
	BoardFull bool
}

// Report is the outcome of a batch.
type Report struct {
	ID      string
	Options Options
	Results []Result
	Started time.Time
	Elapsed time.Duration
}

// Runner plays batches of games.
type Runner struct {
	logger *log.Logger
	clock  quartz.Clock
}

// NewRunner creates a runner. A nil clock means the real clock.
func NewRunner(logger *log.Logger, clock quartz.Clock) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Runner{logger: logger, clock: clock}
}

// Run plays opts.Games games and returns their results in game order.
// The same options, seed included, always give the same results.
func (r *Runner) Run(ctx context.Context, opts Options) (Report, error) {
	if err := opts.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{
		ID:      uuid.NewString(),
		Options: opts,
		Results: make([]Result, opts.Games),
		Started: r.clock.Now(),
	}
	logger := r.logger.With("run", report.ID[:8])
	logger.Info("simulation started", "games", opts.Games, "pilot", opts.Pilot, "seed", opts.Seed)

	// Derive every seed up front so results do not depend on scheduling.
	master := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, opts.Games)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Games {
		g.Go(func() error {
			res, err := playOne(ctx, opts, i, seeds[i])
			if err != nil {
				return err
			}
			report.Results[i] = res
			logger.Debug("game finished", "game", i, "score", res.Score, "level", res.Level, "cause", res.Cause)
			if res.BoardFull {
				logger.Warn("board filled up", "game", i, "seed", res.Seed)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("sim: run %s: %w", report.ID, err)
	}

	report.Elapsed = r.clock.Since(report.Started)
	logger.Info("simulation finished", "elapsed", report.Elapsed)
	return report, nil
}

// cancelCheckEvery is how many ticks a game plays between context checks.
const cancelCheckEvery = 256

func playOne(ctx context.Context, opts Options, index int, seed int64) (Result, error) {
	rng := rand.New(rand.NewSource(seed))
	gameOpts := []snake.Option{snake.WithRand(rng), snake.WithStartLevel(opts.StartLevel)}
	if opts.Endless {
		gameOpts = append(gameOpts, snake.WithEndless())
	}

	s, err := snake.New(opts.Width, opts.Height, gameOpts...)
	if err != nil {
		return Result{}, fmt.Errorf("game %d: %w", index, err)
	}
	p, err := pilot.Create(opts.Pilot, rand.New(rand.NewSource(seed^0x5eed)))
	if err != nil {
		return Result{}, err
	}

	res := Result{Game: index, Seed: seed}
	for tick := 0; ; tick++ {
		if tick%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if tick >= opts.MaxTicks {
			res.TimedOut = true
			break
		}

		s.ChangeDirection(p.Next(s))
		ok, err := s.Update()
		if errors.Is(err, snake.ErrNoFreeCell) {
			res.BoardFull = true
		} else if err != nil {
			return Result{}, fmt.Errorf("game %d: %w", index, err)
		}
		if !ok {
			break
		}
	}

	res.Score = s.Score()
	res.Level = s.Level()
	res.Foods = s.FoodsTotal()
	res.Ticks = s.Ticks()
	res.Status = s.Status()
	res.Cause = s.Cause()
	return res, nil
}
