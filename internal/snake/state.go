// Package snake is the simulation core: a snake on a bordered grid, one food
// item and the per-level obstacle layout. State advances one cell per Update
// call and has no timing of its own; the caller decides when to tick.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// Scoring and progression constants.
const (
	MinBoardSize  = 5
	FoodsPerLevel = 5
	FoodScore     = 10
	LevelBonus    = 50
)

// ErrBoardTooSmall is returned by New for boards under MinBoardSize on either side.
var ErrBoardTooSmall = errors.New("snake: board must be at least 5x5")

// Status is the phase of a game.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
	StatusWon      Status = "won"
)

// Cause records why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseObstacle
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseObstacle:
		return "obstacle"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board full"
	default:
		return "none"
	}
}

// Progress is the level counter shown in the HUD.
type Progress struct {
	Level         int
	FoodsEaten    int
	FoodsPerLevel int
}

func (p Progress) String() string {
	return fmt.Sprintf("Level %d - Food: %d/%d", p.Level, p.FoodsEaten, p.FoodsPerLevel)
}

type options struct {
	rng        *rand.Rand
	startLevel int
	endless    bool
}

// Option configures a new State.
type Option func(*options)

// WithRand sets the generator used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed is WithRand with a fresh generator seeded from seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithStartLevel starts the game at level n instead of 1.
func WithStartLevel(n int) Option {
	return func(o *options) {
		o.startLevel = n
	}
}

// WithEndless removes the win condition: levels keep advancing past the
// last hand-authored one.
func WithEndless() Option {
	return func(o *options) {
		o.endless = true
	}
}

// State is one game. It is not safe for concurrent use.
type State struct {
	width, height int
	interior      core.Rect
	endless       bool

	snake     *Snake
	food      *Food
	obstacles levels.Obstacles // Cached for the current level

	ticks      uint64
	score      int
	startLevel int
	level      int
	foodsEaten int
	foodsTotal int

	status Status
	cause  Cause
}

// New creates a game on a width×height board, including its border ring.
// The snake starts as a single cell near the center, heading right.
func New(width, height int, opts ...Option) (*State, error) {
	if width < MinBoardSize || height < MinBoardSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBoardTooSmall, width, height)
	}

	o := options{startLevel: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &State{
		width:    width,
		height:   height,
		interior: core.Interior(width, height),
		endless:  o.endless,
		level:    max(1, o.startLevel),
		status:   StatusPlaying,
	}
	s.startLevel = s.level
	s.obstacles = levels.For(s.level, width, height)

	start, ok := s.spawnPoint()
	if !ok {
		return nil, fmt.Errorf("snake: no start cell on level %d: %w", s.level, ErrNoFreeCell)
	}
	s.snake = NewSnake(start)

	food, err := NewFood(width, height, s.obstacles, o.rng)
	if err != nil {
		return nil, fmt.Errorf("snake: place food: %w", err)
	}
	if err := food.Regenerate(s.snake.Body()); err != nil {
		return nil, fmt.Errorf("snake: place food: %w", err)
	}
	s.food = food

	return s, nil
}

// spawnPoint searches outward from the board center, ring by ring, for a
// free cell whose right-hand neighbour is also free.
func (s *State) spawnPoint() (core.Point, bool) {
	center := core.Pt(s.width/2, s.height/2)
	safe := func(p core.Point) bool {
		next := p.Add(DirRight.Vector())
		return s.interior.Contains(p) && s.interior.Contains(next) &&
			!s.obstacles.Has(p) && !s.obstacles.Has(next)
	}

	for r := 0; r <= max(s.width, s.height); r++ {
		for y := center.Y - r; y <= center.Y+r; y++ {
			for x := center.X - r; x <= center.X+r; x++ {
				if core.Abs(x-center.X) != r && core.Abs(y-center.Y) != r {
					continue
				}
				if p := core.Pt(x, y); safe(p) {
					return p, true
				}
			}
		}
	}
	return core.Point{}, false
}

// Update advances the game by one tick. It returns false on the tick the
// game ends and on every call after that. A non-nil error means food could
// not be placed; the game is over with CauseBoardFull.
func (s *State) Update() (bool, error) {
	if s.Terminal() {
		return false, nil
	}
	s.ticks++

	head := s.snake.Move()
	switch {
	case !s.interior.Contains(head):
		s.end(CauseWall)
		return false, nil
	case s.obstacles.Has(head):
		s.end(CauseObstacle)
		return false, nil
	case s.snake.CheckSelfCollision():
		s.end(CauseSelf)
		return false, nil
	case head == s.food.Position():
		return s.eat()
	}
	return true, nil
}

func (s *State) eat() (bool, error) {
	s.snake.Grow()
	s.score += FoodScore
	s.foodsEaten++
	s.foodsTotal++

	if s.foodsEaten >= FoodsPerLevel {
		if !s.endless && levels.IsFinalLevel(s.level) {
			s.status = StatusWon
			return false, nil
		}
		s.advanceLevel()
	}

	if err := s.food.Regenerate(s.snake.Body()); err != nil {
		s.end(CauseBoardFull)
		return false, fmt.Errorf("snake: regenerate food on level %d: %w", s.level, err)
	}
	return true, nil
}

func (s *State) advanceLevel() {
	s.level++
	s.foodsEaten = 0
	s.score += LevelBonus
	s.obstacles = levels.For(s.level, s.width, s.height)
	s.food.SetObstacles(s.obstacles)
}

func (s *State) end(cause Cause) {
	s.status = StatusGameOver
	s.cause = cause
}

// ChangeDirection turns the snake before the next tick. Reversals and
// calls on a finished game are ignored.
func (s *State) ChangeDirection(d Direction) {
	if s.Terminal() {
		return
	}
	s.snake.ChangeDirection(d)
}

// Speed returns the delay the caller should wait between ticks.
func (s *State) Speed() time.Duration {
	return levels.Speed(s.level)
}

// Obstacles returns the current level's obstacle set.
func (s *State) Obstacles() levels.Obstacles {
	return s.obstacles
}

// Progress returns the level and how much of it is done.
func (s *State) Progress() Progress {
	return Progress{
		Level:         s.level,
		FoodsEaten:    s.foodsEaten,
		FoodsPerLevel: FoodsPerLevel,
	}
}

// IsGameOver reports whether the snake crashed or the board filled up.
func (s *State) IsGameOver() bool {
	return s.status == StatusGameOver
}

// IsGameWon reports whether the final campaign level was completed.
func (s *State) IsGameWon() bool {
	return s.status == StatusWon
}

// Terminal reports whether the game has ended either way.
func (s *State) Terminal() bool {
	return s.status != StatusPlaying
}

func (s *State) Status() Status { return s.status }
func (s *State) Cause() Cause   { return s.cause }
func (s *State) Score() int     { return s.score }
func (s *State) Level() int     { return s.level }
func (s *State) Ticks() uint64  { return s.ticks }
func (s *State) Width() int     { return s.width }
func (s *State) Height() int    { return s.height }
func (s *State) Endless() bool  { return s.endless }

// Description returns the current level's description.
func (s *State) Description() string {
	return levels.Description(s.level)
}

// Food returns the food cell.
func (s *State) Food() core.Point {
	return s.food.Position()
}

// Snake returns a copy of the snake. Changing it does not affect the game.
func (s *State) Snake() Snake {
	return Snake{
		body:      s.snake.Body(),
		direction: s.snake.direction,
		growing:   s.snake.growing,
	}
}

// FoodsTotal returns the number of foods eaten over the whole game.
func (s *State) FoodsTotal() int {
	return s.foodsTotal
}

// LevelsCleared returns how many levels were completed in this game.
func (s *State) LevelsCleared() int {
	n := s.level - s.startLevel
	if s.status == StatusWon {
		n++
	}
	return n
}
