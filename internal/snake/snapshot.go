package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Level      int
	Endless    bool
	Score      int
	FoodsEaten int // Food eaten in current level
	SnakeLen   int
	Head       core.Point
	Dir        Direction
	Food       core.Point
	Obstacles  int
	Speed      time.Duration
	Status     Status
	Cause      Cause
}

// Snapshot returns the current game snapshot for determinism verification.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.ticks,
		Level:      s.level,
		Endless:    s.endless,
		Score:      s.score,
		FoodsEaten: s.foodsEaten,
		SnakeLen:   s.snake.Len(),
		Head:       s.snake.Head(),
		Dir:        s.snake.Direction(),
		Food:       s.food.Position(),
		Obstacles:  s.obstacles.Len(),
		Speed:      s.Speed(),
		Status:     s.status,
		Cause:      s.cause,
	}
}
