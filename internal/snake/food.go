package snake

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
)

// ErrNoFreeCell is returned when every interior cell is taken by the snake
// or an obstacle, so food has nowhere to go.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Food is the single item the snake is chasing.
type Food struct {
	interior  core.Rect
	obstacles levels.Obstacles
	rng       *rand.Rand
	position  core.Point
}

// NewFood places food on a random interior cell not covered by obstacles.
func NewFood(width, height int, obstacles levels.Obstacles, rng *rand.Rand) (*Food, error) {
	f := &Food{
		interior:  core.Interior(width, height),
		obstacles: obstacles,
		rng:       rng,
	}
	if err := f.Regenerate(nil); err != nil {
		return nil, err
	}
	return f, nil
}

// Regenerate moves the food to a random interior cell that is neither part
// of body nor an obstacle. On ErrNoFreeCell the position is left unchanged.
func (f *Food) Regenerate(body []core.Point) error {
	free := make([]core.Point, 0, f.interior.Area())
	f.interior.Each(func(p core.Point) {
		if !f.obstacles.Has(p) && !slices.Contains(body, p) {
			free = append(free, p)
		}
	})
	if len(free) == 0 {
		return ErrNoFreeCell
	}
	f.position = free[f.rng.Intn(len(free))]
	return nil
}

// SetObstacles swaps the obstacle set used by later placements.
func (f *Food) SetObstacles(obstacles levels.Obstacles) {
	f.obstacles = obstacles
}

// Position returns the food cell.
func (f *Food) Position() core.Point {
	return f.position
}
