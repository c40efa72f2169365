package pilot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

type fakeBoard struct {
	w, h  int
	obs   levels.Obstacles
	food  core.Point
	snake *snake.Snake
}

func (f fakeBoard) Width() int                  { return f.w }
func (f fakeBoard) Height() int                 { return f.h }
func (f fakeBoard) Obstacles() levels.Obstacles { return f.obs }
func (f fakeBoard) Food() core.Point            { return f.food }
func (f fakeBoard) Snake() snake.Snake          { return *f.snake }

func board(head, food core.Point) fakeBoard {
	return fakeBoard{w: 20, h: 15, food: food, snake: snake.NewSnake(head)}
}

func TestRegistry(t *testing.T) {
	names := make([]string, 0)
	for _, info := range List() {
		names = append(names, info.Name)
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, []string{"greedy", "random", "straight"}, names)

	for _, name := range names {
		assert.True(t, Exists(name))
		p, err := Create(name, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
	}

	_, err := Create("psychic", nil)
	assert.Error(t, err)
	assert.False(t, Exists("psychic"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("greedy", "again", func(*rand.Rand) Pilot { return Greedy{} })
	})
}

func TestGreedyHeadsForFood(t *testing.T) {
	assert.Equal(t, snake.DirUp, Greedy{}.Next(board(core.Pt(10, 7), core.Pt(10, 3))))
	assert.Equal(t, snake.DirDown, Greedy{}.Next(board(core.Pt(10, 7), core.Pt(12, 12))))
	assert.Equal(t, snake.DirRight, Greedy{}.Next(board(core.Pt(10, 7), core.Pt(16, 7))))

	// Food straight behind: reversing is not an option, so it swings round.
	assert.Equal(t, snake.DirUp, Greedy{}.Next(board(core.Pt(10, 7), core.Pt(5, 7))))
}

func TestGreedyAvoidsObstacles(t *testing.T) {
	b := board(core.Pt(6, 7), core.Pt(15, 7))
	b.obs = levels.For(2, 20, 15)
	require.True(t, b.obs.Has(core.Pt(7, 7)))

	assert.Equal(t, snake.DirUp, Greedy{}.Next(b))
}

func TestStraightTurnsAtWall(t *testing.T) {
	assert.Equal(t, snake.DirRight, Straight{}.Next(board(core.Pt(10, 7), core.Pt(1, 1))))
	assert.Equal(t, snake.DirUp, Straight{}.Next(board(core.Pt(18, 7), core.Pt(1, 1))))
	assert.Equal(t, snake.DirDown, Straight{}.Next(board(core.Pt(18, 1), core.Pt(1, 1))))
}

func TestRandomOnlyPicksSafeDirections(t *testing.T) {
	p, err := Create("random", rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	corner := board(core.Pt(18, 1), core.Pt(1, 1))
	for range 50 {
		assert.Equal(t, snake.DirDown, p.Next(corner))
	}
}

func TestGreedyFindsFoodInRealGame(t *testing.T) {
	s, err := snake.New(20, 15, snake.WithSeed(11))
	require.NoError(t, err)

	for range 300 {
		s.ChangeDirection(Greedy{}.Next(s))
		if ok, _ := s.Update(); !ok {
			break
		}
		if s.FoodsTotal() > 0 {
			break
		}
	}
	assert.Positive(t, s.FoodsTotal())
	assert.NotEqual(t, snake.CauseWall, s.Cause())
}

func TestSafeTreatsTailAsFreeUnlessGrowing(t *testing.T) {
	// Coil a four-cell snake into a square: head (10,8) facing left, tail (10,7) above it.
	s := snake.NewSnake(core.Pt(10, 7))
	s.Grow()
	s.Move()
	s.ChangeDirection(snake.DirDown)
	s.Grow()
	s.Move()
	s.ChangeDirection(snake.DirLeft)
	s.Grow()
	s.Move()
	require.Equal(t, []core.Point{core.Pt(10, 8), core.Pt(11, 8), core.Pt(11, 7), core.Pt(10, 7)}, s.Body())

	b := fakeBoard{w: 20, h: 15, food: core.Pt(1, 1), snake: s}
	assert.True(t, safe(b, *s, snake.DirUp), "the tail moves away this tick")
	assert.False(t, safe(b, *s, snake.DirRight), "reversal")

	s.Grow()
	assert.False(t, safe(b, *s, snake.DirUp), "a growing snake keeps its tail")
}
