package levels

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSpeedTable(t *testing.T) {
	assert.Equal(t, 400*time.Millisecond, Speed(1))
	assert.Equal(t, 80*time.Millisecond, Speed(MaxLevel))

	for level := 2; level <= MaxLevel; level++ {
		assert.Less(t, Speed(level), Speed(level-1), "level %d should be faster than level %d", level, level-1)
	}
}

func TestSpeedBeyondMaxLevel(t *testing.T) {
	tests := []struct {
		level    int
		expected time.Duration
	}{
		{11, 75 * time.Millisecond},
		{12, 70 * time.Millisecond},
		{15, 55 * time.Millisecond},
		{16, 50 * time.Millisecond},
		{20, 50 * time.Millisecond},
		{500, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Speed(tc.level), "level %d", tc.level)
	}
}

func TestSpeedBelowFirstLevel(t *testing.T) {
	assert.Equal(t, Speed(1), Speed(0))
	assert.Equal(t, Speed(1), Speed(-3))
}

func TestDescriptions(t *testing.T) {
	assert.Equal(t, "Open Field - Learn the basics", Description(1))
	assert.Equal(t, "Master Challenge - Ultimate test of skill", Description(10))
	assert.Equal(t, "Expert Level 11 - Maximum difficulty!", Description(11))

	assert.Equal(t, "Cross Roads", Name(2))
	assert.Equal(t, "Expert Level 12", Name(12))

	for level := 1; level <= MaxLevel; level++ {
		assert.NotEmpty(t, Name(level))
	}
}

func TestIsFinalLevel(t *testing.T) {
	assert.False(t, IsFinalLevel(1))
	assert.False(t, IsFinalLevel(9))
	assert.True(t, IsFinalLevel(10))
	assert.True(t, IsFinalLevel(11))
}

var boardSizes = []struct{ w, h int }{
	{5, 5},
	{8, 6},
	{20, 15},
	{30, 15},
	{30, 20},
	{60, 30},
}

func TestObstaclesStayInsideInterior(t *testing.T) {
	for _, size := range boardSizes {
		interior := core.Interior(size.w, size.h)
		for level := 1; level <= 15; level++ {
			t.Run(fmt.Sprintf("%dx%d/level%d", size.w, size.h, level), func(t *testing.T) {
				for _, p := range For(level, size.w, size.h).Points() {
					assert.True(t, interior.Contains(p), "obstacle %v outside interior", p)
				}
			})
		}
	}
}

func TestObstaclesDeterministic(t *testing.T) {
	for _, size := range boardSizes {
		for level := 1; level <= 15; level++ {
			first := For(level, size.w, size.h)
			second := For(level, size.w, size.h)
			assert.Equal(t, first.Points(), second.Points(), "level %d on %dx%d changed between calls", level, size.w, size.h)
		}
	}
}

func TestSeededLevelsIgnoreGlobalRand(t *testing.T) {
	before := For(7, 30, 20)
	// Interleave other seeded levels; each call uses its own generator.
	For(12, 30, 20)
	For(10, 30, 20)
	after := For(7, 30, 20)

	assert.Equal(t, before.Points(), after.Points())
	assert.NotEqual(t, Seed(7, 30, 20), Seed(8, 30, 20))
}

func TestOpenFieldIsEmpty(t *testing.T) {
	assert.Equal(t, 0, For(1, 30, 20).Len())
	assert.Empty(t, For(1, 30, 20).Points())
	assert.Equal(t, 0, For(0, 30, 20).Len())
}

func TestCrossRoads(t *testing.T) {
	obs := For(2, 20, 15)

	// vertical arm x=10, y=5..9 and horizontal arm y=7, x=7..13 share (10,7)
	require.Equal(t, 11, obs.Len())
	for y := 5; y <= 9; y++ {
		assert.True(t, obs.Has(core.Pt(10, y)), "missing vertical cell y=%d", y)
	}
	for x := 7; x <= 13; x++ {
		assert.True(t, obs.Has(core.Pt(x, 7)), "missing horizontal cell x=%d", x)
	}
	assert.False(t, obs.Has(core.Pt(10, 4)))
	assert.False(t, obs.Has(core.Pt(6, 7)))
}

func TestCornerBlocks(t *testing.T) {
	obs := For(3, 30, 20)

	assert.Equal(t, 30, obs.Len())
	assert.True(t, obs.Has(core.Pt(3, 3)))
	assert.True(t, obs.Has(core.Pt(7, 5)))
	assert.True(t, obs.Has(core.Pt(22, 14)))
	assert.True(t, obs.Has(core.Pt(26, 16)))
	assert.False(t, obs.Has(core.Pt(8, 3)))
}

func TestCorridors(t *testing.T) {
	obs := For(4, 30, 20)

	for _, p := range obs.Points() {
		assert.Zero(t, p.Y%4, "corridor wall %v not on a multiple of 4", p)
	}
	assert.True(t, obs.Has(core.Pt(4, 8)))
	assert.True(t, obs.Has(core.Pt(19, 8)))
	assert.False(t, obs.Has(core.Pt(20, 8)), "gap between wall segments")
	assert.True(t, obs.Has(core.Pt(24, 12)))
}

func TestSpiralRings(t *testing.T) {
	obs := For(5, 30, 20)
	center := core.Pt(15, 10)

	require.NotZero(t, obs.Len())
	for _, p := range obs.Points() {
		assert.LessOrEqual(t, p.Manhattan(center), 6, "ring point %v too far from center", p)
	}
	assert.True(t, obs.Has(core.Pt(16, 10)), "radius 1 at 0 degrees")
	assert.True(t, obs.Has(core.Pt(18, 10)), "radius 3 at 0 degrees")
}

func TestBorderPatrol(t *testing.T) {
	obs := For(6, 30, 20)

	// rows 3 and 16 over x=3..26, columns 3 and 26 over y=3..16
	assert.Equal(t, 2*24+2*14-4, obs.Len())
	assert.True(t, obs.Has(core.Pt(3, 3)))
	assert.True(t, obs.Has(core.Pt(26, 16)))
	assert.True(t, obs.Has(core.Pt(15, 3)))
	assert.False(t, obs.Has(core.Pt(15, 10)))
}

func TestScatteredChaos(t *testing.T) {
	obs := For(7, 30, 20)

	assert.NotZero(t, obs.Len())
	assert.LessOrEqual(t, obs.Len(), 20)
	for _, p := range obs.Points() {
		assert.True(t, p.X >= 4 && p.X <= 25 && p.Y >= 4 && p.Y <= 15, "scatter point %v out of range", p)
	}
}

func TestDiamond(t *testing.T) {
	obs := For(8, 30, 20)
	center := core.Pt(15, 10)
	size := 5

	require.NotZero(t, obs.Len())
	for _, p := range obs.Points() {
		assert.Equal(t, size, p.Manhattan(center), "diamond point %v", p)
	}
	assert.True(t, obs.Has(core.Pt(20, 10)))
	assert.True(t, obs.Has(core.Pt(15, 5)))
}

func TestComplexMaze(t *testing.T) {
	obs := For(9, 30, 20)

	assert.True(t, obs.Has(core.Pt(5, 3)), "vertical wall at x=5")
	assert.False(t, obs.Has(core.Pt(5, 4)), "gap where y%4==0")
	assert.True(t, obs.Has(core.Pt(3, 5)), "horizontal wall at y=5")
	assert.True(t, obs.Has(core.Pt(8, 5)), "crossing cells are walls on the vertical line")
	assert.False(t, obs.Has(core.Pt(12, 11)), "gap where x%4==0")
}

func TestMasterPatternGrowsWithLevel(t *testing.T) {
	center := core.Pt(30, 15)
	for level := 10; level <= 14; level++ {
		obs := For(level, 60, 30)
		assert.True(t, obs.Has(center), "level %d should block the center", level)
		for i := -2; i <= 2; i++ {
			assert.True(t, obs.Has(core.Pt(center.X+i, center.Y)))
			assert.True(t, obs.Has(core.Pt(center.X, center.Y+i)))
		}
	}

	// More scatter draws on later levels; collisions keep it from being exact.
	assert.Greater(t, For(40, 60, 30).Len(), For(10, 60, 30).Len()-10)
}

func TestTinyBoardsDoNotPanic(t *testing.T) {
	for w := 1; w <= 6; w++ {
		for h := 1; h <= 6; h++ {
			for level := 1; level <= 12; level++ {
				assert.NotPanics(t, func() { For(level, w, h) })
			}
		}
	}
}
