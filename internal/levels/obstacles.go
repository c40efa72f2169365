package levels

import (
	"math"
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Obstacles is an immutable set of blocked cells.
// The zero value is the empty set: a zero mapset reads as empty.
type Obstacles struct {
	set mapset.Set[core.Point]
}

// Has reports whether p is blocked.
func (o Obstacles) Has(p core.Point) bool {
	return o.set.Has(p)
}

// Len returns the number of blocked cells.
func (o Obstacles) Len() int {
	return o.set.Size()
}

// Points returns the blocked cells sorted row-major.
func (o Obstacles) Points() []core.Point {
	pts := make([]core.Point, 0, o.Len())
	o.set.Each(func(p core.Point) {
		pts = append(pts, p)
	})
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

// layout collects generated cells, dropping anything outside the board interior.
type layout struct {
	interior core.Rect
	set      mapset.Set[core.Point]
}

func newLayout(width, height int) *layout {
	return &layout{
		interior: core.Interior(width, height),
		set:      mapset.New[core.Point](),
	}
}

func (l *layout) add(x, y int) {
	p := core.Pt(x, y)
	if l.interior.Contains(p) {
		l.set.Put(p)
	}
}

func (l *layout) obstacles() Obstacles {
	return Obstacles{set: l.set}
}

// generator draws one level's pattern on a width×height board.
type generator func(l *layout, level, width, height int)

// generators is indexed by level-1; levels past the table use masterPattern.
var generators = [MaxLevel]generator{
	openField,
	crossRoads,
	cornerBlocks,
	corridors,
	spiral,
	borderPatrol,
	scatteredChaos,
	diamond,
	complexMaze,
	masterPattern,
}

// For returns the obstacle set of a level on a width×height board.
// The border ring is never included; it is the wall itself.
func For(level, width, height int) Obstacles {
	l := newLayout(width, height)
	switch {
	case level < 1:
		openField(l, level, width, height)
	case level <= MaxLevel:
		generators[level-1](l, level, width, height)
	default:
		masterPattern(l, level, width, height)
	}
	return l.obstacles()
}

// Seed returns the generator seed for the randomized layouts.
// It depends only on the level and board size so a layout never changes
// between calls within a game, or between games.
func Seed(level, width, height int) int64 {
	return int64(level)*1_000_003 + int64(width)*1_009 + int64(height)
}

// randIn returns a value in [lo, hi]. ok is false for an empty range.
func randIn(rng *rand.Rand, lo, hi int) (int, bool) {
	if hi < lo {
		return 0, false
	}
	return lo + rng.Intn(hi-lo+1), true
}

func openField(*layout, int, int, int) {}

func crossRoads(l *layout, _, width, height int) {
	midX, midY := width/2, height/2
	for y := midY - 2; y <= midY+2; y++ {
		l.add(midX, y)
	}
	for x := midX - 3; x <= midX+3; x++ {
		l.add(x, midY)
	}
}

func cornerBlocks(l *layout, _, width, height int) {
	for x := 3; x < 8; x++ {
		for y := 3; y < 6; y++ {
			l.add(x, y)
		}
	}
	for x := width - 8; x < width-3; x++ {
		for y := height - 6; y < height-3; y++ {
			l.add(x, y)
		}
	}
}

func corridors(l *layout, _, width, height int) {
	for y := 4; y < height-4; y++ {
		if y%4 != 0 {
			continue
		}
		for x := 4; x < width-10; x++ {
			l.add(x, y)
		}
		for x := width - 6; x < width-4; x++ {
			l.add(x, y)
		}
	}
}

func spiral(l *layout, _, width, height int) {
	cx, cy := width/2, height/2
	for r := 1; r <= 3; r++ {
		for angle := 0; angle < 360; angle += 30 {
			rad := float64(angle) * math.Pi / 180
			x := cx + int(float64(r)*math.Cos(rad))
			y := cy + int(float64(r)*math.Sin(rad))
			if x > 1 && x < width-2 && y > 1 && y < height-2 {
				l.add(x, y)
			}
		}
	}
}

func borderPatrol(l *layout, _, width, height int) {
	for x := 3; x < width-3; x++ {
		l.add(x, 3)
		l.add(x, height-4)
	}
	for y := 3; y < height-3; y++ {
		l.add(3, y)
		l.add(width-4, y)
	}
}

func scatteredChaos(l *layout, level, width, height int) {
	rng := rand.New(rand.NewSource(Seed(level, width, height)))
	count := min(20, width*height/20)
	for range count {
		x, okX := randIn(rng, 4, width-5)
		y, okY := randIn(rng, 4, height-5)
		if !okX || !okY {
			return
		}
		l.add(x, y)
	}
}

func diamond(l *layout, _, width, height int) {
	cx, cy := width/2, height/2
	size := min(width, height) / 4
	for x := cx - size; x <= cx+size; x++ {
		for y := cy - size; y <= cy+size; y++ {
			if core.Abs(x-cx)+core.Abs(y-cy) != size {
				continue
			}
			if x > 1 && x < width-2 && y > 1 && y < height-2 {
				l.add(x, y)
			}
		}
	}
}

func complexMaze(l *layout, _, width, height int) {
	for x := 5; x < width-5; x += 3 {
		for y := 2; y < height-2; y++ {
			if y%4 != 0 {
				l.add(x, y)
			}
		}
	}
	for y := 5; y < height-5; y += 3 {
		for x := 2; x < width-2; x++ {
			if x%4 != 0 {
				l.add(x, y)
			}
		}
	}
}

// masterPattern is level 10 and the generated fallback for every level after it.
// The scatter grows with the level number.
func masterPattern(l *layout, level, width, height int) {
	cx, cy := width/2, height/2
	for i := -2; i <= 2; i++ {
		if x := cx + i; x > 1 && x < width-2 {
			l.add(x, cy)
		}
		if y := cy + i; y > 1 && y < height-2 {
			l.add(cx, y)
		}
	}

	rng := rand.New(rand.NewSource(Seed(level, width, height)))
	count := min(30+level, width*height/15)
	for range count {
		x, okX := randIn(rng, 3, width-4)
		y, okY := randIn(rng, 3, height-4)
		if !okX || !okY {
			return
		}
		l.add(x, y)
	}
}
