package pilot

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func init() {
	Register("greedy", "heads for the food, avoiding anything it would hit next tick",
		func(*rand.Rand) Pilot { return Greedy{} })
	Register("straight", "keeps its heading and turns only when blocked",
		func(*rand.Rand) Pilot { return Straight{} })
	Register("random", "wanders, turning at random and when blocked",
		func(rng *rand.Rand) Pilot { return &Random{rng: rng} })
}

// safe reports whether stepping the snake in d survives the next tick.
// The tail cell counts as free unless the snake is about to grow.
func safe(b Board, s snake.Snake, d snake.Direction) bool {
	if snake.OppositeOf(s.Direction(), d) {
		return false
	}
	next := s.Head().Add(d.Vector())
	if !core.Interior(b.Width(), b.Height()).Contains(next) || b.Obstacles().Has(next) {
		return false
	}

	body := s.Body()
	if next == body[len(body)-1] && !s.Growing() {
		return true
	}
	return !s.Occupies(next)
}

// firstSafe returns the current direction if it is safe, else the first safe
// one in Directions order, else the current direction.
func firstSafe(b Board, s snake.Snake) snake.Direction {
	if safe(b, s, s.Direction()) {
		return s.Direction()
	}
	for _, d := range snake.Directions {
		if safe(b, s, d) {
			return d
		}
	}
	return s.Direction()
}

// Greedy moves to the safe neighbour closest to the food.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Next(b Board) snake.Direction {
	s := b.Snake()
	best, bestDist := s.Direction(), -1
	for _, d := range snake.Directions {
		if !safe(b, s, d) {
			continue
		}
		dist := s.Head().Add(d.Vector()).Manhattan(b.Food())
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}

// Straight holds its heading until the cell ahead is unsafe.
type Straight struct{}

func (Straight) Name() string { return "straight" }

func (Straight) Next(b Board) snake.Direction {
	return firstSafe(b, b.Snake())
}

// Random turns to a random safe direction about one tick in four.
type Random struct {
	rng *rand.Rand
}

func (*Random) Name() string { return "random" }

func (r *Random) Next(b Board) snake.Direction {
	s := b.Snake()
	if r.rng.Intn(4) != 0 && safe(b, s, s.Direction()) {
		return s.Direction()
	}

	var options []snake.Direction
	for _, d := range snake.Directions {
		if safe(b, s, d) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		return s.Direction()
	}
	return options[r.rng.Intn(len(options))]
}
