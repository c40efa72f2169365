package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player's body: an ordered list of cells, head first.
// Queries take a value receiver so copies returned by State.Snake can be read.
type Snake struct {
	body      []core.Point // Head at index 0
	direction Direction
	growing   bool // If true, keep the tail on the next move
}

// NewSnake creates a one-cell snake at start, heading right.
func NewSnake(start core.Point) *Snake {
	return &Snake{
		body:      []core.Point{start},
		direction: DirRight,
	}
}

// Move advances the head one cell in the current direction and returns it.
// The tail follows unless a growth is pending, which the move consumes.
func (s *Snake) Move() core.Point {
	newHead := s.body[0].Add(s.direction.Vector())

	if s.growing {
		s.growing = false
		s.body = slices.Insert(s.body, 0, newHead)
		return newHead
	}

	// Shift in place: constant length, no allocation.
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	return newHead
}

// ChangeDirection turns the snake. Reversing onto itself is ignored.
func (s *Snake) ChangeDirection(d Direction) {
	if !d.Valid() || OppositeOf(s.direction, d) {
		return
	}
	s.direction = d
}

// Grow marks the snake to gain one segment on its next move.
func (s *Snake) Grow() {
	s.growing = true
}

// CheckSelfCollision reports whether the head overlaps any other segment.
func (s Snake) CheckSelfCollision() bool {
	head := s.body[0]
	return slices.Contains(s.body[1:], head)
}

// Head returns the head cell.
func (s Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of all segments, head first.
func (s Snake) Body() []core.Point {
	return slices.Clone(s.body)
}

// Len returns the number of segments.
func (s Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s Snake) Direction() Direction {
	return s.direction
}

// Growing reports whether a growth is pending for the next move.
func (s Snake) Growing() bool {
	return s.growing
}

// Occupies reports whether any segment is on p.
func (s Snake) Occupies(p core.Point) bool {
	return slices.Contains(s.body, p)
}
