package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

var vectors = [...]core.Point{
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirUp:    {X: 0, Y: -1},
}

// Vector returns the unit displacement for one move in this direction.
func (d Direction) Vector() core.Point {
	if !d.Valid() {
		return core.Point{}
	}
	return vectors[d]
}

// Opposite returns the direction whose vector is the negation of d's.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	back := d.Vector().Neg()
	for _, o := range Directions {
		if o.Vector() == back {
			return o
		}
	}
	return d
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// OppositeOf reports whether a and b are the Up/Down or Left/Right pair.
func OppositeOf(a, b Direction) bool {
	return a.Valid() && b.Valid() && a.Opposite() == b
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
