// Package levels maps a level number and board size to the level's obstacle
// layout, movement delay and description. Everything here is a pure function
// of its arguments: asking twice gives the same answer.
package levels

import (
	"fmt"
	"strings"
	"time"
)

// MaxLevel is the last campaign level with a hand-authored layout.
const MaxLevel = 10

// speeds holds the delay between moves for levels 1..MaxLevel.
var speeds = [MaxLevel]time.Duration{
	400 * time.Millisecond, // slow start
	350 * time.Millisecond,
	300 * time.Millisecond,
	250 * time.Millisecond,
	200 * time.Millisecond,
	180 * time.Millisecond,
	150 * time.Millisecond,
	120 * time.Millisecond,
	100 * time.Millisecond,
	80 * time.Millisecond,
}

// Past MaxLevel the delay keeps shrinking by speedStep per level down to speedFloor.
const (
	speedFloor = 50 * time.Millisecond
	speedStep  = 5 * time.Millisecond
)

var descriptions = [MaxLevel]string{
	"Open Field - Learn the basics",
	"Cross Roads - Navigate around obstacles",
	"Corner Blocks - Use the corners wisely",
	"Corridors - Find your path through",
	"Spiral Challenge - Navigate the spiral",
	"Border Patrol - Avoid the border obstacles",
	"Scattered Chaos - Random obstacles everywhere",
	"Diamond Mine - Navigate the diamond pattern",
	"Complex Maze - Advanced navigation required",
	"Master Challenge - Ultimate test of skill",
}

// Speed returns the delay between snake moves at the given level.
// Levels below 1 are treated as level 1.
func Speed(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	if level <= MaxLevel {
		return speeds[level-1]
	}
	return max(speedFloor, speeds[MaxLevel-1]-time.Duration(level-MaxLevel)*speedStep)
}

// Description returns the one-line description shown for a level.
func Description(level int) string {
	if level >= 1 && level <= MaxLevel {
		return descriptions[level-1]
	}
	return fmt.Sprintf("Expert Level %d - Maximum difficulty!", level)
}

// Name returns the short title of a level ("Cross Roads").
func Name(level int) string {
	name, _, _ := strings.Cut(Description(level), " - ")
	return name
}

// IsFinalLevel reports whether completing this level ends a campaign.
func IsFinalLevel(level int) bool {
	return level >= MaxLevel
}
