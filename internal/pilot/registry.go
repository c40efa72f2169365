// Package pilot provides autopilots that steer a snake without a player.
// Pilots register themselves in init() functions, so the simulate command
// can pick one by name without hardcoding the list.
package pilot

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/levels"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board is what a pilot can see of a game. *snake.State satisfies it.
type Board interface {
	Width() int
	Height() int
	Obstacles() levels.Obstacles
	Food() core.Point
	Snake() snake.Snake
}

// Pilot chooses a direction before each tick.
type Pilot interface {
	// Name returns the registry name of this pilot (e.g., "greedy").
	Name() string

	// Next returns the direction to steer before the next tick.
	// Returning the current direction means "keep going".
	Next(b Board) snake.Direction
}

// Info contains metadata about a registered pilot.
type Info struct {
	Name        string
	Description string
}

// Factory creates a pilot. rng is the pilot's own generator; pilots that
// make no random choices ignore it.
type Factory func(rng *rand.Rand) Pilot

type entry struct {
	factory     Factory
	description string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Panics if a pilot with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[name]; exists {
		panic(fmt.Sprintf("pilot: %q already registered", name))
	}
	entries[name] = entry{factory: f, description: description}
}

// List returns all registered pilots, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for name, e := range entries {
		result = append(result, Info{Name: name, Description: e.description})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Create instantiates a pilot by name.
func Create(name string, rng *rand.Rand) (Pilot, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("pilot: unknown pilot %q", name)
	}
	return e.factory(rng), nil
}

// Exists checks if a pilot with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
