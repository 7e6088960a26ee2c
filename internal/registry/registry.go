// Package registry maps game IDs to factories. Games register themselves in
// init(), so the CLI and the terminal front-end can create them by name.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/star-fire/internal/core"
)

// Game is what the platform drives: one Step per tick, one Render per frame.
// Implementations hold pure logic and never touch the terminal.
type Game interface {
	// ID returns a unique identifier, e.g. "starfire".
	ID() string

	// Title returns the display name.
	Title() string

	// Reset (re)initializes the game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State returns the current summary.
	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
