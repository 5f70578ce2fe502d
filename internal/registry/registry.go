// Package registry keeps the set of playable boards.
// Each board registers a factory in an init() function, so the CLI and
// TUI can list and start boards without importing them directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-merge/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is a board session driven by the platform.
// Implementations hold pure logic: no terminal, no timers, no I/O.
type Game interface {
	// ID returns the registry key, e.g. "merge_meadow".
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset (re)loads the starting position and adapts to the screen size.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and reports what happened.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current state.
	State() core.GameState
}

// Resizer is implemented by games that can follow a window resize
// without losing their state. Other games are Reset instead.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id.
// Panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", id, ErrUnknownGame)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
