// Package registry provides a global registry of playable presets.
// Games register one factory per preset in init() functions, allowing the
// platform to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrUnknown is returned by Create for ids nobody registered.
var ErrUnknown = errors.New("registry: unknown preset")

// Game is the interface every frontend drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the preset identifier (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session: first round, best score cleared.
	// The RuntimeConfig provides the cell grid size, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, best score and game-over flag.
	State() core.GameState
}

// GameInfo contains metadata about a registered preset.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a game. customPath optionally names a YAML file whose
// values override the preset; empty means the preset as shipped.
type Factory func(customPath string) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from a game's init() function.
// Panics if a preset with the same id is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", info.ID))
	}

	factories[info.ID] = f
	titles[info.ID] = info.Title
}

// List returns all registered presets, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates the preset with the given id.
func Create(id, customPath string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return f(customPath)
}

// Exists checks if a preset with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
