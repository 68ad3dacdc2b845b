// Package registry lets game packages announce themselves from init() so the
// shell can list and start them without importing each one by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ogawakh/game-test/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the terminal shell drives. Implementations hold pure
// simulation state and never touch Bubble Tea; the shell owns input mapping,
// timing and drawing to the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score table key (e.g. "shooter").
	ID() string

	// Title is the display name (e.g. "Space Shooter").
	Title() string

	// Reset starts a new session sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions collected since the
	// previous tick (Left, Fire, Pause, etc.).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports score and status without advancing the simulation.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. The factory is called once to read
// the title. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id. The error wraps
// ErrUnknownGame when there is none.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Title returns the display name of a registered game.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.title, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Title(id)
	return ok
}
