// Package registry maps mode IDs to game factories. Modes register
// themselves from init, so the CLI and the SSH server can list and start
// them by ID.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/chroma-cascade/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a playable mode. Implementations are pure logic; the platform
// maps keys to input frames, drives Step at the tick rate and draws the
// screen Render fills in.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score key, e.g. "chroma" or "chroma_zen".
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run. Called once before the first Step and again
	// on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// RunReporter is implemented by games that report statistics for a finished
// run. The platform persists them alongside the score.
type RunReporter interface {
	RunStats() core.RunStats
}

// Describer is implemented by games with a one-line summary for listings.
type Describer interface {
	Description() string
}

// Tunable is implemented by games that accept a difficulty preset before
// Reset. An empty preset restores the default.
type Tunable interface {
	SetDifficulty(preset string) error
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	entries[id] = entry{info: info, factory: f}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
