// Package registry keeps the factories of every playable game. Game packages
// register themselves from init(), so the platform can create any catalog
// game by slug without importing it directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/retrovault/internal/core"
)

// Game is the contract between one game's loop and the shell hosting it.
// Implementations are plain state machines: no goroutines, no I/O, no clock.
type Game interface {
	// ID returns the catalog slug (e.g. "snake-classic"). It keys the
	// high score and play history records.
	ID() string

	// Title returns the human-readable name shown in menus and history.
	Title() string

	// Reset starts a fresh run sized to cfg and seeded from cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. dst is cleared by the caller.
	Render(dst *core.Screen)

	// State returns the current score and run status.
	State() core.GameState
}

// TextInput is implemented by games that read typed letters instead of
// the letter-bound actions (W/A/S/D, P, R, B, F).
type TextInput interface {
	WantsText() bool
}

// AcceptsText reports whether g wants raw letters.
func AcceptsText(g Game) bool {
	ti, ok := g.(TextInput)
	return ok && ti.WantsText()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. It panics on duplicate ids or
// when the factory's game reports a different ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: factory for %q builds game %q", id, g.ID()))
	}
	entries[id] = entry{factory: f, title: g.Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
