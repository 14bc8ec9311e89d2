// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocken/internal/config"
	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/engine"
	"github.com/vovakirdan/blocken/internal/storage"
)

// Frontend presents a running session to the player.
// Frontends own the update goroutine: input handling, Session.Update and
// rendering all happen on it.
type Frontend interface {
	// ID returns a unique identifier (e.g., "terminal", "window").
	// Used for CLI lookup.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the player quits.
	Run(env Env) error
}

// Env is everything a frontend needs to build and drive a session.
type Env struct {
	Config    config.Config
	Runtime   core.RuntimeConfig
	Logger    *log.Logger
	Store     *storage.Store    // Run journal, may be nil
	Observers []engine.Observer // Extra observers such as audio cues
}

// SessionOptions returns the engine options described by the environment.
func (e Env) SessionOptions() engine.SessionOptions {
	observers := append([]engine.Observer(nil), e.Observers...)
	if e.Store != nil {
		observers = append(observers, engine.NewJournal(e.Store, e.Logger))
	}
	return engine.SessionOptions{
		Seed:      e.Runtime.Seed,
		Placement: e.Config.Simulation.Placement,
		Logger:    e.Logger,
		Observers: observers,
	}
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
