// Package registry provides a global catalog of playable levels.
// Level packs register themselves in init() functions, allowing the platform
// to discover and load levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Level is a registered level ready to be turned into a simulation state.
type Level struct {
	ID    string
	Title string
	Data  []byte // Raw tile bytes, one per cell
}

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID    string
	Title string
}

// Factory returns the raw tile bytes of a level. It is called on every
// Load, so each caller gets its own copy.
type Factory func() ([]byte, error)

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from a level pack's init() function.
// Panics if a level with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}
	if title == "" {
		title = id
	}

	entries[id] = entry{title: title, factory: f}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, LevelInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load produces the level registered under id.
// Returns an error if the ID is unknown or the factory fails.
func Load(id string) (Level, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return Level{}, fmt.Errorf("registry: unknown level %q", id)
	}

	data, err := e.factory()
	if err != nil {
		return Level{}, fmt.Errorf("registry: loading level %q: %w", id, err)
	}

	return Level{ID: id, Title: e.title, Data: data}, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// First returns the lowest registered ID, or "" when empty.
func First() string {
	levels := List()
	if len(levels) == 0 {
		return ""
	}
	return levels[0].ID
}
