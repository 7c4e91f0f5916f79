// Package registry provides a global registry of named areas.
// Shape packages register themselves in init() functions, allowing the
// commands and servers to discover areas without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/borderwalk/internal/area"
)

// Info contains metadata about a registered area.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that builds a fresh copy of a shape.
type Factory func() area.Shape

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a shape factory to the registry.
// Typically called from an init() function.
// Panics if a shape with the same ID is already registered or the shape is invalid.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: area %q already registered", id))
	}
	register(id, f)
}

// RegisterShapes registers already loaded shapes (e.g. from a shapes
// directory). Shapes whose ID is taken are skipped and returned.
func RegisterShapes(shapes []area.Shape) (skipped []string) {
	mu.Lock()
	defer mu.Unlock()

	for _, s := range shapes {
		if _, exists := factories[s.ID]; exists {
			skipped = append(skipped, s.ID)
			continue
		}
		shape := s
		register(shape.ID, func() area.Shape { return shape })
	}
	return skipped
}

// register validates and stores a factory. mu must be held.
func register(id string, f Factory) {
	s := f()
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("registry: area %q: %v", id, err))
	}

	factories[id] = f
	titles[id] = s.Title()
}

// List returns information about all registered areas, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a shape by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (area.Shape, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return area.Shape{}, fmt.Errorf("registry: unknown area %q", id)
	}

	return f(), nil
}

// Exists checks if an area with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes an entry; used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(titles, id)
}
