package factory

import (
	"sort"
	"sync"

	pkgerrors "github.com/c360/wirekit/errors"
)

// Registry maps component type names to factories. The default registry is
// process-wide and populated by Registerers during package initialization;
// it is mutex-protected so registration from multiple init paths stays safe,
// but the expected shape is populate-once-then-read.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty factory registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide factory registry.
func Default() *Registry { return defaultRegistry }

// Add registers f under its type name. Returns false, without replacing
// anything, if a factory for that type is already present.
func (r *Registry) Add(f Factory) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[f.Type()]; exists {
		return false
	}
	r.factories[f.Type()] = f
	return true
}

// Remove erases the factory registered under f's type name, if it is f.
func (r *Registry) Remove(f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, exists := r.factories[f.Type()]; exists && current == f {
		delete(r.factories, f.Type())
	}
}

// Has reports whether a factory is registered for the given type name.
func (r *Registry) Has(typ string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[typ]
	return exists
}

// Get returns the factory registered for the given type name.
func (r *Registry) Get(typ string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, exists := r.factories[typ]
	if !exists {
		return nil, &pkgerrors.FactoryNotFound{Type: typ}
	}
	return f, nil
}

// All returns the type names of every registered factory, sorted.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for typ := range r.factories {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
