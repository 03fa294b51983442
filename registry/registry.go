// Package registry keeps track of the dependencies available while a
// topology is being built, and exposes them afterwards. Dependencies are
// keyed by (interface type, id); the registry never owns its referents.
//
// The registry is heterogeneous: one Register per interface type, aggregated
// behind a type-erased view. The typed surface lives in package-level
// generic functions (Add, Get, GetAll, Has) because Go methods cannot carry
// their own type parameters.
package registry

import (
	"fmt"
	"sort"
	"strings"

	pkgerrors "github.com/c360/wirekit/errors"
	"github.com/c360/wirekit/typename"
)

// Register records dependencies of a single interface type T. It does not
// own the registered dependencies.
type Register[T any] struct {
	typ  string
	deps map[string]T
}

// NewRegister creates an empty register for T.
func NewRegister[T any]() *Register[T] {
	return &Register[T]{
		typ:  typename.Of[T](),
		deps: make(map[string]T),
	}
}

// TypeName returns the display name of T.
func (r *Register[T]) TypeName() string { return r.typ }

// Size returns the number of registered dependencies.
func (r *Register[T]) Size() int { return len(r.deps) }

// Add registers dep under id.
func (r *Register[T]) Add(id string, dep T) error {
	if _, exists := r.deps[id]; exists {
		return &pkgerrors.DependencyDuplicated{Type: r.typ, ID: id}
	}
	r.deps[id] = dep
	return nil
}

// Get returns the dependency registered under id.
func (r *Register[T]) Get(id string) (T, error) {
	dep, ok := r.deps[id]
	if !ok {
		var zero T
		return zero, &pkgerrors.DependencyNotFound{Type: r.typ, ID: id}
	}
	return dep, nil
}

// Has reports whether a dependency is registered under id.
func (r *Register[T]) Has(id string) bool {
	_, ok := r.deps[id]
	return ok
}

// GetAll returns all registered dependencies, in id order.
func (r *Register[T]) GetAll() []T {
	all := make([]T, 0, len(r.deps))
	for _, id := range r.IDs() {
		all = append(all, r.deps[id])
	}
	return all
}

// IDs returns all registered ids, sorted.
func (r *Register[T]) IDs() []string {
	ids := make([]string, 0, len(r.deps))
	for id := range r.deps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// String renders one "<type>{<id>}" line per dependency, in id order.
func (r *Register[T]) String() string {
	lines := make([]string, 0, len(r.deps))
	for _, id := range r.IDs() {
		lines = append(lines, fmt.Sprintf("%s{%s}", r.typ, id))
	}
	return strings.Join(lines, "\n")
}

// anyRegister is the type-erased view the registry aggregates.
type anyRegister interface {
	TypeName() string
	Size() int
	IDs() []string
	String() string
}

// Ref names one registered dependency.
type Ref struct {
	Type string
	ID   string
}

// Registry aggregates registers of multiple interface types. It does not own
// the registered dependencies.
type Registry struct {
	registers map[string]anyRegister
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{registers: make(map[string]anyRegister)}
}

// Add registers dep under (T, id), lazily creating the register for T.
func Add[T any](r *Registry, id string, dep T) error {
	name := typename.Of[T]()
	existing, ok := r.registers[name]
	if !ok {
		reg := NewRegister[T]()
		r.registers[name] = reg
		return reg.Add(id, dep)
	}
	reg, ok := existing.(*Register[T])
	if !ok {
		// Two distinct Go types rendering the same display name.
		return fmt.Errorf("type name collision for %s", name)
	}
	return reg.Add(id, dep)
}

// Get returns the dependency registered under (T, id).
func Get[T any](r *Registry, id string) (T, error) {
	name := typename.Of[T]()
	existing, ok := r.registers[name]
	if !ok {
		var zero T
		return zero, &pkgerrors.DependencyRegisterNotFound{Type: name, ID: id}
	}
	reg, ok := existing.(*Register[T])
	if !ok {
		var zero T
		return zero, fmt.Errorf("type name collision for %s", name)
	}
	return reg.Get(id)
}

// GetAll returns all dependencies registered under T, in id order.
func GetAll[T any](r *Registry) []T {
	existing, ok := r.registers[typename.Of[T]()]
	if !ok {
		return nil
	}
	reg, ok := existing.(*Register[T])
	if !ok {
		return nil
	}
	return reg.GetAll()
}

// Has reports whether a dependency is registered under (T, id).
func Has[T any](r *Registry, id string) bool {
	existing, ok := r.registers[typename.Of[T]()]
	if !ok {
		return false
	}
	reg, ok := existing.(*Register[T])
	return ok && reg.Has(id)
}

// All returns a Ref for every registered dependency, registers in type-name
// order and ids sorted within each register.
func (r *Registry) All() []Ref {
	refs := make([]Ref, 0, len(r.registers))
	for _, name := range r.typeNames() {
		reg := r.registers[name]
		for _, id := range reg.IDs() {
			refs = append(refs, Ref{Type: name, ID: id})
		}
	}
	return refs
}

// String renders every register, in type-name order.
func (r *Registry) String() string {
	parts := make([]string, 0, len(r.registers))
	for _, name := range r.typeNames() {
		if s := r.registers[name].String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (r *Registry) typeNames() []string {
	names := make([]string, 0, len(r.registers))
	for name := range r.registers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
