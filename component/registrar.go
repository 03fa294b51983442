package component

import (
	"reflect"

	pkgerrors "github.com/c360/wirekit/errors"
	"github.com/c360/wirekit/registry"
	"github.com/c360/wirekit/typename"
)

// Registrar registers one freshly constructed component in a dependency
// registry. It tracks what this component already registered, so a
// duplicated interface declaration is ignored rather than reported as a
// clash with another component, and side ids stay unique across the whole
// component regardless of side-dependency type.
type Registrar struct {
	reg     *registry.Registry
	c       Component
	types   map[string]struct{}
	sideIDs map[string]struct{}
}

// NewRegistrar creates a registrar for c. Called by factories.
func NewRegistrar(reg *registry.Registry, c Component) *Registrar {
	return &Registrar{
		reg:     reg,
		c:       c,
		types:   make(map[string]struct{}),
		sideIDs: make(map[string]struct{}),
	}
}

// As registers the component under interface type I and its own instance id.
// Declaring the same interface twice is a no-op.
func As[I any](r *Registrar) error {
	name := typename.Of[I]()
	if reflect.TypeOf((*I)(nil)).Elem().Kind() != reflect.Interface {
		return &pkgerrors.NotInterface{Type: name}
	}
	if _, done := r.types[name]; done {
		return nil
	}
	impl, ok := any(r.c).(I)
	if !ok {
		return &pkgerrors.InterfaceNotImplemented{
			ComponentType: r.c.Type(),
			ComponentID:   r.c.ID(),
			Interface:     name,
		}
	}
	if err := registry.Add[I](r.reg, r.c.ID(), impl); err != nil {
		return err
	}
	r.types[name] = struct{}{}
	return nil
}

// Side registers a side dependency the component owns, under the composite
// id "{component-id}_{side-id}". Side ids must be non-empty and unique
// within the component.
func Side[S any](r *Registrar, sideID string, dep S) error {
	if reflect.TypeOf((*S)(nil)).Elem().Kind() != reflect.Interface {
		return &pkgerrors.NotInterface{Type: typename.Of[S]()}
	}
	if sideID == "" {
		return &pkgerrors.SideDependencyIdEmpty{
			ComponentType: r.c.Type(),
			ComponentID:   r.c.ID(),
		}
	}
	composite := r.c.ID() + "_" + sideID
	if _, dup := r.sideIDs[composite]; dup {
		return &pkgerrors.SideDependencyIdDuplicated{ID: composite}
	}
	if err := registry.Add[S](r.reg, composite, dep); err != nil {
		return err
	}
	r.sideIDs[composite] = struct{}{}
	return nil
}
