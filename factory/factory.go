// Package factory constructs component instances from topology entries and
// keeps the process-wide registry of available factories.
//
// A factory is created once per concrete component type with New and a
// constructor function. During Build the constructor receives the instance
// Base (type, id, config) and an Injector; each Inject call consumes the
// next dependency id from the topology entry and resolves it in the
// dependency registry at the interface type the constructor asked for. The
// i-th injected parameter is therefore always bound to the i-th dependency
// id, which is the contract topologies are written against.
package factory

import (
	"reflect"

	"github.com/c360/wirekit/component"
	"github.com/c360/wirekit/config"
	pkgerrors "github.com/c360/wirekit/errors"
	"github.com/c360/wirekit/registry"
	"github.com/c360/wirekit/typename"
)

// Factory constructs instances of one concrete component type.
type Factory interface {
	// Type returns the constructed component type name.
	Type() string
	// Build constructs a component, injecting the dependencies named by
	// dependencyIDs, and registers the result (and its side dependencies)
	// in reg.
	Build(id string, dependencyIDs []string, cfg config.Config, reg *registry.Registry) (component.Component, error)
}

// Constructor builds one instance of C from its base and an injector.
type Constructor[C component.Component] func(base component.Base, in *Injector) (C, error)

// New creates a factory for concrete component type C.
func New[C component.Component](construct Constructor[C]) Factory {
	return &componentFactory[C]{
		typ:       typename.Of[C](),
		construct: construct,
	}
}

type componentFactory[C component.Component] struct {
	typ       string
	construct Constructor[C]
}

func (f *componentFactory[C]) Type() string { return f.typ }

func (f *componentFactory[C]) Build(
	id string, dependencyIDs []string, cfg config.Config, reg *registry.Registry,
) (component.Component, error) {
	in := &Injector{
		componentType: f.typ,
		componentID:   id,
		reg:           reg,
		ids:           dependencyIDs,
	}
	c, err := f.construct(component.NewBase(f.typ, id, cfg), in)
	if err != nil {
		return nil, err
	}
	if err := c.Register(component.NewRegistrar(reg, c)); err != nil {
		return nil, err
	}
	return c, nil
}

// Injector hands out the dependencies a topology entry names, one Inject
// call at a time, in entry order. Ids the constructor never consumes are
// ignored.
type Injector struct {
	componentType string
	componentID   string
	reg           *registry.Registry
	ids           []string
	next          int
}

// Remaining returns the number of dependency ids not consumed yet.
func (in *Injector) Remaining() int { return len(in.ids) - in.next }

// Inject resolves the next dependency id at interface type I.
func Inject[I any](in *Injector) (I, error) {
	var zero I
	if reflect.TypeOf((*I)(nil)).Elem().Kind() != reflect.Interface {
		return zero, &pkgerrors.NotInterface{Type: typename.Of[I]()}
	}
	if in.next >= len(in.ids) {
		return zero, &pkgerrors.DependencyIdsExhausted{
			ComponentType: in.componentType,
			ComponentID:   in.componentID,
			Provided:      len(in.ids),
		}
	}
	id := in.ids[in.next]
	in.next++
	return registry.Get[I](in.reg, id)
}
