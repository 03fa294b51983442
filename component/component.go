// Package component defines what a buildable component is: the interface
// every factory-constructed instance satisfies, the Base carrying instance
// identity and configuration, and the Registrar through which a component
// declares the interfaces and side dependencies it exposes.
package component

import (
	"github.com/c360/wirekit/config"
	pkgerrors "github.com/c360/wirekit/errors"
)

// Component is a factory-constructed instance owned by a build. Register is
// called by the factory exactly once, right after construction; the
// component declares there every interface it implements (As) and every side
// dependency it exposes (Side).
type Component interface {
	// Type returns the component's type name.
	Type() string
	// ID returns the instance id the topology assigned.
	ID() string
	// Register declares the component's exposed interfaces and side
	// dependencies.
	Register(r *Registrar) error
}

// Base carries the identity and configuration of one component instance.
// Concrete components embed it and gain Type, ID, and config access.
type Base struct {
	typ string
	id  string
	cfg config.Config
}

// NewBase creates the base for a new instance. Called by factories.
func NewBase(typ, id string, cfg config.Config) Base {
	return Base{typ: typ, id: id, cfg: cfg}
}

// Type returns the component's type name.
func (b Base) Type() string { return b.typ }

// ID returns the instance id.
func (b Base) ID() string { return b.id }

// Value reads the config entry under key at type T.
func Value[T config.Scalar](b Base, key string) (T, error) {
	entry, ok := b.cfg.Get(key)
	if !ok {
		var zero T
		return zero, &pkgerrors.ConfigEntryNotFound{
			ComponentType: b.typ,
			ComponentID:   b.id,
			Key:           key,
		}
	}
	return config.Value[T](entry)
}
