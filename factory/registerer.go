package factory

// Registerer ties a factory's lifetime to its registration. Component
// packages create one in a package-level var so the factory registers
// during program initialization:
//
//	var _ = factory.NewRegisterer(factory.New[*Motor](newMotor))
//
// Close deregisters; tests use it to keep the default registry clean.
type Registerer struct {
	r          *Registry
	f          Factory
	registered bool
}

// NewRegisterer registers f in the default registry.
func NewRegisterer(f Factory) *Registerer {
	return NewRegistererIn(Default(), f)
}

// NewRegistererIn registers f in r.
func NewRegistererIn(r *Registry, f Factory) *Registerer {
	return &Registerer{r: r, f: f, registered: r.Add(f)}
}

// Registered reports whether the factory actually entered the registry.
func (rr *Registerer) Registered() bool { return rr.registered }

// Close removes the factory from its registry, if this registerer added it.
func (rr *Registerer) Close() {
	if rr.registered {
		rr.r.Remove(rr.f)
		rr.registered = false
	}
}
