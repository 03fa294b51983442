// Package wirekit is an eager dependency-injection container for long-lived
// object graphs.
//
// A topology describes an ordered list of component instances: a type name,
// an instance id, the ids of dependencies to inject, and a typed
// configuration. Topologies are assembled with a builder or loaded from JSON
// or YAML. A build drives the registered factories over the topology in
// order, wires injected references through a heterogeneous dependency
// registry keyed by (interface type, id), and exposes the resulting
// instances for lookup. Teardown runs in reverse construction order, because
// later components hold references into earlier ones.
//
// The packages, leaves first:
//
//   - typename: stable display names used as type identity
//   - castcheck: safe reinterpretation rules for integral config values
//   - config: typed per-instance configuration
//   - topology: the topology model, builder, and loaders
//   - registry: the dependency registry
//   - component: the component contract, base, and registrar
//   - factory: component factories and their process-wide registry
//   - build: the container
package wirekit
