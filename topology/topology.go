// Package topology describes what a build should construct: an ordered list
// of component entries, each naming a type, an instance id, the ids of
// dependencies to inject, and a typed configuration. The order of entries is
// the construction order; topologies are expected to arrive already
// topologically sorted.
//
// Topologies are assembled through a Builder, either directly or by the JSON
// and YAML loaders.
package topology

import (
	"fmt"
	"strings"

	"github.com/c360/wirekit/config"
)

// Entry defines one component instance to be constructed.
type Entry struct {
	// Type is the component type name.
	Type string
	// ID is the instance id, unique within the topology. Interfaces the
	// component exposes are registered under the same id.
	ID string
	// DependencyIDs lists, in constructor-parameter order, the ids of
	// dependencies to inject.
	DependencyIDs []string
	// Config is the instance configuration.
	Config config.Config
}

// Topology is an ordered collection of entries.
type Topology []Entry

// String renders the topology as one block per entry, a debugging aid with
// a stable format:
//
//	component "<type>" "<id>"
//	    dependency "<id>"
//	    config "<key>" <type> <value>
//
// String-typed config values are quoted; integrals print in canonical
// decimal and bool as true/false.
func (t Topology) String() string {
	var b strings.Builder
	for _, e := range t {
		fmt.Fprintf(&b, "component %q %q\n", e.Type, e.ID)
		for _, id := range e.DependencyIDs {
			fmt.Fprintf(&b, "    dependency %q\n", id)
		}
		for _, key := range e.Config.Keys() {
			entry := e.Config[key]
			if entry.Type() == "string" {
				fmt.Fprintf(&b, "    config %q %s %q\n", key, entry.Type(), entry.String())
			} else {
				fmt.Fprintf(&b, "    config %q %s %s\n", key, entry.Type(), entry.String())
			}
		}
	}
	return b.String()
}
