package topology

import (
	"github.com/c360/wirekit/config"
	pkgerrors "github.com/c360/wirekit/errors"
)

// Builder populates a topology. Creating a builder clears its target.
type Builder struct {
	top *Topology
}

// NewBuilder creates a builder writing into top, which is cleared.
func NewBuilder(top *Topology) *Builder {
	*top = nil
	return &Builder{top: top}
}

// Component appends a new entry for the given type and instance id and
// returns its entry builder.
func (b *Builder) Component(typ, id string) (*EntryBuilder, error) {
	for _, e := range *b.top {
		if e.ID == id {
			return nil, &pkgerrors.ComponentIdDuplicated{Type: typ, ID: id}
		}
	}
	*b.top = append(*b.top, Entry{Type: typ, ID: id, Config: config.Config{}})
	return &EntryBuilder{top: b.top, index: len(*b.top) - 1}, nil
}

// EntryBuilder configures a single topology entry.
type EntryBuilder struct {
	top   *Topology
	index int
}

// Dependency appends a dependency id to the entry.
func (eb *EntryBuilder) Dependency(id string) *EntryBuilder {
	entry := &(*eb.top)[eb.index]
	entry.DependencyIDs = append(entry.DependencyIDs, id)
	return eb
}

// SetConfig stores a config value under key for the entry eb builds.
func SetConfig[T config.Scalar](eb *EntryBuilder, key string, value T) error {
	entry := &(*eb.top)[eb.index]
	if _, dup := entry.Config[key]; dup {
		return &pkgerrors.ConfigEntryKeyDuplicated{Key: key}
	}
	entry.Config[key] = config.New(key, value)
	return nil
}
