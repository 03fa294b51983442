// Package build drives factories over a topology and owns the resulting
// component instances. Construction is eager and strictly in topology order;
// teardown is in reverse construction order, because later components hold
// references into earlier ones. After a successful New the query surface is
// read-only and safe for concurrent readers.
package build

import (
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/c360/wirekit/component"
	"github.com/c360/wirekit/factory"
	"github.com/c360/wirekit/metric"
	"github.com/c360/wirekit/registry"
	"github.com/c360/wirekit/topology"
)

// Build owns the components constructed from one topology and exposes them
// for lookup by interface type and id.
type Build struct {
	id       string
	registry *registry.Registry
	stack    []component.Component
	logger   *slog.Logger
	metrics  *buildMetrics
}

type options struct {
	factories *factory.Registry
	logger    *slog.Logger
	metrics   *metric.MetricsRegistry
}

// Option customizes a build.
type Option func(*options)

// WithFactories selects the factory registry to construct from instead of
// the process-wide default.
func WithFactories(r *factory.Registry) Option {
	return func(o *options) { o.factories = r }
}

// WithLogger sets the logger construction and teardown progress is reported
// on. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics enables build metrics on the given registry.
func WithMetrics(m *metric.MetricsRegistry) Option {
	return func(o *options) { o.metrics = m }
}

// New constructs every component the topology names, in order. On failure
// the components built so far are torn down in reverse order and the error
// is returned untouched.
func New(top topology.Topology, opts ...Option) (*Build, error) {
	o := options{factories: factory.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	b := &Build{
		id:       uuid.NewString(),
		registry: registry.New(),
	}
	b.logger = o.logger.With("build_id", b.id)

	metrics, err := newBuildMetrics(o.metrics)
	if err != nil {
		b.logger.Error("Failed to initialize build metrics", "error", err)
		metrics = nil // Continue without metrics
	}
	b.metrics = metrics

	start := time.Now()
	for i := range top {
		entry := &top[i]

		f, err := o.factories.Get(entry.Type)
		if err != nil {
			b.abort(entry.Type, start)
			return nil, err
		}

		c, err := f.Build(entry.ID, entry.DependencyIDs, entry.Config, b.registry)
		if err != nil {
			b.abort(entry.Type, start)
			return nil, err
		}

		b.stack = append(b.stack, c)
		b.metrics.recordBuilt(entry.Type)
		b.logger.Debug("component constructed", "type", entry.Type, "id", entry.ID)
	}

	b.metrics.recordDuration(time.Since(start), true)
	b.logger.Info("container built", "components", len(b.stack))
	return b, nil
}

// abort tears down a partially constructed build before its error escapes.
func (b *Build) abort(failedType string, start time.Time) {
	b.metrics.recordFailure(failedType)
	b.metrics.recordDuration(time.Since(start), false)
	if err := b.Close(); err != nil {
		b.logger.Warn("teardown after failed construction", "error", err)
	}
}

// Close tears the container down: components are closed in reverse
// construction order, one pop per component. Components that do not
// implement io.Closer are simply released. Close errors do not stop the
// teardown; they are joined and returned once the stack is drained.
func (b *Build) Close() error {
	var errs []error
	for i := len(b.stack) - 1; i >= 0; i-- {
		c := b.stack[i]
		if closer, ok := c.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		b.logger.Debug("component destroyed", "type", c.Type(), "id", c.ID())
	}
	b.stack = nil
	return stderrors.Join(errs...)
}

// ID returns the unique id of this build instance.
func (b *Build) ID() string { return b.id }

// Size returns the number of components the build owns.
func (b *Build) Size() int { return len(b.stack) }

// All returns (type name, id) for every exposed dependency, registers in
// type-name order and ids sorted within each.
func (b *Build) All() []registry.Ref {
	return b.registry.All()
}

// Has reports whether a dependency is exposed under (T, id).
func Has[T any](b *Build, id string) bool {
	return registry.Has[T](b.registry, id)
}

// Get returns the dependency exposed under (T, id).
func Get[T any](b *Build, id string) (T, error) {
	return registry.Get[T](b.registry, id)
}

// GetAll returns all dependencies exposed under T, in id order.
func GetAll[T any](b *Build) []T {
	return registry.GetAll[T](b.registry)
}
