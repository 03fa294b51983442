package build

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/wirekit/metric"
)

// buildMetrics holds Prometheus metrics for container construction.
type buildMetrics struct {
	componentsBuilt *prometheus.CounterVec   // By component type
	buildFailures   *prometheus.CounterVec   // By component type
	buildDuration   *prometheus.HistogramVec // By status (success/failure)
}

// newBuildMetrics creates and registers build metrics with the provided
// registry. A nil registry disables metrics.
func newBuildMetrics(registry *metric.MetricsRegistry) (*buildMetrics, error) {
	if registry == nil {
		return nil, nil
	}

	m := &buildMetrics{
		componentsBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "build",
			Name:      "components_total",
			Help:      "Total number of components constructed",
		}, []string{"type"}),

		buildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "build",
			Name:      "component_failures_total",
			Help:      "Total number of component construction failures",
		}, []string{"type"}),

		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wirekit",
			Subsystem: "build",
			Name:      "duration_seconds",
			Help:      "Container construction duration in seconds",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		}, []string{"status"}),
	}

	if err := registry.Register("build", "components_total", m.componentsBuilt); err != nil {
		return nil, err
	}
	if err := registry.Register("build", "component_failures_total", m.buildFailures); err != nil {
		return nil, err
	}
	if err := registry.Register("build", "duration_seconds", m.buildDuration); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *buildMetrics) recordBuilt(componentType string) {
	if m == nil {
		return
	}
	m.componentsBuilt.WithLabelValues(componentType).Inc()
}

func (m *buildMetrics) recordFailure(componentType string) {
	if m == nil {
		return
	}
	m.buildFailures.WithLabelValues(componentType).Inc()
}

func (m *buildMetrics) recordDuration(d time.Duration, success bool) {
	if m == nil {
		return
	}
	status := "failure"
	if success {
		status = "success"
	}
	m.buildDuration.WithLabelValues(status).Observe(d.Seconds())
}
