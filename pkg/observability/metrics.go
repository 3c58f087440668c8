package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sortviz/sortviz/pkg/domain"
)

// Metrics holds the Prometheus collectors for sort runs.
// It owns its own registry so embedding applications never collide with
// the default global one.
type Metrics struct {
	registry *prometheus.Registry

	sortsTotal   prometheus.Counter
	stepsTotal   *prometheus.CounterVec
	comparisons  prometheus.Histogram
	sortDuration prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sortsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sortviz",
			Name:      "sorts_total",
			Help:      "Total number of completed sort runs.",
		}),
		stepsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortviz",
			Name:      "steps_total",
			Help:      "Total recorded steps, partitioned by step type.",
		}, []string{"type"}),
		comparisons: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sortviz",
			Name:      "comparisons_per_sort",
			Help:      "Number of comparisons recorded per sort run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		sortDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sortviz",
			Name:      "sort_duration_seconds",
			Help:      "Wall time of sort runs, instrumentation included.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(m.sortsTotal, m.stepsTotal, m.comparisons, m.sortDuration)
	return m
}

// ObserveSort records a completed run.
func (m *Metrics) ObserveSort(trace domain.Trace, d time.Duration) {
	m.sortsTotal.Inc()
	m.stepsTotal.WithLabelValues(string(domain.StepCompare)).Add(float64(trace.Count(domain.StepCompare)))
	m.stepsTotal.WithLabelValues(string(domain.StepSwap)).Add(float64(trace.Count(domain.StepSwap)))
	m.stepsTotal.WithLabelValues(string(domain.StepPassComplete)).Add(float64(trace.Count(domain.StepPassComplete)))
	m.comparisons.Observe(float64(trace.Count(domain.StepCompare)))
	m.sortDuration.Observe(d.Seconds())
}

// Handler returns an HTTP handler exposing the registry in the Prometheus
// text format. Mount it wherever the embedding server sees fit.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and custom gatherers.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
