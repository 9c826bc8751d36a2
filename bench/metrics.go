// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-run observations into a private Prometheus registry.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	runDuration *prometheus.HistogramVec
	tourLength  *prometheus.GaugeVec
	runsTotal   *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewMetrics registers the benchmark collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tourbench",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of one heuristic run.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"algorithm"}),
		tourLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "tourbench",
			Name:      "tour_length",
			Help:      "Length of the tour returned by the latest run.",
		}, []string{"algorithm"}),
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourbench",
			Name:      "runs_total",
			Help:      "Completed heuristic runs.",
		}, []string{"algorithm"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tourbench",
			Name:      "run_failures_total",
			Help:      "Heuristic runs that returned an error.",
		}, []string{"algorithm"}),
	}
}

// Registry exposes the underlying registry (for gathering or serving).
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// ready for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	m.runDuration.WithLabelValues(r.Name).Observe(r.Elapsed.Seconds())
	m.tourLength.WithLabelValues(r.Name).Set(r.Length)
	m.runsTotal.WithLabelValues(r.Name).Inc()
}

func (m *Metrics) fail(name string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(name).Inc()
}
