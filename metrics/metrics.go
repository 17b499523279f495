// Package metrics exposes Prometheus instrumentation for the support
// pipeline: turn throughput per agent, escalation and degraded
// classification counters, and latency histograms.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the pipeline's Prometheus metrics.
type Collector struct {
	turnsTotal             *prometheus.CounterVec
	turnDuration           *prometheus.HistogramVec
	escalationsTotal       prometheus.Counter
	classificationDuration *prometheus.HistogramVec
	classificationDegraded prometheus.Counter
	saveFailuresTotal      prometheus.Counter
}

// NewCollector registers the pipeline metrics with the given registerer,
// typically prometheus.DefaultRegisterer. Use a fresh registry per test to
// avoid duplicate registration.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		turnsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "supportmesh",
				Name:      "turns_total",
				Help:      "Total number of processed turns by handling agent.",
			},
			[]string{"agent", "priority"},
		),
		turnDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "supportmesh",
				Name:      "turn_duration_seconds",
				Help:      "End-to-end turn duration in seconds.",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"agent"},
		),
		escalationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "supportmesh",
				Name:      "escalations_total",
				Help:      "Total number of turns flagged for escalation.",
			},
		),
		classificationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "supportmesh",
				Name:      "classification_duration_seconds",
				Help:      "Classifier call duration in seconds.",
				Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"outcome"},
		),
		classificationDegraded: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "supportmesh",
				Name:      "classification_degraded_total",
				Help:      "Total number of turns that fell back to default labels after a classifier failure.",
			},
		),
		saveFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "supportmesh",
				Name:      "session_save_failures_total",
				Help:      "Total number of failed session store writes.",
			},
		),
	}
}

// ObserveTurn records a completed turn.
func (c *Collector) ObserveTurn(agent, priority string, escalated bool, duration time.Duration) {
	c.turnsTotal.WithLabelValues(agent, priority).Inc()
	c.turnDuration.WithLabelValues(agent).Observe(duration.Seconds())
	if escalated {
		c.escalationsTotal.Inc()
	}
}

// ObserveClassification records one classifier call. Degraded calls are
// those whose failure was absorbed by the default-label fallback.
func (c *Collector) ObserveClassification(duration time.Duration, degraded bool) {
	outcome := "ok"
	if degraded {
		outcome = "degraded"
		c.classificationDegraded.Inc()
	}
	c.classificationDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// ObserveSaveFailure records a failed session store write.
func (c *Collector) ObserveSaveFailure() {
	c.saveFailuresTotal.Inc()
}
