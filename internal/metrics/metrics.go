// Package metrics exposes Prometheus instrumentation for link resolution.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the resolution counter.
const (
	OutcomeOK          = "ok"
	OutcomeUnsupported = "unsupported"
	OutcomeUpstream    = "upstream_error"
	OutcomeExtraction  = "extraction_error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New creates and registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkmeta_resolutions_total",
			Help: "Link resolutions by host and outcome.",
		}, []string{"host", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "linkmeta_resolution_duration_seconds",
			Help:    "Resolution duration by host.",
			Buckets: prometheus.DefBuckets,
		}, []string{"host"}),
	}
	reg.MustRegister(m.resolutions, m.duration)
	return m
}

// Resolutions exposes the resolution counter for assertions in tests.
func (m *Metrics) Resolutions() *prometheus.CounterVec {
	return m.resolutions
}

// ObserveResolution records one resolution attempt.
func (m *Metrics) ObserveResolution(host, outcome string, elapsed time.Duration) {
	m.resolutions.WithLabelValues(host, outcome).Inc()
	m.duration.WithLabelValues(host).Observe(elapsed.Seconds())
}
