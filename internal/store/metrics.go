package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks store round trips per container and operation.
type Metrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewMetrics registers the store instruments on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "careline_store_request_duration_seconds",
			Help:    "Latency of record store round trips.",
			Buckets: prometheus.DefBuckets,
		}, []string{"container", "op"}),
		errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "careline_store_request_errors_total",
			Help: "Failed record store round trips.",
		}, []string{"container", "op"}),
	}
}

func (m *Metrics) observe(container, op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(container, op).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errors.WithLabelValues(container, op).Inc()
	}
}
