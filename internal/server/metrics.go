package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics exposes request-level latency histograms on /metrics.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "careline",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

func (m *HTTPMetrics) Observe(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(method, path, status).Observe(d.Seconds())
}
