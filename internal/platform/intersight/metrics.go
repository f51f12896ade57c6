package intersight

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records API call counts and latencies for a single run.
// Each instance owns its registry so runs and tests do not share state.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates a metrics set with its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "intersight_sp",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of Intersight API requests by method, resource and status code",
			},
			[]string{"method", "resource", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "intersight_sp",
				Subsystem: "api",
				Name:      "request_duration_seconds",
				Help:      "Duration of Intersight API requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
			},
			[]string{"method", "resource"},
		),
	}
	m.registry.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// WriteToTextfile writes the metrics in Prometheus text format to path.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// observe records one request. code is the HTTP status or "error" for
// transport failures. Safe to call on a nil receiver.
func (m *Metrics) observe(method, resource, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, resource, code).Inc()
	m.requestDuration.WithLabelValues(method, resource).Observe(d.Seconds())
}
