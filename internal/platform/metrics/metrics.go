package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus metrics shared by all handlers.
// Feature modules register their own metrics in their metrics packages.
type Metrics struct {
	HTTPLatency *prometheus.HistogramVec
}

// New creates and registers the shared HTTP metrics.
func New() *Metrics {
	return &Metrics{
		HTTPLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cotejo_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status code",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// ObserveHTTPLatency records one request's duration.
func (m *Metrics) ObserveHTTPLatency(route, status string, d time.Duration) {
	if m != nil {
		m.HTTPLatency.WithLabelValues(route, status).Observe(d.Seconds())
	}
}
