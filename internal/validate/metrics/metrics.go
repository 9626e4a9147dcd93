package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Validation outcomes by identifier kind and outcome
	ValidationOutcome *prometheus.CounterVec

	// Validation latency by identifier kind
	ValidateLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance with all validation module metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cotejo_validations_total",
			Help: "Total validation outcomes by identifier kind and outcome",
		}, []string{"kind", "outcome"}), // outcome: "valid", "invalid"

		ValidateLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cotejo_validate_duration_seconds",
			Help:    "Duration of validation operations by identifier kind",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}, []string{"kind"}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(kind, outcome string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveValidateLatency records the duration of a validation.
func (m *Metrics) ObserveValidateLatency(kind string, d time.Duration) {
	if m != nil {
		m.ValidateLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}
