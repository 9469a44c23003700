package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification engine.
type Metrics struct {
	// Verdicts by status
	Verdicts *prometheus.CounterVec

	// Overall verify latency including the audit append
	VerifyLatency prometheus.Histogram
}

// New creates a new Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medicinna_verification_verdicts_total",
			Help: "Total verification verdicts by status",
		}, []string{"status"}), // status: VALID, EXPIRED, RECALLED, SUBSTANDARD, FAKE

		VerifyLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "medicinna_verification_verify_duration_seconds",
			Help:    "Duration of full batch verification including the audit append",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementVerdict records a verdict outcome.
func (m *Metrics) IncrementVerdict(status string) {
	if m != nil {
		m.Verdicts.WithLabelValues(status).Inc()
	}
}

// ObserveVerifyLatency records the total verification duration.
func (m *Metrics) ObserveVerifyLatency(d time.Duration) {
	if m != nil {
		m.VerifyLatency.Observe(d.Seconds())
	}
}
