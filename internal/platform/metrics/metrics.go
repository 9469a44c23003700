package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-level Prometheus metrics. Module-specific metrics
// live in each module's metrics package.
type Metrics struct {
	UsersRegistered prometheus.Counter
	Logins          *prometheus.CounterVec
}

// New creates and registers all platform metrics.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medicinna_users_registered_total",
			Help: "Total number of user accounts created",
		}),
		Logins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "medicinna_logins_total",
			Help: "Total login attempts by outcome",
		}, []string{"outcome"}), // outcome: "success", "failure"
	}
}

// IncrementUsersRegistered increments the registration counter by 1.
func (m *Metrics) IncrementUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

// IncrementLogin records a login attempt outcome.
func (m *Metrics) IncrementLogin(outcome string) {
	if m != nil {
		m.Logins.WithLabelValues(outcome).Inc()
	}
}
