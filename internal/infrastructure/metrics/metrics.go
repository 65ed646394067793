package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the bank slip Prometheus metrics.
type Metrics struct {
	// Bank slip metrics
	BankSlipsCreated   prometheus.Counter
	BankSlipsResolved  *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	Outcomes           *prometheus.CounterVec
	UnexpectedErrors   *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		BankSlipsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bankslip_created_total",
			Help: "Total number of bank slips created",
		}),
		BankSlipsResolved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankslip_resolved_total",
				Help: "Total number of bank slips resolved by target status",
			},
			[]string{"status"},
		),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "bankslip_validation_failures_total",
			Help: "Total number of rejected creation requests",
		}),
		Outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankslip_outcomes_total",
				Help: "Total number of operation outcomes by operation and classification",
			},
			[]string{"operation", "classification"},
		),
		UnexpectedErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankslip_unexpected_errors_total",
				Help: "Total number of unexpected failures by operation",
			},
			[]string{"operation"},
		),
	}
}
