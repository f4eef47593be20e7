// Package metric provides Prometheus instrumentation for the protocol
// layer: counters for identifier generation, validation verdicts, and
// expiry checks, plus wrappers that instrument the pure core without
// touching its verdict logic.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the protocol-level metrics.
type Metrics struct {
	// IdentifiersGenerated counts identifiers produced by instrumented
	// factories.
	IdentifiersGenerated prometheus.Counter

	// ValidationVerdicts counts validator runs by message type and
	// outcome ("valid" or "invalid").
	ValidationVerdicts *prometheus.CounterVec

	// ValidationViolations counts individual rule failures by message
	// type and rule name.
	ValidationViolations *prometheus.CounterVec

	// MessagesExpired counts expiry checks that found a spent
	// time-to-live budget.
	MessagesExpired prometheus.Counter
}

// NewMetrics creates the protocol metrics set.
func NewMetrics() *Metrics {
	return &Metrics{
		IdentifiersGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "meshproto",
				Subsystem: "uuid",
				Name:      "generated_total",
				Help:      "Total number of identifiers generated",
			},
		),

		ValidationVerdicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meshproto",
				Subsystem: "validation",
				Name:      "verdicts_total",
				Help:      "Total number of validation runs by message type and outcome",
			},
			[]string{"type", "outcome"},
		),

		ValidationViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "meshproto",
				Subsystem: "validation",
				Name:      "violations_total",
				Help:      "Total number of individual rule failures by message type and rule",
			},
			[]string{"type", "rule"},
		),

		MessagesExpired: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "meshproto",
				Subsystem: "messages",
				Name:      "expired_total",
				Help:      "Total number of messages observed past their time-to-live",
			},
		),
	}
}

// collectors returns every metric for registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.IdentifiersGenerated,
		m.ValidationVerdicts,
		m.ValidationViolations,
		m.MessagesExpired,
	}
}
