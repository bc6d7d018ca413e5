package ropprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/ropx/pkg/rop"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics counts the outcomes of named operations and the kinds of the
// errors they fail with.
type Metrics struct {
	outcomes *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "results_total",
				Help:      "Total number of results by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "result_errors_total",
				Help:      "Total number of error reasons by operation and kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.outcomes, m.errors}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe counts one outcome of operation.
func (m *Metrics) Observe(operation string, o rop.Outcome) {
	if o.IsSuccess() {
		m.outcomes.WithLabelValues(operation, OutcomeSuccess).Inc()
		return
	}
	m.outcomes.WithLabelValues(operation, OutcomeFailure).Inc()
	for _, e := range o.Errors() {
		m.errors.WithLabelValues(operation, e.Kind()).Inc()
	}
}

// Track observes r and returns it, so it can sit inside a chain.
func Track[T any](m *Metrics, operation string, r rop.Result[T]) rop.Result[T] {
	m.Observe(operation, r)
	return r
}
