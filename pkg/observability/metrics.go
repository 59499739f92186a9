package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the host-side instruments. Register them on a registry of
// your choosing with Register, or use NewRegistered for a self-contained
// registry.
type Metrics struct {
	Simulations *prometheus.CounterVec
	Loads       *prometheus.CounterVec
	ClosureSize prometheus.Histogram
}

// New creates unregistered metrics.
func New() *Metrics {
	return &Metrics{
		Simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finito_simulations_total",
				Help: "Total number of string simulations, by verdict",
			},
			[]string{"verdict"},
		),
		Loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finito_machine_loads_total",
				Help: "Total number of machine loads, by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		ClosureSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finito_closure_strings",
				Help:    "Number of strings produced per closure run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
}

// Register registers all instruments on reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.Simulations, m.Loads, m.ClosureSize} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistered creates metrics bound to a fresh registry, ready to serve
// through promhttp.HandlerFor.
func NewRegistered() (*Metrics, *prometheus.Registry) {
	m := New()
	reg := prometheus.NewRegistry()
	// Registration on a fresh registry cannot collide.
	_ = m.Register(reg)
	return m, reg
}

// ObserveSimulation records one simulation outcome.
func (m *Metrics) ObserveSimulation(accepted bool) {
	verdict := "rejected"
	if accepted {
		verdict = "accepted"
	}
	m.Simulations.WithLabelValues(verdict).Inc()
}

// ObserveLoad records one machine load attempt.
func (m *Metrics) ObserveLoad(format string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Loads.WithLabelValues(format, outcome).Inc()
}
