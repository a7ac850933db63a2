package runner

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/blockstack/search"
)

// Metrics holds the counters of one solver run on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	solutions *prometheus.CounterVec
	expanded  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	outcomes  *prometheus.CounterVec
}

// NewMetrics registers the solver metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		solutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blockstack_solutions_total",
			Help: "Solutions reported by strategy and heuristic",
		}, []string{"strategy", "heuristic"}),
		expanded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blockstack_nodes_expanded_total",
			Help: "Nodes expanded by strategy and heuristic",
		}, []string{"strategy", "heuristic"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blockstack_strategy_duration_seconds",
			Help:    "Wall-clock time of one strategy run",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"strategy"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blockstack_strategy_outcomes_total",
			Help: "Strategy runs by outcome",
		}, []string{"strategy", "outcome"}),
	}
}

// Observe records one finished run.
func (m *Metrics) Observe(run Run, res *search.Result, outcome Outcome) {
	strategy, h := run.Strategy.String(), run.HeuristicLabel()
	m.outcomes.WithLabelValues(strategy, string(outcome)).Inc()
	if res == nil {
		return
	}
	m.solutions.WithLabelValues(strategy, h).Add(float64(len(res.Solutions)))
	m.expanded.WithLabelValues(strategy, h).Add(float64(res.Expanded))
	m.duration.WithLabelValues(strategy).Observe(res.Elapsed.Seconds())
}

// WriteFile dumps the registry in the Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("runner: write metrics %s: %w", path, err)
	}

	return nil
}
