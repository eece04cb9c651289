package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/quentinlc/teambalance/core/metrics"
)

// PromSink exposes balance runs and optimizer activity as Prometheus
// collectors.
type PromSink struct {
	runs       *prometheus.CounterVec
	score      *prometheus.HistogramVec
	iterations prometheus.Histogram
}

// NewPromSink registers the collectors on the default registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the collectors on reg, falling back
// to the default registerer when reg is nil. Collectors already present
// are reused, so several sinks can share a registry.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "balance_runs_total",
		Help: "Total number of balance runs",
	}, []string{"strategy", "optimized"})
	score := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "balance_score",
		Help:    "Final score of produced distributions",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"strategy"})
	iterations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimizer_iterations",
		Help:    "Outer iterations executed per optimizer pass",
		Buckets: prometheus.LinearBuckets(0, 100, 11),
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(score); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			score = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(iterations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			iterations = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, score: score, iterations: iterations}, nil
}

// RecordBalanceResult increments the run counter and observes the score
// for each result.
func (s *PromSink) RecordBalanceResult(res []coremetrics.BalanceResult) error {
	for _, r := range res {
		s.runs.WithLabelValues(r.Strategy, strconv.FormatBool(r.Optimized)).Inc()
		s.score.WithLabelValues(r.Strategy).Observe(r.Score)
	}
	return nil
}

// RecordOptimizerPass observes the iteration count of a pass.
func (s *PromSink) RecordOptimizerPass(ev coremetrics.OptimizerPass) error {
	s.iterations.Observe(float64(ev.Iterations))
	return nil
}
