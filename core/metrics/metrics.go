package metrics

import "time"

// BalanceResult represents one finished distribution build to be recorded.
type BalanceResult struct {
	DistributionID   string
	Strategy         string
	NumTeams         int
	PlayersPerTeam   int
	Score            float64
	StrengthDiff     int
	StrengthVariance float64
	TierImbalance    float64
	Optimized        bool
	Duration         time.Duration
	Time             time.Time
}

// MetricsSink records balance results for observability purposes.
type MetricsSink interface {
	RecordBalanceResult(results []BalanceResult) error
}

// OptimizerPass captures one optimizer run over a candidate partition.
type OptimizerPass struct {
	Strategy     string
	Iterations   int
	Improvements int
	InitialScore float64
	FinalScore   float64
	// Converged names the stop condition: "score_zero", "stalled" or
	// "max_iterations".
	Converged string
	Time      time.Time
}

// OptimizerRecorder is implemented by sinks able to record optimizer passes.
type OptimizerRecorder interface {
	RecordOptimizerPass(ev OptimizerPass) error
}

// RosterEvent captures the outcome of a roster ingestion.
type RosterEvent struct {
	Players  int
	Captains int
	Warnings int
	Time     time.Time
}

// RosterRecorder records roster ingestion events.
type RosterRecorder interface {
	RecordRoster(ev RosterEvent) error
}

// NopSink discards every event. It backs the empty sink configuration
// and the fallback paths.
type NopSink struct{}

func (NopSink) RecordBalanceResult([]BalanceResult) error { return nil }
func (NopSink) RecordOptimizerPass(OptimizerPass) error   { return nil }
func (NopSink) RecordRoster(RosterEvent) error            { return nil }
