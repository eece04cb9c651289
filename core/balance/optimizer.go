package balance

import "github.com/quentinlc/teambalance/core/model"

// OptimizerStats summarizes one optimizer pass.
type OptimizerStats struct {
	Iterations   int
	Improvements int
	InitialScore float64
	FinalScore   float64
	// Converged names the stop condition: "score_zero", "stalled" or
	// "max_iterations".
	Converged string
}

// Optimizer refines a partition by hill climbing over member swaps
// between teams. Moves are first-improvement: a strictly better trial
// is adopted immediately and the scan continues from it.
type Optimizer struct {
	maxIterations      int
	noImprovementLimit int
	doubleSwapInterval int
}

// NewOptimizer builds an optimizer from cfg, applying defaults to
// unset budgets.
func NewOptimizer(cfg Config) *Optimizer {
	cfg.SetDefaults()
	return &Optimizer{
		maxIterations:      cfg.MaxIterations,
		noImprovementLimit: cfg.NoImprovementLimit,
		doubleSwapInterval: cfg.DoubleSwapInterval,
	}
}

// Optimize returns the best partition found from p together with the
// stats of the pass. The caller's partition is never mutated: every
// trial swap runs on an independent clone, and only adopted trials are
// kept. The returned score never exceeds the input's score.
func (o *Optimizer) Optimize(p model.Partition) (model.Partition, OptimizerStats) {
	best := p.Clone()
	bestScore := Evaluate(best).Score
	stats := OptimizerStats{InitialScore: bestScore, FinalScore: bestScore, Converged: "score_zero"}
	if bestScore == 0 {
		return best, stats
	}

	noImprovement := 0

	// tryTrial adopts a strictly better trial and reports whether the
	// pass is finished because perfect balance was reached.
	tryTrial := func(trial model.Partition) bool {
		score := Evaluate(trial).Score
		if score < bestScore {
			best = trial
			bestScore = score
			noImprovement = 0
			stats.Improvements++
			return bestScore == 0
		}
		noImprovement++
		return false
	}

	done := func() (model.Partition, OptimizerStats) {
		stats.FinalScore = bestScore
		return best, stats
	}

	stats.Converged = "max_iterations"
	for iteration := 0; iteration < o.maxIterations; iteration++ {
		if noImprovement >= o.noImprovementLimit {
			stats.Converged = "stalled"
			break
		}
		stats.Iterations = iteration + 1

		// Single swaps across every team pair and member position.
		for i := 0; i < len(best); i++ {
			for j := i + 1; j < len(best); j++ {
				for p1 := 0; p1 < len(best[i].Players); p1++ {
					for p2 := 0; p2 < len(best[j].Players); p2++ {
						trial := best.Clone()
						trial[i].Players[p1], trial[j].Players[p2] = trial[j].Players[p2], trial[i].Players[p1]
						if tryTrial(trial) {
							stats.Converged = "score_zero"
							return done()
						}
					}
				}
			}
		}

		// Paired swaps on every doubleSwapInterval-th iteration,
		// including the first.
		if iteration%o.doubleSwapInterval != 0 {
			continue
		}
		for i := 0; i < len(best); i++ {
			for j := i + 1; j < len(best); j++ {
				for p1 := 0; p1 < len(best[i].Players)-1; p1++ {
					for p2 := p1 + 1; p2 < len(best[i].Players); p2++ {
						for p3 := 0; p3 < len(best[j].Players)-1; p3++ {
							for p4 := p3 + 1; p4 < len(best[j].Players); p4++ {
								trial := best.Clone()
								trial[i].Players[p1], trial[j].Players[p3] = trial[j].Players[p3], trial[i].Players[p1]
								trial[i].Players[p2], trial[j].Players[p4] = trial[j].Players[p4], trial[i].Players[p2]
								if tryTrial(trial) {
									stats.Converged = "score_zero"
									return done()
								}
							}
						}
					}
				}
			}
		}
	}

	return done()
}
