package balance

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/quentinlc/teambalance/core/model"
)

// Evaluation captures the balance quality of a partition. Lower is
// better; zero is perfect balance. It is always recomputed from the
// partition, never cached on it.
type Evaluation struct {
	StrengthVariance float64
	StrengthDiff     int
	TierImbalance    float64
	Score            float64
}

// Evaluate computes the balance metrics of a partition. The strength
// range dominates the combined score. Tier imbalance accumulates, per
// tier present anywhere in the partition, the squared deviations of
// per-team counts from their mean, not divided by the team count.
func Evaluate(p model.Partition) Evaluation {
	strengths := p.Strengths()
	diff := int(floats.Max(strengths) - floats.Min(strengths))
	variance := stat.PopVariance(strengths, nil)

	imbalance := 0.0
	counts := make([]float64, len(p))
	for _, tier := range model.Tiers() {
		present := false
		for ti, team := range p {
			n := 0
			for _, pl := range team.Players {
				if pl.Tier == tier {
					n++
				}
			}
			if n > 0 {
				present = true
			}
			counts[ti] = float64(n)
		}
		if !present {
			continue
		}
		mean := stat.Mean(counts, nil)
		for _, c := range counts {
			d := c - mean
			imbalance += d * d
		}
	}

	score := variance*2 + imbalance + float64(diff)*10
	return Evaluation{
		StrengthVariance: variance,
		StrengthDiff:     diff,
		TierImbalance:    imbalance,
		Score:            score,
	}
}
