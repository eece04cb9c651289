package balance

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/quentinlc/teambalance/core/logger"
	"github.com/quentinlc/teambalance/core/metrics"
	"github.com/quentinlc/teambalance/core/model"
)

// Distribution is one finished assignment of a roster into teams,
// together with its evaluation.
type Distribution struct {
	ID          string
	Strategy    Strategy
	Name        string
	Description string
	Teams       model.Partition
	Evaluation  Evaluation
}

// nopLogger discards everything. It backs engines built without a logger
// so core stays free of infra imports.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// Engine builds, optimizes and evaluates team distributions from a
// roster. An Engine is not safe for concurrent use: its random source
// is unsynchronized.
type Engine struct {
	cfg  Config
	log  logger.Logger
	sink metrics.MetricsSink
	rng  *rand.Rand
}

// NewEngine creates an engine. A nil logger or sink is replaced by a
// no-op implementation. A zero seed draws one from the wall clock;
// set cfg.Seed for reproducible runs.
func NewEngine(cfg Config, log logger.Logger, sink metrics.MetricsSink) *Engine {
	cfg.SetDefaults()
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg:  cfg,
		log:  log,
		sink: sink,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func countCaptains(roster []model.Player) int {
	n := 0
	for _, p := range roster {
		if p.Captain {
			n++
		}
	}
	return n
}

// CreateDistribution partitions roster into numTeams teams with the
// given strategy and evaluates the result. Every strategy except
// StrategySnake is refined by the swap optimizer afterwards. The roster
// must divide evenly into numTeams and carry at most numTeams captains.
func (e *Engine) CreateDistribution(strategy Strategy, roster []model.Player, numTeams int) (*Distribution, error) {
	if numTeams < 2 {
		return nil, fmt.Errorf("%w: need at least 2 teams, got %d", ErrInvalidConfiguration, numTeams)
	}
	if len(roster) < numTeams {
		return nil, fmt.Errorf("%w: %d players cannot fill %d teams", ErrInfeasiblePartition, len(roster), numTeams)
	}
	if len(roster)%numTeams != 0 {
		return nil, fmt.Errorf("%w: %d players do not divide evenly into %d teams", ErrInfeasiblePartition, len(roster), numTeams)
	}
	if captains := countCaptains(roster); captains > numTeams {
		return nil, fmt.Errorf("%w: %d captains for %d teams", ErrCaptainOverflow, captains, numTeams)
	}
	playersPerTeam := len(roster) / numTeams

	start := time.Now()
	var (
		teams model.Partition
		err   error
	)
	switch strategy {
	case StrategyRoundRobin:
		teams, err = roundRobin(roster, numTeams, playersPerTeam)
	case StrategyRandom:
		teams, err = tierRandom(roster, numTeams, playersPerTeam, e.rng)
	case StrategyCluster:
		teams, err = cluster(roster, numTeams, playersPerTeam)
	case StrategySnake:
		teams, err = snakeDraft(roster, numTeams, playersPerTeam, e.rng)
	default:
		return nil, fmt.Errorf("%w: strategy %d", ErrUnknownStrategy, int(strategy))
	}
	if err != nil {
		return nil, err
	}

	optimized := strategy != StrategySnake
	if optimized {
		var stats OptimizerStats
		teams, stats = NewOptimizer(e.cfg).Optimize(teams)
		e.log.Debugf("%s optimizer: %.2f -> %.2f after %d iterations (%s)",
			strategy, stats.InitialScore, stats.FinalScore, stats.Iterations, stats.Converged)
		if rec, ok := e.sink.(metrics.OptimizerRecorder); ok {
			if err := rec.RecordOptimizerPass(metrics.OptimizerPass{
				Strategy:     strategy.String(),
				Iterations:   stats.Iterations,
				Improvements: stats.Improvements,
				InitialScore: stats.InitialScore,
				FinalScore:   stats.FinalScore,
				Converged:    stats.Converged,
				Time:         time.Now(),
			}); err != nil {
				e.log.Errorf("optimizer metrics error: %v", err)
			}
		}
	}

	eval := Evaluate(teams)
	dist := &Distribution{
		ID:          uuid.NewString(),
		Strategy:    strategy,
		Name:        strategy.DisplayName(),
		Description: strategy.Description(),
		Teams:       teams,
		Evaluation:  eval,
	}
	e.log.Infof("built %s distribution for %d teams: score %.2f", strategy, numTeams, eval.Score)
	if err := e.sink.RecordBalanceResult([]metrics.BalanceResult{{
		DistributionID:   dist.ID,
		Strategy:         strategy.String(),
		NumTeams:         numTeams,
		PlayersPerTeam:   playersPerTeam,
		Score:            eval.Score,
		StrengthDiff:     eval.StrengthDiff,
		StrengthVariance: eval.StrengthVariance,
		TierImbalance:    eval.TierImbalance,
		Optimized:        optimized,
		Duration:         time.Since(start),
		Time:             time.Now(),
	}}); err != nil {
		e.log.Errorf("metrics error: %v", err)
	}
	return dist, nil
}

// CreateDistributions builds one distribution per requested strategy
// and returns them ordered by ascending score, best first. Strategies
// with equal scores keep their request order. An empty strategy list
// runs every strategy.
func (e *Engine) CreateDistributions(strategies []Strategy, roster []model.Player, numTeams int) ([]*Distribution, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	out := make([]*Distribution, 0, len(strategies))
	for _, s := range strategies {
		d, err := e.CreateDistribution(s, roster, numTeams)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Evaluation.Score < out[j].Evaluation.Score
	})
	return out, nil
}
