package balance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quentinlc/teambalance/core/model"
)

// Strategy identifies one of the constructive team building algorithms.
type Strategy int

const (
	StrategyRoundRobin Strategy = iota
	StrategyRandom
	StrategyCluster
	StrategySnake
)

// Strategies returns every strategy in canonical order.
func Strategies() []Strategy {
	return []Strategy{StrategyRoundRobin, StrategyRandom, StrategyCluster, StrategySnake}
}

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRoundRobin:
		return "round_robin"
	case StrategyRandom:
		return "random"
	case StrategyCluster:
		return "cluster"
	case StrategySnake:
		return "snake"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable name of the strategy.
func (s Strategy) DisplayName() string {
	switch s {
	case StrategyRoundRobin:
		return "Round-Robin Distribution"
	case StrategyRandom:
		return "Tier-Based Random Distribution"
	case StrategyCluster:
		return "Cluster-Based Distribution"
	case StrategySnake:
		return "Pure Snake Draft"
	default:
		return "Unknown"
	}
}

// Description returns a one-line summary of how the strategy fills teams.
func (s Strategy) Description() string {
	switch s {
	case StrategyRoundRobin:
		return "Distributes players in a snake draft pattern, ensuring top players are spread across teams."
	case StrategyRandom:
		return "Distributes players randomly while maintaining tier balance across teams."
	case StrategyCluster:
		return "Groups similar-strength players together, then distributes groups to maximize diversity within teams."
	case StrategySnake:
		return "Simple snake draft pattern where teams pick players in alternating order without optimization."
	default:
		return ""
	}
}

// ParseStrategy parses a configuration name such as "round_robin".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "round_robin":
		return StrategyRoundRobin, nil
	case "random":
		return StrategyRandom, nil
	case "cluster":
		return StrategyCluster, nil
	case "snake":
		return StrategySnake, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// ParseStrategies parses a comma-separated list of strategy names. An
// empty list yields every strategy in canonical order.
func ParseStrategies(names string) ([]Strategy, error) {
	if strings.TrimSpace(names) == "" {
		return Strategies(), nil
	}
	parts := strings.Split(names, ",")
	out := make([]Strategy, 0, len(parts))
	for _, part := range parts {
		s, err := ParseStrategy(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// seedCaptains pins the roster's captains, in roster order, to the
// first teams of a fresh partition and returns the remaining players in
// roster order.
func seedCaptains(roster []model.Player, numTeams int) (model.Partition, []model.Player) {
	teams := make(model.Partition, numTeams)
	pool := make([]model.Player, 0, len(roster))
	next := 0
	for _, p := range roster {
		if p.Captain {
			teams[next].Players = append(teams[next].Players, p)
			next++
			continue
		}
		pool = append(pool, p)
	}
	return teams, pool
}

// sortByScore orders players by descending score, keeping the relative
// order of equal scores.
func sortByScore(players []model.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})
}

// fillEmptyTeams gives one player from the pool, starting at cursor, to
// every team that is still empty, in team-index order. It returns the
// advanced cursor.
func fillEmptyTeams(teams model.Partition, pool []model.Player, cursor int) int {
	for ti := range teams {
		if len(teams[ti].Players) == 0 && cursor < len(pool) {
			teams[ti].Players = append(teams[ti].Players, pool[cursor])
			cursor++
		}
	}
	return cursor
}

// teamOrder returns the team indices for one draft round.
func teamOrder(numTeams int, forward bool) []int {
	order := make([]int, numTeams)
	for i := range order {
		if forward {
			order[i] = i
		} else {
			order[i] = numTeams - 1 - i
		}
	}
	return order
}

// groupByTier buckets players per tier, preserving input order within
// each bucket.
func groupByTier(players []model.Player) map[model.Tier][]model.Player {
	groups := make(map[model.Tier][]model.Player)
	for _, p := range players {
		groups[p.Tier] = append(groups[p.Tier], p)
	}
	return groups
}

// checkSizes verifies every team holds exactly want players.
func checkSizes(teams model.Partition, want int) error {
	for i, t := range teams {
		if len(t.Players) != want {
			return fmt.Errorf("%w: team %d has %d players, want %d", ErrInternalConsistency, i+1, len(t.Players), want)
		}
	}
	return nil
}
