package balance

import (
	"math/rand"

	"github.com/quentinlc/teambalance/core/model"
)

// snakeDraft builds a partition from a tier-ordered draft queue. The
// queue concatenates the tier groups best tier first, shuffling inside
// each group. Filling the captain-less teams from the front of the
// queue counts as round 1; every later round increments the counter
// first and runs in reverse team order when the round number is even.
// The result is never optimized.
func snakeDraft(roster []model.Player, numTeams, playersPerTeam int, rng *rand.Rand) (model.Partition, error) {
	teams, pool := seedCaptains(roster, numTeams)
	groups := groupByTier(pool)

	queue := make([]model.Player, 0, len(pool))
	for _, tier := range model.Tiers() {
		tierPlayers := groups[tier]
		if len(tierPlayers) == 0 {
			continue
		}
		rng.Shuffle(len(tierPlayers), func(i, j int) {
			tierPlayers[i], tierPlayers[j] = tierPlayers[j], tierPlayers[i]
		})
		queue = append(queue, tierPlayers...)
	}

	cursor := fillEmptyTeams(teams, queue, 0)

	round := 1
	for cursor < len(queue) {
		round++
		progressed := false
		for _, ti := range teamOrder(numTeams, round%2 == 1) {
			if cursor >= len(queue) {
				break
			}
			if len(teams[ti].Players) >= playersPerTeam {
				continue
			}
			teams[ti].Players = append(teams[ti].Players, queue[cursor])
			cursor++
			progressed = true
		}
		if !progressed {
			break
		}
	}

	if err := checkSizes(teams, playersPerTeam); err != nil {
		return nil, err
	}
	return teams, nil
}
