package balance

import (
	"math/rand"

	"github.com/quentinlc/teambalance/core/model"
)

// tierRandom builds a partition by shuffling players within each tier
// and dealing every tier group round-robin across teams, so each team
// receives a comparable tier mix. Team member order is shuffled
// afterwards, keeping a captain in front. Should the per-tier dealing
// leave team sizes uneven, the whole roster falls back to the
// round-robin strategy.
func tierRandom(roster []model.Player, numTeams, playersPerTeam int, rng *rand.Rand) (model.Partition, error) {
	teams, pool := seedCaptains(roster, numTeams)
	groups := groupByTier(pool)

	for _, tier := range model.Tiers() {
		tierPlayers := groups[tier]
		if len(tierPlayers) == 0 {
			continue
		}
		rng.Shuffle(len(tierPlayers), func(i, j int) {
			tierPlayers[i], tierPlayers[j] = tierPlayers[j], tierPlayers[i]
		})
		for i, p := range tierPlayers {
			ti := i % numTeams
			teams[ti].Players = append(teams[ti].Players, p)
		}
	}

	for ti := range teams {
		shuffleKeepingCaptain(teams[ti].Players, rng)
	}

	if err := checkSizes(teams, playersPerTeam); err != nil {
		return roundRobin(roster, numTeams, playersPerTeam)
	}
	return teams, nil
}

// shuffleKeepingCaptain shuffles a team's members in place, leaving a
// leading captain at index 0.
func shuffleKeepingCaptain(players []model.Player, rng *rand.Rand) {
	start := 0
	if len(players) > 0 && players[0].Captain {
		start = 1
	}
	rest := players[start:]
	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
}
