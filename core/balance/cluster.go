package balance

import "github.com/quentinlc/teambalance/core/model"

// cluster builds a partition by chopping the score-sorted pool into
// consecutive clusters of numTeams players. After the captain-less
// teams are filled with the top remaining players, each cluster is
// dealt one player per team, alternating forward and reverse team
// order per cluster, preserving within-cluster order.
func cluster(roster []model.Player, numTeams, playersPerTeam int) (model.Partition, error) {
	teams, pool := seedCaptains(roster, numTeams)
	sortByScore(pool)
	cursor := fillEmptyTeams(teams, pool, 0)

	for ci := 0; cursor < len(pool); ci++ {
		for _, ti := range teamOrder(numTeams, ci%2 == 0) {
			if cursor >= len(pool) {
				break
			}
			teams[ti].Players = append(teams[ti].Players, pool[cursor])
			cursor++
		}
	}

	if err := checkSizes(teams, playersPerTeam); err != nil {
		return nil, err
	}
	return teams, nil
}
