package balance

import "github.com/quentinlc/teambalance/core/model"

// roundRobin builds a partition with a snake draft over players sorted
// by descending score. Captain-less teams are filled with the top
// remaining players first, then rounds alternate direction starting
// left-to-right, skipping teams that are already full.
func roundRobin(roster []model.Player, numTeams, playersPerTeam int) (model.Partition, error) {
	teams, pool := seedCaptains(roster, numTeams)
	sortByScore(pool)
	cursor := fillEmptyTeams(teams, pool, 0)

	for round := 1; cursor < len(pool); round++ {
		progressed := false
		for _, ti := range teamOrder(numTeams, round%2 == 1) {
			if cursor >= len(pool) {
				break
			}
			if len(teams[ti].Players) >= playersPerTeam {
				continue
			}
			teams[ti].Players = append(teams[ti].Players, pool[cursor])
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
