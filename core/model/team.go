package model

// Team is an ordered list of players. Order is meaningful to the
// constructive strategies: a captain, when present, sits at index 0.
type Team struct {
	Players []Player
}

// Strength returns the summed score of the team's players.
func (t Team) Strength() int {
	total := 0
	for _, p := range t.Players {
		total += p.Score
	}
	return total
}

// TierCounts returns how many players of each tier the team holds.
func (t Team) TierCounts() map[Tier]int {
	counts := make(map[Tier]int)
	for _, p := range t.Players {
		counts[p.Tier]++
	}
	return counts
}

// CaptainCount returns the number of captains on the team.
func (t Team) CaptainCount() int {
	n := 0
	for _, p := range t.Players {
		if p.Captain {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	players := make([]Player, len(t.Players))
	copy(players, t.Players)
	return Team{Players: players}
}

// Partition is a full assignment of a roster to teams.
type Partition []Team

// Clone returns a deep copy of the partition. Mutating the copy never
// affects the original.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	for i, t := range p {
		out[i] = t.Clone()
	}
	return out
}

// Strengths returns each team's strength in team order.
func (p Partition) Strengths() []float64 {
	out := make([]float64, len(p))
	for i, t := range p {
		out[i] = float64(t.Strength())
	}
	return out
}

// Size returns the total number of players across all teams.
func (p Partition) Size() int {
	n := 0
	for _, t := range p {
		n += len(t.Players)
	}
	return n
}
