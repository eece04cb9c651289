package model

// Player is a roster entry with its score already resolved from the
// active table. Player has no reference fields, so an assignment is a
// deep copy.
type Player struct {
	Name    string
	Tier    Tier
	Score   int
	Captain bool
}

// NewPlayer builds a player scored against table.
func NewPlayer(name string, tier Tier, table ScoreTable) Player {
	return Player{Name: name, Tier: tier, Score: table.Score(tier)}
}

// NewCaptain builds a captain scored against table.
func NewCaptain(name string, tier Tier, table ScoreTable) Player {
	p := NewPlayer(name, tier, table)
	p.Captain = true
	return p
}
