package config

import (
	"fmt"

	"github.com/quentinlc/teambalance/core/model"
)

// TiersConfig overrides the default tier score table. Keys are tier
// labels; the label set itself is fixed, only scores change.
type TiersConfig struct {
	Scores map[string]int `json:"scores"`
}

// Validate checks that every listed label is a recognized tier.
func (c TiersConfig) Validate() error {
	for label := range c.Scores {
		if _, err := model.ParseTier(label); err != nil {
			return fmt.Errorf("tiers.scores: %w", err)
		}
	}
	return nil
}

// Table resolves the overrides into a full score table.
func (c TiersConfig) Table() model.ScoreTable {
	table := model.DefaultScoreTable()
	for label, score := range c.Scores {
		tier, err := model.ParseTier(label)
		if err != nil {
			continue
		}
		table[tier] = score
	}
	return table
}
