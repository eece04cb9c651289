package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quentinlc/teambalance/core/model"
)

// ParseWeights parses a tier weight override such as "S+:15,B:4" into
// a score table. Listed tiers replace their default score; all other
// tiers keep theirs. The tier labels themselves are fixed: an unknown
// label or a non-integer score is an error.
func ParseWeights(s string) (model.ScoreTable, error) {
	table := model.DefaultScoreTable()
	if strings.TrimSpace(s) == "" {
		return table, nil
	}
	for _, pair := range strings.Split(s, ",") {
		label, value, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q: use LABEL:SCORE pairs such as S+:13", strings.TrimSpace(pair))
		}
		tier, err := model.ParseTier(label)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", strings.TrimSpace(pair), err)
		}
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: score must be an integer", strings.TrimSpace(pair))
		}
		table[tier] = score
	}
	return table, nil
}
