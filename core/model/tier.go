package model

import (
	"fmt"
	"strings"
)

// Tier grades a player's skill. Values are declared from strongest to
// weakest, so sorting by Tier ascending yields a best-first ordering.
type Tier int

const (
	TierSPlus Tier = iota
	TierS
	TierSA
	TierA
	TierAB
	TierB
	TierC
	TierD
	TierF
)

// Tiers returns every tier in canonical order, strongest first.
func Tiers() []Tier {
	return []Tier{TierSPlus, TierS, TierSA, TierA, TierAB, TierB, TierC, TierD, TierF}
}

// String returns the display label of the tier.
func (t Tier) String() string {
	switch t {
	case TierSPlus:
		return "S+"
	case TierS:
		return "S"
	case TierSA:
		return "S/A"
	case TierA:
		return "A"
	case TierAB:
		return "A/B"
	case TierB:
		return "B"
	case TierC:
		return "C"
	case TierD:
		return "D"
	case TierF:
		return "F"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier label such as "S+" or "a/b". Matching is
// case-insensitive.
func ParseTier(s string) (Tier, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S+":
		return TierSPlus, nil
	case "S":
		return TierS, nil
	case "S/A":
		return TierSA, nil
	case "A":
		return TierA, nil
	case "A/B":
		return TierAB, nil
	case "B":
		return TierB, nil
	case "C":
		return TierC, nil
	case "D":
		return TierD, nil
	case "F":
		return TierF, nil
	default:
		return 0, fmt.Errorf("unknown tier %q", s)
	}
}

// ScoreTable maps each tier to its numeric score.
type ScoreTable map[Tier]int

// DefaultScoreTable returns the scoring used when no custom weights are
// configured.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		TierSPlus: 13,
		TierS:     10,
		TierSA:    9,
		TierA:     8,
		TierAB:    7,
		TierB:     5,
		TierC:     2,
		TierD:     0,
		TierF:     -1,
	}
}

// Score returns the score assigned to t. Tiers absent from the table
// score zero.
func (s ScoreTable) Score(t Tier) int {
	return s[t]
}

// Clone returns an independent copy of the table.
func (s ScoreTable) Clone() ScoreTable {
	out := make(ScoreTable, len(s))
	for t, v := range s {
		out[t] = v
	}
	return out
}
