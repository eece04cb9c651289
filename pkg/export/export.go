package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/quentinlc/teambalance/core/balance"
	"github.com/quentinlc/teambalance/core/model"
)

type jsonPlayer struct {
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	Score   int    `json:"score"`
	Captain bool   `json:"captain"`
}

type jsonTeam struct {
	Strength int          `json:"strength"`
	Players  []jsonPlayer `json:"players"`
}

type jsonDistribution struct {
	ID               string     `json:"id"`
	Strategy         string     `json:"strategy"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	StrengthVariance float64    `json:"strength_variance"`
	StrengthDiff     int        `json:"strength_diff"`
	TierImbalance    float64    `json:"tier_imbalance"`
	Score            float64    `json:"score"`
	Teams            []jsonTeam `json:"teams"`
}

// WriteJSON writes the distributions to w as a JSON document with tier
// labels resolved to strings.
func WriteJSON(w io.Writer, dists []*balance.Distribution) error {
	docs := make([]jsonDistribution, 0, len(dists))
	for _, d := range dists {
		doc := jsonDistribution{
			ID:               d.ID,
			Strategy:         d.Strategy.String(),
			Name:             d.Name,
			Description:      d.Description,
			StrengthVariance: d.Evaluation.StrengthVariance,
			StrengthDiff:     d.Evaluation.StrengthDiff,
			TierImbalance:    d.Evaluation.TierImbalance,
			Score:            d.Evaluation.Score,
		}
		for _, team := range d.Teams {
			jt := jsonTeam{Strength: team.Strength(), Players: make([]jsonPlayer, 0, len(team.Players))}
			for _, p := range team.Players {
				jt.Players = append(jt.Players, jsonPlayer{
					Name:    p.Name,
					Tier:    p.Tier.String(),
					Score:   p.Score,
					Captain: p.Captain,
				})
			}
			doc.Teams = append(doc.Teams, jt)
		}
		docs = append(docs, doc)
	}
	enc := json.NewEncoder(w)
	return enc.Encode(docs)
}

// WriteCSV writes the distributions to w as one flat CSV table, one
// row per player, teams in build order.
func WriteCSV(w io.Writer, dists []*balance.Distribution) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"option", "strategy", "team", "player", "tier", "score", "captain"}); err != nil {
		return err
	}
	for i, d := range dists {
		for ti, team := range d.Teams {
			for _, p := range team.Players {
				rec := []string{
					strconv.Itoa(i + 1),
					d.Strategy.String(),
					strconv.Itoa(ti + 1),
					p.Name,
					p.Tier.String(),
					strconv.Itoa(p.Score),
					strconv.FormatBool(p.Captain),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteText renders the distributions as a numbered option report,
// one block per distribution with its metrics and team rosters.
// Within each team, players print strongest tier first.
func WriteText(w io.Writer, dists []*balance.Distribution) error {
	var b strings.Builder
	for i, d := range dists {
		writeDistribution(&b, i+1, d)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeDistribution(b *strings.Builder, option int, d *balance.Distribution) {
	fmt.Fprintf(b, "\n\nOPTION %d: %s\n", option, d.Name)
	b.WriteString(strings.Repeat("=", 70) + "\n")
	fmt.Fprintf(b, "Description: %s\n", d.Description)
	fmt.Fprintf(b, "Strength variance: %.2f\n", d.Evaluation.StrengthVariance)
	fmt.Fprintf(b, "Max strength difference between teams: %d\n", d.Evaluation.StrengthDiff)
	fmt.Fprintf(b, "Tier imbalance score: %.2f\n", d.Evaluation.TierImbalance)
	fmt.Fprintf(b, "Overall balance score: %.2f (lower is better)\n", d.Evaluation.Score)

	b.WriteString("\nTeam Distributions:\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	for ti, team := range d.Teams {
		fmt.Fprintf(b, "\nTeam %d (Total Strength: %d)\n", ti+1, team.Strength())
		b.WriteString(strings.Repeat("-", 40) + "\n")
		for _, p := range sortedByTier(team.Players) {
			fmt.Fprintf(b, "%s (Tier %s)\n", p.Name, p.Tier)
		}
	}
}

// sortedByTier returns the players ordered strongest tier first,
// keeping team order between equals.
func sortedByTier(players []model.Player) []model.Player {
	out := make([]model.Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tier < out[j].Tier
	})
	return out
}
