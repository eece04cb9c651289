// Package roster loads player lists from CSV input.
//
// The expected layout is one header row followed by one row per
// player: name, tier and an optional captain marker. Malformed rows
// are skipped with a warning instead of failing the whole load, so a
// partially broken sheet still yields a usable roster.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quentinlc/teambalance/core/model"
)

// Warning describes a skipped CSV row.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// captainMarks are the accepted values of the optional third column.
var captainMarks = map[string]bool{
	"true": true, "1": true, "yes": true, "y": true, "captain": true,
}

// Load reads players from r, scoring each against table. The first
// row is treated as a header and ignored. Rows that are blank, too
// short, duplicate a name or carry an unknown tier are skipped; every
// skip except blank rows is reported in the returned warnings.
func Load(r io.Reader, table model.ScoreTable) ([]model.Player, []Warning, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read roster header: %w", err)
	}

	var (
		players  []model.Player
		warnings []Warning
		seen     = make(map[string]bool)
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read roster: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if blankRow(row) {
			continue
		}
		if len(row) < 2 {
			warnings = append(warnings, Warning{Line: line, Message: fmt.Sprintf("skipping invalid row %v", row)})
			continue
		}

		name := strings.TrimSpace(row[0])
		if seen[name] {
			warnings = append(warnings, Warning{Line: line, Message: fmt.Sprintf("duplicate player name %q", name)})
			continue
		}
		tier, err := model.ParseTier(row[1])
		if err != nil {
			warnings = append(warnings, Warning{
				Line:    line,
				Message: fmt.Sprintf("invalid tier %q for player %q (valid: %s)", strings.TrimSpace(row[1]), name, tierLabels()),
			})
			continue
		}

		player := model.NewPlayer(name, tier, table)
		if len(row) > 2 && captainMarks[strings.ToLower(strings.TrimSpace(row[2]))] {
			player.Captain = true
		}
		players = append(players, player)
		seen[name] = true
	}
	return players, warnings, nil
}

// LoadFile reads players from the CSV file at path.
func LoadFile(path string, table model.ScoreTable) ([]model.Player, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return Load(f, table)
}

func blankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func tierLabels() string {
	tiers := model.Tiers()
	labels := make([]string, len(tiers))
	for i, t := range tiers {
		labels[i] = t.String()
	}
	return strings.Join(labels, ", ")
}
