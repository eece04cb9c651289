package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quentinlc/teambalance/core/model"
)

const sampleCSV = `name,tier,captain
alice,S+,yes
bob,s
charlie,S/A,
alice,A
dave,X
 , ,
solo
eve,f,TRUE
`

func TestLoad(t *testing.T) {
	players, warnings, err := Load(strings.NewReader(sampleCSV), model.DefaultScoreTable())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []struct {
		name    string
		tier    model.Tier
		score   int
		captain bool
	}{
		{"alice", model.TierSPlus, 13, true},
		{"bob", model.TierS, 10, false},
		{"charlie", model.TierSA, 9, false},
		{"eve", model.TierF, -1, true},
	}
	if len(players) != len(want) {
		t.Fatalf("loaded %d players, want %d: %v", len(players), len(want), players)
	}
	for i, w := range want {
		p := players[i]
		if p.Name != w.name || p.Tier != w.tier || p.Score != w.score || p.Captain != w.captain {
			t.Errorf("player %d = %+v, want %+v", i, p, w)
		}
	}

	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want 3: %v", len(warnings), warnings)
	}
	if warnings[0].Line != 5 || !strings.Contains(warnings[0].Message, "duplicate player name") {
		t.Errorf("warning 0 = %v", warnings[0])
	}
	if warnings[1].Line != 6 || !strings.Contains(warnings[1].Message, "invalid tier") {
		t.Errorf("warning 1 = %v", warnings[1])
	}
	if warnings[2].Line != 8 || !strings.Contains(warnings[2].Message, "invalid row") {
		t.Errorf("warning 2 = %v", warnings[2])
	}
	if got := warnings[0].String(); !strings.HasPrefix(got, "line 5: ") {
		t.Errorf("warning String() = %q", got)
	}
}

func TestLoadCustomTable(t *testing.T) {
	table := model.DefaultScoreTable()
	table[model.TierSPlus] = 20
	players, _, err := Load(strings.NewReader("name,tier\nalice,S+\n"), table)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(players) != 1 || players[0].Score != 20 {
		t.Fatalf("custom table not applied: %v", players)
	}
}

func TestLoadEmptyInput(t *testing.T) {
	players, warnings, err := Load(strings.NewReader(""), model.DefaultScoreTable())
	if err != nil || players != nil || warnings != nil {
		t.Fatalf("empty input: %v %v %v", players, warnings, err)
	}

	players, warnings, err = Load(strings.NewReader("name,tier\n"), model.DefaultScoreTable())
	if err != nil {
		t.Fatalf("header only: %v", err)
	}
	if len(players) != 0 || len(warnings) != 0 {
		t.Fatalf("header only should load nothing: %v %v", players, warnings)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "players.csv")
	if err := os.WriteFile(path, []byte("name,tier\nalice,S+\nbob,F\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	players, warnings, err := LoadFile(path, model.DefaultScoreTable())
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(players) != 2 || len(warnings) != 0 {
		t.Fatalf("got %v players, %v warnings", players, warnings)
	}

	if _, _, err := LoadFile(filepath.Join(dir, "missing.csv"), model.DefaultScoreTable()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
