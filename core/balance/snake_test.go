package balance

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/quentinlc/teambalance/core/model"
)

func TestSnakeDraft_ReversesAfterFill(t *testing.T) {
	// One player per tier keeps the queue deterministic for any seed:
	// the fill is round one, so the next round runs in reverse.
	roster := []model.Player{
		mk("a", model.TierSPlus),
		mk("b", model.TierS),
		mk("c", model.TierSA),
		mk("d", model.TierA),
		mk("e", model.TierAB),
		mk("f", model.TierB),
	}
	teams, err := snakeDraft(roster, 2, 3, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("snakeDraft: %v", err)
	}
	if !reflect.DeepEqual(teamNames(teams[0]), []string{"a", "d", "e"}) {
		t.Errorf("team 1 = %v, want [a d e]", teamNames(teams[0]))
	}
	if !reflect.DeepEqual(teamNames(teams[1]), []string{"b", "c", "f"}) {
		t.Errorf("team 2 = %v, want [b c f]", teamNames(teams[1]))
	}
}

func TestSnakeDraft_DeterministicPerSeed(t *testing.T) {
	roster := []model.Player{
		mk("a", model.TierS), mk("b", model.TierS), mk("c", model.TierS),
		mk("d", model.TierA), mk("e", model.TierA), mk("f", model.TierA),
		mk("g", model.TierB), mk("h", model.TierB),
	}
	first, err := snakeDraft(roster, 2, 4, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("snakeDraft: %v", err)
	}
	second, err := snakeDraft(roster, 2, 4, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("snakeDraft: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed should reproduce the same draft")
	}
	for i, team := range first {
		if len(team.Players) != 4 {
			t.Errorf("team %d has %d players, want 4", i+1, len(team.Players))
		}
	}
}

func TestSnakeDraft_CaptainsPinned(t *testing.T) {
	roster := []model.Player{
		mkCaptain("cap", model.TierSPlus),
		mk("b", model.TierS),
		mk("c", model.TierS),
		mk("d", model.TierA),
		mk("e", model.TierA),
		mk("f", model.TierB),
	}
	teams, err := snakeDraft(roster, 2, 3, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("snakeDraft: %v", err)
	}
	if !teams[0].Players[0].Captain {
		t.Errorf("captain should open team 1")
	}
	if teams[0].CaptainCount() != 1 || teams[1].CaptainCount() != 0 {
		t.Errorf("captain spread wrong: %d and %d", teams[0].CaptainCount(), teams[1].CaptainCount())
	}
	if len(teams[0].Players) != 3 || len(teams[1].Players) != 3 {
		t.Errorf("sizes = %d and %d, want 3 each", len(teams[0].Players), len(teams[1].Players))
	}
}
