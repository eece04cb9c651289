package balance

import (
	"reflect"
	"testing"

	"github.com/quentinlc/teambalance/core/model"
)

func TestCluster_DealsAlternatingClusters(t *testing.T) {
	// Sorted pool a..i (13,13,10,9,8,7,5,2,-1). After the fill the
	// first cluster deals forward, the second reverse.
	roster := []model.Player{
		mk("a", model.TierSPlus),
		mk("b", model.TierSPlus),
		mk("c", model.TierS),
		mk("d", model.TierSA),
		mk("e", model.TierA),
		mk("f", model.TierAB),
		mk("g", model.TierB),
		mk("h", model.TierC),
		mk("i", model.TierF),
	}
	teams, err := cluster(roster, 3, 3)
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if !reflect.DeepEqual(teamNames(teams[0]), []string{"a", "d", "i"}) {
		t.Errorf("team 1 = %v, want [a d i]", teamNames(teams[0]))
	}
	if !reflect.DeepEqual(teamNames(teams[1]), []string{"b", "e", "h"}) {
		t.Errorf("team 2 = %v, want [b e h]", teamNames(teams[1]))
	}
	if !reflect.DeepEqual(teamNames(teams[2]), []string{"c", "f", "g"}) {
		t.Errorf("team 3 = %v, want [c f g]", teamNames(teams[2]))
	}
}

func TestCluster_CaptainsKeepTheirTeams(t *testing.T) {
	roster := []model.Player{
		mkCaptain("cap", model.TierF),
		mk("a", model.TierSPlus),
		mk("b", model.TierS),
		mk("c", model.TierA),
	}
	teams, err := cluster(roster, 2, 2)
	if err != nil {
		t.Fatalf("cluster: %v", err)
	}
	if !reflect.DeepEqual(teamNames(teams[0]), []string{"cap", "b"}) {
		t.Errorf("team 1 = %v, want [cap b]", teamNames(teams[0]))
	}
	if !reflect.DeepEqual(teamNames(teams[1]), []string{"a", "c"}) {
		t.Errorf("team 2 = %v, want [a c]", teamNames(teams[1]))
	}
	if !teams[0].Players[0].Captain {
		t.Errorf("captain should stay on team 1")
	}
}
