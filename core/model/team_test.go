package model

import "testing"

func TestTeamStrength(t *testing.T) {
	table := DefaultScoreTable()
	team := Team{Players: []Player{
		NewPlayer("ana", TierSPlus, table),
		NewPlayer("bob", TierB, table),
	}}
	if team.Strength() != 18 {
		t.Fatalf("expected 18 got %d", team.Strength())
	}
}

func TestTeamTierCounts(t *testing.T) {
	table := DefaultScoreTable()
	team := Team{Players: []Player{
		NewPlayer("ana", TierA, table),
		NewPlayer("bob", TierA, table),
		NewPlayer("cleo", TierF, table),
	}}
	counts := team.TierCounts()
	if counts[TierA] != 2 || counts[TierF] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestPartitionCloneIsDeep(t *testing.T) {
	table := DefaultScoreTable()
	p := Partition{
		{Players: []Player{NewCaptain("ana", TierS, table)}},
		{Players: []Player{NewPlayer("bob", TierD, table)}},
	}
	clone := p.Clone()
	clone[0].Players[0].Name = "zoe"
	clone[1].Players = append(clone[1].Players, NewPlayer("max", TierC, table))

	if p[0].Players[0].Name != "ana" {
		t.Fatal("clone mutation leaked into the original")
	}
	if len(p[1].Players) != 1 {
		t.Fatal("clone append leaked into the original")
	}
}

func TestPartitionSizeAndStrengths(t *testing.T) {
	table := DefaultScoreTable()
	p := Partition{
		{Players: []Player{NewPlayer("ana", TierSPlus, table), NewPlayer("bob", TierF, table)}},
		{Players: []Player{NewPlayer("cleo", TierS, table), NewPlayer("dan", TierD, table)}},
	}
	if p.Size() != 4 {
		t.Fatalf("expected size 4 got %d", p.Size())
	}
	strengths := p.Strengths()
	if strengths[0] != 12 || strengths[1] != 10 {
		t.Fatalf("unexpected strengths %v", strengths)
	}
}

func TestCaptainCount(t *testing.T) {
	table := DefaultScoreTable()
	team := Team{Players: []Player{
		NewCaptain("ana", TierS, table),
		NewPlayer("bob", TierD, table),
	}}
	if team.CaptainCount() != 1 {
		t.Fatalf("expected 1 captain got %d", team.CaptainCount())
	}
}
