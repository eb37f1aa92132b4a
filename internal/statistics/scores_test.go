package statistics

import (
	"errors"
	"testing"

	"github.com/lox/schocken/internal/game"
)

func turnViews(hands map[game.PlayerID]string) []game.TurnView {
	var out []game.TurnView
	for id := game.PlayerID(0); int(id) < len(hands); id++ {
		out = append(out, game.TurnView{PlayerID: id, Hand: hands[id], ThrowCount: 1})
	}
	return out
}

func sampleRound() game.RoundView {
	return game.RoundView{
		Index: 0,
		Loser: 1,
		Halves: []game.HalfView{
			{
				Index: 0,
				Loser: 1,
				MiniRounds: []game.MiniRoundView{
					{Index: 0, Loser: 1, Turns: turnViews(map[game.PlayerID]string{0: "General-6", 1: "Motte"})},
					{Index: 1, Loser: 0, Turns: turnViews(map[game.PlayerID]string{0: "Motte", 1: "Schock-2"})},
				},
			},
			{
				Index: 1,
				Loser: 1,
				MiniRounds: []game.MiniRoundView{
					{Index: 0, Loser: 1, Turns: turnViews(map[game.PlayerID]string{0: "Schock-out", 1: "Motte"})},
				},
			},
		},
	}
}

func TestScoresAddRound(t *testing.T) {
	s := New([]game.PlayerView{{ID: 0, Name: "Anna"}, {ID: 1, Name: "Ben"}})
	if err := s.AddRound(sampleRound()); err != nil {
		t.Fatal(err)
	}

	ben, ok := s.Player("Ben")
	if !ok {
		t.Fatal("no score for Ben")
	}
	if ben.RoundsLost != 1 || ben.HalvesLost != 2 || ben.MiniRoundsLost != 2 {
		t.Errorf("Ben lost %d/%d/%d, want 1/2/2", ben.RoundsLost, ben.HalvesLost, ben.MiniRoundsLost)
	}
	if ben.Hands["Motte"] != 2 || ben.TurnsPlayed() != 3 {
		t.Errorf("Ben hands = %v", ben.Hands)
	}

	anna, _ := s.Player("Anna")
	if anna.MiniRoundsLost != 1 || anna.RoundsLost != 0 {
		t.Errorf("Anna lost %d mini-rounds and %d rounds", anna.MiniRoundsLost, anna.RoundsLost)
	}

	if names := s.HandNames(); names[0] != "Motte" {
		t.Errorf("most frequent hand = %q, want Motte", names[0])
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestScoresLabelsDuplicateNames(t *testing.T) {
	s := New([]game.PlayerView{{ID: 0, Name: "Anna"}, {ID: 1, Name: "Anna"}})
	if err := s.AddRound(sampleRound()); err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, p := range s.Players() {
		labels = append(labels, p.Label)
	}
	if len(labels) != 2 || labels[0] != "Anna(0)" || labels[1] != "Anna(1)" {
		t.Errorf("labels = %v, want [Anna(0) Anna(1)]", labels)
	}
}

func TestScoresUnknownPlayer(t *testing.T) {
	s := New([]game.PlayerView{{ID: 0, Name: "Anna"}})
	err := s.AddRound(sampleRound())
	if !errors.Is(err, game.ErrUnknownPlayer) {
		t.Errorf("AddRound() error = %v, want ErrUnknownPlayer", err)
	}
}

func TestScoresMerge(t *testing.T) {
	players := []game.PlayerView{{ID: 0, Name: "Anna"}, {ID: 1, Name: "Ben"}}
	total := New(players)
	for range 3 {
		s := New(players)
		if err := s.AddRound(sampleRound()); err != nil {
			t.Fatal(err)
		}
		total.Merge(s)
	}
	if total.Rounds != 3 || total.Halves != 6 || total.Turns != 18 {
		t.Errorf("merged totals = %d rounds, %d halves, %d turns", total.Rounds, total.Halves, total.Turns)
	}
	if err := total.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestScoresValidateMismatch(t *testing.T) {
	s := New([]game.PlayerView{{ID: 0, Name: "Anna"}})
	s.Rounds = 1
	if err := s.Validate(); err == nil {
		t.Error("Expected validation to fail for an unattributed round")
	}
}
