// Package statistics aggregates the results of played games.
package statistics

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/lox/schocken/internal/game"
)

// PlayerScore is what one player lost over the recorded rounds, and the
// hands they finished their turns with.
type PlayerScore struct {
	Label          string         `json:"label"`
	RoundsLost     int            `json:"rounds_lost"`
	HalvesLost     int            `json:"halves_lost"`
	MiniRoundsLost int            `json:"mini_rounds_lost"`
	Hands          map[string]int `json:"hands_played"`
}

// TurnsPlayed returns the number of recorded turns
func (p *PlayerScore) TurnsPlayed() int {
	n := 0
	for _, c := range p.Hands {
		n += c
	}
	return n
}

// Scores tracks per-player results. Players are labelled by name, or by
// "name(id)" when two players share a name.
type Scores struct {
	Rounds     int
	Halves     int
	MiniRounds int
	Turns      int

	labels  map[game.PlayerID]string
	players map[string]*PlayerScore
	order   []string
}

// New creates empty scores for the given players.
func New(players []game.PlayerView) *Scores {
	names := make(map[string]int, len(players))
	for _, p := range players {
		names[p.Name]++
	}
	s := &Scores{
		labels:  make(map[game.PlayerID]string, len(players)),
		players: make(map[string]*PlayerScore, len(players)),
	}
	ambiguous := len(names) != len(players)
	for _, p := range players {
		label := p.Name
		if ambiguous {
			label = fmt.Sprintf("%s(%d)", p.Name, p.ID)
		}
		s.labels[p.ID] = label
		s.add(label)
	}
	return s
}

// FromGame scores every round recorded in a game view.
func FromGame(v game.GameView) (*Scores, error) {
	s := New(v.Players)
	for _, r := range v.Rounds {
		if err := s.AddRound(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scores) add(label string) *PlayerScore {
	if p, ok := s.players[label]; ok {
		return p
	}
	p := &PlayerScore{Label: label, Hands: make(map[string]int)}
	s.players[label] = p
	s.order = append(s.order, label)
	return p
}

func (s *Scores) player(id game.PlayerID) (*PlayerScore, error) {
	label, ok := s.labels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", game.ErrUnknownPlayer, id)
	}
	return s.players[label], nil
}

// AddRound records a completed round.
func (s *Scores) AddRound(r game.RoundView) error {
	loser, err := s.player(r.Loser)
	if err != nil {
		return fmt.Errorf("round %d: %w", r.Index, err)
	}
	loser.RoundsLost++
	s.Rounds++

	for _, h := range r.Halves {
		p, err := s.player(h.Loser)
		if err != nil {
			return fmt.Errorf("round %d half %d: %w", r.Index, h.Index, err)
		}
		p.HalvesLost++
		s.Halves++

		for _, mr := range h.MiniRounds {
			p, err := s.player(mr.Loser)
			if err != nil {
				return fmt.Errorf("round %d half %d mini-round %d: %w", r.Index, h.Index, mr.Index, err)
			}
			p.MiniRoundsLost++
			s.MiniRounds++

			for _, t := range mr.Turns {
				p, err := s.player(t.PlayerID)
				if err != nil {
					return err
				}
				p.Hands[t.Hand]++
				s.Turns++
			}
		}
	}
	return nil
}

// Merge adds the results of o, matching players by label.
func (s *Scores) Merge(o *Scores) {
	s.Rounds += o.Rounds
	s.Halves += o.Halves
	s.MiniRounds += o.MiniRounds
	s.Turns += o.Turns
	for _, label := range o.order {
		src := o.players[label]
		dst := s.add(label)
		dst.RoundsLost += src.RoundsLost
		dst.HalvesLost += src.HalvesLost
		dst.MiniRoundsLost += src.MiniRoundsLost
		for hand, n := range src.Hands {
			dst.Hands[hand] += n
		}
	}
}

// Player returns the score of the player with the given label.
func (s *Scores) Player(label string) (*PlayerScore, bool) {
	p, ok := s.players[label]
	return p, ok
}

// Players returns all scores in registration order.
func (s *Scores) Players() []*PlayerScore {
	out := make([]*PlayerScore, len(s.order))
	for i, label := range s.order {
		out[i] = s.players[label]
	}
	return out
}

// Hands returns the hand histogram summed over all players.
func (s *Scores) Hands() map[string]int {
	out := make(map[string]int)
	for _, p := range s.players {
		for hand, n := range p.Hands {
			out[hand] += n
		}
	}
	return out
}

// HandNames returns the names in the histogram, sorted by count descending.
func (s *Scores) HandNames() []string {
	hands := s.Hands()
	names := slices.Collect(maps.Keys(hands))
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(hands[b], hands[a]), cmp.Compare(a, b))
	})
	return names
}

// Validate checks that every recorded loss and turn is attributed to exactly
// one player.
func (s *Scores) Validate() error {
	var rounds, halves, miniRounds, turns int
	for _, p := range s.players {
		rounds += p.RoundsLost
		halves += p.HalvesLost
		miniRounds += p.MiniRoundsLost
		turns += p.TurnsPlayed()
	}
	switch {
	case rounds != s.Rounds:
		return fmt.Errorf("rounds lost (%d) does not match rounds (%d)", rounds, s.Rounds)
	case halves != s.Halves:
		return fmt.Errorf("halves lost (%d) does not match halves (%d)", halves, s.Halves)
	case miniRounds != s.MiniRounds:
		return fmt.Errorf("mini-rounds lost (%d) does not match mini-rounds (%d)", miniRounds, s.MiniRounds)
	case turns != s.Turns:
		return fmt.Errorf("hands played (%d) does not match turns (%d)", turns, s.Turns)
	case s.Halves < 2*s.Rounds || s.Halves > 3*s.Rounds:
		return fmt.Errorf("%d halves cannot make %d rounds", s.Halves, s.Rounds)
	}
	return nil
}
