package game

import (
	"fmt"
	"time"
)

// Round is two regular halves, plus a tie-break half when they were lost by
// different players.
type Round struct {
	Index      int
	Halves     []*Half
	Loser      PlayerID
	StartedAt  time.Time
	FinishedAt time.Time
}

// TieBreak reports whether the round needed a third half
func (r *Round) TieBreak() bool { return len(r.Halves) > TieBreakHalf }

// PlayRound plays round index and appends it to the game's rounds.
func (g *Game) PlayRound(index int) (*Round, error) {
	r := &Round{Index: index, Loser: NoPlayer, StartedAt: g.cfg.clock.Now()}

	var losers [2]*Player
	for i := range losers {
		half, err := g.PlayHalf(i, nil)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", index, err)
		}
		r.Halves = append(r.Halves, half)
		if losers[i], err = g.PlayerByID(half.Loser); err != nil {
			return nil, fmt.Errorf("round %d: %w", index, err)
		}
	}

	if losers[0] == losers[1] {
		r.Loser = losers[0].id
	} else {
		g.logger.Debug("Playing tie-break", "round", index, "players", losers)
		half, err := g.PlayHalf(TieBreakHalf, losers[:])
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", index, err)
		}
		r.Halves = append(r.Halves, half)
		r.Loser = half.Loser
	}
	r.FinishedAt = g.cfg.clock.Now()

	g.rounds = append(g.rounds, r)
	g.logger.Info("Round complete",
		"round", index,
		"loser", g.playerName(r.Loser),
		"halves", len(r.Halves))
	return r, nil
}

// PlayRounds plays n rounds, continuing the index from the rounds already
// played.
func (g *Game) PlayRounds(n int) ([]*Round, error) {
	played := make([]*Round, 0, n)
	for range n {
		r, err := g.PlayRound(len(g.rounds))
		if err != nil {
			return played, err
		}
		played = append(played, r)
	}
	return played, nil
}
