package game

import (
	"fmt"
	"slices"

	"github.com/lox/schocken/dice"
)

const (
	MinPlayers = 2
	MaxPlayers = 50
)

// MiniRound is one pass around the table: every player takes exactly one
// turn.
type MiniRound struct {
	Index   int
	Players []PlayerID // in playing order
	Turns   []Turn     // sorted worst to best
	Best    Turn
	Worst   Turn
	// ChipsTransferred starts as the chip value of the best hand and is cut
	// to the amount that actually moved once the half settles the chips.
	ChipsTransferred int
	Loser            PlayerID
}

// SchockOut reports whether the best hand of the mini-round was a Schock-out
func (mr *MiniRound) SchockOut() bool {
	return mr.Best.Hand.Category().Kind() == dice.SchockOut
}

// PlayMiniRound lets every player take one turn in the given order and
// determines the best and worst hand. The first player's throw count caps
// everyone after them.
func (g *Game) PlayMiniRound(players []*Player, index int) (*MiniRound, error) {
	if n := len(players); n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, n)
	}

	mr := &MiniRound{
		Index:   index,
		Players: make([]PlayerID, len(players)),
		Turns:   make([]Turn, 0, len(players)),
	}
	maxThrows := g.cfg.maxThrows
	for i, p := range players {
		mr.Players[i] = p.id
		previous := make([]Turn, len(mr.Turns))
		for j, t := range mr.Turns {
			previous[j] = t.Copy()
		}
		turn, err := p.PlayTurn(TurnContext{
			PlayerID:  p.id,
			MiniRound: index,
			TurnIndex: i,
			Rand:      g.rng,
			Previous:  previous,
		}, maxThrows)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			maxThrows = turn.Throws
		}
		turn.Hand.SetTurnOrder(i + 1)
		mr.Turns = append(mr.Turns, turn)
	}

	slices.SortStableFunc(mr.Turns, func(a, b Turn) int {
		return dice.Compare(a.Hand, b.Hand)
	})
	mr.Worst = mr.Turns[0]
	mr.Best = mr.Turns[len(mr.Turns)-1]
	mr.ChipsTransferred = mr.Best.Hand.Category().Chips()
	mr.Loser = mr.Worst.PlayerID

	g.logger.Debug("Mini-round complete",
		"index", index,
		"best", mr.Best.Hand,
		"worst", mr.Worst.Hand,
		"loser", mr.Loser,
		"chips", mr.ChipsTransferred)
	return mr, nil
}
