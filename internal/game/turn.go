package game

import (
	"fmt"

	"github.com/lox/schocken/dice"
)

// MaxThrows is the number of throws a turn may take at most.
const MaxThrows = 3

// Turn records one player's completed turn within a mini-round.
type Turn struct {
	Index    int
	PlayerID PlayerID
	Hand     *dice.Hand // finalized, owned by the record
	Throws   int
}

// Copy returns a copy of the turn with its own hand
func (t Turn) Copy() Turn {
	if t.Hand != nil {
		t.Hand = t.Hand.Copy()
	}
	return t
}

func (t Turn) String() string {
	return fmt.Sprintf("turn %d: player %d %s in %d", t.Index, t.PlayerID, t.Hand, t.Throws)
}

// PlayTurn plays one turn for p. The turn starts with a fresh roll of three
// dice and ends when the strategy stands or maxThrows throws were taken.
func (p *Player) PlayTurn(tc TurnContext, maxThrows int) (Turn, error) {
	if tc.Rand == nil {
		panic("game: PlayTurn requires a random source")
	}
	hand := dice.NewRandomHand(tc.Rand)
	throws := 1

	for throws < maxThrows {
		tc.Throws = throws
		endTurn, next, err := p.Strategy.Decide(hand.Copy(), maxThrows, tc)
		if err != nil {
			return Turn{}, fmt.Errorf("player %s: %w", p, err)
		}
		if endTurn {
			break
		}
		if next == nil {
			return Turn{}, fmt.Errorf("player %s returned no hand: %w", p, ErrInvalidHand)
		}
		if err := next.Validate(); err != nil {
			return Turn{}, fmt.Errorf("player %s: %w", p, err)
		}
		hand = next.Copy()
		hand.Update()
		throws++
	}

	if err := hand.Finalize(); err != nil {
		return Turn{}, err
	}
	return Turn{
		Index:    tc.TurnIndex,
		PlayerID: p.id,
		Hand:     hand.Copy(),
		Throws:   throws,
	}, nil
}
