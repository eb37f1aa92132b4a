package game

import (
	"math/rand/v2"

	"github.com/lox/schocken/dice"
)

// TurnContext is the read-only view of the table a strategy decides on.
type TurnContext struct {
	PlayerID  PlayerID
	MiniRound int // index of the mini-round within its half
	TurnIndex int // position of the player in this mini-round, 0 starts
	Throws    int // throws taken so far, at least 1

	// Rand is the game's generator. Strategies roll dice with it so a seeded
	// game replays exactly.
	Rand *rand.Rand

	// Previous holds copies of the turns already played in this mini-round.
	Previous []Turn
}

// Leader returns the best turn played so far in the mini-round.
func (tc TurnContext) Leader() (Turn, bool) {
	if len(tc.Previous) == 0 {
		return Turn{}, false
	}
	best := tc.Previous[0]
	for _, t := range tc.Previous[1:] {
		if best.Hand.Less(t.Hand) {
			best = t
		}
	}
	return best, true
}

// Strategy decides, once per throw opportunity, whether to stand on the
// current hand or which hand to continue with.
//
// The hand passed in is a snapshot; changing it has no effect on the game
// unless it is returned as next. A returned hand must hold exactly three dice.
type Strategy interface {
	Decide(hand *dice.Hand, maxThrows int, tc TurnContext) (endTurn bool, next *dice.Hand, err error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(hand *dice.Hand, maxThrows int, tc TurnContext) (bool, *dice.Hand, error)

// Decide calls f
func (f StrategyFunc) Decide(hand *dice.Hand, maxThrows int, tc TurnContext) (bool, *dice.Hand, error) {
	return f(hand, maxThrows, tc)
}
