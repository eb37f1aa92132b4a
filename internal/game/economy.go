package game

import (
	"fmt"
	"maps"

	"github.com/lox/schocken/dice"
)

// ChipEconomy tracks the chips of one half: the shared stock and what every
// player holds. The stock and all balances always add up to dice.ChipPool.
type ChipEconomy struct {
	stock     int
	balances  map[PlayerID]int
	exhausted bool
}

// NewChipEconomy starts a half with the full stock and empty balances.
func NewChipEconomy(players []PlayerID) *ChipEconomy {
	balances := make(map[PlayerID]int, len(players))
	for _, id := range players {
		balances[id] = 0
	}
	return &ChipEconomy{stock: dice.ChipPool, balances: balances}
}

// Transfer hands the chips of a mini-round to its loser and returns how many
// actually moved.
//
// While the stock lasts the chips come from the stock; if it runs dry the
// transfer is cut to what was left. After that the winner pays from their own
// balance, never more than they hold.
func (e *ChipEconomy) Transfer(winner, loser PlayerID, amount int) int {
	if _, ok := e.balances[loser]; !ok {
		panic(fmt.Sprintf("game: loser %d is not part of the half", loser))
	}
	if amount < 0 {
		panic(fmt.Sprintf("game: negative transfer %d", amount))
	}

	if !e.exhausted {
		e.stock -= amount
		if e.stock <= 0 {
			amount += e.stock
			e.stock = 0
			e.exhausted = true
		}
	} else {
		amount = min(amount, e.balances[winner])
		e.balances[winner] -= amount
	}
	e.balances[loser] += amount

	e.checkInvariants()
	return amount
}

// Stock returns the chips left in the stock
func (e *ChipEconomy) Stock() int { return e.stock }

// Exhausted reports whether the stock ran dry
func (e *ChipEconomy) Exhausted() bool { return e.exhausted }

// Balance returns the chips held by id
func (e *ChipEconomy) Balance(id PlayerID) int { return e.balances[id] }

// Balances returns a copy of all balances
func (e *ChipEconomy) Balances() map[PlayerID]int { return maps.Clone(e.balances) }

// Zeroed reports whether id holds no chips after the stock ran dry. Such a
// player sits out the rest of the half.
func (e *ChipEconomy) Zeroed(id PlayerID) bool {
	return e.exhausted && e.balances[id] == 0
}

// Full returns the player holding every chip, if any.
func (e *ChipEconomy) Full() (PlayerID, bool) {
	for id, n := range e.balances {
		if n == dice.ChipPool {
			return id, true
		}
	}
	return NoPlayer, false
}

func (e *ChipEconomy) checkInvariants() {
	total := e.stock
	for id, n := range e.balances {
		if n < 0 || n > dice.ChipPool {
			panic(fmt.Sprintf("game: player %d holds %d chips", id, n))
		}
		total += n
	}
	if e.stock < 0 || total != dice.ChipPool {
		panic(fmt.Sprintf("game: %d chips in play, stock %d", total, e.stock))
	}
}
