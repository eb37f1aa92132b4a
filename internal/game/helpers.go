package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/schocken/dice"
)

// Throw prepares the next throw of a hand. Dice kept during preparation are
// marked processed; RollRemaining rerolls every other die. The dice keep their
// positions until Hand commits them, so helpers can be chained freely.
type Throw struct {
	base      *dice.Hand
	dice      []dice.Die
	processed []bool
}

// NewThrow starts preparing a throw from a copy of h.
func NewThrow(h *dice.Hand) (*Throw, error) {
	if h.Finalized() {
		return nil, fmt.Errorf("%w: cannot throw a finalized hand", ErrIllegalState)
	}
	d := h.Dice()
	return &Throw{
		base:      h.Copy(),
		dice:      d,
		processed: make([]bool, len(d)),
	}, nil
}

// TakeOutOnes keeps every unprocessed one. It returns the number of dice kept.
func (t *Throw) TakeOutOnes() int {
	n := 0
	for i := range t.dice {
		if t.processed[i] || t.dice[i].Value() != 1 {
			continue
		}
		t.dice[i].SetAsideAsOne()
		t.processed[i] = true
		n++
	}
	return n
}

// ConvertSixes turns sixes into kept ones: three unprocessed sixes give two
// ones, two give one, fewer do nothing.
func (t *Throw) ConvertSixes() (int, error) {
	if len(t.dice) != dice.HandSize {
		return 0, fmt.Errorf("%w: cannot convert sixes of %d dice", ErrInvalidHand, len(t.dice))
	}
	var sixes []int
	for i, d := range t.dice {
		if !t.processed[i] && d.Value() == 6 {
			sixes = append(sixes, i)
		}
	}
	convert := 0
	switch len(sixes) {
	case 3:
		convert = 2
	case 2:
		convert = 1
	}
	for _, i := range sixes[:convert] {
		t.dice[i].SetAsideAsOne()
		t.processed[i] = true
	}
	return convert, nil
}

// RollRemaining rerolls every die not yet processed.
func (t *Throw) RollRemaining(rng *rand.Rand) {
	for i := range t.dice {
		if !t.processed[i] {
			t.dice[i].Roll(rng)
			t.processed[i] = true
		}
	}
}

// Hand commits the prepared dice into a new hand. The hand is recomputed and
// stays assembled if any die was set aside.
func (t *Throw) Hand() (*dice.Hand, error) {
	h := t.base.Copy()
	if err := h.ReplaceDice(t.dice); err != nil {
		return nil, err
	}
	return h, nil
}

// ThrowOptions selects what ThrowNewHand keeps before rolling.
type ThrowOptions struct {
	TakeOutOnes  bool
	ConvertSixes bool
	// ThrowAll rerolls all three dice and overrides the other options.
	ThrowAll bool
}

// DefaultThrow keeps ones, converts sixes and rolls the rest.
var DefaultThrow = ThrowOptions{TakeOutOnes: true, ConvertSixes: true}

// ThrowNewHand returns the hand after one more throw of h. h itself is left
// untouched.
func ThrowNewHand(h *dice.Hand, rng *rand.Rand, opts ThrowOptions) (*dice.Hand, error) {
	t, err := NewThrow(h)
	if err != nil {
		return nil, err
	}
	if !opts.ThrowAll {
		if opts.TakeOutOnes {
			t.TakeOutOnes()
		}
		if opts.ConvertSixes {
			if _, err := t.ConvertSixes(); err != nil {
				return nil, err
			}
		}
	}
	t.RollRemaining(rng)
	return t.Hand()
}
