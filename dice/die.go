package dice

import (
	"fmt"
	"math/rand/v2"
)

// Cleared is the sentinel value of a die that has not been rolled yet or was
// wiped. Rolls never produce it.
const Cleared = -1

// Die is a single six-sided die with the flags the table cares about.
type Die struct {
	value    int
	visible  bool
	takenOut bool
}

// NewDie creates a die showing v. Valid values are 1-6 and Cleared.
func NewDie(v int) (Die, error) {
	if !validValue(v) {
		return Die{}, fmt.Errorf("%w: die value %d, must be 1-6 or %d", ErrInvalidValue, v, Cleared)
	}
	return Die{value: v}, nil
}

// RollDie returns a freshly rolled die
func RollDie(rng *rand.Rand) Die {
	var d Die
	d.Roll(rng)
	return d
}

func validValue(v int) bool {
	return (v >= 1 && v <= 6) || v == Cleared
}

// Value returns the face value
func (d Die) Value() int { return d.value }

// Visible reports whether the die is shown to the table
func (d Die) Visible() bool { return d.visible }

// TakenOut reports whether the die was set aside during the turn
func (d Die) TakenOut() bool { return d.takenOut }

// Roll throws the die again and clears both flags.
func (d *Die) Roll(rng *rand.Rand) {
	d.value = rng.IntN(6) + 1
	d.visible = false
	d.takenOut = false
}

// SetAsideAsOne turns the die into a one and puts it out in front of the
// player. This is how a rolled one is kept, and how sixes are converted.
func (d *Die) SetAsideAsOne() {
	d.value = 1
	d.takenOut = true
	d.visible = true
}

func (d Die) String() string {
	return fmt.Sprintf("Die(%d)", d.value)
}
