package dice

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
)

// HandSize is the number of dice in a complete hand.
const HandSize = 3

// Hand is the set of three dice a player works with during a turn.
//
// The category is derived from the dice and recomputed by Update, which every
// mutating method calls before returning. Dice are kept in descending order.
type Hand struct {
	dice      []Die
	category  Category
	assembled bool
	turnOrder int
	finalized bool
}

// NewHand builds a hand from three explicit die values.
func NewHand(values ...int) (*Hand, error) {
	if len(values) != HandSize {
		return nil, fmt.Errorf("%w: got %d values", ErrInvalidHand, len(values))
	}
	dice := make([]Die, 0, HandSize)
	for _, v := range values {
		d, err := NewDie(v)
		if err != nil {
			return nil, err
		}
		dice = append(dice, d)
	}
	h := &Hand{dice: dice}
	h.Update()
	return h, nil
}

// MustHand is NewHand for values known to be valid, such as test fixtures.
func MustHand(values ...int) *Hand {
	h, err := NewHand(values...)
	if err != nil {
		panic(err)
	}
	return h
}

// NewRandomHand rolls three fresh dice.
func NewRandomHand(rng *rand.Rand) *Hand {
	h := &Hand{dice: make([]Die, HandSize)}
	for i := range h.dice {
		h.dice[i].Roll(rng)
	}
	h.Update()
	return h
}

// Update sorts the dice, marks the hand as assembled when any die was taken
// out and recomputes the category. Calling it twice is harmless.
func (h *Hand) Update() {
	slices.SortStableFunc(h.dice, func(a, b Die) int {
		return cmp.Compare(b.value, a.value)
	})
	for _, d := range h.dice {
		if d.takenOut {
			h.assembled = true
			break
		}
	}
	h.category = h.classify()
}

func (h *Hand) classify() Category {
	if len(h.dice) != HandSize {
		return Category{}
	}
	var v [HandSize]int
	for i, d := range h.dice {
		if d.value < 1 || d.value > 6 {
			return Category{}
		}
		v[i] = d.value // descending, Update sorted the dice
	}

	ones := 0
	for _, x := range v {
		if x == 1 {
			ones++
		}
	}
	switch {
	case ones == 3:
		return mustCategory(SchockOut, 0)
	case ones == 2:
		if v[0] == 1 {
			panic(fmt.Sprintf("dice: schock without a non-one die: %v", v))
		}
		return mustCategory(Schock, v[0])
	case v[0] == v[1] && v[1] == v[2]:
		return mustCategory(General, v[0])
	case v[0] != v[1] && v[1] != v[2]:
		lo, mid, hi := v[2], v[1], v[0]
		if lo+1 == mid && mid+1 == hi {
			// 1-2-3 only counts when it was rolled, not put together.
			if lo != 1 || !h.assembled {
				return mustCategory(Straight, lo)
			}
		}
	}
	return mustCategory(HighDice, 100*v[0]+10*v[1]+v[2])
}

// Category returns the cached category
func (h *Hand) Category() Category { return h.category }

// Validate reports ErrInvalidHand unless the hand holds exactly three dice
// showing 1 to 6. Only a valid hand has a category.
func (h *Hand) Validate() error {
	if len(h.dice) != HandSize {
		return fmt.Errorf("%w: got %d dice", ErrInvalidHand, len(h.dice))
	}
	for _, d := range h.dice {
		if d.value < 1 || d.value > 6 {
			return fmt.Errorf("%w: die shows %d", ErrInvalidHand, d.value)
		}
	}
	return nil
}

// Chips returns the chip value of the hand.
func (h *Hand) Chips() (int, error) {
	if err := h.Validate(); err != nil {
		return 0, fmt.Errorf("cannot count chips: %w", err)
	}
	return h.category.Chips(), nil
}

// Len returns the number of dice currently in the hand
func (h *Hand) Len() int { return len(h.dice) }

// Dice returns a copy of the dice in descending order
func (h *Hand) Dice() []Die { return slices.Clone(h.dice) }

// Values returns the face values in descending order
func (h *Hand) Values() []int {
	out := make([]int, len(h.dice))
	for i, d := range h.dice {
		out[i] = d.value
	}
	return out
}

// Assembled reports whether any die of the hand was set aside
func (h *Hand) Assembled() bool { return h.assembled }

// SetAssembled marks the hand as put together and reclassifies it.
func (h *Hand) SetAssembled(assembled bool) {
	h.assembled = assembled
	h.Update()
}

// TurnOrder returns the seat position of the hand within a mini-round; 0
// means the hand was not played in one.
func (h *Hand) TurnOrder() int { return h.turnOrder }

// SetTurnOrder assigns the seat position used for breaking ties.
func (h *Hand) SetTurnOrder(pos int) { h.turnOrder = pos }

// Finalized reports whether the turn that produced the hand is over
func (h *Hand) Finalized() bool { return h.finalized }

// ReplaceDice swaps in a new set of dice.
func (h *Hand) ReplaceDice(dice []Die) error {
	if h.finalized {
		return fmt.Errorf("%w: cannot replace dice", ErrIllegalState)
	}
	for _, d := range dice {
		if !validValue(d.value) {
			return fmt.Errorf("%w: die value %d", ErrInvalidValue, d.value)
		}
	}
	h.dice = slices.Clone(dice)
	h.Update()
	return nil
}

// SetAside keeps the die at position i as a one.
func (h *Hand) SetAside(i int) error {
	if err := h.checkMutable(i); err != nil {
		return err
	}
	h.dice[i].SetAsideAsOne()
	h.Update()
	return nil
}

// Reroll throws the die at position i again.
func (h *Hand) Reroll(i int, rng *rand.Rand) error {
	if err := h.checkMutable(i); err != nil {
		return err
	}
	h.dice[i].Roll(rng)
	h.Update()
	return nil
}

func (h *Hand) checkMutable(i int) error {
	if h.finalized {
		return ErrIllegalState
	}
	if i < 0 || i >= len(h.dice) {
		return fmt.Errorf("%w: no die at position %d", ErrInvalidHand, i)
	}
	return nil
}

// Finalize ends the turn for this hand: every die is shown and the hand can
// no longer change.
func (h *Hand) Finalize() error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("cannot finalize: %w", err)
	}
	for i := range h.dice {
		h.dice[i].visible = true
	}
	h.Update()
	h.finalized = true
	return nil
}

// VisibleDice returns the dice shown to the table. It reports false while the
// turn is still running; once finalized every die is shown.
func (h *Hand) VisibleDice() ([]Die, bool) {
	if !h.finalized {
		return nil, false
	}
	var out []Die
	for _, d := range h.dice {
		if d.visible {
			out = append(out, d)
		}
	}
	return out, true
}

// Copy returns a deep copy
func (h *Hand) Copy() *Hand {
	c := *h
	c.dice = slices.Clone(h.dice)
	return &c
}

// Compare orders hands by category, then by seat: on equal categories the
// hand played earlier wins, so a higher turn order compares lower.
func Compare(a, b *Hand) int {
	if c := a.category.Compare(b.category); c != 0 {
		return c
	}
	return cmp.Compare(b.turnOrder, a.turnOrder)
}

// Less reports whether h ranks below o
func (h *Hand) Less(o *Hand) bool { return Compare(h, o) < 0 }

// Equal reports whether two hands tie. Hands played at different seats never
// tie.
func (h *Hand) Equal(o *Hand) bool {
	if h.turnOrder != o.turnOrder {
		return false
	}
	return h.category == o.category
}

// String returns the display name of the hand
func (h *Hand) String() string { return h.category.String() }

// ParseHand builds a representative hand from a display name produced by
// Category.String. High dice names containing a one are treated as put
// together, so "32-1" stays high dice instead of becoming a straight.
func ParseHand(name string) (*Hand, error) {
	switch {
	case name == "Motte":
		return NewHand(2, 2, 1)
	case name == "Schock-out":
		return NewHand(1, 1, 1)
	}
	if rest, ok := strings.CutPrefix(name, "Schock-"); ok {
		v, err := strconv.Atoi(rest)
		if err != nil || v < 2 || v > 6 {
			return nil, fmt.Errorf("%w: bad schock name %q", ErrInvalidValue, name)
		}
		return NewHand(1, 1, v)
	}
	if rest, ok := strings.CutPrefix(name, "General-"); ok {
		v, err := strconv.Atoi(rest)
		if err != nil || v < 2 || v > 6 {
			return nil, fmt.Errorf("%w: bad general name %q", ErrInvalidValue, name)
		}
		return NewHand(v, v, v)
	}
	if rest, ok := strings.CutPrefix(name, "Straight-"); ok {
		from, to, found := strings.Cut(rest, ":")
		lo, err1 := strconv.Atoi(from)
		hi, err2 := strconv.Atoi(to)
		if !found || err1 != nil || err2 != nil || lo < 1 || lo > 4 || hi != lo+2 {
			return nil, fmt.Errorf("%w: bad straight name %q", ErrInvalidValue, name)
		}
		return NewHand(lo, lo+1, lo+2)
	}

	digits := strings.ReplaceAll(name, "-", "")
	if len(digits) != HandSize || !strings.Contains(name, "-") {
		return nil, fmt.Errorf("%w: unknown hand name %q", ErrInvalidValue, name)
	}
	values := make([]int, 0, HandSize)
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: unknown hand name %q", ErrInvalidValue, name)
		}
		values = append(values, int(r-'0'))
	}
	h, err := NewHand(values...)
	if err != nil {
		return nil, err
	}
	if strings.ContainsRune(digits, '1') {
		h.SetAssembled(true)
	}
	return h, nil
}

// AllHands returns one representative hand for every category that can occur,
// from the weakest high dice to Schock-out.
func AllHands() []*Hand {
	var hands []*Hand
	seen := make(map[int]bool)
	add := func(h *Hand) {
		if r := h.category.Rank(); !seen[r] {
			seen[r] = true
			hands = append(hands, h)
		}
	}
	for a := 1; a <= 6; a++ {
		for b := a; b <= 6; b++ {
			for c := b; c <= 6; c++ {
				h := MustHand(c, b, a)
				add(h)
				assembled := h.Copy()
				assembled.SetAssembled(true)
				add(assembled)
			}
		}
	}
	slices.SortFunc(hands, Compare)
	return hands
}

// AllCategories lists every reachable category from weakest to strongest.
func AllCategories() []Category {
	hands := AllHands()
	out := make([]Category, len(hands))
	for i, h := range hands {
		out[i] = h.category
	}
	return out
}
