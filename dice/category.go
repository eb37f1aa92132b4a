package dice

import (
	"fmt"
	"strconv"
)

// Kind enumerates the hand categories ordered from weakest to strongest.
type Kind uint8

const (
	HighDice Kind = iota
	Straight
	General
	Schock
	SchockOut
)

func (k Kind) String() string {
	switch k {
	case HighDice:
		return "High Dice"
	case Straight:
		return "Straight"
	case General:
		return "General"
	case Schock:
		return "Schock"
	case SchockOut:
		return "Schock-out"
	default:
		return "Unknown"
	}
}

const (
	minHighDice = 221 // 2-2-1, the Motte
	maxHighDice = 665
	motte       = 221

	// ChipPool is the number of chips in play during a half.
	ChipPool = 13
)

// Category is the ranked classification of three dice. The zero value is
// HighDice with no parameter and is only produced for hands without dice.
type Category struct {
	kind  Kind
	value int
}

// NewCategory validates the parameter for the given kind.
func NewCategory(kind Kind, value int) (Category, error) {
	switch kind {
	case SchockOut:
		if value != 0 {
			return Category{}, fmt.Errorf("%w: schock-out takes no value, got %d", ErrInvalidValue, value)
		}
	case Schock, General:
		if value < 2 || value > 6 {
			return Category{}, fmt.Errorf("%w: %s value must be between 2 and 6, got %d", ErrInvalidValue, kind, value)
		}
	case Straight:
		if value < 1 || value > 4 {
			return Category{}, fmt.Errorf("%w: straight value must be between 1 and 4, got %d", ErrInvalidValue, value)
		}
	case HighDice:
		if value < minHighDice || value > maxHighDice {
			return Category{}, fmt.Errorf("%w: high dice value must be between %d and %d, got %d", ErrInvalidValue, minHighDice, maxHighDice, value)
		}
	default:
		return Category{}, fmt.Errorf("%w: unknown kind %d", ErrInvalidValue, kind)
	}
	return Category{kind: kind, value: value}, nil
}

// mustCategory is used by the classifier, which only ever builds valid
// categories. A failure here is a bug in the classifier.
func mustCategory(kind Kind, value int) Category {
	c, err := NewCategory(kind, value)
	if err != nil {
		panic(fmt.Sprintf("dice: classifier produced invalid category: %v", err))
	}
	return c
}

// Kind returns the category kind
func (c Category) Kind() Kind { return c.kind }

// Value returns the kind-specific parameter (0 for Schock-out)
func (c Category) Value() int { return c.value }

// Rank maps the category onto a single integer. Higher is stronger.
func (c Category) Rank() int {
	return 1000*(int(c.kind)+1) + c.value
}

// Compare returns -1, 0 or +1 depending on whether c is weaker, equal or
// stronger than o.
func (c Category) Compare(o Category) int {
	switch a, b := c.Rank(), o.Rank(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Chips is the number of chips the holder of the best hand hands out.
func (c Category) Chips() int {
	switch c.kind {
	case SchockOut:
		return ChipPool
	case Schock:
		return c.value
	case General:
		return 3
	case Straight:
		return 2
	default:
		return 1
	}
}

// String returns the conventional table name, e.g. "Schock-5", "Straight-2:4",
// "65-3" or "Motte".
func (c Category) String() string {
	switch c.kind {
	case SchockOut:
		return "Schock-out"
	case Schock:
		return "Schock-" + strconv.Itoa(c.value)
	case General:
		return "General-" + strconv.Itoa(c.value)
	case Straight:
		return fmt.Sprintf("Straight-%d:%d", c.value, c.value+2)
	default:
		if c.value == 0 {
			return "not defined"
		}
		if c.value == motte {
			return "Motte"
		}
		v := strconv.Itoa(c.value)
		return v[:2] + "-" + v[2:]
	}
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(name string) (Category, error) {
	h, err := ParseHand(name)
	if err != nil {
		return Category{}, err
	}
	return h.Category(), nil
}
