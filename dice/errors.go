package dice

import "errors"

var (
	// ErrInvalidValue is returned for die values or category parameters
	// outside their allowed range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidHand is returned when an operation needs exactly three dice.
	ErrInvalidHand = errors.New("hand must contain exactly 3 dice")

	// ErrIllegalState is returned when a finalized hand is mutated.
	ErrIllegalState = errors.New("hand is finalized")
)
