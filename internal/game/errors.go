package game

import (
	"errors"

	"github.com/lox/schocken/dice"
)

var (
	ErrInvalidPlayerCount = errors.New("mini-round needs between 2 and 50 players")
	ErrDuplicatePlayer    = errors.New("player already registered")
	ErrUnknownPlayer      = errors.New("unknown player")
	ErrInvalidHalf        = errors.New("invalid half")
)

// Hand errors surfaced by the strategy helpers.
var (
	ErrInvalidHand  = dice.ErrInvalidHand
	ErrIllegalState = dice.ErrIllegalState
)
