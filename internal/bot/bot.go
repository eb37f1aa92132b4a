// Package bot provides the built-in dice strategies.
package bot

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/schocken/dice"
	"github.com/lox/schocken/internal/game"
)

// Strategy names accepted by New.
const (
	Greedy = "greedy"
	Stand  = "stand"
	Random = "random"
	Target = "target"
)

// Default is the strategy used when none is configured.
const Default = Greedy

var ErrUnknownStrategy = errors.New("unknown strategy")

// Options tunes the strategies that take parameters.
type Options struct {
	// Target is the display name of the hand a TargetBot stands on, for
	// example "General-2" or "Schock-4". Empty means Schock-2.
	Target string
}

// Names lists the known strategy names.
func Names() []string {
	return []string{Greedy, Stand, Random, Target}
}

// Known reports whether name is a known strategy
func Known(name string) bool { return slices.Contains(Names(), name) }

// New builds the strategy registered under name.
func New(name string, logger *log.Logger, opts Options) (game.Strategy, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	switch name {
	case Greedy, "":
		return NewGreedyBot(logger), nil
	case Stand:
		return NewStandBot(logger), nil
	case Random:
		return NewRandBot(logger), nil
	case Target:
		target := opts.Target
		if target == "" {
			target = "Schock-2"
		}
		c, err := dice.ParseCategory(target)
		if err != nil {
			return nil, fmt.Errorf("target strategy: %w", err)
		}
		return NewTargetBot(c, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
