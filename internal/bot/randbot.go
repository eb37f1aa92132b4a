package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/schocken/dice"
	"github.com/lox/schocken/internal/game"
)

// RandBot makes uniform random choices: stand or throw, and which dice to
// keep when throwing. It draws from the game's generator so seeded games
// replay.
type RandBot struct {
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(logger *log.Logger) *RandBot {
	return &RandBot{logger: logger}
}

func (b *RandBot) Decide(hand *dice.Hand, _ int, tc game.TurnContext) (bool, *dice.Hand, error) {
	rng := tc.Rand
	if rng.IntN(2) == 0 {
		b.logger.Debug("Standing at random", "player", tc.PlayerID, "hand", hand)
		return true, nil, nil
	}
	opts := game.ThrowOptions{
		TakeOutOnes:  rng.IntN(2) == 0,
		ConvertSixes: rng.IntN(2) == 0,
		ThrowAll:     rng.IntN(4) == 0,
	}
	next, err := game.ThrowNewHand(hand, rng, opts)
	if err != nil {
		return false, nil, err
	}
	b.logger.Debug("Throwing at random", "player", tc.PlayerID, "options", opts, "to", next)
	return false, next, nil
}
