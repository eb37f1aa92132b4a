package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/schocken/dice"
	"github.com/lox/schocken/internal/game"
)

// GreedyBot always throws again: it keeps its ones, converts sixes and rolls
// the rest until the throws run out.
type GreedyBot struct {
	logger *log.Logger
}

// NewGreedyBot creates a new GreedyBot instance
func NewGreedyBot(logger *log.Logger) *GreedyBot {
	return &GreedyBot{logger: logger}
}

func (b *GreedyBot) Decide(hand *dice.Hand, maxThrows int, tc game.TurnContext) (bool, *dice.Hand, error) {
	next, err := game.ThrowNewHand(hand, tc.Rand, game.DefaultThrow)
	if err != nil {
		return false, nil, err
	}
	b.logger.Debug("Throwing again", "player", tc.PlayerID, "throw", tc.Throws, "from", hand, "to", next)
	return false, next, nil
}
