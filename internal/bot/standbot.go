package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/schocken/dice"
	"github.com/lox/schocken/internal/game"
)

// StandBot stands on its first throw. As the lead player it limits everyone
// else to one throw.
type StandBot struct {
	logger *log.Logger
}

// NewStandBot creates a new StandBot instance
func NewStandBot(logger *log.Logger) *StandBot {
	return &StandBot{logger: logger}
}

func (b *StandBot) Decide(hand *dice.Hand, _ int, tc game.TurnContext) (bool, *dice.Hand, error) {
	b.logger.Debug("Standing", "player", tc.PlayerID, "hand", hand)
	return true, nil, nil
}
