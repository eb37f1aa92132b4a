package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/schocken/dice"
	"github.com/lox/schocken/internal/game"
)

// TargetBot throws like GreedyBot until its hand reaches a target category.
// Later in a mini-round it also stands as soon as it beats every hand played
// before it.
type TargetBot struct {
	target dice.Category
	logger *log.Logger
}

// NewTargetBot creates a TargetBot standing on target or better.
func NewTargetBot(target dice.Category, logger *log.Logger) *TargetBot {
	return &TargetBot{target: target, logger: logger}
}

func (b *TargetBot) Decide(hand *dice.Hand, _ int, tc game.TurnContext) (bool, *dice.Hand, error) {
	if hand.Category().Compare(b.target) >= 0 {
		b.logger.Debug("Target reached", "player", tc.PlayerID, "hand", hand, "target", b.target)
		return true, nil, nil
	}
	// a tie loses to the earlier seat
	if leader, ok := tc.Leader(); ok && hand.Category().Compare(leader.Hand.Category()) > 0 {
		b.logger.Debug("Beating the table", "player", tc.PlayerID, "hand", hand)
		return true, nil, nil
	}
	next, err := game.ThrowNewHand(hand, tc.Rand, game.DefaultThrow)
	if err != nil {
		return false, nil, err
	}
	return false, next, nil
}
