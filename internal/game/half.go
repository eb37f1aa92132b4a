package game

import (
	"fmt"
	"slices"
)

// maxMiniRounds bounds a half. Reaching it means the chip logic is broken.
const maxMiniRounds = 1000

// TieBreakHalf is the index of the half played when the two regular halves
// of a round have different losers.
const TieBreakHalf = 2

// HalfState is the outcome of a half.
type HalfState int

const (
	InProgress HalfState = iota
	RegularlyLost
	SchockOutLost
)

func (s HalfState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case RegularlyLost:
		return "regularly lost"
	case SchockOutLost:
		return "schock-out lost"
	default:
		return "unknown"
	}
}

// Half is a sequence of mini-rounds that ends when one player holds all
// chips or a Schock-out is thrown.
type Half struct {
	Index         int
	ActivePlayers []PlayerID // players still in the half when it ended
	MiniRounds    []*MiniRound
	Economy       *ChipEconomy
	Loser         PlayerID
	State         HalfState
}

// PlayHalf plays half index. Regular halves (0 and 1) are played by every
// registered player and players must be nil. The tie-break half is played by
// exactly the given players in the given order.
func (g *Game) PlayHalf(index int, players []*Player) (*Half, error) {
	regular := index != TieBreakHalf
	switch {
	case index < 0 || index > TieBreakHalf:
		return nil, fmt.Errorf("%w: index %d", ErrInvalidHalf, index)
	case regular && players != nil:
		return nil, fmt.Errorf("%w: regular half %d is played by every player", ErrInvalidHalf, index)
	case !regular && len(players) == 0:
		return nil, fmt.Errorf("%w: tie-break half needs its players", ErrInvalidHalf)
	}

	active := slices.Clone(players)
	if regular {
		active = slices.Clone(g.players)
	}
	ids := make([]PlayerID, len(active))
	for i, p := range active {
		if _, err := g.PlayerByID(p.id); err != nil {
			return nil, err
		}
		ids[i] = p.id
	}

	half := &Half{
		Index:   index,
		Economy: NewChipEconomy(ids),
		Loser:   NoPlayer,
		State:   InProgress,
	}

	for half.State == InProgress {
		if len(half.MiniRounds) >= maxMiniRounds {
			panic(fmt.Sprintf("game: half %d did not end after %d mini-rounds", index, maxMiniRounds))
		}
		if regular && g.lastMiniRound != nil {
			var err error
			if active, err = g.startWith(active, g.lastMiniRound.Loser); err != nil {
				return nil, err
			}
		}

		mr, err := g.PlayMiniRound(active, len(half.MiniRounds))
		if err != nil {
			return nil, err
		}
		half.MiniRounds = append(half.MiniRounds, mr)
		g.lastMiniRound = mr

		if mr.SchockOut() {
			half.Loser = mr.Loser
			half.State = SchockOutLost
			break
		}

		mr.ChipsTransferred = half.Economy.Transfer(mr.Best.PlayerID, mr.Loser, mr.ChipsTransferred)
		if half.Economy.Exhausted() {
			active = slices.DeleteFunc(active, func(p *Player) bool {
				return half.Economy.Zeroed(p.id)
			})
		}
		if id, ok := half.Economy.Full(); ok {
			half.Loser = id
			half.State = RegularlyLost
		}
	}

	half.ActivePlayers = make([]PlayerID, len(active))
	for i, p := range active {
		half.ActivePlayers[i] = p.id
	}
	g.logger.Info("Half complete",
		"half", index,
		"loser", g.playerName(half.Loser),
		"state", half.State,
		"mini_rounds", len(half.MiniRounds))
	return half, nil
}

// startWith reorders active into registration order, rotated so that starter
// plays first.
func (g *Game) startWith(active []*Player, starter PlayerID) ([]*Player, error) {
	ordered := make([]*Player, 0, len(active))
	for _, p := range g.players {
		if slices.Contains(active, p) {
			ordered = append(ordered, p)
		}
	}
	n := slices.IndexFunc(ordered, func(p *Player) bool { return p.id == starter })
	if n < 0 {
		return nil, fmt.Errorf("%w: starting player %d is not playing", ErrUnknownPlayer, starter)
	}
	return slices.Concat(ordered[n:], ordered[:n]), nil
}
