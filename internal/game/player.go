package game

import (
	"fmt"
	"strconv"
)

// PlayerID identifies a registered player. IDs are handed out in registration
// order starting at 0.
type PlayerID int

// NoPlayer is the ID of a player that was never registered.
const NoPlayer PlayerID = -1

func (id PlayerID) String() string { return strconv.Itoa(int(id)) }

// Player is a seat at the table together with the strategy that plays it.
type Player struct {
	Name     string
	Strategy Strategy

	id PlayerID
}

// NewPlayer creates an unregistered player. The ID is assigned by
// Game.AddPlayers.
func NewPlayer(name string, strategy Strategy) *Player {
	return &Player{Name: name, Strategy: strategy, id: NoPlayer}
}

// ID returns the registry ID, or NoPlayer before registration
func (p *Player) ID() PlayerID { return p.id }

// Label is the name used in reports: the plain name, or "name(id)" when the
// name alone is ambiguous.
func (p *Player) Label(ambiguous bool) string {
	if ambiguous {
		return fmt.Sprintf("%s(%d)", p.Name, p.id)
	}
	return p.Name
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%d)", p.Name, p.id)
}
