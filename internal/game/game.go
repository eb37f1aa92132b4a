package game

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
)

// Game owns the player registry, the random source and every completed
// round. A Game is not safe for concurrent use.
type Game struct {
	rng     *rand.Rand
	cfg     gameConfig
	logger  *log.Logger
	players []*Player
	rounds  []*Round

	// lastMiniRound decides who starts the next regular mini-round, across
	// half and round boundaries.
	lastMiniRound *MiniRound
}

// NewGame creates a game without players. The rng drives every die roll.
func NewGame(rng *rand.Rand, opts ...Option) *Game {
	if rng == nil {
		panic("game: NewGame requires a random source")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = discardLogger()
	}
	return &Game{rng: rng, cfg: cfg, logger: logger}
}

// AddPlayers registers players in order and assigns their IDs. Nothing is
// registered if any player is rejected.
func (g *Game) AddPlayers(players ...*Player) error {
	for i, p := range players {
		switch {
		case p == nil:
			return fmt.Errorf("player %d is nil", i)
		case p.Strategy == nil:
			return fmt.Errorf("player %q has no strategy", p.Name)
		case p.id != NoPlayer || slices.Contains(g.players, p) || slices.Contains(players[:i], p):
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p)
		}
	}
	for _, p := range players {
		p.id = PlayerID(len(g.players))
		g.players = append(g.players, p)
	}
	return nil
}

// PlayerByID looks up a registered player.
func (g *Game) PlayerByID(id PlayerID) (*Player, error) {
	if id < 0 || int(id) >= len(g.players) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return g.players[id], nil
}

// PlayerIDs returns the IDs of all registered players in registration order
func (g *Game) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, len(g.players))
	for i, p := range g.players {
		ids[i] = p.id
	}
	return ids
}

// Players returns the registered players in registration order
func (g *Game) Players() []*Player { return slices.Clone(g.players) }

// Rounds returns the completed rounds
func (g *Game) Rounds() []*Round { return slices.Clone(g.rounds) }

// LastMiniRound returns the most recently played mini-round, or nil.
func (g *Game) LastMiniRound() *MiniRound { return g.lastMiniRound }

// AmbiguousNames reports whether two registered players share a name.
func (g *Game) AmbiguousNames() bool {
	seen := make(map[string]bool, len(g.players))
	for _, p := range g.players {
		if seen[p.Name] {
			return true
		}
		seen[p.Name] = true
	}
	return false
}

func (g *Game) playerName(id PlayerID) string {
	p, err := g.PlayerByID(id)
	if err != nil {
		return id.String()
	}
	return p.Label(g.AmbiguousNames())
}
