// Package history stores played games as TOML files.
package history

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/coder/quartz"
	"github.com/lox/schocken/internal/game"
	"github.com/lox/schocken/internal/gameid"
)

// Record is one game as written to disk.
type Record struct {
	ID        string        `toml:"id"`
	Seed      int64         `toml:"seed"`
	CreatedAt time.Time     `toml:"created_at"`
	Game      game.GameView `toml:"game"`
}

// NewRecord captures the rounds played so far in g.
func NewRecord(g *game.Game, seed int64, ids *gameid.Generator, clock quartz.Clock) (*Record, error) {
	id, err := ids.Generate()
	if err != nil {
		return nil, err
	}
	return &Record{
		ID:        id,
		Seed:      seed,
		CreatedAt: clock.Now().UTC(),
		Game:      g.View(),
	}, nil
}

// Validate checks the record ID and that every loser and every turn belongs
// to a registered player.
func (r *Record) Validate() error {
	if err := gameid.Validate(r.ID); err != nil {
		return err
	}
	known := make(map[game.PlayerID]bool, len(r.Game.Players))
	for _, p := range r.Game.Players {
		known[p.ID] = true
	}
	check := func(id game.PlayerID, where string, args ...any) error {
		if known[id] {
			return nil
		}
		return fmt.Errorf("%s: %w: %d", fmt.Sprintf(where, args...), game.ErrUnknownPlayer, id)
	}

	for _, round := range r.Game.Rounds {
		if err := check(round.Loser, "round %d", round.Index); err != nil {
			return err
		}
		for _, h := range round.Halves {
			if err := check(h.Loser, "round %d half %d", round.Index, h.Index); err != nil {
				return err
			}
			for _, mr := range h.MiniRounds {
				if err := checkMiniRound(mr, check, "round %d half %d mini-round %d", round.Index, h.Index, mr.Index); err != nil {
					return err
				}
			}
		}
	}
	if mr := r.Game.LastMiniRound; mr != nil {
		return checkMiniRound(*mr, check, "last mini-round")
	}
	return nil
}

func checkMiniRound(mr game.MiniRoundView, check func(game.PlayerID, string, ...any) error, where string, args ...any) error {
	at := fmt.Sprintf(where, args...)
	if err := check(mr.Loser, "%s loser", at); err != nil {
		return err
	}
	for _, id := range mr.Players {
		if err := check(id, "%s", at); err != nil {
			return err
		}
	}
	for _, t := range mr.Turns {
		if err := check(t.PlayerID, "%s turn %d", at, t.TurnIndex); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes the record to w in TOML.
func Encode(w io.Writer, r *Record) error {
	if r == nil {
		return errors.New("history: record is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(r *Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a record and validates it.
func Decode(rd io.Reader) (*Record, error) {
	var r Record
	md, err := toml.NewDecoder(rd).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("history: unknown keys %v", undecoded)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return &r, nil
}

// Save writes the record to path, replacing any previous file atomically.
func Save(path string, r *Record) error {
	data, err := EncodeToBytes(r)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data, 0o644)
}

// Load reads the record stored at path.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
