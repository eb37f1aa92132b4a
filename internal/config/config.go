// Package config loads game settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/schocken/internal/bot"
	"github.com/lox/schocken/internal/game"
)

const (
	DefaultRounds   = 10
	DefaultLogLevel = "info"
)

// Config is the complete configuration of a game
type Config struct {
	Game    *GameSettings  `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// GameSettings holds the table-wide settings
type GameSettings struct {
	Rounds      int    `hcl:"rounds,optional"`
	Seed        *int64 `hcl:"seed,optional"`
	MaxThrows   int    `hcl:"max_throws,optional"`
	HistoryFile string `hcl:"history_file,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// PlayerConfig seats one player
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Target   string `hcl:"target,optional"`
}

// Default returns the configuration used when no file exists: three greedy
// players and ten rounds.
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			Rounds:    DefaultRounds,
			MaxThrows: game.MaxThrows,
			LogLevel:  DefaultLogLevel,
		},
		Players: []PlayerConfig{
			{Name: "Anna", Strategy: bot.Default},
			{Name: "Ben", Strategy: bot.Default},
			{Name: "Carl", Strategy: bot.Default},
		},
	}
}

// Load reads the configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for everything left out.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Rounds == 0 {
		c.Game.Rounds = DefaultRounds
	}
	if c.Game.MaxThrows == 0 {
		c.Game.MaxThrows = game.MaxThrows
	}
	if c.Game.LogLevel == "" {
		c.Game.LogLevel = DefaultLogLevel
	}
	if len(c.Players) == 0 {
		c.Players = Default().Players
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = bot.Default
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game == nil {
		return errors.New("missing game settings")
	}
	if c.Game.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Game.Rounds)
	}
	if c.Game.MaxThrows < 1 || c.Game.MaxThrows > game.MaxThrows {
		return fmt.Errorf("max_throws must be between 1 and %d, got %d", game.MaxThrows, c.Game.MaxThrows)
	}
	if _, err := log.ParseLevel(c.Game.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if n := len(c.Players); n < game.MinPlayers || n > game.MaxPlayers {
		return fmt.Errorf("%w: %d players configured", game.ErrInvalidPlayerCount, n)
	}
	for _, p := range c.Players {
		if p.Name == "" {
			return errors.New("player name must not be empty")
		}
		if !bot.Known(p.Strategy) {
			return fmt.Errorf("player %s: %w: %q", p.Name, bot.ErrUnknownStrategy, p.Strategy)
		}
		if p.Target != "" && p.Strategy != bot.Target {
			return fmt.Errorf("player %s: target is only used by the %s strategy", p.Name, bot.Target)
		}
	}
	return nil
}

// NewPlayers builds the configured players with their strategies.
func (c *Config) NewPlayers(logger *log.Logger) ([]*game.Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	players := make([]*game.Player, 0, len(c.Players))
	for _, pc := range c.Players {
		s, err := bot.New(pc.Strategy, logger.WithPrefix(pc.Name), bot.Options{Target: pc.Target})
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", pc.Name, err)
		}
		players = append(players, game.NewPlayer(pc.Name, s))
	}
	return players, nil
}
