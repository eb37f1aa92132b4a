package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/schocken/internal/config"
	"github.com/lox/schocken/internal/game"
	"github.com/lox/schocken/internal/gameid"
	"github.com/lox/schocken/internal/history"
	"github.com/lox/schocken/internal/randutil"
	"github.com/lox/schocken/internal/statistics"
)

// PlayCmd plays a single game with the configured players.
type PlayCmd struct {
	Config  string `short:"c" default:"schocken.hcl" help:"HCL config file (defaults are used when it does not exist)"`
	Rounds  int    `help:"Rounds to play (overrides config)"`
	Seed    *int64 `help:"RNG seed (defaults to the config seed, or a random one)"`
	History string `help:"Write the game history to this TOML file (overrides config)"`
	JSON    bool   `name:"json" help:"Print the game as JSON"`
	Verbose bool   `help:"Print every round"`
}

func (cmd *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return err
	}
	cmd.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cmd.Config, err)
	}

	logger, err := newLogger(os.Stderr, cfg.Game.LogLevel, cli.Debug)
	if err != nil {
		return err
	}
	seed, rng, err := randutil.Resolve(cfg.Game.Seed)
	if err != nil {
		return err
	}
	players, err := cfg.NewPlayers(logger)
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	g := game.NewGame(rng,
		game.WithLogger(logger),
		game.WithMaxThrows(cfg.Game.MaxThrows),
		game.WithClock(clock))
	if err := g.AddPlayers(players...); err != nil {
		return err
	}

	logger.Info("Starting game", "players", len(players), "rounds", cfg.Game.Rounds, "seed", seed)
	if _, err := g.PlayRounds(cfg.Game.Rounds); err != nil {
		return err
	}

	if path := cfg.Game.HistoryFile; path != "" {
		rec, err := history.NewRecord(g, seed, gameid.NewGenerator(nil), clock)
		if err != nil {
			return err
		}
		if err := history.Save(path, rec); err != nil {
			return fmt.Errorf("saving history: %w", err)
		}
		logger.Info("Saved game history", "file", path, "id", rec.ID)
	}

	return cmd.report(os.Stdout, g.View(), seed)
}

// apply copies command-line overrides into cfg.
func (cmd *PlayCmd) apply(cfg *config.Config) {
	if cmd.Rounds != 0 {
		cfg.Game.Rounds = cmd.Rounds
	}
	if cmd.Seed != nil {
		seed := *cmd.Seed
		cfg.Game.Seed = &seed
	}
	if cmd.History != "" {
		cfg.Game.HistoryFile = cmd.History
	}
}

func (cmd *PlayCmd) report(w io.Writer, view game.GameView, seed int64) error {
	if cmd.JSON {
		return writeJSON(w, view)
	}
	scores, err := statistics.FromGame(view)
	if err != nil {
		return err
	}
	if err := scores.Validate(); err != nil {
		return err
	}
	if cmd.Verbose {
		writeRounds(w, view, labeller(view.Players))
		fmt.Fprintln(w)
	}
	if err := writeScores(w, scores); err != nil {
		return err
	}
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("seed %d, %d rounds, %d mini-rounds", seed, scores.Rounds, scores.MiniRounds)))
	return nil
}
