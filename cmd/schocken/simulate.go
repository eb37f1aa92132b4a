package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"

	"github.com/lox/schocken/internal/config"
	"github.com/lox/schocken/internal/randutil"
	"github.com/lox/schocken/internal/simulator"
)

// SimulateCmd plays many games in parallel with the configured players.
type SimulateCmd struct {
	Config  string `short:"c" default:"schocken.hcl" help:"HCL config file (defaults are used when it does not exist)"`
	Games   int    `default:"1000" help:"Number of games to simulate"`
	Rounds  int    `help:"Rounds per game (overrides config)"`
	Seed    *int64 `help:"Base RNG seed (defaults to the config seed, or a random one)"`
	Workers int    `default:"0" help:"Parallel workers (0 uses all CPUs)"`
	JSON    bool   `name:"json" help:"Print the summary as JSON"`
}

func (cmd *SimulateCmd) Run(cli *CLI) error {
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
	seed, _, err := randutil.Resolve(cfg.Game.Seed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("Starting simulation", "games", cmd.Games, "rounds", cfg.Game.Rounds, "seed", seed)
	res, err := simulator.New(simulator.Config{
		Games:     cmd.Games,
		Rounds:    cfg.Game.Rounds,
		Seed:      seed,
		MaxThrows: cfg.Game.MaxThrows,
		Workers:   cmd.Workers,
		Players:   cfg.Players,
		Logger:    logger,
	}).Run(ctx)
	if err != nil {
		return err
	}
	return cmd.report(os.Stdout, res, seed)
}

// apply copies command-line overrides into cfg.
func (cmd *SimulateCmd) apply(cfg *config.Config) {
	if cmd.Rounds != 0 {
		cfg.Game.Rounds = cmd.Rounds
	}
	if cmd.Seed != nil {
		seed := *cmd.Seed
		cfg.Game.Seed = &seed
	}
}

type lossRate struct {
	Player string  `json:"player"`
	Mean   float64 `json:"mean"`
	Low    float64 `json:"ci95_low"`
	High   float64 `json:"ci95_high"`
}

type simulationSummary struct {
	Seed              int64      `json:"seed"`
	Games             int        `json:"games"`
	Rounds            int        `json:"rounds"`
	TieBreaks         int        `json:"tie_breaks"`
	MiniRoundsPerHalf float64    `json:"mini_rounds_per_half"`
	LossRates         []lossRate `json:"round_loss_rates"`
	Duration          string     `json:"duration"`
}

func summarize(res *simulator.Result, seed int64) simulationSummary {
	out := simulationSummary{
		Seed:              seed,
		Games:             res.Games,
		Rounds:            res.Scores.Rounds,
		TieBreaks:         res.TieBreaks,
		MiniRoundsPerHalf: res.MiniRoundsPerHalf.Mean(),
		Duration:          res.Duration.String(),
	}
	for _, p := range res.Scores.Players() {
		sample, ok := res.RoundLossRate[p.Label]
		if !ok {
			continue
		}
		low, high := sample.ConfidenceInterval95()
		out.LossRates = append(out.LossRates, lossRate{Player: p.Label, Mean: sample.Mean(), Low: low, High: high})
	}
	slices.SortStableFunc(out.LossRates, func(a, b lossRate) int {
		switch {
		case a.Mean > b.Mean:
			return -1
		case a.Mean < b.Mean:
			return 1
		}
		return 0
	})
	return out
}

func (cmd *SimulateCmd) report(w io.Writer, res *simulator.Result, seed int64) error {
	summary := summarize(res, seed)
	if cmd.JSON {
		return writeJSON(w, summary)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("round loss rate"),
		headerStyle.Render("95% ci"))
	for i, r := range summary.LossRates {
		style := labelStyle
		if i == 0 {
			style = loserStyle
		}
		fmt.Fprintf(tw, "%s\t%.1f%%\t%.1f%% .. %.1f%%\n",
			style.Render(r.Player), 100*r.Mean, 100*r.Low, 100*r.High)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := writeHands(w, res.Scores, 10); err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("seed %d, %d games, %d rounds, %d tie-breaks, %.1f mini-rounds per half, %s",
		seed, summary.Games, summary.Rounds, summary.TieBreaks, summary.MiniRoundsPerHalf, summary.Duration)))
	return nil
}
