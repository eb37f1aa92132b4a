// Package simulator plays many independent games in parallel and aggregates
// their scores.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/schocken/internal/config"
	"github.com/lox/schocken/internal/game"
	"github.com/lox/schocken/internal/randutil"
	"github.com/lox/schocken/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games     int
	Rounds    int // rounds per game
	Seed      int64
	MaxThrows int
	Workers   int // 0 uses GOMAXPROCS
	Players   []config.PlayerConfig
	Logger    *log.Logger
	Clock     quartz.Clock
}

// Result is the aggregate of all simulated games.
type Result struct {
	Games  int
	Scores *statistics.Scores
	// RoundLossRate holds, per player label, the share of rounds lost in
	// each game.
	RoundLossRate     map[string]*statistics.Sample
	MiniRoundsPerHalf statistics.Sample
	TieBreaks         int
	Duration          time.Duration
}

// Simulator runs Schocken simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.MaxThrows == 0 {
		config.MaxThrows = game.MaxThrows
	}
	return &Simulator{config: config}
}

type gameResult struct {
	view   game.GameView
	scores *statistics.Scores
}

// Run plays every game and merges the results in game order, so the outcome
// only depends on the seed.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if cfg.Games < 1 || cfg.Rounds < 1 {
		return nil, errors.New("simulator: games and rounds must be positive")
	}

	start := cfg.Clock.Now()
	results := make([]gameResult, cfg.Games)
	var done atomic.Int64
	step := max(int64(cfg.Games/10), 1)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Games {
		seed := randutil.Derive(cfg.Seed, i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			results[i] = res
			if n := done.Add(1); n%step == 0 {
				cfg.Logger.Info("Simulation progress", "games", n, "of", cfg.Games)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{
		Games:         cfg.Games,
		RoundLossRate: make(map[string]*statistics.Sample),
	}
	for _, res := range results {
		if out.Scores == nil {
			out.Scores = statistics.New(res.view.Players)
		}
		out.Scores.Merge(res.scores)
		for _, p := range res.scores.Players() {
			sample, ok := out.RoundLossRate[p.Label]
			if !ok {
				sample = &statistics.Sample{}
				out.RoundLossRate[p.Label] = sample
			}
			sample.Add(float64(p.RoundsLost) / float64(res.scores.Rounds))
		}
		for _, r := range res.view.Rounds {
			if len(r.Halves) > game.TieBreakHalf {
				out.TieBreaks++
			}
			for _, h := range r.Halves {
				out.MiniRoundsPerHalf.Add(float64(len(h.MiniRounds)))
			}
		}
	}
	if err := out.Scores.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	out.Duration = cfg.Clock.Since(start)

	cfg.Logger.Info("Simulation complete",
		"games", cfg.Games,
		"rounds", out.Scores.Rounds,
		"duration", out.Duration)
	return out, nil
}

func (s *Simulator) playGame(seed int64) (gameResult, error) {
	quiet := log.New(io.Discard)
	pc := config.Config{Players: s.config.Players}
	players, err := pc.NewPlayers(quiet)
	if err != nil {
		return gameResult{}, err
	}

	g := game.NewGame(randutil.New(seed),
		game.WithMaxThrows(s.config.MaxThrows),
		game.WithClock(s.config.Clock),
		game.WithLogger(quiet))
	if err := g.AddPlayers(players...); err != nil {
		return gameResult{}, err
	}
	if _, err := g.PlayRounds(s.config.Rounds); err != nil {
		return gameResult{}, err
	}

	view := g.View()
	scores, err := statistics.FromGame(view)
	if err != nil {
		return gameResult{}, err
	}
	return gameResult{view: view, scores: scores}, nil
}
