package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/schocken/internal/history"
	"github.com/lox/schocken/internal/statistics"
)

// HistoryCmd is the root command for saved game files.
type HistoryCmd struct {
	Show     HistoryShowCmd     `cmd:"" help:"Print the scores of a saved game"`
	Validate HistoryValidateCmd `cmd:"" help:"Check that a saved game decodes cleanly"`
}

// HistoryShowCmd renders a history file.
type HistoryShowCmd struct {
	File  string `arg:"" name:"file" help:"Path to the TOML history file"`
	Hands int    `default:"10" help:"Number of most frequent hands to list (0 = all)"`
	JSON  bool   `name:"json" help:"Print the game as JSON"`
}

func (cmd *HistoryShowCmd) Run() error {
	rec, err := history.Load(cmd.File)
	if err != nil {
		return err
	}
	return cmd.write(os.Stdout, rec)
}

func (cmd *HistoryShowCmd) write(w io.Writer, rec *history.Record) error {
	if cmd.JSON {
		return writeJSON(w, rec)
	}
	scores, err := statistics.FromGame(rec.Game)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, headerStyle.Render("Game "+rec.ID))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("seed %d, saved %s", rec.Seed, rec.CreatedAt.Format("2006-01-02 15:04:05 MST"))))
	fmt.Fprintln(w)
	writeRounds(w, rec.Game, labeller(rec.Game.Players))
	fmt.Fprintln(w)
	if err := writeScores(w, scores); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return writeHands(w, scores, cmd.Hands)
}

// HistoryValidateCmd decodes a history file and checks its scores add up.
type HistoryValidateCmd struct {
	Files []string `arg:"" name:"file" help:"History files to check"`
}

func (cmd *HistoryValidateCmd) Run() error {
	for _, path := range cmd.Files {
		rec, err := history.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		scores, err := statistics.FromGame(rec.Game)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := scores.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s: ok (%s, %d rounds)\n", path, rec.ID, scores.Rounds)
	}
	return nil
}
