package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lox/schocken/internal/game"
	"github.com/lox/schocken/internal/statistics"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRounds prints one line per half of every round.
func writeRounds(w io.Writer, view game.GameView, labels func(game.PlayerID) string) {
	for _, r := range view.Rounds {
		fmt.Fprintf(w, "%s %s\n",
			headerStyle.Render(fmt.Sprintf("Round %d", r.Index+1)),
			loserStyle.Render("lost by "+labels(r.Loser)))
		for _, h := range r.Halves {
			name := fmt.Sprintf("half %d", h.Index+1)
			if h.Index == game.TieBreakHalf {
				name = "tie-break"
			}
			fmt.Fprintf(w, "  %-9s %s after %d mini-rounds (%s)\n",
				name, labelStyle.Render(labels(h.Loser)), len(h.MiniRounds), dimStyle.Render(h.State))
		}
	}
}

// writeScores prints the loss table in registration order.
func writeScores(w io.Writer, s *statistics.Scores) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("rounds lost"),
		headerStyle.Render("halves lost"),
		headerStyle.Render("mini-rounds lost"),
		headerStyle.Render("turns"))
	var worst int
	for _, p := range s.Players() {
		worst = max(worst, p.RoundsLost)
	}
	for _, p := range s.Players() {
		style := labelStyle
		if worst > 0 && p.RoundsLost == worst {
			style = loserStyle
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n",
			style.Render(p.Label), p.RoundsLost, p.HalvesLost, p.MiniRoundsLost, p.TurnsPlayed())
	}
	return tw.Flush()
}

// writeHands prints the most frequent hands.
func writeHands(w io.Writer, s *statistics.Scores, limit int) error {
	hands := s.Hands()
	names := s.HandNames()
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("count"),
		headerStyle.Render("share"))
	for _, name := range names {
		share := 0.0
		if s.Turns > 0 {
			share = 100 * float64(hands[name]) / float64(s.Turns)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", handStyle.Render(name), hands[name], share)
	}
	return tw.Flush()
}

// labeller maps player IDs to the labels used in score tables.
func labeller(players []game.PlayerView) func(game.PlayerID) string {
	names := make(map[string]int, len(players))
	for _, p := range players {
		names[p.Name]++
	}
	ambiguous := len(names) != len(players)
	labels := make(map[game.PlayerID]string, len(players))
	for _, p := range players {
		labels[p.ID] = p.Name
		if ambiguous {
			labels[p.ID] = fmt.Sprintf("%s(%d)", p.Name, p.ID)
		}
	}
	return func(id game.PlayerID) string {
		if l, ok := labels[id]; ok {
			return l
		}
		return id.String()
	}
}
