package game

import (
	"time"
)

// View types are the plain-data projections of completed records used for
// reports and history files.

type TurnView struct {
	TurnIndex  int      `json:"turn_index" toml:"turn_index"`
	PlayerID   PlayerID `json:"player_id" toml:"player_id"`
	Hand       string   `json:"hand" toml:"hand"`
	ThrowCount int      `json:"throw_count" toml:"throw_count"`
}

type MiniRoundView struct {
	Index            int        `json:"index" toml:"index"`
	Players          []PlayerID `json:"players" toml:"players"`
	BestTurn         TurnView   `json:"best_turn" toml:"best_turn"`
	WorstTurn        TurnView   `json:"worst_turn" toml:"worst_turn"`
	ChipsTransferred int        `json:"chips_transferred" toml:"chips_transferred"`
	Loser            PlayerID   `json:"loser" toml:"loser"`
	Turns            []TurnView `json:"turns" toml:"turns"`
}

type HalfView struct {
	Index          int             `json:"index" toml:"index"`
	ActivePlayers  []PlayerID      `json:"active_players" toml:"active_players"`
	Loser          PlayerID        `json:"loser" toml:"loser"`
	State          string          `json:"state" toml:"state"`
	StockExhausted bool            `json:"stock_exhausted" toml:"stock_exhausted"`
	ChipsInStock   int             `json:"chips_in_stock" toml:"chips_in_stock"`
	ChipBalances   map[string]int  `json:"chip_balances" toml:"chip_balances"`
	MiniRounds     []MiniRoundView `json:"mini_rounds" toml:"mini_rounds"`
}

type RoundView struct {
	Index      int        `json:"index" toml:"index"`
	Loser      PlayerID   `json:"loser" toml:"loser"`
	StartedAt  time.Time  `json:"started_at" toml:"started_at"`
	FinishedAt time.Time  `json:"finished_at" toml:"finished_at"`
	Halves     []HalfView `json:"halves" toml:"halves"`
}

type PlayerView struct {
	ID   PlayerID `json:"id" toml:"id"`
	Name string   `json:"name" toml:"name"`
}

type GameView struct {
	Players       []PlayerView   `json:"players" toml:"players"`
	Rounds        []RoundView    `json:"rounds" toml:"rounds"`
	LastMiniRound *MiniRoundView `json:"last_mini_round,omitempty" toml:"last_mini_round,omitempty"`
}

func (t Turn) View() TurnView {
	return TurnView{
		TurnIndex:  t.Index,
		PlayerID:   t.PlayerID,
		Hand:       t.Hand.String(),
		ThrowCount: t.Throws,
	}
}

func (mr *MiniRound) View() MiniRoundView {
	v := MiniRoundView{
		Index:            mr.Index,
		Players:          append([]PlayerID(nil), mr.Players...),
		BestTurn:         mr.Best.View(),
		WorstTurn:        mr.Worst.View(),
		ChipsTransferred: mr.ChipsTransferred,
		Loser:            mr.Loser,
		Turns:            make([]TurnView, len(mr.Turns)),
	}
	for i, t := range mr.Turns {
		v.Turns[i] = t.View()
	}
	return v
}

func (h *Half) View() HalfView {
	v := HalfView{
		Index:          h.Index,
		ActivePlayers:  append([]PlayerID(nil), h.ActivePlayers...),
		Loser:          h.Loser,
		State:          h.State.String(),
		StockExhausted: h.Economy.Exhausted(),
		ChipsInStock:   h.Economy.Stock(),
		ChipBalances:   make(map[string]int),
		MiniRounds:     make([]MiniRoundView, len(h.MiniRounds)),
	}
	for id, n := range h.Economy.Balances() {
		v.ChipBalances[id.String()] = n
	}
	for i, mr := range h.MiniRounds {
		v.MiniRounds[i] = mr.View()
	}
	return v
}

func (r *Round) View() RoundView {
	v := RoundView{
		Index:      r.Index,
		Loser:      r.Loser,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Halves:     make([]HalfView, len(r.Halves)),
	}
	for i, h := range r.Halves {
		v.Halves[i] = h.View()
	}
	return v
}

// View projects the registry, every completed round and the last mini-round.
func (g *Game) View() GameView {
	v := GameView{
		Players: make([]PlayerView, len(g.players)),
		Rounds:  make([]RoundView, len(g.rounds)),
	}
	for i, p := range g.players {
		v.Players[i] = PlayerView{ID: p.id, Name: p.Name}
	}
	for i, r := range g.rounds {
		v.Rounds[i] = r.View()
	}
	if g.lastMiniRound != nil {
		mr := g.lastMiniRound.View()
		v.LastMiniRound = &mr
	}
	return v
}
