package game

import (
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/schocken/dice"
	"github.com/lox/schocken/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted plays the given hands in order, one per turn: it throws once into
// the next hand and stands on it. The last hand repeats.
func scripted(hands ...[]int) Strategy {
	turn := 0
	return StrategyFunc(func(_ *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
		if tc.Throws > 1 {
			return true, nil, nil
		}
		values := hands[min(turn, len(hands)-1)]
		turn++
		return false, dice.MustHand(values...), nil
	})
}

func repeat(n int, values ...int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = values
	}
	return out
}

var standPat = StrategyFunc(func(*dice.Hand, int, TurnContext) (bool, *dice.Hand, error) {
	return true, nil, nil
})

func newTestGame(t *testing.T, players ...*Player) *Game {
	t.Helper()
	g := NewGame(randutil.New(42))
	require.NoError(t, g.AddPlayers(players...))
	return g
}

func TestAddPlayers(t *testing.T) {
	t.Parallel()
	g := NewGame(randutil.New(1))
	anna := NewPlayer("Anna", standPat)
	ben := NewPlayer("Ben", standPat)
	require.NoError(t, g.AddPlayers(anna, ben))

	assert.Equal(t, PlayerID(0), anna.ID())
	assert.Equal(t, PlayerID(1), ben.ID())
	assert.Equal(t, []PlayerID{0, 1}, g.PlayerIDs())

	p, err := g.PlayerByID(1)
	require.NoError(t, err)
	assert.Same(t, ben, p)

	_, err = g.PlayerByID(2)
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	err = g.AddPlayers(anna)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	carl := NewPlayer("Carl", standPat)
	err = g.AddPlayers(carl, carl)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)
	assert.Equal(t, NoPlayer, carl.ID(), "a rejected batch registers nobody")

	assert.Error(t, g.AddPlayers(NewPlayer("Dora", nil)))
}

func TestAmbiguousNames(t *testing.T) {
	t.Parallel()
	g := newTestGame(t, NewPlayer("Anna", standPat), NewPlayer("Ben", standPat))
	assert.False(t, g.AmbiguousNames())
	assert.Equal(t, "Ben", g.playerName(1))

	require.NoError(t, g.AddPlayers(NewPlayer("Anna", standPat)))
	assert.True(t, g.AmbiguousNames())
	assert.Equal(t, "Anna(2)", g.playerName(2))
}

func TestPlayTurn(t *testing.T) {
	t.Parallel()

	t.Run("stand pat keeps the first roll", func(t *testing.T) {
		t.Parallel()
		p := NewPlayer("Anna", standPat)
		turn, err := p.PlayTurn(TurnContext{Rand: randutil.New(5), TurnIndex: 3}, MaxThrows)
		require.NoError(t, err)
		assert.Equal(t, 1, turn.Throws)
		assert.Equal(t, 3, turn.Index)
		assert.True(t, turn.Hand.Finalized())
	})

	t.Run("throws until the cap", func(t *testing.T) {
		t.Parallel()
		calls := 0
		p := NewPlayer("Ben", StrategyFunc(func(h *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
			calls++
			assert.Equal(t, calls, tc.Throws)
			assert.False(t, h.Finalized())
			next, err := ThrowNewHand(h, tc.Rand, DefaultThrow)
			return false, next, err
		}))
		turn, err := p.PlayTurn(TurnContext{Rand: randutil.New(5)}, MaxThrows)
		require.NoError(t, err)
		assert.Equal(t, 3, turn.Throws)
		assert.Equal(t, 2, calls)
	})

	t.Run("snapshot changes do not leak", func(t *testing.T) {
		t.Parallel()
		var seen []int
		p := NewPlayer("Carl", StrategyFunc(func(h *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
			seen = h.Values()
			_ = h.ReplaceDice(dice.MustHand(1, 1, 1).Dice())
			return true, nil, nil
		}))
		turn, err := p.PlayTurn(TurnContext{Rand: randutil.New(8)}, MaxThrows)
		require.NoError(t, err)
		assert.Equal(t, seen, turn.Hand.Values())
	})

	t.Run("returned hand must hold three dice", func(t *testing.T) {
		t.Parallel()
		short := dice.MustHand(4, 5, 6)
		require.NoError(t, short.ReplaceDice(short.Dice()[:2]))
		p := NewPlayer("Dora", StrategyFunc(func(*dice.Hand, int, TurnContext) (bool, *dice.Hand, error) {
			return false, short, nil
		}))
		_, err := p.PlayTurn(TurnContext{Rand: randutil.New(8)}, MaxThrows)
		assert.ErrorIs(t, err, ErrInvalidHand)

		p.Strategy = StrategyFunc(func(*dice.Hand, int, TurnContext) (bool, *dice.Hand, error) {
			return false, nil, nil
		})
		_, err = p.PlayTurn(TurnContext{Rand: randutil.New(8)}, MaxThrows)
		assert.ErrorIs(t, err, ErrInvalidHand)
	})

	t.Run("returned hand must not hold cleared dice", func(t *testing.T) {
		t.Parallel()
		for _, values := range [][]int{{dice.Cleared, dice.Cleared, dice.Cleared}, {5, 5, dice.Cleared}} {
			cleared := dice.MustHand(values...)
			p := NewPlayer("Dora", StrategyFunc(func(*dice.Hand, int, TurnContext) (bool, *dice.Hand, error) {
				return false, cleared, nil
			}))
			_, err := p.PlayTurn(TurnContext{Rand: randutil.New(8)}, MaxThrows)
			assert.ErrorIs(t, err, ErrInvalidHand, "values %v", values)
		}
	})

	t.Run("strategy errors propagate", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		p := NewPlayer("Emil", StrategyFunc(func(*dice.Hand, int, TurnContext) (bool, *dice.Hand, error) {
			return false, nil, boom
		}))
		_, err := p.PlayTurn(TurnContext{Rand: randutil.New(8)}, MaxThrows)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPlayMiniRoundSchockOutBeatsGeneral(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", scripted([]int{6, 6, 6}))
	b := NewPlayer("B", scripted([]int{1, 1, 1}))
	g := newTestGame(t, a, b)

	mr, err := g.PlayMiniRound([]*Player{a, b}, 0)
	require.NoError(t, err)

	assert.Equal(t, b.ID(), mr.Best.PlayerID)
	assert.Equal(t, a.ID(), mr.Worst.PlayerID)
	assert.Equal(t, a.ID(), mr.Loser)
	assert.Equal(t, 13, mr.ChipsTransferred)
	assert.True(t, mr.SchockOut())
	assert.Equal(t, "Schock-out", mr.Best.Hand.String())
	assert.Equal(t, "General-6", mr.Worst.Hand.String())
}

func TestPlayMiniRoundTieGoesToEarlierSeat(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", scripted([]int{4, 4, 4}))
	b := NewPlayer("B", scripted([]int{4, 4, 4}))
	c := NewPlayer("C", scripted([]int{5, 3, 2}))
	g := newTestGame(t, a, b, c)

	mr, err := g.PlayMiniRound([]*Player{b, a, c}, 0)
	require.NoError(t, err)
	assert.Equal(t, b.ID(), mr.Best.PlayerID, "first of two equal hands wins")
	assert.Equal(t, 1, mr.Best.Hand.TurnOrder())
	assert.Equal(t, c.ID(), mr.Loser)
	assert.Equal(t, 3, mr.ChipsTransferred)
}

func TestPlayMiniRoundFirstPlayerCapsThrows(t *testing.T) {
	t.Parallel()
	calls := 0
	counting := StrategyFunc(func(h *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
		calls++
		next, err := ThrowNewHand(h, tc.Rand, DefaultThrow)
		return false, next, err
	})
	lead := NewPlayer("Lead", standPat)
	other := NewPlayer("Other", counting)
	g := newTestGame(t, lead, other)

	mr, err := g.PlayMiniRound([]*Player{lead, other}, 0)
	require.NoError(t, err)
	assert.Zero(t, calls, "a lead standing on one throw allows nobody a second")
	for _, turn := range mr.Turns {
		assert.Equal(t, 1, turn.Throws)
	}
}

func TestPlayMiniRoundPassesPreviousTurns(t *testing.T) {
	t.Parallel()
	var previous []Turn
	watcher := StrategyFunc(func(_ *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
		previous = tc.Previous
		return true, nil, nil
	})
	a := NewPlayer("A", scripted([]int{3, 3, 3}))
	b := NewPlayer("B", watcher)
	g := newTestGame(t, a, b)

	_, err := g.PlayMiniRound([]*Player{a, b}, 4)
	require.NoError(t, err)
	require.Len(t, previous, 1)
	assert.Equal(t, a.ID(), previous[0].PlayerID)
	assert.Equal(t, "General-3", previous[0].Hand.String())
}

func TestPlayMiniRoundPlayerCount(t *testing.T) {
	t.Parallel()
	g := NewGame(randutil.New(1))
	players := make([]*Player, MaxPlayers+1)
	for i := range players {
		players[i] = NewPlayer("p", standPat)
	}
	require.NoError(t, g.AddPlayers(players...))

	_, err := g.PlayMiniRound(players[:1], 0)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)
	_, err = g.PlayMiniRound(players, 0)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	mr, err := g.PlayMiniRound(players[:MaxPlayers], 0)
	require.NoError(t, err)
	assert.Len(t, mr.Turns, MaxPlayers)
}

func TestPlayHalfRegularLoss(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", scripted([]int{6, 6, 6}))
	b := NewPlayer("B", scripted([]int{2, 2, 1}))
	g := newTestGame(t, a, b)

	half, err := g.PlayHalf(0, nil)
	require.NoError(t, err)

	assert.Equal(t, RegularlyLost, half.State)
	assert.Equal(t, b.ID(), half.Loser)
	require.Len(t, half.MiniRounds, 5)

	var transferred []int
	for _, mr := range half.MiniRounds {
		transferred = append(transferred, mr.ChipsTransferred)
	}
	assert.Equal(t, []int{3, 3, 3, 3, 1}, transferred, "the last transfer is cut to the remaining stock")
	assert.Equal(t, 13, half.Economy.Balance(b.ID()))
	assert.True(t, half.Economy.Exhausted())
	assert.Equal(t, []PlayerID{b.ID()}, half.ActivePlayers, "A holds no chips after the stock ran dry")

	// the loser of the previous mini-round starts
	assert.Equal(t, []PlayerID{a.ID(), b.ID()}, half.MiniRounds[0].Players)
	assert.Equal(t, []PlayerID{b.ID(), a.ID()}, half.MiniRounds[1].Players)
}

func TestPlayHalfSchockOut(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", scripted([]int{6, 6, 6}))
	b := NewPlayer("B", scripted([]int{1, 1, 1}))
	c := NewPlayer("C", scripted([]int{4, 4, 4}))
	g := newTestGame(t, a, b, c)

	half, err := g.PlayHalf(1, nil)
	require.NoError(t, err)
	assert.Equal(t, SchockOutLost, half.State)
	assert.Equal(t, c.ID(), half.Loser)
	assert.Len(t, half.MiniRounds, 1)
	assert.Equal(t, dice.ChipPool, half.Economy.Stock(), "no chips move on a schock-out")
	assert.Same(t, half.MiniRounds[0], g.LastMiniRound())
}

func TestPlayHalfArguments(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", standPat)
	b := NewPlayer("B", standPat)
	g := newTestGame(t, a, b)

	_, err := g.PlayHalf(0, []*Player{a, b})
	assert.ErrorIs(t, err, ErrInvalidHalf)
	_, err = g.PlayHalf(TieBreakHalf, nil)
	assert.ErrorIs(t, err, ErrInvalidHalf)
	_, err = g.PlayHalf(3, nil)
	assert.ErrorIs(t, err, ErrInvalidHalf)

	stranger := NewPlayer("C", standPat)
	_, err = g.PlayHalf(TieBreakHalf, []*Player{a, stranger})
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestPlayHalfPanicsWhenItNeverEnds(t *testing.T) {
	t.Parallel()
	// Equal hands: the later seat loses and pays 1 chip. The previous loser
	// starts, so after the stock runs dry the balances swing between 7 and 6.
	a := NewPlayer("A", scripted([]int{6, 5, 3}))
	b := NewPlayer("B", scripted([]int{6, 5, 3}))
	g := newTestGame(t, a, b)

	assert.PanicsWithValue(t, "game: half 0 did not end after 1000 mini-rounds", func() {
		_, _ = g.PlayHalf(0, nil)
	})
	require.NotNil(t, g.LastMiniRound())
	assert.Equal(t, maxMiniRounds-1, g.LastMiniRound().Index)
}

func TestPlayRoundSameLoser(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", scripted([]int{6, 6, 6}))
	b := NewPlayer("B", scripted([]int{2, 2, 1}))
	g := newTestGame(t, a, b)

	r, err := g.PlayRound(0)
	require.NoError(t, err)
	assert.Equal(t, b.ID(), r.Loser)
	assert.Len(t, r.Halves, 2)
	assert.False(t, r.TieBreak())
	assert.Equal(t, []*Round{r}, g.Rounds())
}

func TestPlayRoundTieBreak(t *testing.T) {
	t.Parallel()
	a := NewPlayer("A", scripted(append(append(repeat(5, 6, 6, 6), repeat(5, 2, 2, 1)...), []int{1, 1, 1})...))
	b := NewPlayer("B", scripted(append(repeat(5, 2, 2, 1), repeat(5, 6, 6, 6)...)...))
	g := newTestGame(t, a, b)

	r, err := g.PlayRound(0)
	require.NoError(t, err)
	require.Len(t, r.Halves, 3)
	assert.True(t, r.TieBreak())
	assert.Equal(t, b.ID(), r.Halves[0].Loser)
	assert.Equal(t, a.ID(), r.Halves[1].Loser)

	final := r.Halves[TieBreakHalf]
	assert.Equal(t, []PlayerID{b.ID(), a.ID()}, final.MiniRounds[0].Players, "loser of the first half starts")
	assert.Equal(t, SchockOutLost, final.State)
	assert.Equal(t, b.ID(), r.Loser)
}

func TestPlayRoundsTimestamps(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	start := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	clock.Set(start)

	g := NewGame(randutil.New(7), WithClock(clock))
	require.NoError(t, g.AddPlayers(
		NewPlayer("A", scripted([]int{6, 6, 6})),
		NewPlayer("B", scripted([]int{2, 2, 1})),
	))

	rounds, err := g.PlayRounds(3)
	require.NoError(t, err)
	require.Len(t, rounds, 3)
	for i, r := range rounds {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, start, r.StartedAt)
		assert.Equal(t, start, r.FinishedAt)
	}

	more, err := g.PlayRounds(1)
	require.NoError(t, err)
	assert.Equal(t, 3, more[0].Index)
	assert.Len(t, g.Rounds(), 4)
}

func TestRandomGamesKeepInvariants(t *testing.T) {
	t.Parallel()
	greedy := StrategyFunc(func(h *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
		next, err := ThrowNewHand(h, tc.Rand, DefaultThrow)
		return false, next, err
	})
	for seed := range int64(20) {
		g := NewGame(randutil.New(seed))
		require.NoError(t, g.AddPlayers(
			NewPlayer("A", greedy),
			NewPlayer("B", standPat),
			NewPlayer("C", greedy),
			NewPlayer("D", standPat),
		))
		rounds, err := g.PlayRounds(5)
		require.NoError(t, err, "seed %d", seed)

		for _, r := range rounds {
			require.NotEqual(t, NoPlayer, r.Loser)
			for _, h := range r.Halves {
				require.NotEqual(t, InProgress, h.State)
				if h.State == RegularlyLost {
					assert.Equal(t, dice.ChipPool, h.Economy.Balance(h.Loser))
				}
				for _, mr := range h.MiniRounds {
					assert.LessOrEqual(t, mr.ChipsTransferred, dice.ChipPool)
					assert.Equal(t, mr.Loser, mr.Worst.PlayerID)
				}
			}
		}
	}
}

func TestSameSeedReplaysGame(t *testing.T) {
	t.Parallel()
	play := func() GameView {
		greedy := StrategyFunc(func(h *dice.Hand, _ int, tc TurnContext) (bool, *dice.Hand, error) {
			next, err := ThrowNewHand(h, tc.Rand, DefaultThrow)
			return false, next, err
		})
		clock := quartz.NewMock(t)
		clock.Set(time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC))
		g := NewGame(randutil.New(1234), WithClock(clock))
		require.NoError(t, g.AddPlayers(NewPlayer("A", greedy), NewPlayer("B", greedy), NewPlayer("C", standPat)))
		_, err := g.PlayRounds(2)
		require.NoError(t, err)
		return g.View()
	}
	assert.Equal(t, play(), play())
}
