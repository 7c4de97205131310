package ledger

import (
	"errors"
	"testing"
	"time"

	"pokerledger/domain/entities"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newActiveLedger creates a started two-player game with stack 1000 and rate 1
func newActiveLedger(t *testing.T, players ...string) (*SessionLedger, *quartz.Mock) {
	t.Helper()
	if len(players) == 0 {
		players = []string{"A", "B"}
	}
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC))

	l, err := NewGame("Friday game", players, entities.DefaultGameSettings(), clock)
	require.NoError(t, err)
	require.NoError(t, l.Start())
	return l, clock
}

func TestNewGame_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		gameName string
		players  []string
		settings entities.GameSettings
		wantErr  error
	}{
		{
			name:     "valid",
			gameName: "Friday",
			players:  []string{"A", "B"},
			settings: entities.DefaultGameSettings(),
		},
		{
			name:     "blank name",
			gameName: "   ",
			players:  []string{"A", "B"},
			settings: entities.DefaultGameSettings(),
			wantErr:  ErrBlankName,
		},
		{
			name:     "one player",
			gameName: "Friday",
			players:  []string{"A"},
			settings: entities.DefaultGameSettings(),
			wantErr:  ErrNotEnoughPlayers,
		},
		{
			name:     "duplicates collapse below two",
			gameName: "Friday",
			players:  []string{"A", " A ", ""},
			settings: entities.DefaultGameSettings(),
			wantErr:  ErrNotEnoughPlayers,
		},
		{
			name:     "zero stack",
			gameName: "Friday",
			players:  []string{"A", "B"},
			settings: entities.GameSettings{StartingStack: 0, SmallBlind: 5, BigBlind: 10, ChipToRuble: 1},
			wantErr:  ErrInvalidSetting,
		},
		{
			name:     "negative rate",
			gameName: "Friday",
			players:  []string{"A", "B"},
			settings: entities.GameSettings{StartingStack: 1000, SmallBlind: 5, BigBlind: 10, ChipToRuble: -1},
			wantErr:  ErrInvalidSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := NewGame(tt.gameName, tt.players, tt.settings, quartz.NewMock(t))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)

			game := l.Game()
			assert.Equal(t, entities.GameStatusCreated, game.Status)
			assert.Equal(t, map[string]int{"A": 1, "B": 1}, game.BuyIns)
		})
	}
}

func TestSessionLedger_Start(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	l, err := NewGame("Friday", []string{"A", "B"}, entities.DefaultGameSettings(), clock)
	require.NoError(t, err)

	require.NoError(t, l.Start())
	game := l.Game()
	assert.True(t, game.IsActive())
	require.NotNil(t, game.StartedAt)
	assert.Equal(t, clock.Now(), *game.StartedAt)

	assert.ErrorIs(t, l.Start(), ErrInvalidTransition)
}

func TestSessionLedger_AddRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   RoundInput
		wantErr error
	}{
		{
			name:  "valid round",
			input: RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationFlush},
		},
		{
			name:    "no winners",
			input:   RoundInput{Winners: []string{}, Dealer: "B", Combination: entities.CombinationFlush},
			wantErr: ErrNoWinners,
		},
		{
			name:    "blank winners only",
			input:   RoundInput{Winners: []string{" "}, Dealer: "B", Combination: entities.CombinationFlush},
			wantErr: ErrNoWinners,
		},
		{
			name:    "no dealer",
			input:   RoundInput{Winners: []string{"A"}, Combination: entities.CombinationFlush},
			wantErr: ErrNoDealer,
		},
		{
			name:    "no combination",
			input:   RoundInput{Winners: []string{"A"}, Dealer: "B"},
			wantErr: ErrNoCombination,
		},
		{
			name:    "unknown combination",
			input:   RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: "high_card"},
			wantErr: ErrNoCombination,
		},
		{
			name:    "winner not in game",
			input:   RoundInput{Winners: []string{"Z"}, Dealer: "B", Combination: entities.CombinationFlush},
			wantErr: ErrNotParticipant,
		},
		{
			name:    "dealer not in game",
			input:   RoundInput{Winners: []string{"A"}, Dealer: "Z", Combination: entities.CombinationFlush},
			wantErr: ErrNotParticipant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, _ := newActiveLedger(t)
			round, err := l.AddRound(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, round)
				assert.Empty(t, l.Game().Rounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, round.Number)
			assert.NotEqual(t, uuid.Nil, round.ID)
			assert.Len(t, l.Game().Rounds, 1)
		})
	}
}

func TestSessionLedger_AddRound_PreservesOrder(t *testing.T) {
	t.Parallel()

	l, clock := newActiveLedger(t, "A", "B", "C")

	first, err := l.AddRound(RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationPair})
	require.NoError(t, err)
	clock.Advance(time.Minute)
	second, err := l.AddRound(RoundInput{Winners: []string{"B", "C", "B"}, Dealer: "A", Combination: entities.CombinationFlush, Comment: " river "})
	require.NoError(t, err)

	rounds := l.Game().Rounds
	require.Len(t, rounds, 2)
	assert.Equal(t, first.ID, rounds[0].ID)
	assert.Equal(t, second.ID, rounds[1].ID)
	assert.Equal(t, 2, rounds[1].Number)
	assert.Equal(t, []string{"B", "C"}, rounds[1].Winners)
	assert.Equal(t, "river", rounds[1].Comment)
	assert.True(t, rounds[1].Timestamp.After(rounds[0].Timestamp))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSessionLedger_AddRound_RequiresActiveGame(t *testing.T) {
	t.Parallel()

	l, err := NewGame("Friday", []string{"A", "B"}, entities.DefaultGameSettings(), quartz.NewMock(t))
	require.NoError(t, err)

	_, err = l.AddRound(RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationPair})
	assert.ErrorIs(t, err, ErrGameNotActive)
}

func TestSessionLedger_AddBuyIns(t *testing.T) {
	t.Parallel()

	t.Run("increments by one per selected player", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t, "A", "B", "C")
		rows, err := l.AddBuyIns([]string{"A", "C", "A"}, nil)
		require.NoError(t, err)

		game := l.Game()
		assert.Equal(t, map[string]int{"A": 2, "B": 1, "C": 2}, game.BuyIns)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].BuyInNumber)
		assert.Equal(t, int64(1000), rows[0].ChipsAmount)
		assert.Equal(t, float64(1000), rows[0].RubleAmount)
	})

	t.Run("amount override is advisory", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		amount := int64(500)
		rows, err := l.AddBuyIns([]string{"A"}, &amount)
		require.NoError(t, err)

		assert.Equal(t, int64(500), rows[0].ChipsAmount)
		assert.Equal(t, int64(3000), l.TotalChipsInPlay())
	})

	t.Run("empty selection is a no-op", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		rows, err := l.AddBuyIns(nil, nil)
		require.NoError(t, err)
		assert.Nil(t, rows)
		assert.Equal(t, map[string]int{"A": 1, "B": 1}, l.Game().BuyIns)
	})

	t.Run("unknown player rejects whole call", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		_, err := l.AddBuyIns([]string{"A", "Z"}, nil)
		assert.ErrorIs(t, err, ErrNotParticipant)
		assert.Equal(t, map[string]int{"A": 1, "B": 1}, l.Game().BuyIns)
	})
}

func TestSessionLedger_TotalChipsInPlay(t *testing.T) {
	t.Parallel()

	l, _ := newActiveLedger(t, "A", "B", "C")
	_, err := l.AddBuyIns([]string{"A", "B"}, nil)
	require.NoError(t, err)
	_, err = l.AddBuyIns([]string{"A"}, nil)
	require.NoError(t, err)

	game := l.Game()
	sum := 0
	for _, p := range game.Players {
		sum += game.BuyIns[p]
	}
	assert.Equal(t, int64(sum)*game.Settings.StartingStack, l.TotalChipsInPlay())
	assert.Equal(t, int64(6000), l.TotalChipsInPlay())
}

func TestSessionLedger_UpdateSettings(t *testing.T) {
	t.Parallel()

	ptr := func(v int64) *int64 { return &v }

	t.Run("overwrites only provided fields", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		name := "Saturday"
		rate := 0.5
		err := l.UpdateSettings(entities.SettingsPatch{Name: &name, BigBlind: ptr(20), ChipToRuble: &rate})
		require.NoError(t, err)

		game := l.Game()
		assert.Equal(t, "Saturday", game.Name)
		assert.Equal(t, int64(20), game.Settings.BigBlind)
		assert.Equal(t, int64(5), game.Settings.SmallBlind)
		assert.Equal(t, int64(1000), game.Settings.StartingStack)
		assert.Equal(t, 0.5, game.Settings.ChipToRuble)
	})

	t.Run("rejects non-positive values atomically", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		name := "Saturday"
		err := l.UpdateSettings(entities.SettingsPatch{Name: &name, StartingStack: ptr(0)})
		assert.ErrorIs(t, err, ErrInvalidSetting)
		assert.Equal(t, "Friday game", l.Game().Name)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		blank := "  "
		assert.ErrorIs(t, l.UpdateSettings(entities.SettingsPatch{Name: &blank}), ErrBlankName)
	})
}

func TestSessionLedger_AddPlayer(t *testing.T) {
	t.Parallel()

	l, _ := newActiveLedger(t)

	row, err := l.AddPlayer("  C ")
	require.NoError(t, err)
	assert.Equal(t, "C", row.PlayerName)
	assert.Equal(t, 1, row.BuyInNumber)

	_, err = l.AddPlayer("A")
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = l.AddPlayer("")
	assert.ErrorIs(t, err, ErrBlankName)

	game := l.Game()
	assert.Equal(t, []string{"A", "B", "C"}, game.Players)
	assert.Equal(t, 1, game.BuyIns["C"])
}

func TestSessionLedger_Finish(t *testing.T) {
	t.Parallel()

	t.Run("settles and freezes", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		_, err := l.AddRound(RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationFlush})
		require.NoError(t, err)

		results, err := l.Finish(map[string]int64{"A": 1500, "B": 500})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, int64(1000), results[0].BuyInChips)
		assert.Equal(t, float64(1500), results[0].FinalRubles)
		assert.Equal(t, float64(500), results[0].Profit)
		assert.Equal(t, float64(-500), results[1].Profit)

		game := l.Game()
		assert.True(t, game.IsFinished())
		assert.NotNil(t, game.EndedAt)

		_, err = l.AddRound(RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationPair})
		assert.ErrorIs(t, err, ErrGameNotActive)
		_, err = l.AddBuyIns([]string{"A"}, nil)
		assert.ErrorIs(t, err, ErrGameNotActive)
		_, err = l.AddPlayer("C")
		assert.ErrorIs(t, err, ErrGameFinished)
		_, err = l.Finish(map[string]int64{"A": 1, "B": 1})
		assert.ErrorIs(t, err, ErrGameNotActive)
	})

	t.Run("missing participant", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		_, err := l.Finish(map[string]int64{"A": 1500})
		assert.ErrorIs(t, err, ErrMissingFinalChips)
		assert.True(t, l.Game().IsActive())
	})

	t.Run("negative chips", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		_, err := l.Finish(map[string]int64{"A": 1500, "B": -1})
		assert.ErrorIs(t, err, ErrNegativeChips)
	})

	t.Run("unknown player", func(t *testing.T) {
		t.Parallel()

		l, _ := newActiveLedger(t)
		_, err := l.Finish(map[string]int64{"A": 1, "B": 1, "Z": 1})
		assert.ErrorIs(t, err, ErrNotParticipant)
	})

	t.Run("records timer duration", func(t *testing.T) {
		t.Parallel()

		l, clock := newActiveLedger(t)
		timer := NewSessionTimer(clock)
		timer.SetElapsed(90 * time.Minute)
		l.AttachTimer(timer)

		_, err := l.Finish(map[string]int64{"A": 1000, "B": 1000})
		require.NoError(t, err)
		assert.Equal(t, int64(5400), l.Game().DurationSeconds)
	})
}

func TestSessionLedger_Dashboard(t *testing.T) {
	t.Parallel()

	l, _ := newActiveLedger(t)
	for i := 0; i < 7; i++ {
		_, err := l.AddRound(RoundInput{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationPair})
		require.NoError(t, err)
	}

	d := l.Dashboard()
	assert.Equal(t, 2, d.PlayerCount)
	assert.Equal(t, 7, d.RoundCount)
	assert.Equal(t, int64(2000), d.TotalChipsInPlay)
	require.Len(t, d.RecentRounds, 5)
	assert.Equal(t, 7, d.RecentRounds[0].Number)
	assert.Equal(t, 3, d.RecentRounds[4].Number)
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidationError(ErrNoWinners))
	assert.True(t, IsValidationError(errors.Join(errors.New("context"), ErrNoDealer)))
	assert.False(t, IsValidationError(errors.New("connection refused")))
}
