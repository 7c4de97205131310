package ledger

import (
	"testing"
	"time"

	"pokerledger/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSettlement(t *testing.T) {
	t.Parallel()

	game := &entities.Game{
		Players:  []string{"A", "B", "C"},
		BuyIns:   map[string]int{"A": 1, "B": 3, "C": 1},
		Settings: entities.GameSettings{StartingStack: 1000, SmallBlind: 5, BigBlind: 10, ChipToRuble: 0.5},
	}

	results := ComputeSettlement(game, map[string]int64{"A": 3000, "B": 1000})
	require.Len(t, results, 3)

	tests := []struct {
		name string
		got  entities.SettlementResult
		want entities.SettlementResult
	}{
		{
			name: "winner",
			got:  results[0],
			want: entities.SettlementResult{PlayerName: "A", BuyInCount: 1, BuyInChips: 1000, BuyInRubles: 500, FinalChips: 3000, FinalRubles: 1500, Profit: 1000},
		},
		{
			name: "rebuys",
			got:  results[1],
			want: entities.SettlementResult{PlayerName: "B", BuyInCount: 3, BuyInChips: 3000, BuyInRubles: 1500, FinalChips: 1000, FinalRubles: 500, Profit: -1000},
		},
		{
			name: "missing final count previews as zero",
			got:  results[2],
			want: entities.SettlementResult{PlayerName: "C", BuyInCount: 1, BuyInChips: 1000, BuyInRubles: 500, FinalChips: 0, FinalRubles: 0, Profit: -500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
			assert.Equal(t, tt.got.FinalRubles-tt.got.BuyInRubles, tt.got.Profit)
		})
	}
}

func TestComputeSettlement_DoesNotMutate(t *testing.T) {
	t.Parallel()

	l, _ := newActiveLedger(t)
	before := l.Game()

	_ = l.ComputeSettlement(map[string]int64{"A": 10, "B": 20})
	assert.Equal(t, before, l.Game())
}

func TestRefreshPlayerLifetimeStats(t *testing.T) {
	t.Parallel()

	ended := time.Now()
	finished := &entities.Game{
		ID:       7,
		Players:  []string{"A", "B"},
		BuyIns:   map[string]int{"A": 2, "B": 1},
		Settings: entities.DefaultGameSettings(),
		Status:   entities.GameStatusFinished,
		EndedAt:  &ended,
		Rounds: []*entities.Round{
			round("B", entities.CombinationFullHouse, "A"),
			round("B", entities.CombinationFullHouse, "A"),
			round("A", entities.CombinationPair, "B"),
		},
	}

	t.Run("folds game into totals and overwrites favorites", func(t *testing.T) {
		t.Parallel()

		player := &entities.Player{
			Name:                "A",
			TotalGames:          3,
			TotalWins:           1,
			TotalBuyIns:         4,
			TotalBuyInChips:     4000,
			FavoriteCombination: string(entities.CombinationRoyalFlush),
			BestDealer:          "Z",
		}

		require.NoError(t, RefreshPlayerLifetimeStats(player, finished))
		assert.Equal(t, 4, player.TotalGames)
		assert.Equal(t, 3, player.TotalWins)
		assert.Equal(t, 75, player.WinRate)
		assert.Equal(t, int64(6), player.TotalBuyIns)
		assert.Equal(t, int64(6000), player.TotalBuyInChips)
		assert.Equal(t, string(entities.CombinationFullHouse), player.FavoriteCombination)
		assert.Equal(t, "B", player.BestDealer)
	})

	t.Run("player without wins gets sentinels", func(t *testing.T) {
		t.Parallel()

		game := finished.Clone()
		game.Rounds = nil
		player := entities.NewPlayer("B")
		player.FavoriteCombination = string(entities.CombinationFlush)

		require.NoError(t, RefreshPlayerLifetimeStats(player, game))
		assert.Equal(t, 1, player.TotalGames)
		assert.Equal(t, 0, player.WinRate)
		assert.Equal(t, entities.UndeterminedCombination, player.FavoriteCombination)
		assert.Equal(t, entities.UndeterminedDealer, player.BestDealer)
	})

	t.Run("rejects active game", func(t *testing.T) {
		t.Parallel()

		game := finished.Clone()
		game.Status = entities.GameStatusActive
		assert.ErrorIs(t, RefreshPlayerLifetimeStats(entities.NewPlayer("A"), game), ErrGameNotFinished)
	})

	t.Run("rejects non-participant", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, RefreshPlayerLifetimeStats(entities.NewPlayer("Z"), finished), ErrNotParticipant)
	})
}
