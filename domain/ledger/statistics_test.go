package ledger

import (
	"testing"

	"pokerledger/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func round(dealer string, combination entities.Combination, winners ...string) *entities.Round {
	return &entities.Round{Winners: winners, Dealer: dealer, Combination: combination}
}

func TestWinnerStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rounds []*entities.Round
		want   []entities.WinnerStat
	}{
		{
			name:   "no rounds",
			rounds: nil,
			want:   []entities.WinnerStat{},
		},
		{
			name:   "single round",
			rounds: []*entities.Round{round("B", entities.CombinationFlush, "A")},
			want:   []entities.WinnerStat{{Name: "A", Wins: 1, Percentage: 100}},
		},
		{
			name: "sorted by wins with stable ties",
			rounds: []*entities.Round{
				round("A", entities.CombinationPair, "C"),
				round("A", entities.CombinationPair, "B"),
				round("C", entities.CombinationPair, "B"),
				round("B", entities.CombinationPair, "A"),
			},
			want: []entities.WinnerStat{
				{Name: "B", Wins: 2, Percentage: 50},
				{Name: "C", Wins: 1, Percentage: 25},
				{Name: "A", Wins: 1, Percentage: 25},
			},
		},
		{
			name: "split pots can exceed one hundred in total",
			rounds: []*entities.Round{
				round("C", entities.CombinationStraight, "A", "B"),
				round("C", entities.CombinationStraight, "A"),
			},
			want: []entities.WinnerStat{
				{Name: "A", Wins: 2, Percentage: 100},
				{Name: "B", Wins: 1, Percentage: 50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := WinnerStats(tt.rounds)
			assert.Equal(t, tt.want, got)
			for _, s := range got {
				assert.LessOrEqual(t, s.Percentage, 100)
			}
		})
	}
}

func TestCombinationStats(t *testing.T) {
	t.Parallel()

	rounds := []*entities.Round{
		round("A", entities.CombinationPair, "B"),
		round("A", entities.CombinationFlush, "B"),
		round("B", entities.CombinationFlush, "A"),
		round("B", entities.CombinationFullHouse, "A"),
	}

	got := CombinationStats(rounds)
	require.Len(t, got, 3)

	assert.Equal(t, entities.CombinationStat{Combination: entities.CombinationFlush, Count: 2, Percentage: 50, Color: "#06b6d4"}, got[0])
	assert.Equal(t, entities.CombinationStat{Combination: entities.CombinationPair, Count: 1, Percentage: 25, Color: "#10b981"}, got[1])
	assert.Equal(t, entities.CombinationStat{Combination: entities.CombinationFullHouse, Count: 1, Percentage: 25, Color: "#8b5cf6"}, got[2])
}

func TestBestDealerStats(t *testing.T) {
	t.Parallel()

	rounds := []*entities.Round{
		round("B", entities.CombinationPair, "A"),
		round("C", entities.CombinationPair, "A"),
		round("B", entities.CombinationPair, "A"),
		round("A", entities.CombinationPair, "B"),
		round("C", entities.CombinationPair, "B"),
	}

	got := BestDealerStats([]string{"A", "B", "C"}, rounds)
	require.Len(t, got, 2)

	assert.Equal(t, "A", got[0].Player)
	assert.Equal(t, []string{"B"}, got[0].Dealers)
	assert.Equal(t, 2, got[0].Wins)
	assert.Equal(t, 67, got[0].Percentage)

	assert.Equal(t, "B", got[1].Player)
	assert.Equal(t, []string{"A", "C"}, got[1].Dealers)
	assert.Equal(t, "A, C", got[1].DealersLabel())
	assert.Equal(t, 50, got[1].Percentage)
}

func TestStatistics_AreIdempotent(t *testing.T) {
	t.Parallel()

	l, _ := newActiveLedger(t, "A", "B", "C")
	inputs := []RoundInput{
		{Winners: []string{"A"}, Dealer: "B", Combination: entities.CombinationFlush},
		{Winners: []string{"B", "C"}, Dealer: "A", Combination: entities.CombinationStraight},
		{Winners: []string{"C"}, Dealer: "A", Combination: entities.CombinationFlush},
	}
	for _, in := range inputs {
		_, err := l.AddRound(in)
		require.NoError(t, err)
	}

	assert.Equal(t, l.WinnerStats(), l.WinnerStats())
	assert.Equal(t, l.CombinationStats(), l.CombinationStats())
	assert.Equal(t, l.BestDealerStats(), l.BestDealerStats())
}

func TestPlayerGameStats(t *testing.T) {
	t.Parallel()

	game := &entities.Game{
		Players:  []string{"A", "B"},
		BuyIns:   map[string]int{"A": 2, "B": 1},
		Settings: entities.DefaultGameSettings(),
		Rounds: []*entities.Round{
			round("B", entities.CombinationFlush, "A"),
			round("B", entities.CombinationPair, "A"),
			round("A", entities.CombinationPair, "A"),
			round("A", entities.CombinationStraight, "B"),
		},
	}

	a := PlayerGameStats(game, "A")
	assert.Equal(t, 3, a.Wins)
	assert.Equal(t, 75, a.WinRate)
	assert.Equal(t, 2, a.BuyIns)
	assert.Equal(t, int64(2000), a.BuyInChips)
	assert.Equal(t, string(entities.CombinationPair), a.FavoriteCombination)
	assert.Equal(t, "B", a.BestDealer)

	game.Rounds = nil
	b := PlayerGameStats(game, "B")
	assert.Equal(t, entities.UndeterminedCombination, b.FavoriteCombination)
	assert.Equal(t, entities.UndeterminedDealer, b.BestDealer)
	assert.Equal(t, 0, b.WinRate)
}
