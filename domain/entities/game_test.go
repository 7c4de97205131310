package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGame_TotalChipsInPlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buyIns map[string]int
		stack  int64
		want   int64
	}{
		{name: "initial buy-ins", buyIns: map[string]int{"A": 1, "B": 1}, stack: 1000, want: 2000},
		{name: "rebuys", buyIns: map[string]int{"A": 3, "B": 1}, stack: 500, want: 2000},
		{name: "missing player counts as zero", buyIns: map[string]int{"A": 2}, stack: 1000, want: 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			game := &Game{
				Players:  []string{"A", "B"},
				BuyIns:   tt.buyIns,
				Settings: GameSettings{StartingStack: tt.stack},
			}
			assert.Equal(t, tt.want, game.TotalChipsInPlay())
		})
	}
}

func TestGame_Clone_IsIndependent(t *testing.T) {
	t.Parallel()

	started := time.Now()
	game := &Game{
		Players:   []string{"A", "B"},
		BuyIns:    map[string]int{"A": 1, "B": 1},
		Rounds:    []*Round{{Winners: []string{"A"}, Dealer: "B", Combination: CombinationPair}},
		StartedAt: &started,
	}

	clone := game.Clone()
	clone.Players[0] = "Z"
	clone.BuyIns["A"] = 5
	clone.Rounds[0].Winners[0] = "B"

	assert.Equal(t, "A", game.Players[0])
	assert.Equal(t, 1, game.BuyIns["A"])
	assert.Equal(t, "A", game.Rounds[0].Winners[0])
	assert.NotSame(t, game.StartedAt, clone.StartedAt)
}

func TestSettingsPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	stack := int64(2000)
	assert.True(t, SettingsPatch{}.IsEmpty())
	assert.False(t, SettingsPatch{StartingStack: &stack}.IsEmpty())
}

func TestWinRatePercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		wins, total int
		want        int
	}{
		{name: "no games", wins: 0, total: 0, want: 0},
		{name: "all wins", wins: 3, total: 3, want: 100},
		{name: "rounds half up", wins: 1, total: 8, want: 13},
		{name: "one third", wins: 1, total: 3, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WinRatePercent(tt.wins, tt.total))
		})
	}
}
