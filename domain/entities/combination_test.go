package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Combination
		wantErr bool
	}{
		{name: "code", input: "full_house", want: CombinationFullHouse},
		{name: "label", input: "Full House", want: CombinationFullHouse},
		{name: "mixed case with spaces", input: "  tWo PaIr ", want: CombinationTwoPair},
		{name: "hyphenated", input: "three-of-a-kind", want: CombinationThreeOfAKind},
		{name: "royal flush", input: "Royal Flush", want: CombinationRoyalFlush},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "high card", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCombination(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombination_Strength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, CombinationPair.Strength())
	assert.Equal(t, 9, CombinationRoyalFlush.Strength())
	assert.Equal(t, 0, Combination("bogus").Strength())
	assert.Less(t, CombinationFlush.Strength(), CombinationFullHouse.Strength())
}

func TestCombination_Label(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Four of a Kind", CombinationFourOfAKind.Label())
	assert.Equal(t, "bogus", Combination("bogus").Label())
}

func TestColorForIndex_Cycles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#10b981", ColorForIndex(0))
	assert.Equal(t, "#f97316", ColorForIndex(8))
	assert.Equal(t, "#10b981", ColorForIndex(9))
}
