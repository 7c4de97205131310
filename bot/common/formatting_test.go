package common

import (
	"testing"

	"pokerledger/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatChips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatChips(tt.input))
	}
}

func TestFormatProfit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+250.00 ₽", FormatProfit(250))
	assert.Equal(t, "-1250.50 ₽", FormatProfit(-1250.5))
	assert.Equal(t, "0.00 ₽", FormatProfit(0))
}

func TestFormatBlinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5/10", FormatBlinds(entities.DefaultGameSettings()))
	assert.Equal(t, "500/1,000", FormatBlinds(entities.GameSettings{SmallBlind: 500, BigBlind: 1000}))
}

func TestParseNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, ParseNames(" Alice, Bob ,,Carol "))
	assert.Empty(t, ParseNames(" , "))
}

func TestParseChipCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    map[string]int64
		wantErr string
	}{
		{
			name:  "equals and colon separators",
			input: "Alice=1500, Bob: 0 ,Carol = 2500",
			want:  map[string]int64{"Alice": 1500, "Bob": 0, "Carol": 2500},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[string]int64{},
		},
		{
			name:  "negative counts pass through for the ledger to reject",
			input: "Alice=-5",
			want:  map[string]int64{"Alice": -5},
		},
		{name: "missing separator", input: "Alice 1500", wantErr: "expected name=chips"},
		{name: "not a number", input: "Alice=lots", wantErr: "not a number"},
		{name: "blank name", input: "=100", wantErr: "expected name=chips"},
		{name: "duplicate", input: "Alice=1, Alice=2", wantErr: "given twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseChipCounts(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
