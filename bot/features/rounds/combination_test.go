package rounds

import (
	"testing"

	"pokerledger/bot/common"
	"pokerledger/domain/cards"
	"pokerledger/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCombination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		choice    string
		shown     string
		want      entities.Combination
		wantErrIs error
		wantUser  string
	}{
		{name: "choice only", choice: "flush", want: entities.CombinationFlush},
		{name: "cards only", shown: "7c 7d 7h 2s 2d", want: entities.CombinationFullHouse},
		{name: "matching choice and cards", choice: "full_house", shown: "7c7d7h2s2d", want: entities.CombinationFullHouse},
		{name: "neither", wantUser: "Give either a combination or the shown cards"},
		{name: "unknown choice", choice: "five aces", wantUser: `unknown combination "five aces"`},
		{name: "mismatch", choice: "flush", shown: "7c7d7h2s2d", wantUser: "The cards show Full House, not Flush"},
		{name: "high card", shown: "AcKd9h5s2h", wantErrIs: cards.ErrHighCard},
		{name: "malformed", shown: "ZzKd9h5s2h", wantErrIs: cards.ErrMalformedCards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := resolveCombination(tt.choice, tt.shown)
			switch {
			case tt.wantErrIs != nil:
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.True(t, common.IsUserFacing(common.Classify(err, "")))
			case tt.wantUser != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantUser, common.Classify(err, "").UserMessage)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuildRoundEmbed(t *testing.T) {
	t.Parallel()

	round := &entities.Round{
		Number:      3,
		Winners:     []string{"Alice", "Bob"},
		Dealer:      "Carol",
		Combination: entities.CombinationStraight,
		Comment:     "chopped",
	}

	embed := BuildRoundEmbed(round, "")
	assert.Equal(t, "🂡 Round 3 · split pot", embed.Title)
	assert.Empty(t, embed.Description)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "Alice, Bob", embed.Fields[0].Value)
	assert.Equal(t, "Straight", embed.Fields[2].Value)
	assert.Equal(t, "chopped", embed.Fields[3].Value)

	round.Winners = []string{"Alice"}
	round.Comment = ""
	embed = BuildRoundEmbed(round, "straight, ace high")
	assert.Equal(t, "🂡 Round 3", embed.Title)
	assert.Equal(t, "*straight, ace high*", embed.Description)
	assert.Len(t, embed.Fields, 3)
}
