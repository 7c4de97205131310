package common

import (
	"errors"
	"fmt"
	"testing"

	"pokerledger/domain/cards"
	"pokerledger/domain/ledger"
	"pokerledger/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		userMessage string
	}{
		{
			name:        "ledger validation",
			err:         fmt.Errorf("round: %w", ledger.ErrNoWinners),
			userMessage: "round: at least one winner is required",
		},
		{
			name:        "unknown game",
			err:         fmt.Errorf("game 9: %w", services.ErrGameNotFound),
			userMessage: "game 9: game not found",
		},
		{
			name:        "bad cards",
			err:         fmt.Errorf("%w: %q", cards.ErrMalformedCards, "Zz"),
			userMessage: `malformed cards: "Zz"`,
		},
		{
			name:        "backend failure",
			err:         errors.New("failed to update game: connection reset"),
			userMessage: genericErrorMessage,
		},
		{
			name:        "already classified",
			err:         NewUserError("Pick a game first", "no game"),
			userMessage: "Pick a game first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			botErr := Classify(tt.err, "test")
			assert.Equal(t, tt.userMessage, botErr.UserMessage)
			assert.True(t, botErr.Ephemeral)
			assert.Equal(t, tt.userMessage != genericErrorMessage, IsUserFacing(botErr))
		})
	}
}

func TestBotError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewSystemError(cause, "failed to finish game")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to finish game: boom", err.Error())
}
