package ledger

import "errors"

// Validation errors. A rejected operation leaves the ledger unchanged.
var (
	ErrBlankName         = errors.New("name must not be blank")
	ErrNotEnoughPlayers  = errors.New("a game needs at least two players")
	ErrDuplicatePlayer   = errors.New("player already participates in this game")
	ErrNotParticipant    = errors.New("player does not participate in this game")
	ErrInvalidSetting    = errors.New("game settings must be positive")
	ErrNoWinners         = errors.New("at least one winner is required")
	ErrNoDealer          = errors.New("dealer is required")
	ErrNoCombination     = errors.New("combination is required")
	ErrMissingFinalChips = errors.New("final chip count missing for player")
	ErrNegativeChips     = errors.New("final chip count must not be negative")
	ErrGameNotActive     = errors.New("game is not active")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotFinished   = errors.New("game is not finished")
	ErrInvalidTransition = errors.New("invalid game status transition")
)

// IsValidationError reports whether err is one of the ledger validation errors
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrBlankName, ErrNotEnoughPlayers, ErrDuplicatePlayer, ErrNotParticipant,
		ErrInvalidSetting, ErrNoWinners, ErrNoDealer, ErrNoCombination,
		ErrMissingFinalChips, ErrNegativeChips, ErrGameNotActive, ErrGameFinished,
		ErrGameNotFinished, ErrInvalidTransition,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
