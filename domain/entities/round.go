package entities

import (
	"time"

	"github.com/google/uuid"
)

// Round is the recorded outcome of one hand
type Round struct {
	ID          uuid.UUID   `db:"id"`
	GameID      int64       `db:"game_id"`
	Number      int         `db:"round_number"` // 1-based position in the game
	Winners     []string    // Winner names, order as entered
	Dealer      string      `db:"dealer"`
	DealerID    int64       `db:"dealer_id"` // Roster ID of the dealer, set by the service
	Combination Combination `db:"combination"`
	Comment     string      `db:"comment"`
	Timestamp   time.Time   `db:"created_at"`
}

// HasWinner returns true if name is among the winners
func (r *Round) HasWinner(name string) bool {
	for _, w := range r.Winners {
		if w == name {
			return true
		}
	}
	return false
}

// IsSplitPot returns true if more than one player won the round
func (r *Round) IsSplitPot() bool {
	return len(r.Winners) > 1
}
