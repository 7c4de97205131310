package entities

import "time"

// BuyIn is one persisted stack purchase. Amounts are advisory; settlement uses counts.
type BuyIn struct {
	ID          int64     `db:"id"`
	GameID      int64     `db:"game_id"`
	PlayerID    int64     `db:"player_id"`
	PlayerName  string    // Resolved by the repository
	BuyInNumber int       `db:"buy_in_number"` // 1-based per player per game
	ChipsAmount int64     `db:"chips_amount"`
	RubleAmount float64   `db:"ruble_amount"`
	CreatedAt   time.Time `db:"created_at"`
}

// IsRebuy returns true for every buy-in after the initial one
func (b *BuyIn) IsRebuy() bool {
	return b.BuyInNumber > 1
}
