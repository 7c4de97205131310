package entities

import "time"

// SettlementResult is the end-of-game conversion of one player's chips to rubles
type SettlementResult struct {
	PlayerName  string  `db:"player_name"`
	BuyInCount  int     `db:"total_buy_ins"`
	BuyInChips  int64   `db:"total_buy_in_chips"`
	BuyInRubles float64 `db:"total_buy_in_rubles"`
	FinalChips  int64   `db:"final_chips"`
	FinalRubles float64 `db:"final_rubles"`
	Profit      float64 `db:"profit_loss"`
}

// IsWinner returns true if the player ended up ahead
func (r *SettlementResult) IsWinner() bool {
	return r.Profit > 0
}

// GameResult is a persisted settlement row
type GameResult struct {
	ID       int64 `db:"id"`
	GameID   int64 `db:"game_id"`
	PlayerID int64 `db:"player_id"`
	SettlementResult
	CreatedAt time.Time `db:"created_at"`
}
