package entities

import (
	"math"
	"strings"
	"time"
)

// Player is a roster member with lifetime statistics across finished games
type Player struct {
	ID                  int64     `db:"id"`
	Name                string    `db:"name"`
	TotalGames          int       `db:"total_games"`
	TotalWins           int       `db:"total_wins"`
	WinRate             int       `db:"win_rate"`
	FavoriteCombination string    `db:"favorite_combination"` // Combination code or UndeterminedCombination
	BestDealer          string    `db:"best_dealer"`
	TotalBuyIns         int64     `db:"total_buy_ins"`
	TotalBuyInChips     int64     `db:"total_buy_in_chips"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// NewPlayer returns a roster entry with zeroed stats and undetermined sentinels
func NewPlayer(name string) *Player {
	return &Player{
		Name:                strings.TrimSpace(name),
		FavoriteCombination: UndeterminedCombination,
		BestDealer:          UndeterminedDealer,
	}
}

// RecalculateWinRate sets WinRate from TotalWins and TotalGames
func (p *Player) RecalculateWinRate() {
	p.WinRate = WinRatePercent(p.TotalWins, p.TotalGames)
}

// FavoriteCombinationLabel returns a display label for the favorite combination
func (p *Player) FavoriteCombinationLabel() string {
	c := Combination(p.FavoriteCombination)
	if c.IsValid() {
		return c.Label()
	}
	return UndeterminedCombination
}

// HasWins returns true if any win has been recorded for the player
func (p *Player) HasWins() bool {
	return p.TotalWins > 0
}

// WinRatePercent returns round(wins/total*100), or 0 when total is 0
func WinRatePercent(wins, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(total) * 100))
}
