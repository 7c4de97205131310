package entities

import (
	"strings"
	"time"
)

// WinnerStat is one row of the per-game winner table
type WinnerStat struct {
	Name       string
	Wins       int
	Percentage int
}

// CombinationStat is one slice of the combination chart
type CombinationStat struct {
	Combination Combination
	Count       int
	Percentage  int
	Color       string
}

// DealerStat is a player's luckiest dealer(s)
type DealerStat struct {
	Player     string
	Dealers    []string // All dealers tied at the maximum, first-seen order
	Wins       int      // Wins under each best dealer
	Percentage int      // Share of the player's wins
}

// DealersLabel joins the tied dealers for display
func (d DealerStat) DealersLabel() string {
	return strings.Join(d.Dealers, ", ")
}

// PlayerGameStats summarises one participant within a single game
type PlayerGameStats struct {
	Name                string
	Wins                int
	WinRate             int
	BuyIns              int
	BuyInChips          int64
	FavoriteCombination string // Combination code or UndeterminedCombination
	BestDealer          string
}

// Dashboard is the at-a-glance view of an active game
type Dashboard struct {
	GameName         string
	Status           GameStatus
	PlayerCount      int
	RoundCount       int
	TotalChipsInPlay int64
	SmallBlind       int64
	BigBlind         int64
	RecentRounds     []*Round // Newest first
	Elapsed          time.Duration
}
