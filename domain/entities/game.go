package entities

import (
	"time"
)

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	GameStatusCreated  GameStatus = "created"
	GameStatusActive   GameStatus = "active"
	GameStatusFinished GameStatus = "finished"
)

// GameSettings holds the stake configuration of a game
type GameSettings struct {
	StartingStack int64   `db:"starting_stack"` // Chips per buy-in
	SmallBlind    int64   `db:"small_blind"`
	BigBlind      int64   `db:"big_blind"`
	ChipToRuble   float64 `db:"chip_to_ruble"` // Rubles per chip
}

// DefaultGameSettings returns the stakes used when a game is created without overrides
func DefaultGameSettings() GameSettings {
	return GameSettings{
		StartingStack: 1000,
		SmallBlind:    5,
		BigBlind:      10,
		ChipToRuble:   1,
	}
}

// SettingsPatch overwrites only the non-nil fields
type SettingsPatch struct {
	Name          *string
	SmallBlind    *int64
	BigBlind      *int64
	StartingStack *int64
	ChipToRuble   *float64
}

// IsEmpty returns true if no field is set
func (p SettingsPatch) IsEmpty() bool {
	return p.Name == nil && p.SmallBlind == nil && p.BigBlind == nil &&
		p.StartingStack == nil && p.ChipToRuble == nil
}

// Game is one poker session
type Game struct {
	ID              int64            `db:"id"`
	Name            string           `db:"name"`
	Players         []string         // Participant names in join order
	PlayerIDs       map[string]int64 // Participant name -> roster ID, filled by the repository
	Settings        GameSettings
	BuyIns          map[string]int // Participant name -> buy-in count
	Rounds          []*Round
	Status          GameStatus `db:"status"`
	StartedAt       *time.Time `db:"started_at"`
	EndedAt         *time.Time `db:"ended_at"`
	DurationSeconds int64      `db:"duration_seconds"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// IsActive returns true while rounds and buy-ins can be recorded
func (g *Game) IsActive() bool {
	return g.Status == GameStatusActive
}

// IsFinished returns true once the game has been settled
func (g *Game) IsFinished() bool {
	return g.Status == GameStatusFinished
}

// HasPlayer returns true if name is a participant
func (g *Game) HasPlayer(name string) bool {
	for _, p := range g.Players {
		if p == name {
			return true
		}
	}
	return false
}

// BuyInCount returns the buy-in count of a player, 0 if absent
func (g *Game) BuyInCount(name string) int {
	return g.BuyIns[name]
}

// TotalBuyIns returns the sum of buy-in counts over all participants
func (g *Game) TotalBuyIns() int {
	total := 0
	for _, p := range g.Players {
		total += g.BuyIns[p]
	}
	return total
}

// TotalChipsInPlay returns the chips bought into the game
func (g *Game) TotalChipsInPlay() int64 {
	return int64(g.TotalBuyIns()) * g.Settings.StartingStack
}

// Duration returns the recorded session length
func (g *Game) Duration() time.Duration {
	return time.Duration(g.DurationSeconds) * time.Second
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	c.Players = append([]string(nil), g.Players...)
	c.BuyIns = make(map[string]int, len(g.BuyIns))
	for k, v := range g.BuyIns {
		c.BuyIns[k] = v
	}
	if g.PlayerIDs != nil {
		c.PlayerIDs = make(map[string]int64, len(g.PlayerIDs))
		for k, v := range g.PlayerIDs {
			c.PlayerIDs[k] = v
		}
	}
	c.Rounds = make([]*Round, len(g.Rounds))
	for i, r := range g.Rounds {
		rc := *r
		rc.Winners = append([]string(nil), r.Winners...)
		c.Rounds[i] = &rc
	}
	if g.StartedAt != nil {
		t := *g.StartedAt
		c.StartedAt = &t
	}
	if g.EndedAt != nil {
		t := *g.EndedAt
		c.EndedAt = &t
	}
	return &c
}
