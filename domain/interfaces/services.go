package interfaces

import (
	"context"
	"time"

	"pokerledger/domain/entities"
	"pokerledger/domain/ledger"
)

// PlayerService defines the interface for roster operations
type PlayerService interface {
	// AddPlayer registers a new player; blank and duplicate names are rejected
	AddPlayer(ctx context.Context, name string) (*entities.Player, error)

	// RenamePlayer renames an existing player
	RenamePlayer(ctx context.Context, oldName, newName string) (*entities.Player, error)

	// ListPlayers returns the roster ordered by name
	ListPlayers(ctx context.Context) ([]*entities.Player, error)

	// GetPlayer looks up a player by name
	GetPlayer(ctx context.Context, name string) (*entities.Player, error)
}

// CreateGameRequest holds the input of a new game. Nil settings fall back to the configured defaults.
type CreateGameRequest struct {
	Name     string
	Players  []string
	Settings *entities.GameSettings
}

// GameStatistics bundles every table derived from a game's rounds
type GameStatistics struct {
	Game         *entities.Game
	Winners      []entities.WinnerStat
	Combinations []entities.CombinationStat
	Dealers      []entities.DealerStat
	Players      []entities.PlayerGameStats
}

// TimerAction is a session timer command
type TimerAction string

const (
	TimerStart TimerAction = "start"
	TimerPause TimerAction = "pause"
	TimerReset TimerAction = "reset"
)

// TimerStatus is the state of a game's session timer
type TimerStatus struct {
	Elapsed time.Duration
	Running bool
}

// GameService defines the interface for game session operations
type GameService interface {
	// CreateGame creates and starts a game with roster players
	CreateGame(ctx context.Context, req CreateGameRequest) (*entities.Game, error)

	// GetGame loads a game aggregate
	GetGame(ctx context.Context, gameID int64) (*entities.Game, error)

	// ListGames returns recent games, newest first
	ListGames(ctx context.Context, limit int) ([]*entities.Game, error)

	// UpdateSettings applies a settings patch
	UpdateSettings(ctx context.Context, gameID int64, patch entities.SettingsPatch) (*entities.Game, error)

	// AddPlayerToGame adds a roster player to a running game with one buy-in
	AddPlayerToGame(ctx context.Context, gameID int64, name string) (*entities.Game, error)

	// RecordRound appends a round to a running game
	RecordRound(ctx context.Context, gameID int64, in ledger.RoundInput) (*entities.Round, error)

	// AddBuyIns records one rebuy for each selected player
	AddBuyIns(ctx context.Context, gameID int64, players []string, amount *int64) ([]*entities.BuyIn, error)

	// PreviewSettlement computes the settlement without finishing the game
	PreviewSettlement(ctx context.Context, gameID int64, finalChips map[string]int64) ([]entities.SettlementResult, error)

	// FinishGame settles a game, stores the results and refreshes every participant's lifetime stats
	FinishGame(ctx context.Context, gameID int64, finalChips map[string]int64) ([]entities.SettlementResult, error)

	// GetResults returns the stored settlement of a finished game
	GetResults(ctx context.Context, gameID int64) ([]*entities.GameResult, error)

	// Dashboard returns the overview of a game
	Dashboard(ctx context.Context, gameID int64) (*entities.Dashboard, error)

	// Statistics returns the winner, combination, dealer and per-player tables of a game
	Statistics(ctx context.Context, gameID int64) (*GameStatistics, error)

	// ControlTimer starts, pauses or resets the session timer of an active game.
	// Pausing stores the elapsed time on the game.
	ControlTimer(ctx context.Context, gameID int64, action TimerAction) (*TimerStatus, error)

	// RestoreTimers recreates paused timers for every active game from their stored elapsed time
	RestoreTimers(ctx context.Context) error
}
