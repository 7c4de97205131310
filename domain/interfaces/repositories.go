package interfaces

import (
	"context"

	"pokerledger/domain/entities"
	"pokerledger/domain/events"
)

// PlayerRepository defines the interface for roster data access
type PlayerRepository interface {
	// Create inserts a new player and fills its ID and timestamps
	Create(ctx context.Context, player *entities.Player) error

	// GetByID retrieves a player by ID, nil if absent
	GetByID(ctx context.Context, id int64) (*entities.Player, error)

	// GetByName retrieves a player by exact name, nil if absent
	GetByName(ctx context.Context, name string) (*entities.Player, error)

	// GetAll returns the whole roster ordered by name
	GetAll(ctx context.Context) ([]*entities.Player, error)

	// Rename changes a player's name
	Rename(ctx context.Context, id int64, name string) error

	// UpdateStats writes the lifetime statistics of a player
	UpdateStats(ctx context.Context, player *entities.Player) error
}

// GameRepository defines the interface for game aggregate access
type GameRepository interface {
	// Create inserts the game row and its participants. PlayerIDs must hold every participant.
	Create(ctx context.Context, game *entities.Game) error

	// GetByID loads the full aggregate: participants, buy-in counts and rounds with winners
	GetByID(ctx context.Context, id int64) (*entities.Game, error)

	// GetByIDForUpdate loads the aggregate and locks the game row until the transaction ends
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Game, error)

	// GetAll returns game headers with participants, newest first
	GetAll(ctx context.Context, limit int) ([]*entities.Game, error)

	// GetActive returns every game that is still running
	GetActive(ctx context.Context) ([]*entities.Game, error)

	// AddParticipant links a player to a game with the given buy-in count
	AddParticipant(ctx context.Context, gameID, playerID int64, position, buyIns int) error

	// Update writes name, settings, status, timestamps, duration and buy-in counts
	Update(ctx context.Context, game *entities.Game) error
}

// RoundRepository defines the interface for round data access
type RoundRepository interface {
	// Create inserts the round and one winner row per winner
	Create(ctx context.Context, round *entities.Round, winnerIDs []int64) error

	// GetByGameID returns the rounds of a game in recording order
	GetByGameID(ctx context.Context, gameID int64) ([]*entities.Round, error)
}

// BuyInRepository defines the interface for buy-in history
type BuyInRepository interface {
	// Create inserts a buy-in; BuyInNumber is assigned as the next number for the player in the game
	Create(ctx context.Context, buyIn *entities.BuyIn) error

	// GetByGameID returns the buy-ins of a game in insertion order
	GetByGameID(ctx context.Context, gameID int64) ([]*entities.BuyIn, error)
}

// GameResultRepository defines the interface for settlement rows
type GameResultRepository interface {
	// CreateBatch stores the settlement of a finished game
	CreateBatch(ctx context.Context, results []*entities.GameResult) error

	// GetByGameID returns the settlement ordered by profit, biggest winner first
	GetByGameID(ctx context.Context, gameID int64) ([]*entities.GameResult, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher buffers events until the surrounding transaction commits
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes every buffered event
	Flush(ctx context.Context) error

	// Discard drops every buffered event
	Discard()
}
