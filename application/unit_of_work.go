package application

import (
	"context"

	"pokerledger/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	PlayerRepository() interfaces.PlayerRepository
	GameRepository() interfaces.GameRepository
	RoundRepository() interfaces.RoundRepository
	BuyInRepository() interfaces.BuyInRepository
	GameResultRepository() interfaces.GameResultRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
