package infrastructure

import (
	"context"

	"pokerledger/application"
	"pokerledger/domain/interfaces"
)

// unitOfWork wraps the repository UnitOfWork and flushes events after commit
type unitOfWork struct {
	inner                  application.UnitOfWork
	transactionalPublisher *NATSTransactionalPublisher
	ctx                    context.Context
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	u.ctx = ctx
	return u.inner.Begin(ctx)
}

// Commit commits the transaction and flushes events on success. The commit stands even if publishing fails.
func (u *unitOfWork) Commit() error {
	if err := u.inner.Commit(); err != nil {
		return err
	}

	if u.transactionalPublisher != nil {
		_ = u.transactionalPublisher.Flush(u.ctx)
	}
	return nil
}

// Rollback discards pending events and rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}
	return u.inner.Rollback()
}

func (u *unitOfWork) PlayerRepository() interfaces.PlayerRepository {
	return u.inner.PlayerRepository()
}

func (u *unitOfWork) GameRepository() interfaces.GameRepository {
	return u.inner.GameRepository()
}

func (u *unitOfWork) RoundRepository() interfaces.RoundRepository {
	return u.inner.RoundRepository()
}

func (u *unitOfWork) BuyInRepository() interfaces.BuyInRepository {
	return u.inner.BuyInRepository()
}

func (u *unitOfWork) GameResultRepository() interfaces.GameResultRepository {
	return u.inner.GameResultRepository()
}

// EventBus returns the transactional event publisher
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("transactional publisher not configured")
	}
	return u.transactionalPublisher
}
