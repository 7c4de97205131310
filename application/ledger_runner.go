package application

import (
	"context"
	"fmt"

	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"
	"pokerledger/domain/services"

	"github.com/coder/quartz"
)

// LedgerRunner runs one service call per unit of work. The session timers, the
// clock and the last-error slot are shared across all units of work.
type LedgerRunner struct {
	uowFactory UnitOfWorkFactory
	timers     *ledger.TimerRegistry
	clock      quartz.Clock
	errors     *services.ErrorSlot
}

// NewLedgerRunner creates a runner on top of uowFactory
func NewLedgerRunner(uowFactory UnitOfWorkFactory, timers *ledger.TimerRegistry, clock quartz.Clock, errorSlot *services.ErrorSlot) *LedgerRunner {
	return &LedgerRunner{
		uowFactory: uowFactory,
		timers:     timers,
		clock:      clock,
		errors:     errorSlot,
	}
}

// Games runs fn with a game service bound to a fresh transaction. The transaction
// commits only if fn succeeds.
func (r *LedgerRunner) Games(ctx context.Context, fn func(interfaces.GameService) error) error {
	return r.run(ctx, func(uow UnitOfWork) error {
		return fn(services.NewGameService(
			uow.GameRepository(),
			uow.PlayerRepository(),
			uow.RoundRepository(),
			uow.BuyInRepository(),
			uow.GameResultRepository(),
			uow.EventBus(),
			r.timers,
			r.clock,
			r.errors,
		))
	})
}

// Players runs fn with a roster service bound to a fresh transaction
func (r *LedgerRunner) Players(ctx context.Context, fn func(interfaces.PlayerService) error) error {
	return r.run(ctx, func(uow UnitOfWork) error {
		return fn(services.NewPlayerService(uow.PlayerRepository(), r.errors))
	})
}

// LastError returns the most recent backend failure
func (r *LedgerRunner) LastError() error {
	return r.errors.Last()
}

// Timers returns the shared session timers
func (r *LedgerRunner) Timers() *ledger.TimerRegistry {
	return r.timers
}

func (r *LedgerRunner) run(ctx context.Context, fn func(UnitOfWork) error) error {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return r.errors.Capture(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer uow.Rollback()

	if err := fn(uow); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return r.errors.Capture(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}
