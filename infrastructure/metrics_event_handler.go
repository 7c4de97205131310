package infrastructure

import (
	"context"

	"pokerledger/domain/events"
	"pokerledger/infrastructure/observability"
)

// RegisterMetricsHandlers feeds committed ledger events into the metrics provider
func RegisterMetricsHandlers(publisher *NATSEventPublisher, metrics *observability.MetricsProvider) {
	publisher.RegisterLocalHandler(events.EventTypeGameCreated, func(ctx context.Context, event events.Event) error {
		metrics.UpdateActiveGames(1)
		return nil
	})
	publisher.RegisterLocalHandler(events.EventTypeRoundRecorded, func(ctx context.Context, event events.Event) error {
		if e, ok := event.(events.RoundRecordedEvent); ok {
			metrics.RecordRound(e.Combination)
		}
		return nil
	})
	publisher.RegisterLocalHandler(events.EventTypeBuyInsAdded, func(ctx context.Context, event events.Event) error {
		if e, ok := event.(events.BuyInsAddedEvent); ok {
			metrics.RecordBuyIns(len(e.Players))
		}
		return nil
	})
	publisher.RegisterLocalHandler(events.EventTypeGameFinished, func(ctx context.Context, event events.Event) error {
		metrics.UpdateActiveGames(-1)
		metrics.RecordGameFinished()
		return nil
	})
}
