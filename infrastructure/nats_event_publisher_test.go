package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pokerledger/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNATSEventPublisher_LocalHandlers(t *testing.T) {
	t.Parallel()

	publisher := NewNATSEventPublisher(nil, NewEventSubjectMapper(), nil)

	var received []events.Event
	publisher.RegisterLocalHandler(events.EventTypeGameFinished, func(ctx context.Context, event events.Event) error {
		received = append(received, event)
		return errors.New("announcement failed")
	})
	publisher.RegisterLocalHandler(events.EventTypeGameFinished, func(ctx context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	finished := events.GameFinishedEvent{GameID: 7, Name: "Friday"}
	require.NoError(t, publisher.Publish(finished))
	require.NoError(t, publisher.Publish(events.GameCreatedEvent{GameID: 8}))

	assert.Equal(t, []events.Event{finished, finished}, received)
	assert.NoError(t, publisher.EnsureEventStream())
}

func TestNATSEventPublisher_MetricsHandlersWithoutProvider(t *testing.T) {
	t.Parallel()

	publisher := NewNATSEventPublisher(nil, NewEventSubjectMapper(), nil)
	RegisterMetricsHandlers(publisher, nil)

	assert.NotPanics(t, func() {
		_ = publisher.Publish(events.GameCreatedEvent{GameID: 1})
		_ = publisher.Publish(events.RoundRecordedEvent{GameID: 1, Combination: "flush"})
		_ = publisher.Publish(events.BuyInsAddedEvent{GameID: 1, Players: []string{"A"}})
		_ = publisher.Publish(events.GameFinishedEvent{GameID: 1})
	})
}

func TestNewEventEnvelope(t *testing.T) {
	t.Parallel()

	envelope, err := NewEventEnvelope(events.BuyInsAddedEvent{GameID: 3, Players: []string{"A", "B"}, Amount: 500})
	require.NoError(t, err)

	assert.Equal(t, "buyins_added", envelope.EventType)
	assert.Equal(t, "pokerledger", envelope.SourceService)
	assert.NotEmpty(t, envelope.EventID)
	assert.JSONEq(t, `{"game_id":3,"players":["A","B"],"amount":500}`, string(envelope.Payload))

	data, err := json.Marshal(envelope)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payload":{"game_id":3`)
}

func TestEventSubjectMapper(t *testing.T) {
	t.Parallel()

	mapper := NewEventSubjectMapper()

	tests := []struct {
		event   events.Event
		subject string
	}{
		{event: events.GameCreatedEvent{}, subject: "poker.game.created"},
		{event: events.PlayerAddedEvent{}, subject: "poker.game.player_added"},
		{event: events.RoundRecordedEvent{}, subject: "poker.round.recorded"},
		{event: events.BuyInsAddedEvent{}, subject: "poker.buyins.added"},
		{event: events.GameFinishedEvent{}, subject: "poker.game.finished"},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.subject, mapper.MapEventToSubject(tt.event))
			assert.Equal(t, tt.event.Type(), mapper.MapSubjectToEventType(tt.subject))
			assert.Contains(t, mapper.GetAllSubjects(), tt.subject)
		})
	}

	assert.Len(t, mapper.GetAllSubjects(), len(tests))
	assert.Equal(t, events.EventType("other.subject"), mapper.MapSubjectToEventType("other.subject"))
}
