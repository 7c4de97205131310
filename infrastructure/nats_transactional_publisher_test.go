package infrastructure

import (
	"context"
	"errors"
	"testing"

	"pokerledger/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher records published events
type MockEventPublisher struct {
	PublishedEvents []events.Event
	PublishError    error
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.PublishedEvents = append(m.PublishedEvents, event)
	return nil
}

func TestNATSTransactionalPublisher_FlushPublishesInOrder(t *testing.T) {
	t.Parallel()

	mockPublisher := &MockEventPublisher{}
	publisher := NewNATSTransactionalPublisher(mockPublisher)

	created := events.GameCreatedEvent{GameID: 1, Name: "Friday", Players: []string{"A", "B"}}
	round := events.RoundRecordedEvent{GameID: 1, Number: 1, Winners: []string{"A"}, Dealer: "B", Combination: "pair"}

	require.NoError(t, publisher.Publish(created))
	require.NoError(t, publisher.Publish(round))

	assert.Empty(t, mockPublisher.PublishedEvents)
	assert.Equal(t, 2, publisher.Pending())

	require.NoError(t, publisher.Flush(context.Background()))
	assert.Equal(t, []events.Event{created, round}, mockPublisher.PublishedEvents)
	assert.Equal(t, 0, publisher.Pending())

	require.NoError(t, publisher.Flush(context.Background()))
	assert.Len(t, mockPublisher.PublishedEvents, 2, "flushed events are not sent twice")
}

func TestNATSTransactionalPublisher_Discard(t *testing.T) {
	t.Parallel()

	mockPublisher := &MockEventPublisher{}
	publisher := NewNATSTransactionalPublisher(mockPublisher)

	require.NoError(t, publisher.Publish(events.PlayerAddedEvent{GameID: 1, PlayerName: "C"}))
	publisher.Discard()
	require.NoError(t, publisher.Flush(context.Background()))

	assert.Empty(t, mockPublisher.PublishedEvents)
}

func TestNATSTransactionalPublisher_FlushSwallowsPublishErrors(t *testing.T) {
	t.Parallel()

	mockPublisher := &MockEventPublisher{PublishError: errors.New("nats down")}
	publisher := NewNATSTransactionalPublisher(mockPublisher)

	require.NoError(t, publisher.Publish(events.GameFinishedEvent{GameID: 1}))
	assert.NoError(t, publisher.Flush(context.Background()))
	assert.Equal(t, 0, publisher.Pending())
}

func TestNATSTransactionalPublisher_FlushStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	mockPublisher := &MockEventPublisher{}
	publisher := NewNATSTransactionalPublisher(mockPublisher)
	require.NoError(t, publisher.Publish(events.GameFinishedEvent{GameID: 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, publisher.Flush(ctx))
	assert.Empty(t, mockPublisher.PublishedEvents)
	assert.Equal(t, 0, publisher.Pending())
}
