package infrastructure

import (
	"fmt"

	"pokerledger/domain/events"
)

var eventSubjects = map[events.EventType]string{
	events.EventTypeGameCreated:   "poker.game.created",
	events.EventTypePlayerAdded:   "poker.game.player_added",
	events.EventTypeRoundRecorded: "poker.round.recorded",
	events.EventTypeBuyInsAdded:   "poker.buyins.added",
	events.EventTypeGameFinished:  "poker.game.finished",
}

// EventSubjectMapper maps ledger events to NATS subjects and back
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject returns the subject an event is published on
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	if subject, ok := eventSubjects[event.Type()]; ok {
		return subject
	}
	return fmt.Sprintf("poker.unknown.%s", event.Type())
}

// MapSubjectToEventType converts a subject back to its event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	for eventType, s := range eventSubjects {
		if s == subject {
			return eventType
		}
	}
	return events.EventType(subject)
}

// GetAllSubjects returns every subject the ledger publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"poker.game.created",
		"poker.game.player_added",
		"poker.round.recorded",
		"poker.buyins.added",
		"poker.game.finished",
	}
}
