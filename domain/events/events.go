package events

import "time"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGameCreated   EventType = "game_created"
	EventTypePlayerAdded   EventType = "player_added"
	EventTypeRoundRecorded EventType = "round_recorded"
	EventTypeBuyInsAdded   EventType = "buyins_added"
	EventTypeGameFinished  EventType = "game_finished"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GameCreatedEvent is emitted once a new game is persisted
type GameCreatedEvent struct {
	GameID    int64    `json:"game_id"`
	Name      string   `json:"name"`
	Players   []string `json:"players"`
	StartedBy string   `json:"started_by,omitempty"`
}

func (e GameCreatedEvent) Type() EventType {
	return EventTypeGameCreated
}

// PlayerAddedEvent is emitted when someone joins a running game
type PlayerAddedEvent struct {
	GameID     int64  `json:"game_id"`
	PlayerName string `json:"player_name"`
}

func (e PlayerAddedEvent) Type() EventType {
	return EventTypePlayerAdded
}

// RoundRecordedEvent carries one recorded round
type RoundRecordedEvent struct {
	GameID      int64     `json:"game_id"`
	RoundID     string    `json:"round_id"`
	Number      int       `json:"number"`
	Winners     []string  `json:"winners"`
	Dealer      string    `json:"dealer"`
	Combination string    `json:"combination"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e RoundRecordedEvent) Type() EventType {
	return EventTypeRoundRecorded
}

// BuyInsAddedEvent is emitted after a batch of rebuys
type BuyInsAddedEvent struct {
	GameID  int64    `json:"game_id"`
	Players []string `json:"players"`
	Amount  int64    `json:"amount"`
}

func (e BuyInsAddedEvent) Type() EventType {
	return EventTypeBuyInsAdded
}

// PlayerResult is one settlement line inside GameFinishedEvent
type PlayerResult struct {
	PlayerName string  `json:"player_name"`
	FinalChips int64   `json:"final_chips"`
	Profit     float64 `json:"profit"`
}

// GameFinishedEvent is emitted after settlement is persisted
type GameFinishedEvent struct {
	GameID          int64          `json:"game_id"`
	Name            string         `json:"name"`
	DurationSeconds int64          `json:"duration_seconds"`
	Rounds          int            `json:"rounds"`
	Results         []PlayerResult `json:"results"`
}

func (e GameFinishedEvent) Type() EventType {
	return EventTypeGameFinished
}
