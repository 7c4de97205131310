package observability

const (
	MetricPrefix = "pokerledger"
)

// Metric names
const (
	// Discord metrics
	CommandsTotal   = MetricPrefix + ".commands.total"
	CommandDuration = MetricPrefix + ".commands.duration"

	// Ledger metrics
	GamesActive         = MetricPrefix + ".games.active"
	GamesFinishedTotal  = MetricPrefix + ".games.finished_total"
	RoundsRecordedTotal = MetricPrefix + ".rounds.recorded_total"
	BuyInsRecordedTotal = MetricPrefix + ".buyins.recorded_total"

	// NATS metrics
	EventsPublishedTotal = MetricPrefix + ".nats.events_published_total"
)

// Label keys
const (
	LabelCommand     = "command"
	LabelOutcome     = "outcome"
	LabelCombination = "combination"
	LabelEventType   = "event_type"
)

// Command outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeUserError = "user_error"
	OutcomeFailure   = "failure"
)
