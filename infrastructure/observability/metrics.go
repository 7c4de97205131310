package observability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pokerledger/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// MetricsProvider manages the OpenTelemetry instruments of the ledger. A nil or
// disabled provider silently drops every recording.
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	commandsCounter        metric.Int64Counter
	commandDurationHist    metric.Float64Histogram
	gamesActiveGauge       metric.Int64UpDownCounter
	gamesFinishedCounter   metric.Int64Counter
	roundsRecordedCounter  metric.Int64Counter
	buyInsRecordedCounter  metric.Int64Counter
	eventsPublishedCounter metric.Int64Counter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the exporter selected by configuration and registers the global meter provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Info("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Info("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.WithField("endpoint", mp.config.OTelOTLPEndpoint).Info("Using OTLP metric exporter")

	case "none":
		log.Info("Metrics export disabled (exporter_type='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		),
	)
	otel.SetMeterProvider(mp.meterProvider)

	if err := mp.createInstruments(mp.meterProvider.Meter("pokerledger")); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Info("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates every instrument on meter
func (mp *MetricsProvider) createInstruments(meter metric.Meter) error {
	var err error

	mp.commandsCounter, err = meter.Int64Counter(
		CommandsTotal,
		metric.WithDescription("Total number of slash commands handled"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create commands counter: %w", err)
	}

	mp.commandDurationHist, err = meter.Float64Histogram(
		CommandDuration,
		metric.WithDescription("Duration of slash command handling in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create command duration histogram: %w", err)
	}

	mp.gamesActiveGauge, err = meter.Int64UpDownCounter(
		GamesActive,
		metric.WithDescription("Current number of running games"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create games active gauge: %w", err)
	}

	mp.gamesFinishedCounter, err = meter.Int64Counter(
		GamesFinishedTotal,
		metric.WithDescription("Total number of settled games"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create games finished counter: %w", err)
	}

	mp.roundsRecordedCounter, err = meter.Int64Counter(
		RoundsRecordedTotal,
		metric.WithDescription("Total number of recorded rounds"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rounds recorded counter: %w", err)
	}

	mp.buyInsRecordedCounter, err = meter.Int64Counter(
		BuyInsRecordedTotal,
		metric.WithDescription("Total number of recorded buy-ins"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create buy-ins recorded counter: %w", err)
	}

	mp.eventsPublishedCounter, err = meter.Int64Counter(
		EventsPublishedTotal,
		metric.WithDescription("Total number of events published to NATS"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create events published counter: %w", err)
	}

	mp.meter = meter
	return nil
}

// Shutdown flushes and stops the exporter
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	if mp == nil {
		return nil
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordCommand records one handled slash command
func (mp *MetricsProvider) RecordCommand(command, outcome string, duration time.Duration) {
	if !mp.isEnabled() {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String(LabelCommand, command),
		attribute.String(LabelOutcome, outcome),
	)
	mp.commandsCounter.Add(context.Background(), 1, attrs)
	mp.commandDurationHist.Record(context.Background(), duration.Seconds(), attrs)
}

// MeasureCommand returns a function that records the command when called
//
//	defer mp.MeasureCommand("game")(&outcome)
func (mp *MetricsProvider) MeasureCommand(command string) func(outcome *string) {
	start := time.Now()
	return func(outcome *string) {
		mp.RecordCommand(command, *outcome, time.Since(start))
	}
}

// UpdateActiveGames moves the running games gauge by delta
func (mp *MetricsProvider) UpdateActiveGames(delta int64) {
	if !mp.isEnabled() {
		return
	}
	mp.gamesActiveGauge.Add(context.Background(), delta)
}

// RecordGameFinished records a settled game
func (mp *MetricsProvider) RecordGameFinished() {
	if !mp.isEnabled() {
		return
	}
	mp.gamesFinishedCounter.Add(context.Background(), 1)
}

// RecordRound records a round by winning combination
func (mp *MetricsProvider) RecordRound(combination string) {
	if !mp.isEnabled() {
		return
	}

	mp.roundsRecordedCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelCombination, combination),
		),
	)
}

// RecordBuyIns records count buy-ins
func (mp *MetricsProvider) RecordBuyIns(count int) {
	if !mp.isEnabled() {
		return
	}
	mp.buyInsRecordedCounter.Add(context.Background(), int64(count))
}

// RecordEventPublished records an event delivered to NATS
func (mp *MetricsProvider) RecordEventPublished(eventType string) {
	if !mp.isEnabled() {
		return
	}

	mp.eventsPublishedCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, eventType),
		),
	)
}

// isEnabled reports whether instruments exist
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.meter != nil
}
