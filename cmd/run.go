package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"pokerledger/application"
	"pokerledger/bot"
	"pokerledger/config"
	"pokerledger/database"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"
	"pokerledger/domain/services"
	"pokerledger/infrastructure"
	"pokerledger/infrastructure/observability"

	"github.com/coder/quartz"
)

// Run initializes and starts the admin console
func Run(ctx context.Context) error {
	log.Println("Starting pokerledger...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize metrics
	log.Println("Initializing metrics...")
	metrics := observability.NewMetricsProvider(cfg)
	if err := metrics.Initialize(ctx); err != nil {
		log.Printf("Metrics disabled: %v", err)
	}

	// Connect to NATS; the ledger keeps working on local handlers without it
	var natsClient *infrastructure.NATSClient
	if cfg.NATSServers != "" {
		log.Println("Connecting to NATS...")
		natsClient = infrastructure.NewNATSClient(cfg.NATSServers)
		if err := natsClient.Connect(ctx); err != nil {
			log.Printf("NATS unavailable, events stay in-process: %v", err)
			natsClient = nil
		} else {
			log.Println("NATS connection established successfully")
		}
	}

	eventPublisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper(), metrics)
	if err := eventPublisher.EnsureEventStream(); err != nil {
		log.Printf("Failed to ensure event stream: %v", err)
	}
	infrastructure.RegisterMetricsHandlers(eventPublisher, metrics)

	// Initialize unit of work factory
	log.Println("Initializing unit of work factory...")
	uowFactory := infrastructure.NewUnitOfWorkFactory(db, eventPublisher)
	log.Println("Unit of work factory initialized successfully")

	clock := quartz.NewReal()
	timers := ledger.NewTimerRegistry(clock)
	runner := application.NewLedgerRunner(uowFactory, timers, clock, services.NewErrorSlot())

	if err := runner.Games(ctx, func(svc interfaces.GameService) error {
		return svc.RestoreTimers(ctx)
	}); err != nil {
		log.Printf("Failed to restore session timers: %v", err)
	}

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:             cfg.DiscordToken,
		GuildID:           cfg.GuildID,
		AnnounceChannelID: cfg.AnnounceChannelID,
		DefaultSettings:   cfg.DefaultGameSettings(),
	}
	discordBot, err := bot.New(botConfig, runner, uowFactory, metrics)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("pokerledger is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down...")

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	timers.StopAll()

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if natsClient != nil {
		log.Println("Closing NATS connection...")
		if err := natsClient.Close(); err != nil {
			log.Printf("Error closing NATS connection: %v", err)
		}
	}

	if err := metrics.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down metrics: %v", err)
	}

	if lastErr := runner.LastError(); lastErr != nil {
		log.Printf("Last backend error: %v", lastErr)
	}

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
