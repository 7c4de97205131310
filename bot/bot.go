package bot

import (
	"context"
	"fmt"

	"pokerledger/application"
	"pokerledger/bot/features/games"
	"pokerledger/bot/features/players"
	"pokerledger/bot/features/rounds"
	"pokerledger/bot/features/stats"
	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/events"
	"pokerledger/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token             string
	GuildID           string
	AnnounceChannelID string
	DefaultSettings   entities.GameSettings
}

// LocalHandlerRegistrar accepts in-process event handlers
type LocalHandlerRegistrar interface {
	RegisterLocalHandler(eventType events.EventType, handler func(context.Context, events.Event) error)
}

// Bot manages the Discord admin console and its feature modules
type Bot struct {
	// Core components
	config  Config
	session *discordgo.Session
	runner  *application.LedgerRunner
	metrics *observability.MetricsProvider

	// Feature modules
	players *players.Feature
	games   *games.Feature
	rounds  *rounds.Feature
	stats   *stats.Feature
}

// New creates the bot, opens the gateway connection and registers the slash commands
func New(config Config, runner *application.LedgerRunner, registrar LocalHandlerRegistrar, metrics *observability.MetricsProvider) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:  config,
		session: dg,
		runner:  runner,
		metrics: metrics,
	}

	bot.players = players.NewFeature(runner)
	bot.games = games.NewFeature(dg, runner, config.DefaultSettings, config.AnnounceChannelID)
	bot.rounds = rounds.NewFeature(runner)
	bot.stats = stats.NewFeature(runner)

	if registrar != nil && config.AnnounceChannelID != "" {
		registrar.RegisterLocalHandler(events.EventTypeGameFinished, bot.games.AnnounceFinished)
		log.WithField("channel_id", config.AnnounceChannelID).Info("Finished games will be announced")
	}

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// handleCommands routes slash commands to the feature modules and records their outcome
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	outcome := observability.OutcomeSuccess
	defer b.metrics.MeasureCommand(name)(&outcome)

	var err error
	switch name {
	case "player":
		err = b.players.HandleCommand(s, i)
	case "game":
		err = b.games.HandleCommand(s, i)
	case "round":
		err = b.rounds.HandleCommand(s, i)
	case "stats":
		err = b.stats.HandleCommand(s, i)
	default:
		return
	}

	switch {
	case err == nil:
	case common.IsUserFacing(common.Classify(err, "")):
		outcome = observability.OutcomeUserError
	default:
		outcome = observability.OutcomeFailure
	}
}
