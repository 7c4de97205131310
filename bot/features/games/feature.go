package games

import (
	"pokerledger/application"
	"pokerledger/bot/common"
	"pokerledger/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// recentGamesLimit is how many games /game list shows
const recentGamesLimit = 10

// Feature handles the /game command and finished-game announcements
type Feature struct {
	session           *discordgo.Session
	runner            *application.LedgerRunner
	defaults          entities.GameSettings
	announceChannelID string
}

// NewFeature creates a new games feature instance
func NewFeature(session *discordgo.Session, runner *application.LedgerRunner, defaults entities.GameSettings, announceChannelID string) *Feature {
	return &Feature{
		session:           session,
		runner:            runner,
		defaults:          defaults,
		announceChannelID: announceChannelID,
	}
}

// HandleCommand routes /game subcommands. The returned error has already been reported to the user.
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, opts := common.SubcommandOptions(i)

	switch sub {
	case "create":
		return f.handleCreate(s, i, opts)
	case "list":
		return f.handleList(s, i)
	case "settings":
		return f.handleSettings(s, i, opts)
	case "addplayer":
		return f.handleAddPlayer(s, i, opts)
	case "timer":
		return f.handleTimer(s, i, opts)
	case "settle":
		return f.handleSettle(s, i, opts)
	case "finish":
		return f.handleFinish(s, i, opts)
	default:
		err := common.NewUserError("Unknown subcommand", "unknown /game subcommand")
		common.RespondWithError(s, i, err.UserMessage)
		return err
	}
}
