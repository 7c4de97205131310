package rounds

import (
	"pokerledger/application"
	"pokerledger/bot/common"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the /round command
type Feature struct {
	runner *application.LedgerRunner
}

// NewFeature creates a new rounds feature instance
func NewFeature(runner *application.LedgerRunner) *Feature {
	return &Feature{
		runner: runner,
	}
}

// HandleCommand routes /round subcommands. The returned error has already been reported to the user.
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, opts := common.SubcommandOptions(i)

	switch sub {
	case "record":
		return f.handleRecord(s, i, opts)
	case "buyin":
		return f.handleBuyIn(s, i, opts)
	default:
		err := common.NewUserError("Unknown subcommand", "unknown /round subcommand")
		common.RespondWithError(s, i, err.UserMessage)
		return err
	}
}
