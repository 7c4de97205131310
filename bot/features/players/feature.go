package players

import (
	"pokerledger/application"
	"pokerledger/bot/common"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the /player command
type Feature struct {
	runner *application.LedgerRunner
}

// NewFeature creates a new roster feature instance
func NewFeature(runner *application.LedgerRunner) *Feature {
	return &Feature{
		runner: runner,
	}
}

// HandleCommand routes /player subcommands. The returned error has already been reported to the user.
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, opts := common.SubcommandOptions(i)

	switch sub {
	case "add":
		return f.handleAdd(s, i, opts)
	case "rename":
		return f.handleRename(s, i, opts)
	case "list":
		return f.handleList(s, i)
	default:
		err := common.NewUserError("Unknown subcommand", "unknown /player subcommand")
		common.RespondWithError(s, i, err.UserMessage)
		return err
	}
}
