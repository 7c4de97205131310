package stats

import (
	"pokerledger/application"
	"pokerledger/bot/common"

	"github.com/bwmarrin/discordgo"
)

// Feature represents the stats feature
type Feature struct {
	runner *application.LedgerRunner
	charts *ChartImageGenerator
}

// NewFeature creates a new stats feature instance
func NewFeature(runner *application.LedgerRunner) *Feature {
	return &Feature{
		runner: runner,
		charts: NewChartImageGenerator(),
	}
}

// HandleCommand handles the /stats command and its subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sub, opts := common.SubcommandOptions(i)
	gameID, _ := opts.Int("game")

	switch sub {
	case "dashboard":
		return f.handleDashboard(s, i, gameID)
	case "chart":
		return f.handleChart(s, i, gameID)
	case "players":
		return f.handlePlayers(s, i, gameID)
	default:
		err := common.NewUserError("Please specify a subcommand: dashboard, chart or players", "unknown /stats subcommand")
		common.RespondWithError(s, i, err.UserMessage)
		return err
	}
}
