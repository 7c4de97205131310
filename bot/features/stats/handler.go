package stats

import (
	"context"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	combinationsImage = "combinations.png"
	winnersImage      = "winners.png"
)

// handleDashboard shows the at-a-glance view of a game
func (f *Feature) handleDashboard(s *discordgo.Session, i *discordgo.InteractionCreate, gameID int64) error {
	ctx := context.Background()

	var dashboard *entities.Dashboard
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		dashboard, err = svc.Dashboard(ctx, gameID)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildDashboardEmbed(gameID, dashboard), false)
	})
	return nil
}

// handleChart renders the winner and combination charts as attachments
func (f *Feature) handleChart(s *discordgo.Session, i *discordgo.InteractionCreate, gameID int64) error {
	ctx := context.Background()

	// Image generation can exceed the interaction deadline
	if err := common.DeferResponse(s, i, false); err != nil {
		log.WithError(err).Error("Failed to defer /stats chart response")
		return err
	}

	var stats *interfaces.GameStatistics
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		stats, err = svc.Statistics(ctx, gameID)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	var combinations, winners []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		combinations, err = f.charts.GenerateCombinationChart(stats.Combinations)
		return err
	})
	g.Go(func() error {
		var err error
		winners, err = f.charts.GenerateWinnersChart(stats.Winners)
		return err
	})
	if err := g.Wait(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "failed to render charts"), true)
		return err
	}

	embeds := BuildChartEmbeds(stats, winnersImage, combinationsImage)
	files := map[string][]byte{
		winnersImage:      winners,
		combinationsImage: combinations,
	}
	if _, err := common.FollowUpWithEmbed(s, i, embeds, files); err != nil {
		log.WithError(err).Error("Failed to send charts")
	}
	return nil
}

// handlePlayers shows per-player cards and best dealers
func (f *Feature) handlePlayers(s *discordgo.Session, i *discordgo.InteractionCreate, gameID int64) error {
	ctx := context.Background()

	var stats *interfaces.GameStatistics
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		stats, err = svc.Statistics(ctx, gameID)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildPlayersEmbed(stats), false)
	})
	return nil
}
