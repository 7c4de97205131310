package players

import (
	"context"
	"fmt"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleAdd(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()

	var player *entities.Player
	err := f.runner.Players(ctx, func(svc interfaces.PlayerService) error {
		var err error
		player, err = svc.AddPlayer(ctx, opts.String("name"))
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithSuccess(s, i, fmt.Sprintf("**%s** joined the roster", player.Name), false)
	})
	return nil
}

func (f *Feature) handleRename(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	oldName := opts.String("name")

	var player *entities.Player
	err := f.runner.Players(ctx, func(svc interfaces.PlayerService) error {
		var err error
		player, err = svc.RenamePlayer(ctx, oldName, opts.String("new_name"))
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	log.WithFields(log.Fields{
		"playerID": player.ID,
		"from":     oldName,
		"to":       player.Name,
	}).Info("Player renamed")

	common.Respond(s, i, func() error {
		return common.RespondWithSuccess(s, i, fmt.Sprintf("**%s** is now **%s**", oldName, player.Name), false)
	})
	return nil
}

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	var roster []*entities.Player
	err := f.runner.Players(ctx, func(svc interfaces.PlayerService) error {
		var err error
		roster, err = svc.ListPlayers(ctx)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildRosterEmbed(roster), false)
	})
	return nil
}
