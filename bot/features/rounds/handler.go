package rounds

import (
	"context"
	"fmt"
	"strings"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleRecord(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")

	combination, description, err := resolveCombination(opts.String("combination"), opts.String("cards"))
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	in := ledger.RoundInput{
		Winners:     common.ParseNames(opts.String("winners")),
		Dealer:      opts.String("dealer"),
		Combination: combination,
		Comment:     opts.String("comment"),
	}

	var round *entities.Round
	err = f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		round, err = svc.RecordRound(ctx, gameID, in)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildRoundEmbed(round, description), false)
	})
	return nil
}

func (f *Feature) handleBuyIn(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")
	players := common.ParseNames(opts.String("players"))

	var buyIns []*entities.BuyIn
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		buyIns, err = svc.AddBuyIns(ctx, gameID, players, opts.IntPtr("amount"))
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	lines := make([]string, 0, len(buyIns))
	for _, b := range buyIns {
		lines = append(lines, fmt.Sprintf("**%s** buy-in #%d (%s chips)", b.PlayerName, b.BuyInNumber, common.FormatChips(b.ChipsAmount)))
	}
	log.WithFields(log.Fields{
		"gameID":  gameID,
		"buyIns":  len(buyIns),
		"players": players,
	}).Debug("Rebuys recorded from console")

	common.Respond(s, i, func() error {
		return common.RespondWithSuccess(s, i, "Rebuys recorded\n"+strings.Join(lines, "\n"), false)
	})
	return nil
}
