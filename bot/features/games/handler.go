package games

import (
	"context"
	"fmt"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (f *Feature) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()

	req := interfaces.CreateGameRequest{
		Name:     opts.String("name"),
		Players:  common.ParseNames(opts.String("players")),
		Settings: settingsFromOptions(opts, f.defaults),
	}

	var game *entities.Game
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		game, err = svc.CreateGame(ctx, req)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildGameEmbed(game, "🎲 Game started"), false)
	})
	return nil
}

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	var games []*entities.Game
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		games, err = svc.ListGames(ctx, recentGamesLimit)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildGameListEmbed(games), true)
	})
	return nil
}

func (f *Feature) handleSettings(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")

	patch := patchFromOptions(opts)
	if patch.IsEmpty() {
		err := common.NewUserError("Give at least one setting to change", "empty settings patch")
		common.RespondWithError(s, i, err.UserMessage)
		return err
	}

	var game *entities.Game
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		game, err = svc.UpdateSettings(ctx, gameID, patch)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildGameEmbed(game, "⚙️ Settings updated"), false)
	})
	return nil
}

func (f *Feature) handleAddPlayer(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")
	name := opts.String("player")

	var game *entities.Game
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		game, err = svc.AddPlayerToGame(ctx, gameID, name)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithSuccess(s, i, fmt.Sprintf("**%s** sat down at **%s** with %s chips",
			name, game.Name, common.FormatChips(game.Settings.StartingStack)), false)
	})
	return nil
}

func (f *Feature) handleTimer(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")
	action := interfaces.TimerAction(opts.String("action"))

	var status *interfaces.TimerStatus
	err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		status, err = svc.ControlTimer(ctx, gameID, action)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	state := "⏸️ paused"
	if status.Running {
		state = "▶️ running"
	}
	common.Respond(s, i, func() error {
		return common.RespondWithSuccess(s, i, fmt.Sprintf("Timer %s at `%s`", state, ledger.FormatElapsed(status.Elapsed)), true)
	})
	return nil
}

// handleSettle previews the settlement of a running game, or shows the stored
// results of a finished game when no chip counts are given
func (f *Feature) handleSettle(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")

	chipsOption := opts.String("chips")
	if chipsOption == "" {
		var game *entities.Game
		var results []*entities.GameResult
		err := f.runner.Games(ctx, func(svc interfaces.GameService) error {
			var err error
			if game, err = svc.GetGame(ctx, gameID); err != nil {
				return err
			}
			if !game.IsFinished() {
				return fmt.Errorf("game %d: %w", gameID, ledger.ErrGameNotFinished)
			}
			results, err = svc.GetResults(ctx, gameID)
			return err
		})
		if err != nil {
			common.HandleError(s, i, err, false)
			return err
		}

		settlement := make([]entities.SettlementResult, len(results))
		for idx, r := range results {
			settlement[idx] = r.SettlementResult
		}
		common.Respond(s, i, func() error {
			return common.RespondWithEmbed(s, i, BuildSettlementEmbed(game, settlement, false), false)
		})
		return nil
	}

	finalChips, err := common.ParseChipCounts(chipsOption)
	if err != nil {
		botErr := common.NewUserError(err.Error(), "invalid chip counts")
		common.RespondWithError(s, i, botErr.UserMessage)
		return botErr
	}

	var game *entities.Game
	var settlement []entities.SettlementResult
	err = f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		if game, err = svc.GetGame(ctx, gameID); err != nil {
			return err
		}
		settlement, err = svc.PreviewSettlement(ctx, gameID, finalChips)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	common.Respond(s, i, func() error {
		return common.RespondWithEmbed(s, i, BuildSettlementEmbed(game, settlement, true), true)
	})
	return nil
}

func (f *Feature) handleFinish(s *discordgo.Session, i *discordgo.InteractionCreate, opts common.Options) error {
	ctx := context.Background()
	gameID, _ := opts.Int("game")

	finalChips, err := common.ParseChipCounts(opts.String("chips"))
	if err != nil {
		botErr := common.NewUserError(err.Error(), "invalid chip counts")
		common.RespondWithError(s, i, botErr.UserMessage)
		return botErr
	}

	if err := common.DeferResponse(s, i, false); err != nil {
		log.WithError(err).Error("Failed to defer /game finish response")
		return err
	}

	var game *entities.Game
	var settlement []entities.SettlementResult
	err = f.runner.Games(ctx, func(svc interfaces.GameService) error {
		var err error
		if settlement, err = svc.FinishGame(ctx, gameID, finalChips); err != nil {
			return err
		}
		game, err = svc.GetGame(ctx, gameID)
		return err
	})
	if err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	if _, err := common.FollowUpWithEmbed(s, i, []*discordgo.MessageEmbed{BuildSettlementEmbed(game, settlement, false)}, nil); err != nil {
		log.WithError(err).Error("Failed to send settlement")
	}
	return nil
}
