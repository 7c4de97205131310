package bot

import (
	"fmt"

	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var (
	adminPermission int64   = discordgo.PermissionManageServer
	minGameID       float64 = 1
)

func gameOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "game",
		Description: description,
		Required:    true,
		MinValue:    &minGameID,
	}
}

func combinationChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.AllCombinations))
	for _, c := range entities.AllCombinations {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c.Label(),
			Value: string(c),
		})
	}
	return choices
}

func settingsOptions() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "starting_stack",
			Description: "Chips per buy-in",
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "small_blind",
			Description: "Small blind in chips",
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "big_blind",
			Description: "Big blind in chips",
		},
		{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "chip_to_ruble",
			Description: "Rubles per chip",
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:                     "player",
			Description:              "Manage the player roster",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a player to the roster",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Player name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename a roster player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Current name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "new_name",
							Description: "New name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show the roster with lifetime statistics",
				},
			},
		},
		{
			Name:                     "game",
			Description:              "Run poker games",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Start a new game",
					Options: append([]*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Game name",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Comma separated roster names, at least two",
							Required:    true,
						},
					}, settingsOptions()...),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show recent games",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Change the name or stakes of a game",
					Options: append([]*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "New game name",
						},
					}, settingsOptions()...),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "addplayer",
					Description: "Seat a roster player in a running game",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Roster name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "timer",
					Description: "Control the session timer",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "action",
							Description: "Timer action",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Start", Value: string(interfaces.TimerStart)},
								{Name: "Pause", Value: string(interfaces.TimerPause)},
								{Name: "Reset", Value: string(interfaces.TimerReset)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settle",
					Description: "Preview the settlement, or show stored results of a finished game",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "chips",
							Description: "Final chip counts, e.g. Alice=1500, Bob=500",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "finish",
					Description: "Settle and close a game",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "chips",
							Description: "Final chip counts for every player, e.g. Alice=1500, Bob=500",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:                     "round",
			Description:              "Record rounds and rebuys",
			DefaultMemberPermissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "record",
					Description: "Record the outcome of a hand",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "winners",
							Description: "Comma separated winner names",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "dealer",
							Description: "Dealer of the hand",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "combination",
							Description: "Winning combination",
							Choices:     combinationChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cards",
							Description: "Shown cards instead of a combination, e.g. Ah Kh Qh Jh Th",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "comment",
							Description: "Free text note",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buyin",
					Description: "Record one rebuy for each listed player",
					Options: []*discordgo.ApplicationCommandOption{
						gameOption("Game ID"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "players",
							Description: "Comma separated player names",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Chips per rebuy, defaults to the starting stack",
						},
					},
				},
			},
		},
		{
			Name:        "stats",
			Description: "Game statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "dashboard",
					Description: "Overview of a game",
					Options:     []*discordgo.ApplicationCommandOption{gameOption("Game ID")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "chart",
					Description: "Winner and combination charts",
					Options:     []*discordgo.ApplicationCommandOption{gameOption("Game ID")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "players",
					Description: "Per-player cards and best dealers",
					Options:     []*discordgo.ApplicationCommandOption{gameOption("Game ID")},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	log.WithField("count", len(commands)).Info("Registered slash commands")

	return nil
}
