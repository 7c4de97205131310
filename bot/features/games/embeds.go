package games

import (
	"fmt"
	"strings"
	"time"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/events"
	"pokerledger/domain/ledger"

	"github.com/bwmarrin/discordgo"
)

var statusBadges = map[entities.GameStatus]string{
	entities.GameStatusCreated:  "🕓 Created",
	entities.GameStatusActive:   "🟢 Active",
	entities.GameStatusFinished: "🏁 Finished",
}

// BuildGameEmbed describes a game's stakes and seats
func BuildGameEmbed(game *entities.Game, title string) *discordgo.MessageEmbed {
	seats := make([]string, 0, len(game.Players))
	for _, name := range game.Players {
		seats = append(seats, fmt.Sprintf("%s ×%d", name, game.BuyInCount(name)))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%s** (#%d) · %s", game.Name, game.ID, statusBadges[game.Status]),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Blinds", Value: common.FormatBlinds(game.Settings), Inline: true},
			{Name: "Stack", Value: common.FormatChips(game.Settings.StartingStack), Inline: true},
			{Name: "Rate", Value: fmt.Sprintf("%g ₽/chip", game.Settings.ChipToRuble), Inline: true},
			{Name: "Players (buy-ins)", Value: strings.Join(seats, "\n")},
		},
		Timestamp: game.UpdatedAt.Format(time.RFC3339),
	}
}

// BuildGameListEmbed lists recent games, newest first
func BuildGameListEmbed(games []*entities.Game) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📋 Recent games",
		Color: common.ColorPrimary,
	}
	if len(games) == 0 {
		embed.Description = "No games yet. Start one with `/game create`."
		return embed
	}

	var sb strings.Builder
	for _, g := range games {
		fmt.Fprintf(&sb, "`#%d` **%s** · %s · %d players · blinds %s · %s\n",
			g.ID, g.Name, statusBadges[g.Status], len(g.Players),
			common.FormatBlinds(g.Settings), common.FormatDiscordTimestamp(g.CreatedAt, "d"))
	}
	embed.Description = sb.String()
	return embed
}

// BuildSettlementEmbed renders settlement rows. A preview leaves the game untouched.
func BuildSettlementEmbed(game *entities.Game, settlement []entities.SettlementResult, preview bool) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🏁 %s settled", game.Name)
	color := common.ColorSuccess
	if preview {
		title = fmt.Sprintf("🧮 %s settlement preview", game.Name)
		color = common.ColorWarning
	}

	var sb strings.Builder
	for _, r := range settlement {
		fmt.Fprintf(&sb, "**%s** · %d buy-ins (%s) → %s chips (%s) · **%s**\n",
			r.PlayerName, r.BuyInCount, common.FormatRubles(r.BuyInRubles),
			common.FormatChips(r.FinalChips), common.FormatRubles(r.FinalRubles),
			common.FormatProfit(r.Profit))
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: sb.String(),
		Color:       color,
	}
	if game.IsFinished() {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d rounds · %s", len(game.Rounds), ledger.FormatElapsed(game.Duration())),
		}
	}
	return embed
}

// BuildAnnouncementEmbed summarises a finished game for the announcement channel
func BuildAnnouncementEmbed(event events.GameFinishedEvent) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, r := range event.Results {
		fmt.Fprintf(&sb, "**%s**: %s chips · %s\n", r.PlayerName, common.FormatChips(r.FinalChips), common.FormatProfit(r.Profit))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 %s is over", event.Name),
		Description: sb.String(),
		Color:       common.ColorSuccess,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game #%d · %d rounds · %s", event.GameID, event.Rounds,
				ledger.FormatElapsed(time.Duration(event.DurationSeconds)*time.Second)),
		},
	}
}
