package stats

import (
	"fmt"
	"strings"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"
	"pokerledger/domain/interfaces"
	"pokerledger/domain/ledger"

	"github.com/bwmarrin/discordgo"
)

// getMedalForRank returns the medal emoji for the top three or the rank number
func getMedalForRank(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

// BuildDashboardEmbed renders the dashboard of a game
func BuildDashboardEmbed(gameID int64, d *entities.Dashboard) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 %s", d.GameName),
		Description: fmt.Sprintf("Game #%d · %s", gameID, d.Status),
		Color:       common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players", Value: fmt.Sprintf("%d", d.PlayerCount), Inline: true},
			{Name: "Rounds", Value: fmt.Sprintf("%d", d.RoundCount), Inline: true},
			{Name: "Chips in play", Value: common.FormatChips(d.TotalChipsInPlay), Inline: true},
			{Name: "Blinds", Value: fmt.Sprintf("%s/%s", common.FormatChips(d.SmallBlind), common.FormatChips(d.BigBlind)), Inline: true},
			{Name: "Timer", Value: fmt.Sprintf("`%s`", ledger.FormatElapsed(d.Elapsed)), Inline: true},
		},
	}

	if len(d.RecentRounds) == 0 {
		return embed
	}

	var sb strings.Builder
	for _, r := range d.RecentRounds {
		fmt.Fprintf(&sb, "**#%d** %s · %s · dealer %s\n", r.Number, strings.Join(r.Winners, ", "), r.Combination.Label(), r.Dealer)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Recent rounds",
		Value: sb.String(),
	})
	return embed
}

// BuildChartEmbeds pairs each chart attachment with a short ranking
func BuildChartEmbeds(stats *interfaces.GameStatistics, winnersFile, combinationsFile string) []*discordgo.MessageEmbed {
	var winners strings.Builder
	for idx, w := range stats.Winners {
		fmt.Fprintf(&winners, "%s **%s** · %d wins (%d%%)\n", getMedalForRank(idx+1), w.Name, w.Wins, w.Percentage)
	}
	if winners.Len() == 0 {
		winners.WriteString("No rounds recorded yet")
	}

	var combos strings.Builder
	for _, c := range stats.Combinations {
		fmt.Fprintf(&combos, "%s · %d (%d%%)\n", c.Combination.Label(), c.Count, c.Percentage)
	}
	if combos.Len() == 0 {
		combos.WriteString("No rounds recorded yet")
	}

	return []*discordgo.MessageEmbed{
		{
			Title:       fmt.Sprintf("🏆 %s · winners", stats.Game.Name),
			Description: winners.String(),
			Color:       common.ColorPrimary,
			Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + winnersFile},
		},
		{
			Title:       fmt.Sprintf("🃏 %s · combinations", stats.Game.Name),
			Description: combos.String(),
			Color:       common.ColorPrimary,
			Image:       &discordgo.MessageEmbedImage{URL: "attachment://" + combinationsFile},
		},
	}
}

// BuildPlayersEmbed renders one card per participant plus the best dealer table
func BuildPlayersEmbed(stats *interfaces.GameStatistics) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("👥 %s · players", stats.Game.Name),
		Color: common.ColorPrimary,
	}

	for _, p := range stats.Players {
		favorite := entities.Combination(p.FavoriteCombination)
		favoriteLabel := entities.UndeterminedCombination
		if favorite.IsValid() {
			favoriteLabel = favorite.Label()
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: p.Name,
			Value: fmt.Sprintf("Wins: **%d** (%d%%)\nBuy-ins: %d (%s chips)\nFavorite: %s\nBest dealer: %s",
				p.Wins, p.WinRate, p.BuyIns, common.FormatChips(p.BuyInChips), favoriteLabel, p.BestDealer),
			Inline: true,
		})
	}

	if len(stats.Dealers) > 0 {
		var sb strings.Builder
		for _, d := range stats.Dealers {
			fmt.Fprintf(&sb, "**%s** wins most under %s · %d (%d%%)\n", d.Player, d.DealersLabel(), d.Wins, d.Percentage)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Luckiest dealers",
			Value: sb.String(),
		})
	}
	return embed
}
