package players

import (
	"fmt"
	"strings"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// maxRosterFields is Discord's limit on embed fields
const maxRosterFields = 25

// BuildRosterEmbed lists roster players with their lifetime statistics
func BuildRosterEmbed(roster []*entities.Player) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🃏 Roster",
		Color: common.ColorPrimary,
	}

	if len(roster) == 0 {
		embed.Description = "No players yet. Add one with `/player add`."
		return embed
	}

	for idx, p := range roster {
		if idx == maxRosterFields {
			embed.Footer = &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("%d more players not shown", len(roster)-maxRosterFields),
			}
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   p.Name,
			Value:  formatLifetime(p),
			Inline: true,
		})
	}
	return embed
}

func formatLifetime(p *entities.Player) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games: **%d** · Wins: **%d** (%d%%)\n", p.TotalGames, p.TotalWins, p.WinRate)
	fmt.Fprintf(&sb, "Buy-ins: %d (%s chips)\n", p.TotalBuyIns, common.FormatChips(p.TotalBuyInChips))
	fmt.Fprintf(&sb, "Favorite: %s\n", p.FavoriteCombinationLabel())
	fmt.Fprintf(&sb, "Best dealer: %s", p.BestDealer)
	return sb.String()
}
