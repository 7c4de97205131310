package rounds

import (
	"fmt"
	"strings"
	"time"

	"pokerledger/bot/common"
	"pokerledger/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// BuildRoundEmbed confirms a recorded round
func BuildRoundEmbed(round *entities.Round, handDescription string) *discordgo.MessageEmbed {
	title := fmt.Sprintf("🂡 Round %d", round.Number)
	if round.IsSplitPot() {
		title += " · split pot"
	}

	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: common.ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Winners", Value: strings.Join(round.Winners, ", "), Inline: true},
			{Name: "Dealer", Value: round.Dealer, Inline: true},
			{Name: "Combination", Value: round.Combination.Label(), Inline: true},
		},
		Timestamp: round.Timestamp.Format(time.RFC3339),
	}
	if handDescription != "" {
		embed.Description = fmt.Sprintf("*%s*", handDescription)
	}
	if round.Comment != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Comment",
			Value: round.Comment,
		})
	}
	return embed
}
