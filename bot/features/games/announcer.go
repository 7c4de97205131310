package games

import (
	"context"
	"fmt"

	"pokerledger/domain/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// AnnounceFinished posts the settlement of a finished game to the announcement channel
func (f *Feature) AnnounceFinished(ctx context.Context, event events.Event) error {
	finished, ok := event.(events.GameFinishedEvent)
	if !ok || f.announceChannelID == "" {
		return nil
	}

	_, err := f.session.ChannelMessageSendComplex(f.announceChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{BuildAnnouncementEmbed(finished)},
	})
	if err != nil {
		return fmt.Errorf("failed to announce game %d: %w", finished.GameID, err)
	}

	log.WithFields(log.Fields{
		"gameID":    finished.GameID,
		"channelID": f.announceChannelID,
	}).Info("Announced finished game")
	return nil
}
