package valentine

import (
	"context"
	"errors"
	"fmt"

	"github.com/MiraiSubject/CoteValentines2023/config"
	"github.com/MiraiSubject/CoteValentines2023/letters"
	"github.com/MiraiSubject/CoteValentines2023/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// PublishCommandHandler handles /publish: every stored letter is posted to
// the invoking channel, paced to fit the configured time budget. The
// interaction is deferred because the run can take minutes.
func PublishCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Error().Err(err).Msg("Error sending deferred response")
		return
	}

	go func() {
		// Typing keeps the channel visibly busy between paced sends.
		if err := s.ChannelTyping(i.ChannelID); err != nil {
			log.Warn().Err(err).Msg("Could not send typing event")
		}

		sink := &discordChannelSink{session: s, channelID: i.ChannelID}
		count, err := svc.PublishAll(
			context.Background(),
			sink,
			config.Cfg.Valentine.PublishMaxRuntime,
			config.Cfg.Valentine.PublishMaxDelay,
		)
		if err != nil {
			log.Error().Err(err).Int("sent", count).Msg("Publishing letters failed")
			content := "Something went wrong while publishing the letters"
			var dispatchErr *letters.DispatchError
			if errors.As(err, &dispatchErr) {
				content = fmt.Sprintf("Publishing stopped after %d letters: %v", dispatchErr.Sent, dispatchErr.Err)
			}
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(content),
			})
			return
		}

		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr(fmt.Sprintf("Done, delivered %d letters", count)),
		})
	}()
}
