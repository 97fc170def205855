package valentine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/MiraiSubject/CoteValentines2023/letters"
	"github.com/MiraiSubject/CoteValentines2023/model"
	"github.com/MiraiSubject/CoteValentines2023/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// SendLetterCommandHandler handles /sendletter. The options are parsed into a
// pending letter which the sender confirms (or cancels) from a preview before
// anything is recorded.
func SendLetterCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var recipient, letter string
	var anonymous bool
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "recipient":
			recipient = option.StringValue()
		case "letter":
			letter = option.StringValue()
		case "anonymous":
			anonymous = option.BoolValue()
		}
	}

	if recipient == "" || letter == "" {
		respondEphemeral(s, i, "Both a recipient and a letter are required")
		return
	}

	pending := model.PendingLetter{
		SenderID:   i.Member.User.ID,
		SenderName: i.Member.User.Username,
		Recipient:  recipient,
		Content:    letter,
		Anonymous:  anonymous,
	}
	cacheID := utils.AddToCache(pending)

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Send",
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("letter_submit:%s:%s", cacheID, strconv.FormatBool(anonymous)),
					Emoji:    &discordgo.ComponentEmoji{Name: "💌"},
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: "cancel_letter",
					Emoji:    &discordgo.ComponentEmoji{Name: "❌"},
				},
			},
		},
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    "Here is how your letter will appear. Ready to send it?",
			Embeds:     []*discordgo.MessageEmbed{previewEmbed(pending)},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error sending letter preview")
	}
}

// previewEmbed renders a pending letter exactly as /publish would show it.
func previewEmbed(pending model.PendingLetter) *discordgo.MessageEmbed {
	preview := &model.Letter{
		SenderName: pending.SenderName,
		Recipient:  pending.Recipient,
		Anonymous:  pending.Anonymous,
	}
	return &discordgo.MessageEmbed{
		Title:       letters.PublishTitle(preview),
		Description: pending.Content,
		Color:       pinkColor(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: letters.EventFooter,
		},
	}
}

// SubmitLetterHandler finishes intake once the sender confirms the preview.
// The anonymity choice rides on the button's custom ID so the panel flow can
// offer both a named and an anonymous send from the same preview.
func SubmitLetterHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.Split(i.MessageComponentData().CustomID, ":")
	if len(parts) < 3 {
		respondUpdate(s, i, "Something went wrong with this preview, please start over")
		return
	}

	cacheID := parts[1]
	anonymous := parts[2] == "true"

	pending, found := utils.GetFromCache(cacheID)
	if !found {
		respondUpdate(s, i, "This preview has expired, please start over")
		return
	}
	utils.RemoveFromCache(cacheID)

	_, err := svc.Submit(pending.SenderID, pending.SenderName, pending.Recipient, pending.Content, anonymous)
	if err != nil {
		respondUpdate(s, i, submitErrorMessage(err))
		return
	}

	respondUpdate(s, i, letters.MessageRecorded)
}

// CancelLetterHandler discards the preview.
func CancelLetterHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	respondUpdate(s, i, "Your letter was not sent")
}

func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, letters.ErrLettersClosed):
		return "Letters are not being accepted right now"
	case errors.Is(err, db.ErrQuotaExceeded):
		return "You have already sent two messages."
	case errors.Is(err, letters.ErrEmptyLetter):
		return "Your letter is missing some of its content, please start over"
	default:
		log.Error().Err(err).Msg("Error recording letter")
		return "Something went wrong while recording your letter, please try again later"
	}
}

// respondEphemeral answers an interaction with a short, sender-only message.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error responding to interaction")
	}
}

// respondUpdate replaces the preview message with a plain status line.
func respondUpdate(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
			Embeds:     []*discordgo.MessageEmbed{},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error updating interaction message")
	}
}
