package valentine

import (
	"fmt"

	"github.com/MiraiSubject/CoteValentines2023/config"
	"github.com/MiraiSubject/CoteValentines2023/letters"
	"github.com/MiraiSubject/CoteValentines2023/model"
	"github.com/MiraiSubject/CoteValentines2023/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// CreatePanelCommandHandler posts the letter panel in the invoking channel.
// Any previously created panel is removed first so only one panel is live.
func CreatePanelCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error sending deferred response")
		return
	}

	go func() {
		if !utils.CheckAuth(i.Member.User.ID, i.Member.Roles) {
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr("You aren't allowed to do this"),
			})
			return
		}

		statePath := config.Cfg.Valentine.PanelStatePath
		if state, err := utils.LoadPanelState(statePath); err != nil {
			log.Warn().Err(err).Msg("Could not read panel state")
		} else if state != nil {
			// Best effort: the old panel may have been deleted by hand.
			if err := s.ChannelMessageDelete(state.ChannelID, state.MessageID); err != nil {
				log.Warn().Err(err).Str("message_id", state.MessageID).Msg("Could not remove the old panel")
			}
		}

		message, err := s.ChannelMessageSendComplex(i.ChannelID, CreatePanelMessage())
		if err != nil {
			log.Error().Err(err).Msg("Error sending panel message")
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("Could not create the panel: %v", err)),
			})
			return
		}

		if err := utils.SavePanelState(statePath, message.ChannelID, message.ID); err != nil {
			log.Error().Err(err).Msg("Error saving panel state")
			s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content: utils.StringPtr(fmt.Sprintf("Panel created, but its state could not be saved: %v", err)),
			})
			return
		}

		s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: utils.StringPtr("Panel created"),
		})
	}()
}

// CreatePanelMessage builds the panel message with the send button.
func CreatePanelMessage() *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title: "Valentine's Letters",
		Description: "Send a valentine's letter to a mod or heroine of the event!\n\n" +
			"Press the button below, write your letter and pick whether to sign it " +
			"or stay anonymous. Every person can send up to two letters.",
		Color: 0xFF69B4,
		Footer: &discordgo.MessageEmbedFooter{
			Text: letters.EventFooter,
		},
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Send a letter",
						Style:    discordgo.PrimaryButton,
						CustomID: "create_letter_button",
						Emoji:    &discordgo.ComponentEmoji{Name: "💌"},
					},
				},
			},
		},
	}
}

// CreateLetterButtonHandler opens the letter modal from the panel.
func CreateLetterButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !svc.Allowed() {
		respondEphemeral(s, i, "Letters are not being accepted right now")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: "letter_modal",
			Title:    "Write your valentine's letter",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "letter_recipient",
							Label:       "Who is this letter for?",
							Style:       discordgo.TextInputShort,
							Placeholder: "A mod or heroine of the event",
							Required:    true,
							MinLength:   1,
							MaxLength:   20,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "letter_content",
							Label:       "Your letter",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Pour your heart out",
							Required:    true,
							MinLength:   100,
							MaxLength:   2000,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error creating letter modal")
	}
}

// LetterModalHandler turns the modal input into the shared preview. The panel
// flow has no anonymous option up front, so the preview offers both choices.
func LetterModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var recipient, content string
	for _, component := range i.ModalSubmitData().Components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			textInput, ok := comp.(*discordgo.TextInput)
			if !ok {
				continue
			}
			switch textInput.CustomID {
			case "letter_recipient":
				recipient = textInput.Value
			case "letter_content":
				content = textInput.Value
			}
		}
	}

	if recipient == "" || content == "" {
		respondEphemeral(s, i, "Both a recipient and a letter are required, please try again")
		return
	}

	pending := model.PendingLetter{
		SenderID:   i.Member.User.ID,
		SenderName: i.Member.User.Username,
		Recipient:  recipient,
		Content:    content,
	}
	cacheID := utils.AddToCache(pending)

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Send",
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("letter_submit:%s:false", cacheID),
					Emoji:    &discordgo.ComponentEmoji{Name: "💌"},
				},
				discordgo.Button{
					Label:    "Send anonymously",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("letter_submit:%s:true", cacheID),
					Emoji:    &discordgo.ComponentEmoji{Name: "👤"},
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
			Content:    "Here is how your letter will appear. How do you want to send it?",
			Embeds:     []*discordgo.MessageEmbed{previewEmbed(pending)},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error sending letter preview from modal")
	}
}
