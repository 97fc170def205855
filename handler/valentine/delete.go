package valentine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/MiraiSubject/CoteValentines2023/letters"
	"github.com/MiraiSubject/CoteValentines2023/utils"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// DeleteLetterButtonHandler reacts to the Delete button on an audit-channel
// message. It only opens a confirmation modal; nothing is removed yet.
func DeleteLetterButtonHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Member == nil {
		return
	}

	allowed := i.Member.Permissions&discordgo.PermissionManageMessages != 0 ||
		utils.CheckAuth(i.Member.User.ID, i.Member.Roles)
	if !allowed {
		respondEphemeral(s, i, "You aren't allowed to do this. (Manage Messages permission required)")
		return
	}

	// The audit message's own ID is the cross reference into the store.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("delete_letter_modal:%s", i.Message.ID),
			Title:    "You are about to delete a Valentines letter!",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "delete_confirm",
							Label:       "Just making sure!",
							Style:       discordgo.TextInputShort,
							Placeholder: "Don't make a mistake!",
							Required:    false,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error creating delete modal")
	}
}

// DeleteLetterModalHandler retracts the letter behind the audit message and
// rewrites that message into a deletion notice. Pressing delete twice on the
// same message fails cleanly the second time.
func DeleteLetterModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.SplitN(i.ModalSubmitData().CustomID, ":", 2)
	if len(parts) < 2 {
		respondEphemeral(s, i, "Something went wrong, please press the delete button again")
		return
	}
	messageID := parts[1]

	deleted, err := svc.Retract(messageID)
	if err != nil {
		if errors.Is(err, db.ErrLetterNotFound) {
			respondEphemeral(s, i, "That letter is already gone")
		} else {
			log.Error().Err(err).Str("message_id", messageID).Msg("Error retracting letter")
			respondEphemeral(s, i, "Something went wrong while deleting the letter")
		}
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       letters.DeletedTitle(deleted),
		Description: letters.TruncateEllipse(deleted.Content, 50),
		Color:       0xFF0000,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Deleted",
				Value: fmt.Sprintf("by %s at %s", i.Member.User.Username, time.Now().UTC().Format(time.RFC3339)),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: letters.EventFooter,
		},
	}

	_, err = s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         messageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		// The letter is gone either way; the audit message just keeps its old look.
		log.Error().Err(err).Str("message_id", messageID).Msg("Error editing audit message after retraction")
	}

	respondEphemeral(s, i, "Deleted a message")
}
