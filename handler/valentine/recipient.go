package valentine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// AddRecipientCommandHandler handles /add_recipient.
func AddRecipientCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var name string
	var isReal bool
	for _, option := range i.ApplicationCommandData().Options {
		switch option.Name {
		case "name":
			name = option.StringValue()
		case "is_real":
			isReal = option.BoolValue()
		}
	}

	if name == "" {
		respondEphemeral(s, i, "A name is required")
		return
	}

	if err := db.AddRecipient(name, isReal); err != nil {
		if errors.Is(err, db.ErrDuplicateRecipient) {
			respondEphemeral(s, i, fmt.Sprintf("%s is already on the list", name))
		} else {
			log.Error().Err(err).Str("name", name).Msg("Error adding recipient")
			respondEphemeral(s, i, "Something went wrong while adding this person")
		}
		return
	}

	kind := "fictional"
	if isReal {
		kind = "real"
	}
	respondEphemeral(s, i, fmt.Sprintf("Done adding %s person %s", kind, name))
}

// ImportRecipientsCommandHandler handles /import_recipients by opening a
// modal for the name list. The is_real choice rides on the modal custom ID.
func ImportRecipientsCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var isReal bool
	for _, option := range i.ApplicationCommandData().Options {
		if option.Name == "is_real" {
			isReal = option.BoolValue()
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: fmt.Sprintf("import_recipients_modal:%s", strconv.FormatBool(isReal)),
			Title:    "Replace the recipient list",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "recipient_names",
							Label:       "One name per line",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Alice\nBob\n...",
							Required:    true,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error creating import modal")
	}
}

// ImportRecipientsModalHandler replaces the whole directory with the pasted
// names. This wipes whatever was there before.
func ImportRecipientsModalHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	parts := strings.SplitN(i.ModalSubmitData().CustomID, ":", 2)
	isReal := len(parts) > 1 && parts[1] == "true"

	var namesText string
	for _, component := range i.ModalSubmitData().Components {
		actionRow, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionRow.Components {
			if textInput, ok := comp.(*discordgo.TextInput); ok && textInput.CustomID == "recipient_names" {
				namesText = textInput.Value
			}
		}
	}

	names := strings.Split(namesText, "\n")
	count, err := db.ReplaceAllRecipients(names, isReal)
	if err != nil {
		log.Error().Err(err).Msg("Error replacing recipients")
		respondEphemeral(s, i, "Something went wrong while replacing the list")
		return
	}

	respondEphemeral(s, i, fmt.Sprintf("Replaced the recipient list, it now holds %d names", count))
}
