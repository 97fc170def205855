package valentine

import (
	"github.com/MiraiSubject/CoteValentines2023/db"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// maxAutocompleteChoices is Discord's own cap on autocomplete results.
const maxAutocompleteChoices = 25

// RecipientAutocompleteHandler serves the recipient option of /sendletter
// from the directory. Failures degrade to an empty choice list; the field
// stays free text either way.
func RecipientAutocompleteHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var query string
	for _, option := range i.ApplicationCommandData().Options {
		if option.Focused {
			query = option.StringValue()
			break
		}
	}

	choices := []*discordgo.ApplicationCommandOptionChoice{}
	found, err := db.SearchRecipients(query, maxAutocompleteChoices)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Error searching recipients")
	} else {
		for _, rec := range found {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  rec.FullName,
				Value: rec.FullName,
			})
		}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Error responding to autocomplete")
	}
}
