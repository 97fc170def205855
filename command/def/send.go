package def

import (
	"github.com/bwmarrin/discordgo"
)

var SendLetterCommand = &discordgo.ApplicationCommand{
	Name:        "sendletter",
	Description: "Send a valentine's letter",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "recipient",
			Description:  "The mod or heroine whom you want to send a valentine's letter to",
			Required:     true,
			Autocomplete: true,
			MinLength:    intPtr(1),
			MaxLength:    20,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "letter",
			Description: "The letter that you want to send to this person!",
			Required:    true,
			MinLength:   intPtr(100),
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "anonymous",
			Description: "Do you want to send this message anonymously?",
			Required:    true,
		},
	},
}

func intPtr(v int) *int {
	return &v
}
