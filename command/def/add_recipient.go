package def

import (
	"github.com/bwmarrin/discordgo"
)

var AddRecipientCommand = &discordgo.ApplicationCommand{
	Name:                     "add_recipient",
	Description:              "Adds a recipient to the autocomplete list",
	DMPermission:             boolPtr(false),
	DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "name",
			Description: "Name of the person to add",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "is_real",
			Description: "Whether this person is a real human",
			Required:    true,
		},
	},
}
