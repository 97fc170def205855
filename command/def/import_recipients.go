package def

import (
	"github.com/bwmarrin/discordgo"
)

var ImportRecipientsCommand = &discordgo.ApplicationCommand{
	Name:                     "import_recipients",
	Description:              "Replaces the whole autocomplete list with a new set of names",
	DMPermission:             boolPtr(false),
	DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "is_real",
			Description: "Whether the imported names are real humans",
			Required:    true,
		},
	},
}
