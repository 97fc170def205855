package def

import (
	"github.com/bwmarrin/discordgo"
)

var AllowLettersCommand = &discordgo.ApplicationCommand{
	Name:                     "allow_letters",
	Description:              "Sets whether letters are allowed",
	DMPermission:             boolPtr(false),
	DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "allowed",
			Description: "Whether to allow letters",
			Required:    true,
		},
	},
}
