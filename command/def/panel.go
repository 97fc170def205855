package def

import (
	"github.com/bwmarrin/discordgo"
)

var CreatePanelCommand = &discordgo.ApplicationCommand{
	Name:                     "create_panel",
	Description:              "Posts the letter panel in this channel",
	DMPermission:             boolPtr(false),
	DefaultMemberPermissions: int64Ptr(discordgo.PermissionAdministrator),
}
