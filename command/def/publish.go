package def

import (
	"github.com/bwmarrin/discordgo"
)

var PublishCommand = &discordgo.ApplicationCommand{
	Name:                     "publish",
	Description:              "Sends all letters to this channel",
	DMPermission:             boolPtr(false),
	DefaultMemberPermissions: int64Ptr(discordgo.PermissionManageMessages),
}

func boolPtr(v bool) *bool {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}
