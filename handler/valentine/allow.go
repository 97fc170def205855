package valentine

import (
	"fmt"

	"github.com/MiraiSubject/CoteValentines2023/utils"
	"github.com/bwmarrin/discordgo"
)

// AllowLettersCommandHandler handles /allow_letters, flipping the intake gate.
func AllowLettersCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	allowed := i.Member.Permissions&discordgo.PermissionAdministrator != 0 ||
		utils.CheckAuth(i.Member.User.ID, i.Member.Roles)
	if !allowed {
		respondEphemeral(s, i, "You aren't allowed to do this")
		return
	}

	var value bool
	found := false
	for _, option := range i.ApplicationCommandData().Options {
		if option.Name == "allowed" {
			value = option.BoolValue()
			found = true
		}
	}
	if !found {
		respondEphemeral(s, i, "Missing the allowed option")
		return
	}

	svc.SetAllowed(value)

	state := "allowed"
	if !value {
		state = "not allowed"
	}
	respondEphemeral(s, i, fmt.Sprintf("Set letters to %s", state))
}
