package command

import (
	"github.com/MiraiSubject/CoteValentines2023/command/def"

	"github.com/bwmarrin/discordgo"
)

// AllCommands contains all of the commands
var AllCommands = []*discordgo.ApplicationCommand{
	def.SendLetterCommand,
	def.PublishCommand,
	def.AllowLettersCommand,
	def.AddRecipientCommand,
	def.ImportRecipientsCommand,
	def.CreatePanelCommand,
}
