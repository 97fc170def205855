package bot

import (
	"github.com/MiraiSubject/CoteValentines2023/handler"

	"github.com/bwmarrin/discordgo"
)

func registerEventHandlers(s *discordgo.Session) {
	s.AddHandler(handler.OnInteractionCreate)

	// The bot only reacts to interactions; no message content needed.
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
}
