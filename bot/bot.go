package bot

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/MiraiSubject/CoteValentines2023/command"
	"github.com/MiraiSubject/CoteValentines2023/config"
	"github.com/MiraiSubject/CoteValentines2023/handler/valentine"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

var dg *discordgo.Session

// Run starts the bot and blocks until SIGINT/SIGTERM.
func Run() {
	valentine.RegisterHandlers()

	var err error
	dg, err = discordgo.New("Bot " + config.Cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating Discord session")
	}

	valentine.Setup(dg)
	registerEventHandlers(dg)

	err = dg.Open()
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening connection")
	}

	for _, guildID := range config.Cfg.Commands.AllowGuilds {
		for _, cmd := range command.AllCommands {
			_, err := dg.ApplicationCommandCreate(dg.State.User.ID, guildID, cmd)
			if err != nil {
				log.Fatal().Err(err).Str("command", cmd.Name).Msg("Cannot create command")
			}
		}
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}

// GetSession returns the current Discord session.
func GetSession() *discordgo.Session {
	return dg
}
