package valentine

import (
	"github.com/MiraiSubject/CoteValentines2023/config"
	"github.com/MiraiSubject/CoteValentines2023/letters"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// svc is the letter service shared by all handlers in this package.
var svc *letters.Service

// Setup wires the letter service to the Discord session. Must run before the
// session starts receiving interactions.
func Setup(s *discordgo.Session) {
	var audit letters.AuditSink
	if channelID := config.Cfg.Valentine.AuditChannelID; channelID != "" {
		audit = &discordAuditSink{session: s, channelID: channelID}
	} else {
		log.Warn().Msg("No audit channel configured; letters will be recorded without a cross reference")
	}
	svc = letters.NewService(audit)
}
