package valentine

import (
	"math/rand"

	"github.com/MiraiSubject/CoteValentines2023/letters"
	"github.com/MiraiSubject/CoteValentines2023/model"
	"github.com/bwmarrin/discordgo"
)

// discordAuditSink posts accepted letters to the mod audit channel. The
// returned message ID is stored on the letter as the retraction handle.
type discordAuditSink struct {
	session   *discordgo.Session
	channelID string
}

func (a *discordAuditSink) LogLetter(letter *model.Letter) (string, error) {
	embed := &discordgo.MessageEmbed{
		Title:       letters.AuditTitle(letter),
		Description: letter.Content,
		Color:       0xFFC0CB,
		Footer: &discordgo.MessageEmbedFooter{
			Text: letters.EventFooter,
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Delete",
					Style:    discordgo.DangerButton,
					CustomID: "delete_letter",
					Emoji:    &discordgo.ComponentEmoji{Name: "🗑️"},
				},
			},
		},
	}

	msg, err := a.session.ChannelMessageSendComplex(a.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// discordChannelSink delivers rendered letters during /publish. Anonymity is
// already baked into the title by the letters package.
type discordChannelSink struct {
	session   *discordgo.Session
	channelID string
}

func (c *discordChannelSink) SendLetter(letter *model.Letter) error {
	embed := &discordgo.MessageEmbed{
		Title:       letters.PublishTitle(letter),
		Description: letter.Content,
		Color:       pinkColor(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: letters.EventFooter,
		},
	}

	_, err := c.session.ChannelMessageSendComplex(c.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	return err
}

// pinkPalette matches the pink hue range the event embeds use.
var pinkPalette = []int{0xFF69B4, 0xFFB6C1, 0xFF1493, 0xDB7093, 0xFFC0CB}

func pinkColor() int {
	return pinkPalette[rand.Intn(len(pinkPalette))]
}
