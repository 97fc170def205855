package model

import "time"

// PanelState records where the letter panel message currently lives.
type PanelState struct {
	ChannelID string    `json:"channel_id"`
	MessageID string    `json:"message_id"`
	CreatedAt time.Time `json:"created_at"`
}
