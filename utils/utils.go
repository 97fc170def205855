package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/MiraiSubject/CoteValentines2023/model"
)

// StringPtr returns a pointer to the given string.
// This is a helper function for discordgo fields that require a *string.
func StringPtr(s string) *string {
	return &s
}

// SavePanelState writes the panel location to a JSON file.
func SavePanelState(filePath, channelID, messageID string) error {
	state := model.PanelState{
		ChannelID: channelID,
		MessageID: messageID,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

// LoadPanelState reads the panel location from a JSON file. Returns nil with
// no error when the file does not exist yet.
func LoadPanelState(filePath string) (*model.PanelState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state model.PanelState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}
