package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level structure of config.yaml.
type Config struct {
	Token        string    `mapstructure:"TOKEN"`
	DatabasePath string    `mapstructure:"database_path"`
	Commands     Commands  `mapstructure:"commands"`
	Valentine    Valentine `mapstructure:"valentine"`
}

// Commands corresponds to the "commands" section.
type Commands struct {
	AllowGuilds []string `mapstructure:"allow_guilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth corresponds to the "auth" section.
type Auth struct {
	Developers  []string `mapstructure:"Developers"`
	AdminsRoles []string `mapstructure:"AdminsRoles"`
}

// Valentine corresponds to the "valentine" section.
type Valentine struct {
	// AuditChannelID is where every accepted letter is logged for the mods.
	// Leave empty to run without an audit channel.
	AuditChannelID string `mapstructure:"audit_channel_id"`
	PanelStatePath string `mapstructure:"panel_state_path"`

	// Budget for /publish: the whole run must fit inside PublishMaxRuntime
	// and no single letter waits longer than PublishMaxDelay.
	PublishMaxRuntime time.Duration `mapstructure:"publish_max_runtime"`
	PublishMaxDelay   time.Duration `mapstructure:"publish_max_delay"`
}

var Cfg Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("database_path", "./data/letters.db")
	viper.SetDefault("valentine.panel_state_path", "panel_state.json")
	viper.SetDefault("valentine.publish_max_runtime", "10m")
	viper.SetDefault("valentine.publish_max_delay", "5s")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
