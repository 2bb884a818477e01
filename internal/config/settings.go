package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options sourced from the environment. CLI flags
// override them; they exist so facility installs can steer logging and the
// config location without editing the host's startup scripts.
type Settings struct {
	LogLevel   string   `env:"THORIUM_LOG_LEVEL" envDefault:"info"`
	LogFormat  string   `env:"THORIUM_LOG_FORMAT" envDefault:"text"`
	ConfigPath string   `env:"THORIUM_CONFIG"`
	MenuName   string   `env:"THORIUM_MENU" envDefault:"Thorium"`
	IconPath   []string `env:"THORIUM_ICON_PATH" envSeparator:":"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("reading environment settings: %w", err)
	}
	return s, nil
}
