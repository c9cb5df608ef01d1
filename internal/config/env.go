package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process level settings read from the environment by the
// poweradminurt command.
type Env struct {
	ConfigPath string `env:"POWERADMIN_CONFIG"       envDefault:"config/poweradminurt.yaml"`
	Game       string `env:"POWERADMIN_GAME"         envDefault:"iourt42"`
	LogLevel   string `env:"POWERADMIN_LOG_LEVEL"`
	TimeZone   string `env:"POWERADMIN_TIMEZONE"     envDefault:"UTC"`
	// ReplayLevel is the privilege level given to every player seen in a
	// replayed log.
	ReplayLevel int `env:"POWERADMIN_REPLAY_LEVEL" envDefault:"100"`
}

// LoadEnv parses Env from environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
