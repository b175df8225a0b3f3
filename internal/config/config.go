package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/arcslider/internal/paths"
	"github.com/garrettladley/arcslider/internal/xslog"
)

type Config struct {
	ConfigPath string      `env:"ARCSLIDER_CONFIG"`
	LogFile    string      `env:"ARCSLIDER_LOG_FILE"`
	Examples   bool        `env:"ARCSLIDER_EXAMPLES"`
	LogLevel   xslog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Read parses the environment and fills unset paths with their locations
// under the user's config directory.
func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.ConfigPath == "" {
		if cfg.ConfigPath, err = paths.SliderFile(); err != nil {
			return Config{}, err
		}
	}
	if cfg.LogFile == "" {
		if cfg.LogFile, err = paths.LogFile(); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
