package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen         string  `yaml:"listen"`
	Timezone       string  `yaml:"timezone"`
	WeeklyHours    float64 `yaml:"weekly_hours"`
	MaxConnections int     `yaml:"max_connections"`
}

func Default() Config {
	return Config{
		Listen:         "0.0.0.0:8090",
		Timezone:       "Europe/Paris",
		WeeklyHours:    35,
		MaxConnections: 10,
	}
}

// Load reads a YAML config file, falling back to defaults for anything the
// file leaves out. A missing file is not an error; secrets (DSN, Slack token,
// signing secret) come from the environment, never from this file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	if cfg.Timezone == "" {
		cfg.Timezone = Default().Timezone
	}
	if cfg.WeeklyHours <= 0 {
		cfg.WeeklyHours = Default().WeeklyHours
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = Default().MaxConnections
	}

	return cfg, nil
}
