// Package config resolves runtime settings from ~/.tempo/config.yaml,
// TEMPO_* environment variables, and built-in defaults, in that order of
// increasing precedence for the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds everything the binary needs to start.
type Config struct {
	DBPath       string `mapstructure:"db"`
	ActivityLog  string `mapstructure:"activity_log"`
	DayStartHour int    `mapstructure:"day_start_hour"`
	User         string `mapstructure:"user"`
}

// Load reads the configuration. A missing config file is fine; defaults
// and the environment carry it.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	configDir := filepath.Join(home, ".tempo")

	v.SetDefault("db", filepath.Join(configDir, "tempo.db"))
	v.SetDefault("activity_log", filepath.Join(configDir, "focus.jsonl"))
	v.SetDefault("day_start_hour", 9)
	v.SetDefault("user", "default")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	if override := os.Getenv("TEMPO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.SetEnvPrefix("TEMPO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.DayStartHour < 0 || cfg.DayStartHour > 23 {
		return nil, fmt.Errorf("day_start_hour %d out of range", cfg.DayStartHour)
	}
	return &cfg, nil
}
