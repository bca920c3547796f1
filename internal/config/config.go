package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Data DataConfig `mapstructure:"data"`
	Game GameConfig `mapstructure:"game"`
}

type DataConfig struct {
	// File overrides the snapshot location; empty means the default
	// path under ~/.config/animal-guesser.
	File string `mapstructure:"file"`
}

type GameConfig struct {
	MaxQuestions  int `mapstructure:"max_questions"`
	MinCandidates int `mapstructure:"min_candidates"`
}

const (
	DefaultMaxQuestions  = 10
	DefaultMinCandidates = 2
)

// Load reads config.yaml from the user config dir. A missing config
// file is not an error; every key has a usable default.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "animal-guesser")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	// Defaults
	viper.SetDefault("data.file", "")
	viper.SetDefault("game.max_questions", DefaultMaxQuestions)
	viper.SetDefault("game.min_candidates", DefaultMinCandidates)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)
	return &cfg, nil
}

// normalize replaces out-of-range values with the defaults so a broken
// config degrades instead of breaking the game loop.
func normalize(cfg *Config) {
	if cfg.Game.MaxQuestions <= 0 {
		cfg.Game.MaxQuestions = DefaultMaxQuestions
	}
	if cfg.Game.MinCandidates <= 0 {
		cfg.Game.MinCandidates = DefaultMinCandidates
	}
}
