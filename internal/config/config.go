package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Users      int      `json:"users" mapstructure:"users"`
	OutputDir  string   `json:"output_dir" mapstructure:"output_dir"`
	Seed       int64    `json:"seed" mapstructure:"seed"`
	Chats      int      `json:"chats" mapstructure:"chats"`
	Promotions int      `json:"promotions" mapstructure:"promotions"`
	Database   Database `json:"database" mapstructure:"database"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Users == 0 {
		cfg.Users = 50
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "dummy_data/"
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.Chats == 0 {
		cfg.Chats = 200
	}
	if cfg.Promotions == 0 {
		cfg.Promotions = 15
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	if c.Users < 1 {
		return fmt.Errorf("users must be at least 1, got %d", c.Users)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	return nil
}
