package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type ServerConfig struct {
	Port string `json:"port"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Port == "" {
		c.Port = Get("PORT", "8080")
	}
}

// DatabaseConfig selects where the dataset is read from. An empty driver
// reads the JSON seed file directly.
type DatabaseConfig struct {
	// Driver is "", "sqlite" or "postgres".
	Driver string `json:"driver"`
	// Path is the SQLite database file.
	Path string `json:"path"`
	// URL is the Postgres connection string.
	URL string `json:"url"`
}

func (c *DatabaseConfig) SetDefaults() {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Path == "" {
		c.Path = Get("DB_PATH", "data/dispatch.db")
	}
	if c.URL == "" {
		c.URL = Get("DATABASE_URL", "")
	}
}

func (c DatabaseConfig) Validate() error {
	switch c.Driver {
	case "", "sqlite":
	case "postgres":
		if c.URL == "" {
			return fmt.Errorf("url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown driver %s", c.Driver)
	}
	return nil
}

type DataConfig struct {
	SeedPath string `json:"seed_path"`
}

func (c *DataConfig) SetDefaults() {
	if c.SeedPath == "" {
		c.SeedPath = Get("SEED_PATH", "data/seeds/dataset.json")
	}
}

type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level %q: %w", c.Level, err)
	}
	return nil
}
