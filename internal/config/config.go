// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

var validStores = []string{StoreJSON, StoreSQLite, StoreMemory}

type Config struct {
	// Persistence
	Store    string
	DataFile string
	DBPath   string

	// HTTP server
	Addr string

	// UI
	MessageDuration time.Duration

	// Logging. LogFile is only used while the terminal UI owns the screen.
	LogLevel string
	LogFile  string
}

// Load reads settings from the environment. Values in a .env file in the
// working directory are used for variables that are not already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	return &Config{
		Store:           getEnv("EVENUP_STORE", StoreJSON),
		DataFile:        getEnv("EVENUP_DATA_FILE", "./data/people.json"),
		DBPath:          getEnv("EVENUP_DB_PATH", "./data/evenup.db"),
		Addr:            getEnv("EVENUP_ADDR", ":8080"),
		MessageDuration: getEnvDuration("EVENUP_MESSAGE_DURATION", 3*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("EVENUP_LOG_FILE", "./data/evenup.log"),
	}
}

// Validate returns an error listing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if !slices.Contains(validStores, c.Store) {
		problems = append(problems, fmt.Sprintf("invalid store %q: must be one of %v", c.Store, validStores))
	}
	if c.Store == StoreJSON && c.DataFile == "" {
		problems = append(problems, "data file path cannot be empty when using json store")
	}
	if c.Store == StoreSQLite && c.DBPath == "" {
		problems = append(problems, "SQLite database path cannot be empty when using sqlite store")
	}
	if c.Addr == "" {
		problems = append(problems, "listen address cannot be empty")
	}
	if c.MessageDuration <= 0 {
		problems = append(problems, fmt.Sprintf("invalid message duration %s: must be positive", c.MessageDuration))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Ignoring invalid duration", "key", key, "value", value, "error", err)
		return fallback
	}
	return d
}
