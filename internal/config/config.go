package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/td0m/checklist/internal/ui"
	"github.com/td0m/checklist/pkg/task"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

var ErrUnknownStore = errors.New("unknown store")

// Config holds application configuration.
type Config struct {
	// Store
	Store        string
	File         string
	SQLitePath   string
	RedisURL     string
	Key          string
	StoreTimeout time.Duration

	// Display
	Categories []task.Category
	Locale     ui.Locale

	// Logging
	LogFile  string
	LogLevel string
}

// Load loads configuration from environment variables.
// Callers apply their overrides and then call Validate.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	dir := defaultDir()
	cfg := &Config{
		Store:        getEnv("CHECKLIST_STORE", StoreFile),
		File:         getEnv("CHECKLIST_FILE", filepath.Join(dir, "tasks.json")),
		SQLitePath:   getEnv("CHECKLIST_SQLITE_PATH", filepath.Join(dir, "tasks.db")),
		RedisURL:     getEnv("CHECKLIST_REDIS_URL", "redis://localhost:6379/0"),
		Key:          getEnv("CHECKLIST_KEY", "tasks"),
		StoreTimeout: getDurationEnv("CHECKLIST_STORE_TIMEOUT", 2*time.Second),

		Categories: getCategoriesEnv("CHECKLIST_CATEGORIES", task.DefaultCategories),
		Locale:     ui.Locale(getEnv("CHECKLIST_LOCALE", string(ui.English))),

		LogFile:  getEnv("CHECKLIST_LOG_FILE", filepath.Join(dir, "checklist.log")),
		LogLevel: getEnv("CHECKLIST_LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks values that cannot be fixed by falling back to a default.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreFile, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("%w %q, expected file, sqlite or redis", ErrUnknownStore, c.Store)
	}
	if err := c.Locale.Valid(); err != nil {
		return fmt.Errorf("%w %q", err, c.Locale)
	}
	if c.Key == "" {
		return errors.New("store key must not be empty")
	}
	if len(c.Categories) == 0 {
		return errors.New("at least one category is required")
	}
	return nil
}

func defaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "checklist")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getCategoriesEnv(key string, defaultValue []task.Category) []task.Category {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []task.Category
	for _, c := range strings.Split(value, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, task.Category(c))
		}
	}
	return out
}
