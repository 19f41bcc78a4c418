package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Supported log encodings.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config represents the full application configuration surface.
type Config struct {
	App AppConfig
	Log LogConfig
}

// AppConfig holds console session options.
type AppConfig struct {
	// Locale selects the label catalog, e.g. "en" or "ru".
	Locale string
}

// LogConfig holds zap logger options.
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine; every setting has a default.
		_ = godotenv.Load()
	}

	cfg := &Config{
		App: AppConfig{
			Locale: getenvWithDefault("APP_LOCALE", "en"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getenvWithDefault("LOG_LEVEL", "warn")),
			Format: strings.ToLower(getenvWithDefault("LOG_FORMAT", LogFormatConsole)),
			Output: getenvWithDefault("LOG_OUTPUT", "stderr"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that configuration values are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.App.Locale == "" {
		return errors.New("APP_LOCALE must not be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.Log.Level)
	}

	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("LOG_FORMAT %q is not one of console, json", c.Log.Format)
	}

	if c.Log.Output == "" {
		return errors.New("LOG_OUTPUT must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
