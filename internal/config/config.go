package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config describes runtime settings for the game binary.
//
// Only diagnostics are configurable: the game itself (alphabet, code
// length, messages) is fixed. Load once in main, then pass it down.
type Config struct {
	Log struct {
		Format string `validate:"oneof=text json"`
		Level  string `validate:"oneof=debug info warn error"`
	}
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Log.Format = envString("BNC_LOG_FORMAT", "text")
	c.Log.Level = envString("BNC_LOG_LEVEL", "error")

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config (BNC_LOG_FORMAT=%q BNC_LOG_LEVEL=%q): %w", c.Log.Format, c.Log.Level, err)
	}
	return nil
}

// SlogLevel maps Log.Level onto slog. Unknown values fall back to error.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
