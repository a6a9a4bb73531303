// Package config loads process-wide settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds runtime configuration, read once at startup.
type Config struct {
	MaxWorkers int
	LogLevel   logrus.Level
	LogFormat  string // "text" or "json"
	ItemDelay  time.Duration
}

// Load reads configuration from the environment, applying defaults for unset
// variables: MAX_WORKERS=8, LOGGING_LEVEL=debug, LOGGING_FORMAT=text,
// ITEM_DELAY=500ms.
func Load() (*Config, error) {
	cfg := &Config{}

	workers, err := strconv.Atoi(getEnv("MAX_WORKERS", "8"))
	if err != nil || workers < 1 {
		return nil, fmt.Errorf("MAX_WORKERS must be a positive integer, got %q", os.Getenv("MAX_WORKERS"))
	}
	cfg.MaxWorkers = workers

	level, err := logrus.ParseLevel(getEnv("LOGGING_LEVEL", "debug"))
	if err != nil {
		return nil, fmt.Errorf("LOGGING_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	format := getEnv("LOGGING_FORMAT", "text")
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("LOGGING_FORMAT must be \"text\" or \"json\", got %q", format)
	}
	cfg.LogFormat = format

	delay, err := time.ParseDuration(getEnv("ITEM_DELAY", "500ms"))
	if err != nil || delay < 0 {
		return nil, fmt.Errorf("ITEM_DELAY must be a non-negative duration, got %q", os.Getenv("ITEM_DELAY"))
	}
	cfg.ItemDelay = delay

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
