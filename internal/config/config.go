// Package config resolves diary settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/faizmokh/diary/internal/diary"
)

const (
	// DefaultOwner names the diary when DIARY_OWNER is unset.
	DefaultOwner = "Praneetha"
	// DefaultLogLevel keeps command output quiet unless asked otherwise.
	DefaultLogLevel = "warn"
)

// ErrInvalidLevel is returned when DIARY_LOG_LEVEL cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")

// Config holds settings shared by the CLI and the TUI.
type Config struct {
	Owner       string
	DefaultMood diary.Mood
	LogFile     string
	LogLevel    slog.Level
}

// Load reads configuration from a .env file (if present) and the environment.
// Real environment variables win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DIARY_OWNER", DefaultOwner)
	v.SetDefault("DIARY_DEFAULT_MOOD", string(diary.MoodHappy))
	v.SetDefault("DIARY_LOG_FILE", "")
	v.SetDefault("DIARY_LOG_LEVEL", DefaultLogLevel)
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Owner = strings.TrimSpace(v.GetString("DIARY_OWNER"))
	if cfg.Owner == "" {
		cfg.Owner = DefaultOwner
	}

	mood, err := diary.ParseMood(v.GetString("DIARY_DEFAULT_MOOD"))
	if err != nil {
		return nil, fmt.Errorf("DIARY_DEFAULT_MOOD: %w", err)
	}
	cfg.DefaultMood = mood

	if logFile := strings.TrimSpace(v.GetString("DIARY_LOG_FILE")); logFile != "" {
		path, err := normalizePath(logFile)
		if err != nil {
			return nil, err
		}
		cfg.LogFile = path
	}

	level, err := ParseLevel(v.GetString("DIARY_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// ParseLevel maps debug|info|warn|error (any case) to a slog level.
func ParseLevel(value string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return 0, fmt.Errorf("%w %q (expected debug|info|warn|error)", ErrInvalidLevel, value)
	}
	return level, nil
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
