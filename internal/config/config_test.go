package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/faizmokh/diary/internal/diary"
)

// isolate runs the test from an empty directory so a stray .env is never loaded.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("DIARY_OWNER", "")
	t.Setenv("DIARY_DEFAULT_MOOD", "")
	t.Setenv("DIARY_LOG_FILE", "")
	t.Setenv("DIARY_LOG_LEVEL", "")
	os.Unsetenv("DIARY_OWNER")
	os.Unsetenv("DIARY_DEFAULT_MOOD")
	os.Unsetenv("DIARY_LOG_FILE")
	os.Unsetenv("DIARY_LOG_LEVEL")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Owner != DefaultOwner {
		t.Fatalf("Owner = %q, want %q", cfg.Owner, DefaultOwner)
	}
	if cfg.DefaultMood != diary.MoodHappy {
		t.Fatalf("DefaultMood = %q, want happy", cfg.DefaultMood)
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Fatalf("LogLevel = %v, want WARN", cfg.LogLevel)
	}
}

func TestLoadHonorsEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("DIARY_OWNER", "Ada")
	t.Setenv("DIARY_DEFAULT_MOOD", "Coffee")
	t.Setenv("DIARY_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Owner != "Ada" {
		t.Fatalf("Owner = %q, want Ada", cfg.Owner)
	}
	if cfg.DefaultMood != diary.MoodCoffee {
		t.Fatalf("DefaultMood = %q, want coffee", cfg.DefaultMood)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(".env", []byte("DIARY_OWNER=Grace\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DIARY_OWNER") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Owner != "Grace" {
		t.Fatalf("Owner = %q, want Grace", cfg.Owner)
	}
}

func TestLoadExpandsTildeInLogFile(t *testing.T) {
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DIARY_LOG_FILE", "~/logs/diary.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := filepath.Join(home, "logs", "diary.log")
	if cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}
}

func TestLoadRejectsUnknownMood(t *testing.T) {
	isolate(t)
	t.Setenv("DIARY_DEFAULT_MOOD", "grumpy")

	if _, err := Load(); !errors.Is(err, diary.ErrUnknownMood) {
		t.Fatalf("Load() error = %v, want ErrUnknownMood", err)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("ERROR")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if level != slog.LevelError {
		t.Fatalf("ParseLevel = %v, want ERROR", level)
	}
	if _, err := ParseLevel("loud"); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("ParseLevel(loud) error = %v, want ErrInvalidLevel", err)
	}
}
