// Package config loads the executable's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-dice/game"
)

// ErrInvalidLogLevel is returned by Load for an unknown MENTAL_DICE_LOG_LEVEL.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds the settings read from MENTAL_DICE_* variables.
type Config struct {
	LogLevel     string `env:"MENTAL_DICE_LOG_LEVEL" envDefault:"warn"`
	Plain        bool   `env:"MENTAL_DICE_PLAIN" envDefault:"false"`
	StrictVerify bool   `env:"MENTAL_DICE_STRICT_VERIFY" envDefault:"false"`
	Interactive  bool   `env:"MENTAL_DICE_INTERACTIVE" envDefault:"true"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
	}
}

// SlogLevel returns the configured level, warn when it is not recognised.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

// PtermLevel returns the configured level for the pterm logger.
func (c Config) PtermLevel() pterm.LogLevel {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return pterm.LogLevelDebug
	case slog.LevelInfo:
		return pterm.LogLevelInfo
	case slog.LevelError:
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}

// Policy returns FailOnMismatch when strict verification is on.
func (c Config) Policy() game.VerificationPolicy {
	if c.StrictVerify {
		return game.FailOnMismatch
	}
	return game.WarnOnMismatch
}
