package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables read by the frontends.
const (
	EnvSeed     = "SHOOTER_SEED"
	EnvLogLevel = "SHOOTER_LOG_LEVEL"
	EnvLogFile  = "SHOOTER_LOG_FILE"
	EnvKeyHold  = "SHOOTER_KEY_HOLD_MS"
)

const (
	defaultLogLevel  = "info"
	defaultKeyHoldMS = 120
)

// Settings are the runtime options of a frontend.
type Settings struct {
	Seed     int64 // Zero means time-based
	LogLevel log.Level
	LogFile  string        // Empty means the frontend's default sink
	KeyHold  time.Duration // Terminal key-repeat hold window
}

// Load reads a .env file from the working directory if one exists, then
// parses the settings from the environment.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv parses the settings from the environment only.
func FromEnv() (Settings, error) {
	var s Settings

	if v := GetEnv(EnvSeed, ""); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}

	level, err := log.ParseLevel(GetEnv(EnvLogLevel, defaultLogLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
	}
	s.LogLevel = level

	s.LogFile = GetEnv(EnvLogFile, "")

	hold, err := strconv.Atoi(GetEnv(EnvKeyHold, strconv.Itoa(defaultKeyHoldMS)))
	if err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", EnvKeyHold, err)
	}
	if hold <= 0 {
		return Settings{}, fmt.Errorf("parse %s: must be positive, got %d", EnvKeyHold, hold)
	}
	s.KeyHold = time.Duration(hold) * time.Millisecond

	return s, nil
}

// Logger creates a logger writing to w at the configured level.
func (s Settings) Logger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           s.LogLevel,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
