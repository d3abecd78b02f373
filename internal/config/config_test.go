package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SHOOTER_TEST_VALUE", "set")

	if got := GetEnv("SHOOTER_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("expected %q, got %q", "set", got)
	}
	if got := GetEnv("SHOOTER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected %q, got %q", "fallback", got)
	}

	t.Setenv("SHOOTER_TEST_VALUE", "  padded ")
	if got := GetEnv("SHOOTER_TEST_VALUE", "fallback"); got != "padded" {
		t.Errorf("expected %q, got %q", "padded", got)
	}
	t.Setenv("SHOOTER_TEST_VALUE", "   ")
	if got := GetEnv("SHOOTER_TEST_VALUE", "fallback"); got != "fallback" {
		t.Errorf("expected blank to fall back, got %q", got)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvLogLevel, "info")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvKeyHold, "120")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Seed != 0 || s.LogLevel != log.InfoLevel || s.LogFile != "" || s.KeyHold != 120*time.Millisecond {
		t.Errorf("unexpected defaults %+v", s)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "12345")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/shooter.log")
	t.Setenv(EnvKeyHold, "80")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := Settings{Seed: 12345, LogLevel: log.DebugLevel, LogFile: "/tmp/shooter.log", KeyHold: 80 * time.Millisecond}
	if s != want {
		t.Errorf("expected %+v, got %+v", want, s)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad seed", EnvSeed, "abc"},
		{"bad level", EnvLogLevel, "loud"},
		{"bad hold", EnvKeyHold, "soon"},
		{"zero hold", EnvKeyHold, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSeed, "")
			t.Setenv(EnvLogLevel, "info")
			t.Setenv(EnvKeyHold, "120")
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("expected error to name %s, got %v", tt.key, err)
			}
		})
	}
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Settings{LogLevel: log.WarnLevel}.Logger(&buf, "test")

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warn line with fields, got %q", out)
	}
}
