// Package config loads the runtime settings of the frontends from the
// environment and an optional .env file.
package config

import (
	"os"
	"strings"
)

// GetEnv returns the trimmed value of the environment variable named by the
// key, or fallback if the variable is unset or blank.
func GetEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
