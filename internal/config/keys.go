// API key resolution for the memory collaborator.
package config

import (
	"errors"
	"os"
	"strings"
)

// ErrNoAPIKey is returned when no memory API key is configured.
var ErrNoAPIKey = errors.New("no memory API key configured")

// GetAPIKey returns the memory collaborator API key.
// It checks in order: environment variable, config file.
func GetAPIKey(cfg *Config) (string, error) {
	// First check environment variable directly
	if key := os.Getenv("JARVIS_API_KEY"); key != "" {
		return key, nil
	}

	// Then check config
	if cfg != nil && cfg.Memory.APIKey != "" {
		// Expand any remaining env var references
		key := os.ExpandEnv(cfg.Memory.APIKey)
		if key != "" && !strings.HasPrefix(key, "${") {
			return key, nil
		}
	}

	return "", ErrNoAPIKey
}

// MaskAPIKey returns a masked version of the API key for display.
// Shows the first 4 characters and last 4 characters.
func MaskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}

	if len(key) <= 12 {
		return "***"
	}

	return key[:4] + "..." + key[len(key)-4:]
}

// KeySource represents where an API key was loaded from.
type KeySource string

const (
	KeySourceEnv    KeySource = "environment"
	KeySourceConfig KeySource = "config_file"
	KeySourceNone   KeySource = "none"
)

// GetAPIKeySource returns where the API key was sourced from.
func GetAPIKeySource(cfg *Config) KeySource {
	if os.Getenv("JARVIS_API_KEY") != "" {
		return KeySourceEnv
	}

	if cfg != nil && cfg.Memory.APIKey != "" {
		key := os.ExpandEnv(cfg.Memory.APIKey)
		if key != "" && !strings.HasPrefix(key, "${") {
			return KeySourceConfig
		}
	}

	return KeySourceNone
}
