// Package config handles configuration loading and management for the
// adaptive prediction service. It supports XDG config paths, project-level
// overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the adaptive service.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Memory  MemoryConfig  `mapstructure:"memory"`
	Predict PredictConfig `mapstructure:"predict"`
	Storage StorageConfig `mapstructure:"storage"`
	Intent  IntentConfig  `mapstructure:"intent"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MemoryConfig holds memory collaborator settings.
type MemoryConfig struct {
	URL     string        `mapstructure:"url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// PredictConfig holds prediction tuning.
type PredictConfig struct {
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	RecallLimit int           `mapstructure:"recall_limit"`
}

// StorageConfig holds persistence paths.
type StorageConfig struct {
	DBPath       string `mapstructure:"db_path"`
	SnapshotPath string `mapstructure:"snapshot_path"`
}

// IntentConfig holds intent matcher settings.
type IntentConfig struct {
	// RulesPath points to an optional YAML rules file. Empty means use the
	// built-in rules.
	RulesPath string `mapstructure:"rules_path"`
	// WatchRules reloads the rules file when it changes on disk.
	WatchRules bool `mapstructure:"watch_rules"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (JARVIS_API_KEY)
// 2. Project config (.jarvis.yaml in current directory or parent)
// 3. User config (~/.config/jarvis/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			// Merge project config (takes precedence)
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("memory.api_key", "JARVIS_API_KEY")
	v.BindEnv("memory.url", "JARVIS_MEMORY_URL")
	v.BindEnv("server.port", "JARVIS_PORT")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand ${VAR} references
	cfg.Memory.APIKey = os.ExpandEnv(cfg.Memory.APIKey)

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Memory.APIKey = os.ExpandEnv(cfg.Memory.APIKey)

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8003)

	v.SetDefault("memory.url", "http://localhost:4000")
	v.SetDefault("memory.api_key", "")
	v.SetDefault("memory.timeout", "10s")

	v.SetDefault("predict.cache_ttl", "300s")
	v.SetDefault("predict.recall_limit", 20)

	v.SetDefault("storage.db_path", "")
	v.SetDefault("storage.snapshot_path", "")

	v.SetDefault("intent.rules_path", "")
	v.SetDefault("intent.watch_rules", false)
}

// getUserConfigDir returns the XDG config directory for the service.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "jarvis")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "jarvis")
	}
	return filepath.Join(home, ".config", "jarvis")
}

// findProjectConfig searches for .jarvis.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".jarvis.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8003,
		},
		Memory: MemoryConfig{
			URL:     "http://localhost:4000",
			APIKey:  "",
			Timeout: 10 * time.Second,
		},
		Predict: PredictConfig{
			CacheTTL:    300 * time.Second,
			RecallLimit: 20,
		},
	}
}
