package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key]",
	Short: "Show configuration",
	Long: `Displays the effective configuration after merging defaults, the user
config, project overrides, and environment variables.

Configuration is stored at ~/.config/jarvis/config.yaml
Project-specific overrides can be placed in .jarvis.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 0 {
			displayAllConfig(cfg)
			return
		}
		displayConfigKey(cfg, args[0])
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	// Mask API key if set
	apiKeyDisplay := "(not set)"
	if cfg.Memory.APIKey != "" {
		apiKeyDisplay = "****"
	}

	fmt.Printf("server.port: %d\n", cfg.Server.Port)
	fmt.Printf("memory.url: %s\n", cfg.Memory.URL)
	fmt.Printf("memory.api_key: %s\n", apiKeyDisplay)
	fmt.Printf("memory.timeout: %s\n", cfg.Memory.Timeout)
	fmt.Printf("predict.cache_ttl: %s\n", cfg.Predict.CacheTTL)
	fmt.Printf("predict.recall_limit: %d\n", cfg.Predict.RecallLimit)
	fmt.Printf("storage.db_path: %s\n", cfg.Storage.DBPath)
	fmt.Printf("storage.snapshot_path: %s\n", cfg.Storage.SnapshotPath)
	fmt.Printf("intent.rules_path: %s\n", cfg.Intent.RulesPath)
	fmt.Printf("intent.watch_rules: %t\n", cfg.Intent.WatchRules)
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// getConfigValue looks up a configuration value by dotted key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "server.port":
		return fmt.Sprintf("%d", cfg.Server.Port), nil
	case "memory.url":
		return cfg.Memory.URL, nil
	case "memory.timeout":
		return cfg.Memory.Timeout.String(), nil
	case "predict.cache_ttl":
		return cfg.Predict.CacheTTL.String(), nil
	case "predict.recall_limit":
		return fmt.Sprintf("%d", cfg.Predict.RecallLimit), nil
	case "storage.db_path":
		return cfg.Storage.DBPath, nil
	case "storage.snapshot_path":
		return cfg.Storage.SnapshotPath, nil
	case "intent.rules_path":
		return cfg.Intent.RulesPath, nil
	case "intent.watch_rules":
		return fmt.Sprintf("%t", cfg.Intent.WatchRules), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}
