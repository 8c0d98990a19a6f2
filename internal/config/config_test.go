package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `server:
  port: 9100
memory:
  url: http://memory.internal:4100
  timeout: 5s
predict:
  recall_limit: 50
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Memory.URL != "http://memory.internal:4100" {
		t.Errorf("expected overridden memory URL, got %q", cfg.Memory.URL)
	}
	if cfg.Memory.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.Memory.Timeout)
	}
	if cfg.Predict.RecallLimit != 50 {
		t.Errorf("expected recall limit 50, got %d", cfg.Predict.RecallLimit)
	}

	// Unset values fall back to defaults.
	if cfg.Predict.CacheTTL != 300*time.Second {
		t.Errorf("expected default cache TTL 300s, got %v", cfg.Predict.CacheTTL)
	}
	if cfg.Intent.WatchRules {
		t.Error("expected watch_rules to default to false")
	}
}

func TestLoadFromPathExpandsAPIKey(t *testing.T) {
	os.Setenv("TEST_JARVIS_KEY_VALUE", "expanded-key")
	defer os.Unsetenv("TEST_JARVIS_KEY_VALUE")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `memory:
  api_key: ${TEST_JARVIS_KEY_VALUE}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Memory.APIKey != "expanded-key" {
		t.Errorf("expected ${VAR} expansion, got %q", cfg.Memory.APIKey)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Port != 8003 {
		t.Errorf("expected default port 8003, got %d", cfg.Server.Port)
	}
	if cfg.Memory.URL != "http://localhost:4000" {
		t.Errorf("expected default memory URL, got %q", cfg.Memory.URL)
	}
	if cfg.Memory.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Memory.Timeout)
	}
	if cfg.Predict.CacheTTL != 300*time.Second {
		t.Errorf("expected 300s cache TTL, got %v", cfg.Predict.CacheTTL)
	}
	if cfg.Predict.RecallLimit != 20 {
		t.Errorf("expected recall limit 20, got %d", cfg.Predict.RecallLimit)
	}
}
