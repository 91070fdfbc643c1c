package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Load from non-existent file should return defaults
	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://app-reski-api.azurewebsites.net" {
		t.Errorf("API.BaseURL = %s, want default", cfg.API.BaseURL)
	}
	if cfg.Storage.Path != "./data/reski.db" {
		t.Errorf("Storage.Path = %s, want ./data/reski.db", cfg.Storage.Path)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Identity.UID != "" {
		t.Errorf("Identity.UID = %s, want empty", cfg.Identity.UID)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")

	content := `
api:
  base_url: "http://localhost:8080"
  token: "test-token"
storage:
  path: "/custom/reski.db"
identity:
  uid: "uid-123"
  email: "user@example.com"
server:
  port: 9090
  api_key: "dev-key"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("API.BaseURL = %s, want http://localhost:8080", cfg.API.BaseURL)
	}
	if cfg.API.Token != "test-token" {
		t.Errorf("API.Token = %s, want test-token", cfg.API.Token)
	}
	if cfg.Storage.Path != "/custom/reski.db" {
		t.Errorf("Storage.Path = %s, want /custom/reski.db", cfg.Storage.Path)
	}
	if cfg.Identity.UID != "uid-123" {
		t.Errorf("Identity.UID = %s, want uid-123", cfg.Identity.UID)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.APIKey != "dev-key" {
		t.Errorf("Server.APIKey = %s, want dev-key", cfg.Server.APIKey)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RESKI_API_URL", "http://env:1234")
	t.Setenv("RESKI_API_TOKEN", "env-token")
	t.Setenv("RESKI_UID", "env-uid")
	t.Setenv("RESKI_PORT", "7070")

	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "http://env:1234" {
		t.Errorf("API.BaseURL = %s, want http://env:1234", cfg.API.BaseURL)
	}
	if cfg.API.Token != "env-token" {
		t.Errorf("API.Token = %s, want env-token", cfg.API.Token)
	}
	if cfg.Identity.UID != "env-uid" {
		t.Errorf("Identity.UID = %s, want env-uid", cfg.Identity.UID)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
}

func TestEnvOverridesInvalidPort(t *testing.T) {
	t.Setenv("RESKI_PORT", "not-a-port")

	cfg, err := Load("/nonexistent/config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
}
