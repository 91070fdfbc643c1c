// Package config handles Reski client configuration loading.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Reski configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Storage  StorageConfig  `yaml:"storage"`
	Identity IdentityConfig `yaml:"identity"`
	Server   ServerConfig   `yaml:"server"`
}

// APIConfig holds remote service settings.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
}

// StorageConfig holds client-side database settings.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// IdentityConfig holds the signed-in user information used to namespace
// local state.
type IdentityConfig struct {
	UID   string `yaml:"uid"`
	Email string `yaml:"email"`
}

// ServerConfig holds local development server settings.
type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
	Path   string `yaml:"path"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	// Load config file if it exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.API.BaseURL = "https://app-reski-api.azurewebsites.net"
	cfg.Storage.Path = "./data/reski.db"
	cfg.Server.Port = 8080
	cfg.Server.Path = "./data/reski-server.db"
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RESKI_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("RESKI_API_TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv("RESKI_DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("RESKI_UID"); v != "" {
		cfg.Identity.UID = v
	}
	if v := os.Getenv("RESKI_EMAIL"); v != "" {
		cfg.Identity.Email = v
	}
	if v := os.Getenv("RESKI_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RESKI_API_KEY"); v != "" {
		cfg.Server.APIKey = v
	}
	if v := os.Getenv("RESKI_SERVER_DB_PATH"); v != "" {
		cfg.Server.Path = v
	}
}
