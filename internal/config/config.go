// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for ramo-tui.
//
// Configuration lives in TOML at ~/.ramo/config.toml, with built-in defaults
// and environment variable overrides. The file can be edited while the TUI
// runs; the watcher in this package picks the change up.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ramolabs/ramo-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete ramo-tui configuration.
type Config struct {
	Version string `toml:"version"`

	// API configuration
	API APIConfig `toml:"api"`

	// Chat configuration
	Chat ChatConfig `toml:"chat"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// APIConfig describes how to reach the RAMO backend.
type APIConfig struct {
	// BaseURL is the backend base URL, e.g. "https://api.ramo.example".
	BaseURL string `toml:"base_url"`
	// Verbose enables request/response logging (no bodies, no credentials).
	Verbose bool `toml:"verbose"`
}

// ChatConfig contains chat behavior defaults.
type ChatConfig struct {
	// DefaultMode is the mode a new session starts in: "standard" or "smart".
	DefaultMode string `toml:"default_mode"`
	// MaxIngestPairs is the default max_pairs for knowledge ingestion.
	MaxIngestPairs int `toml:"max_ingest_pairs"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// WordWrap is the rendering width for one-shot markdown output.
	WordWrap int `toml:"word_wrap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Chat: ChatConfig{
			DefaultMode:    "smart",
			MaxIngestPairs: 10,
		},
		UI: UIConfig{
			WordWrap: 80,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the ramo config directory (~/.ramo).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ramo"), nil
}

// Path returns the config file path (~/.ramo/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		// No resolvable home: run on defaults plus env.
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the config file at path. A missing file yields
// defaults; a malformed file is an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variables on top of file values.
//
//	RAMO_API_BASE_URL  overrides api.base_url
//	RAMO_DEFAULT_MODE  overrides chat.default_mode
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("RAMO_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("RAMO_DEFAULT_MODE"); v != "" {
		c.Chat.DefaultMode = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that would break at runtime.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url must not be empty")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api.base_url %q is not a valid URL", c.API.BaseURL)
	}

	switch strings.ToLower(c.Chat.DefaultMode) {
	case "standard", "smart":
	default:
		return fmt.Errorf("config: chat.default_mode %q must be \"standard\" or \"smart\"", c.Chat.DefaultMode)
	}

	if c.Chat.MaxIngestPairs < 1 {
		return fmt.Errorf("config: chat.max_ingest_pairs must be at least 1")
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the config to the default path atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to the given path atomically.
func SaveTo(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# ramo-tui configuration\n")
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(sb.String()), 0o644)
}
