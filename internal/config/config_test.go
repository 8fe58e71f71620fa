// Copyright (c) 2024-2025 RAMO Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// =============================================================================
// LOADING TESTS
// =============================================================================

func TestLoadFromPath_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.Chat.DefaultMode != "smart" {
		t.Errorf("DefaultMode = %q, want smart", cfg.Chat.DefaultMode)
	}
}

func TestLoadFromPath_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[api]
base_url = "https://api.ramo.example"

[chat]
default_mode = "standard"
max_ingest_pairs = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.API.BaseURL != "https://api.ramo.example" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Chat.DefaultMode != "standard" {
		t.Errorf("DefaultMode = %q", cfg.Chat.DefaultMode)
	}
	if cfg.Chat.MaxIngestPairs != 5 {
		t.Errorf("MaxIngestPairs = %d", cfg.Chat.MaxIngestPairs)
	}
}

func TestLoadFromPath_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[[["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("RAMO_API_BASE_URL", "https://override.example")
	t.Setenv("RAMO_DEFAULT_MODE", "standard")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.API.BaseURL != "https://override.example" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.Chat.DefaultMode != "standard" {
		t.Errorf("DefaultMode = %q, want env override", cfg.Chat.DefaultMode)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"schemeless base url", func(c *Config) { c.API.BaseURL = "localhost:8000" }, true},
		{"bad mode", func(c *Config) { c.Chat.DefaultMode = "turbo" }, true},
		{"mode case insensitive", func(c *Config) { c.Chat.DefaultMode = "Smart" }, false},
		{"zero ingest pairs", func(c *Config) { c.Chat.MaxIngestPairs = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

// =============================================================================
// SAVE / ROUND-TRIP
// =============================================================================

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.API.BaseURL = "https://saved.example"
	cfg.Chat.MaxIngestPairs = 7

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.API.BaseURL != "https://saved.example" {
		t.Errorf("BaseURL = %q", loaded.API.BaseURL)
	}
	if loaded.Chat.MaxIngestPairs != 7 {
		t.Errorf("MaxIngestPairs = %d", loaded.Chat.MaxIngestPairs)
	}
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := SaveTo(Default(), path); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.API.BaseURL = "https://changed.example"
	if err := SaveTo(cfg, path); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if got.API.BaseURL != "https://changed.example" {
			t.Errorf("reloaded BaseURL = %q", got.API.BaseURL)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire")
	}
}

func TestWatcher_IgnoresInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := SaveTo(Default(), path); err != nil {
		t.Fatal(err)
	}

	changed := make(chan *Config, 4)
	w, err := NewWatcher(path, func(cfg *Config) { changed <- cfg })
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[[["), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		t.Errorf("callback fired for invalid config: %+v", cfg)
	case <-time.After(600 * time.Millisecond):
		// expected: invalid file ignored
	}
}
