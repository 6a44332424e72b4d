// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for chatbox.
//
// Configuration is TOML with built-in defaults and environment variable
// overrides. Credentials are never stored in the file; they are collected
// from the per-model environment variables named by the model registry.
//
// Configuration file location:
//   - ~/.chatbox/config.toml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete chatbox configuration.
type Config struct {
	Version string `toml:"version"`

	// DefaultModel is the model selected at startup.
	DefaultModel string `toml:"default_model"`

	// Completion configures the request sent per exchange.
	Completion CompletionConfig `toml:"completion"`

	// UI configures presentation.
	UI UIConfig `toml:"ui"`
}

// CompletionConfig contains completion endpoint configuration.
type CompletionConfig struct {
	// BaseURL overrides the completion endpoint base. Empty uses the
	// built-in default.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds one request. 0 uses the built-in default.
	TimeoutSecs int `toml:"timeout_secs"`
	// Temperature is the sampling temperature, 0 to 2.
	Temperature float64 `toml:"temperature"`
	// MaxTokens caps the reply length.
	MaxTokens int `toml:"max_tokens"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// ShowTimestamps displays message timestamps
	ShowTimestamps bool `toml:"show_timestamps"`
	// CompactMode uses a more compact layout
	CompactMode bool `toml:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version:      "1.0.0",
		DefaultModel: model.DefaultModelID,

		Completion: CompletionConfig{
			BaseURL:     "",
			TimeoutSecs: 15,
			Temperature: 0.7,
			MaxTokens:   model.DefaultMaxTokens,
		},

		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: true,
			CompactMode:    false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the chatbox configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".chatbox"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config file, fills defaults, applies environment overrides,
// and validates. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to its standard location atomically.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveToPath(cfg, path)
}

// SaveToPath writes the config to a specific path atomically.
// Config files are 0600: they are user-private state.
func SaveToPath(cfg *Config, path string) error {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, []byte(sb.String()), 0o600)
}

// fillDefaults replaces zero values with defaults so a sparse file works.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.DefaultModel == "" {
		c.DefaultModel = def.DefaultModel
	}
	if c.Completion.TimeoutSecs == 0 {
		c.Completion.TimeoutSecs = def.Completion.TimeoutSecs
	}
	if c.Completion.MaxTokens == 0 {
		c.Completion.MaxTokens = def.Completion.MaxTokens
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies CHATBOX_* environment variables on top of the
// loaded file. Credentials are handled separately by Credentials().
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CHATBOX_MODEL"); v != "" {
		c.DefaultModel = v
	}
	if v := os.Getenv("CHATBOX_BASE_URL"); v != "" {
		c.Completion.BaseURL = v
	}
	if v := os.Getenv("CHATBOX_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Completion.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("CHATBOX_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// Credentials collects the bearer secrets for every allow-listed model from
// the environment. The returned map is handed to the completion client at
// construction; nothing else reads these variables.
func Credentials() map[string]string {
	creds := make(map[string]string)
	for _, info := range model.Models {
		if _, ok := creds[info.CredentialEnv]; ok {
			continue
		}
		creds[info.CredentialEnv] = os.Getenv(info.CredentialEnv)
	}
	return creds
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if !model.IsAllowed(c.DefaultModel) {
		return fmt.Errorf("default_model %q is not in the model allow-list (one of: %s)",
			c.DefaultModel, strings.Join(model.ModelIDs(), ", "))
	}
	if c.Completion.Temperature < model.MinTemperature || c.Completion.Temperature > model.MaxTemperature {
		return fmt.Errorf("completion.temperature %.2f out of range [0, 2]", c.Completion.Temperature)
	}
	if c.Completion.MaxTokens <= 0 {
		return fmt.Errorf("completion.max_tokens must be positive, got %d", c.Completion.MaxTokens)
	}
	if c.Completion.TimeoutSecs <= 0 {
		return fmt.Errorf("completion.timeout_secs must be positive, got %d", c.Completion.TimeoutSecs)
	}
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme %q must be dark, light, or auto", c.UI.Theme)
	}
	return nil
}

// ChatConfig derives the per-request configuration from this config.
func (c *Config) ChatConfig() model.ChatConfig {
	return model.ChatConfig{
		ModelID:     c.DefaultModel,
		Temperature: c.Completion.Temperature,
		MaxTokens:   c.Completion.MaxTokens,
	}
}
