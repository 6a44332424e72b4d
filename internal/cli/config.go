// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation for chatbox.
//
// CLI: Comprehensive help and examples for all commands
//
// Command: config [subcommand]
// Short:   View and modify configuration
//
// Subcommands:
//   show (default)      Display current configuration
//   set <key> <value>   Set a configuration value
//   reset               Reset to default configuration
//   path                Show configuration file path
//
// Examples:
//   chatbox config                                Show current config
//   chatbox config set default_model gpt-4o
//   chatbox config set completion.temperature 0.9
//   chatbox config set ui.theme dark
//   chatbox config reset
//   chatbox config path
//
// Configuration Keys:
//   default_model            Model selected at startup
//   completion.base_url      Completion endpoint base URL
//   completion.temperature   Sampling temperature (0 to 2)
//   completion.max_tokens    Reply length cap
//   completion.timeout_secs  Per-request timeout
//   ui.theme                 dark, light, or auto
//   ui.show_timestamps       true/false
//   ui.compact_mode          true/false
//
// Credentials are never config keys; they live in environment variables only.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/chatbox-tui/internal/config"
)

// =============================================================================
// HANDLE CONFIG
// =============================================================================

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow()

	case "set":
		return handleConfigSet(args.ConfigKey, args.ConfigVal)

	case "reset":
		return handleConfigReset()

	case "path":
		return handleConfigPath()

	default:
		return fmt.Errorf("unknown config subcommand: %s", args.Subcommand)
	}
}

// handleConfigShow displays the current configuration.
func handleConfigShow() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s (using defaults)\n", err)
		cfg = config.Default()
	}

	separator := strings.Repeat("=", 41)
	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("chatbox Configuration"))
	fmt.Println(separatorStyle.Render(separator))
	fmt.Println()

	fmt.Println(summaryLabelStyle.Render("[general]"))
	printConfigLine("default_model", cfg.DefaultModel)
	fmt.Println()

	fmt.Println(summaryLabelStyle.Render("[completion]"))
	baseURL := cfg.Completion.BaseURL
	if baseURL == "" {
		baseURL = "(default)"
	}
	printConfigLine("base_url", baseURL)
	printConfigLine("temperature", fmt.Sprintf("%.1f", cfg.Completion.Temperature))
	printConfigLine("max_tokens", fmt.Sprintf("%d", cfg.Completion.MaxTokens))
	printConfigLine("timeout_secs", fmt.Sprintf("%d", cfg.Completion.TimeoutSecs))
	fmt.Println()

	fmt.Println(summaryLabelStyle.Render("[ui]"))
	printConfigLine("theme", cfg.UI.Theme)
	printConfigLine("show_timestamps", strconv.FormatBool(cfg.UI.ShowTimestamps))
	printConfigLine("compact_mode", strconv.FormatBool(cfg.UI.CompactMode))
	fmt.Println()

	// SECURITY: Show set/unset only; credential values are never printed.
	fmt.Println(summaryLabelStyle.Render("[credentials]"))
	for env, val := range config.Credentials() {
		status := mutedStyle.Render("not set")
		if val != "" {
			status = summaryValueStyle.Render("set")
		}
		fmt.Printf("  %-26s %s\n", env+":", status)
	}
	fmt.Println()

	fmt.Println(separatorStyle.Render(strings.Repeat("-", 41)))
	if path, err := config.ConfigPath(); err == nil {
		fmt.Printf("Config file: %s\n", mutedStyle.Render(path))
	}
	fmt.Println()

	return nil
}

// printConfigLine prints one key/value row in the show output.
func printConfigLine(key, value string) {
	fmt.Printf("  %-18s %s\n", key+":", summaryValueStyle.Render(value))
}

// handleConfigSet sets a configuration value and saves the file.
func handleConfigSet(key, value string) error {
	if key == "" {
		return fmt.Errorf("no config key provided\nUsage: chatbox config set <key> <value>")
	}
	if value == "" {
		return fmt.Errorf("no config value provided\nUsage: chatbox config set %s <value>", key)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s (using defaults)\n", err)
		cfg = config.Default()
	}

	// Normalize key (support both dot notation and underscore)
	norm := strings.ReplaceAll(strings.ToLower(key), ".", "_")

	// SECURITY: Credentials never go in the config file.
	if strings.Contains(norm, "key") || strings.Contains(norm, "credential") ||
		strings.Contains(norm, "token") || strings.Contains(norm, "secret") {
		return fmt.Errorf("credentials are not config keys; export the model's environment variable instead (see 'chatbox models')")
	}

	switch norm {
	case "default_model", "model":
		cfg.DefaultModel = value

	case "base_url", "completion_base_url":
		cfg.Completion.BaseURL = value

	case "temperature", "completion_temperature":
		t, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number, got %q", value)
		}
		cfg.Completion.Temperature = t

	case "max_tokens", "completion_max_tokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_tokens must be an integer, got %q", value)
		}
		cfg.Completion.MaxTokens = n

	case "timeout_secs", "completion_timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_secs must be an integer, got %q", value)
		}
		cfg.Completion.TimeoutSecs = n

	case "theme", "ui_theme":
		cfg.UI.Theme = strings.ToLower(value)

	case "show_timestamps", "ui_show_timestamps":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_timestamps must be true or false, got %q", value)
		}
		cfg.UI.ShowTimestamps = b

	case "compact_mode", "ui_compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("compact_mode must be true or false, got %q", value)
		}
		cfg.UI.CompactMode = b

	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	// Validate before saving so a bad value never lands on disk
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration value: %w", err)
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s %s = %s\n", commandStyle.Render("[OK]"), key, value)
	return nil
}

// handleConfigReset restores the default configuration.
func handleConfigReset() error {
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Println(commandStyle.Render("[OK]") + " Configuration reset to defaults")
	return nil
}

// handleConfigPath prints the config file location.
func handleConfigPath() error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	exists := "does not exist yet"
	if _, err := os.Stat(path); err == nil {
		exists = "exists"
	}
	fmt.Printf("%s (%s)\n", path, mutedStyle.Render(exists))
	return nil
}
