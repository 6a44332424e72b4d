// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config manages chatbox configuration stored at ~/.chatbox/config.toml.
//
// # Key Types
//
//   - Config: the full configuration tree (TOML)
//   - CompletionConfig: per-request endpoint settings
//   - UIConfig: presentation settings
//   - Watcher: fsnotify-based hot reload of the config file
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := cloud.NewClient(cloud.Options{
//	    BaseURL:     cfg.Completion.BaseURL,
//	    Credentials: config.Credentials(),
//	})
//
// Defaults apply when the file is missing, CHATBOX_* environment variables
// layer on top of the file, and Save writes atomically with 0600 permissions.
// Credentials live only in the environment, never in the file.
package config
