// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides shared helpers for the chatbox application.
//
// It contains the small, dependency-light utilities used across packages:
// rune- and width-aware string truncation (backed by go-runewidth) and
// atomic file writes for config and export output.
package util
