// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the chatbox TUI.
//
// # Key Types
//
//   - Theme: every lipgloss style the UI renders with
//   - StatusIndicatorSet: ASCII shape indicators beside colors
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Println(theme.UserBubble.Render("hello"))
//
// Colors are lipgloss.AdaptiveColor pairs, so each style picks its light or
// dark variant from the detected terminal background. The /theme command uses
// NewThemeWithBackground to override detection.
package styles
