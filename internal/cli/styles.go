// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for all CLI commands in chatbox.
//
// USABILITY: TTY detection for proper terminal handling
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// init configures lipgloss color profile based on terminal capabilities.
// USABILITY: TTY detection for proper terminal handling
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// promptStyle marks the "you>" REPL prompt
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// infoStyle is used for informational notices
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan)

	// errorStyle is used for error messages and failures
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// warningStyle is used for warnings and cautions
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// commandStyle highlights slash commands in help text
	commandStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// separatorStyle is used for visual separators
	separatorStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)

	// summaryHeaderStyle heads the exit summary block
	summaryHeaderStyle = lipgloss.NewStyle().
				Foreground(styles.Purple).
				Bold(true)

	// summaryLabelStyle labels fields in summaries
	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(styles.TextSecondary)

	// summaryValueStyle renders values in summaries
	summaryValueStyle = lipgloss.NewStyle().
				Foreground(styles.Emerald)

	// mutedStyle is for secondary information and hints
	mutedStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)
)
