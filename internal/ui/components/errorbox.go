// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chatbox TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BOX
// =============================================================================

// ErrorBox displays a command or application error with an optional tip.
type ErrorBox struct {
	Title   string
	Message string
	Tip     string
	Width   int
	theme   *styles.Theme
}

// NewErrorBox creates a new error box.
func NewErrorBox(title, message, tip string, theme *styles.Theme) *ErrorBox {
	return &ErrorBox{
		Title:   title,
		Message: message,
		Tip:     tip,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth sets the box width.
func (e *ErrorBox) SetWidth(width int) {
	e.Width = width
}

// View renders the error box.
func (e *ErrorBox) View() string {
	title := e.theme.ErrorTitle.Render(styles.StatusIndicators.Error + " " + e.Title)

	rows := []string{title}
	if e.Message != "" {
		rows = append(rows, e.theme.ErrorMessage.Render(e.Message))
	}
	if e.Tip != "" {
		rows = append(rows, e.theme.ErrorTip.Render("Tip: "+e.Tip))
	}

	maxWidth := e.Width - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return e.theme.ErrorBox.
		MaxWidth(maxWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
