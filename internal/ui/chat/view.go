// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the rendering logic: the main layout, the header and
// status bar, the help overlay, and overlay placement for the pickers and
// error box.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatbox-tui/internal/ui/components"
	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// =============================================================================
// MAIN RENDER
// =============================================================================

// renderChat renders the complete chat view.
// Layout: header (1 line) + messages (viewport) + input (3 lines) + status (1 line).
func (m Model) renderChat() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	header := m.renderHeader()
	input := m.input.View()
	status := m.renderStatusBar()

	// Size the viewport band to whatever the fixed chrome leaves over.
	availableHeight := m.height - lipgloss.Height(header) - lipgloss.Height(input) - lipgloss.Height(status)
	if availableHeight < 1 {
		availableHeight = 1
	}

	messages := m.viewport.View()
	if lipgloss.Height(messages) != availableHeight {
		messages = lipgloss.NewStyle().
			Height(availableHeight).
			MaxHeight(availableHeight).
			Width(m.width).
			Render(messages)
	}

	baseView := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		messages,
		input,
		status,
	)

	if overlay := m.renderOverlay(); overlay != "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			overlay,
		)
	}

	return baseView
}

// renderOverlay returns the active overlay, or "" when none is visible.
// Pickers and the error box are modal: they replace the chat until closed.
func (m Model) renderOverlay() string {
	if m.modelPicker.Visible() {
		return m.modelPicker.View()
	}
	if m.emojiPicker.Visible() {
		return m.emojiPicker.View()
	}
	if m.lastError != nil {
		box := components.NewErrorBox(m.lastError.Title, m.lastError.Message, m.lastError.Tip, m.theme)
		box.SetWidth(m.width)
		return box.View()
	}
	return ""
}

// =============================================================================
// HEADER
// =============================================================================

// renderHeader renders the title bar with the model name and a status
// indicator. Always 1 line high.
func (m Model) renderHeader() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Purple).
		Render("chatbox")

	modelInfo := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(" | " + m.CurrentModel())

	var statusIcon string
	if m.Conversation().Awaiting() {
		statusIcon = lipgloss.NewStyle().
			Foreground(styles.Amber).
			Render(" " + styles.StatusIndicators.Pending)
	} else {
		statusIcon = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Render(" " + styles.StatusIndicators.Success)
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Width(width).
		Padding(0, 1).
		Render(title + modelInfo + statusIcon)
}

// =============================================================================
// STATUS BAR
// =============================================================================

// renderStatusBar renders the bottom bar: message count and transient
// status on the left, shortcut hints on the right.
func (m Model) renderStatusBar() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	countStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(fmt.Sprintf("%d messages", m.Conversation().MessageCount()))

	left := countStr
	if m.statusMsg != "" {
		left += sep + lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Render(m.statusMsg)
	}

	right := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render("?=help | C-l=clear | C-c=quit")

	// Pad the middle so the hints hug the right edge.
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
		// Drop the transient status first when space runs out.
		if lipgloss.Width(countStr)+lipgloss.Width(right)+3 < width {
			left = countStr
			gap = width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		}
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Width(width).
		Padding(0, 1).
		Render(left + strings.Repeat(" ", gap) + right)
}

// =============================================================================
// HELP OVERLAY
// =============================================================================

// renderHelpOverlay renders the full-screen help: keyboard shortcuts
// followed by the slash commands from the registry.
func (m Model) renderHelpOverlay() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	contentWidth := minInt(width-8, 64)
	if contentWidth < 30 {
		contentWidth = 30
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Amber).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondary)
	sectionStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Bold(true).
		Width(contentWidth).
		Align(lipgloss.Center)
	sb.WriteString(titleStyle.Render("chatbox help"))
	sb.WriteString("\n\n")

	sb.WriteString(sectionStyle.Render("Keyboard"))
	sb.WriteString("\n")
	for _, item := range GetHelpItems() {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", item.Key)),
			descStyle.Render(item.Desc)))
	}

	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render("Commands"))
	sb.WriteString("\n")
	for _, cmd := range m.registry.All() {
		name := cmd.Name
		if len(cmd.Aliases) > 0 {
			name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			keyStyle.Render(fmt.Sprintf("%-22s", name)),
			descStyle.Render(cmd.Description)))
	}

	sb.WriteString("\n")
	hintStyle := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Width(contentWidth).
		Align(lipgloss.Center)
	sb.WriteString(hintStyle.Render("Press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Purple).
		Padding(1, 2).
		Render(sb.String())

	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
