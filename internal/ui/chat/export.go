// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbox-tui/internal/commands"
	"github.com/jeranaias/chatbox-tui/internal/export"
)

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// handleExportConversation runs the export in the background and reports
// back via ExportCompleteMsg.
func (m Model) handleExportConversation(msg commands.ExportConversationMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = "Exporting conversation to " + msg.Format + "..."

	conv := m.Conversation()
	modelID := m.CurrentModel()
	showTimestamps := true
	if m.cfg != nil {
		showTimestamps = m.cfg.UI.ShowTimestamps
	}

	return m, func() tea.Msg {
		opts := export.DefaultOptions()
		opts.OutputDir = "./exports"
		opts.IncludeMetadata = true
		opts.IncludeTimestamps = showTimestamps
		opts.Model = modelID

		exporter, err := export.ForFormat(msg.Format, opts)
		if err != nil {
			return commands.ExportCompleteMsg{Error: err}
		}

		path, err := export.ExportToFile(conv, exporter, opts, msg.Path)
		return commands.ExportCompleteMsg{Path: path, Error: err}
	}
}

// handleExportComplete reports the export outcome in the status bar.
func (m Model) handleExportComplete(msg commands.ExportCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		m.lastError = &commands.ErrorMsg{
			Title:   "Export Failed",
			Message: msg.Error.Error(),
			Tip:     "Check that the output directory is writable",
		}
		return m, nil
	}
	m.statusMsg = "Exported to " + msg.Path
	return m, nil
}
