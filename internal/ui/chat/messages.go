// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat interface.
// Command messages (model switch, export, errors) live in internal/commands;
// only exchange and picker traffic is defined here.
package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
)

// =============================================================================
// EXCHANGE MESSAGES
// =============================================================================

// ExchangeResultMsg delivers the outcome of a completion request.
// The conversation has not been touched yet: the reply (or error) is
// applied on the event loop when this message is handled.
type ExchangeResultMsg struct {
	UserMessage *model.Message
	Reply       string
	Err         error
}

// StatusMsg sets a transient status bar notice.
type StatusMsg struct {
	Text string
}

// ConfigReloadedMsg carries a config reloaded from disk by the file
// watcher. Sent from outside the event loop via Program.Send.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// RequestCompletionCmd issues the completion request in the background.
// Only the network call runs off the event loop; the conversation is
// mutated when the ExchangeResultMsg comes back.
func RequestCompletionCmd(ex *session.Exchanger, userMsg *model.Message, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := ex.Request(context.Background(), text)
		return ExchangeResultMsg{
			UserMessage: userMsg,
			Reply:       reply,
			Err:         err,
		}
	}
}
