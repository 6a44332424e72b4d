// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the interactive chat view for the terminal UI.
//
// The view is a Bubble Tea model that composes the message viewport, input
// area, spinner, and picker overlays, and drives a session.Exchanger. The
// conversation is owned by the event loop: slash commands and exchange
// results are applied inside Update, and background commands carry nothing
// but the network request.
//
// # Key Types
//
//   - Model: the Bubble Tea model for the chat interface
//   - KeyMap: keyboard bindings with help metadata
//   - ExchangeResultMsg: outcome of a background completion request
//
// # Usage
//
//	m := chat.New(theme, exchanger, cfg)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package chat
