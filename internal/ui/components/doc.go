// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the chatbox TUI.
//
// # Key Types
//
//   - MessageBubble / MessageList: conversation rendering, including error
//     bubbles for failed exchanges and chroma-highlighted code replies
//   - InputArea: the composer with character counter
//   - Spinner: the awaiting-reply indicator with elapsed timer
//   - ModelPicker: overlay for switching between allow-listed models
//   - EmojiPicker: overlay for inserting emoji or reacting to messages
//   - ErrorBox: command error display with tips
//
// Components are plain view structs; the chat model owns state transitions
// and feeds bubbletea messages through Update where a component is
// interactive.
package components
