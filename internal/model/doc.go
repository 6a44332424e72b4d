// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing the chat conversation, its messages, and the closed model
// registry.
//
// # Key Types
//
//   - Conversation: Append-only message sequence with the in-flight guard
//   - Message: Single message with role, content, kind, and reactions
//   - ModelInfo: Allow-listed model with its credential-lookup key
//   - ChatConfig: Per-request tuning (model, temperature, max tokens)
//
// # Usage
//
// Create a conversation and append a user message:
//
//	conv := model.NewConversation()
//	msg, err := conv.AddUserMessage("Hello!")
//
// Validate a request configuration against the registry:
//
//	cfg := model.DefaultChatConfig()
//	cfg.ModelID = "claude-3-5-haiku"
//	if err := cfg.Validate(); err != nil { ... }
package model
