// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the chat TUI.
//
// This package handles parsing and executing slash commands in the chat
// interface. Handlers produce bubbletea messages; the chat model applies
// them to application state.
//
// # Key Types
//
//   - Registry: Command registry with all available commands
//   - Parser: Parses raw input into a command and arguments
//   - ParseResult: Parsed command with name and arguments
//
// # Built-in Commands
//
//   - /help: Show available commands
//   - /clear: Clear the conversation
//   - /model: Switch models or open the picker
//   - /models: List available models
//   - /theme: Switch the UI theme
//   - /emoji: Open the emoji picker
//   - /export: Export the conversation
//   - /config: Show the active configuration
//   - /quit: Exit
//
// # Usage
//
//	parser := commands.NewParser(commands.NewRegistry())
//	result := parser.Parse(input)
//	if result.IsCommand && result.Command != nil {
//	    return result.Command.Handler(ctx, result.Args)
//	}
package commands
