// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the slash command system for the chat TUI.
package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbox-tui/internal/model"
)

// =============================================================================
// MESSAGE TYPES
// =============================================================================

// These messages are sent by command handlers to update the application state.

// ShowHelpMsg triggers the help display.
type ShowHelpMsg struct{}

// ClearConversationMsg triggers clearing the conversation.
type ClearConversationMsg struct{}

// ModelSwitchMsg indicates a model switch request.
type ModelSwitchMsg struct {
	Model string
	Error error
}

// ShowModelPickerMsg opens the model picker overlay.
type ShowModelPickerMsg struct{}

// ShowModelsMsg triggers showing the model list.
type ShowModelsMsg struct {
	Models []string
}

// ShowEmojiPickerMsg opens the emoji picker overlay.
type ShowEmojiPickerMsg struct{}

// ThemeSwitchMsg indicates a theme switch request.
type ThemeSwitchMsg struct {
	Theme string
	Error error
}

// ExportConversationMsg triggers exporting the conversation.
type ExportConversationMsg struct {
	Format string // "markdown" or "json"
	Path   string // empty uses a default path
}

// ExportCompleteMsg indicates export completion.
type ExportCompleteMsg struct {
	Path  string
	Error error
}

// ShowConfigMsg triggers showing the active configuration.
type ShowConfigMsg struct{}

// ErrorMsg indicates an error occurred.
type ErrorMsg struct {
	Title   string
	Message string
	Tip     string
}

// =============================================================================
// HANDLER IMPLEMENTATIONS
// =============================================================================

// HandleHelp shows help information.
func HandleHelp(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowHelpMsg{}
	}
}

// HandleQuit exits the application.
func HandleQuit(ctx *Context, args []string) tea.Cmd {
	return tea.Quit
}

// HandleClear clears the conversation history.
func HandleClear(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ClearConversationMsg{}
	}
}

// HandleModel switches the model, or opens the picker with no argument.
func HandleModel(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return ShowModelPickerMsg{}
		}
	}

	name := args[0]
	if !model.IsAllowed(name) {
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Unknown model",
				Message: fmt.Sprintf("%q is not an available model", name),
				Tip:     "Run /models to see the choices",
			}
		}
	}

	return func() tea.Msg {
		return ModelSwitchMsg{Model: name}
	}
}

// HandleModels lists the available models.
func HandleModels(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowModelsMsg{Models: model.ModelIDs()}
	}
}

// HandleEmoji opens the emoji picker.
func HandleEmoji(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowEmojiPickerMsg{}
	}
}

// HandleTheme switches the UI theme.
func HandleTheme(ctx *Context, args []string) tea.Cmd {
	if len(args) == 0 {
		// Toggle between dark and light when no argument is given.
		next := "light"
		if ctx != nil && ctx.CurrentTheme == "light" {
			next = "dark"
		}
		return func() tea.Msg {
			return ThemeSwitchMsg{Theme: next}
		}
	}

	theme := strings.ToLower(args[0])
	switch theme {
	case "dark", "light":
	default:
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Unknown theme",
				Message: fmt.Sprintf("Unknown theme: %s", theme),
				Tip:     "Supported themes: dark, light",
			}
		}
	}

	return func() tea.Msg {
		return ThemeSwitchMsg{Theme: theme}
	}
}

// HandleExport exports the conversation.
func HandleExport(ctx *Context, args []string) tea.Cmd {
	format := "markdown"
	path := ""
	if len(args) > 0 {
		format = strings.ToLower(args[0])
		if format == "md" {
			format = "markdown"
		}
	}
	if len(args) > 1 {
		path = args[1]
	}

	switch format {
	case "markdown", "json":
	default:
		return func() tea.Msg {
			return ErrorMsg{
				Title:   "Invalid export format",
				Message: fmt.Sprintf("Unknown format: %s", format),
				Tip:     "Supported formats: markdown, json",
			}
		}
	}

	return func() tea.Msg {
		return ExportConversationMsg{Format: format, Path: path}
	}
}

// HandleConfig shows the active configuration.
func HandleConfig(ctx *Context, args []string) tea.Cmd {
	return func() tea.Msg {
		return ShowConfigMsg{}
	}
}
