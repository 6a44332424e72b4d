// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file contains the main Bubble Tea model: state, initialization,
// message dispatch, and keyboard handling.
package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbox-tui/internal/commands"
	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
	"github.com/jeranaias/chatbox-tui/internal/ui/components"
	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// =============================================================================
// MODEL DEFINITION
// =============================================================================

// Model is the Bubble Tea model for the chat interface.
//
// The conversation is owned by the event loop. Background commands only
// carry the network request; every conversation mutation happens inside
// Update, so no locking is needed.
type Model struct {
	theme  *styles.Theme
	cfg    *config.Config
	width  int
	height int

	exchanger *session.Exchanger

	viewport    viewport.Model
	input       *components.InputArea
	spinner     components.Spinner
	messageList *components.MessageList
	modelPicker *components.ModelPicker
	emojiPicker *components.EmojiPicker

	registry *commands.Registry
	parser   *commands.Parser
	keyMap   KeyMap

	// Transient UI state
	showHelp  bool
	lastError *commands.ErrorMsg
	statusMsg string
}

// New creates a new chat model.
func New(theme *styles.Theme, ex *session.Exchanger, cfg *config.Config) Model {
	vp := viewport.New(80, 20)
	vp.SetContent("")

	input := components.NewInputArea(theme)
	list := components.NewMessageList(theme)
	if cfg != nil {
		list.ShowTimestamps = cfg.UI.ShowTimestamps
	}

	registry := commands.NewRegistry()

	return Model{
		theme:       theme,
		cfg:         cfg,
		exchanger:   ex,
		viewport:    vp,
		input:       input,
		spinner:     components.NewThinkingSpinner(),
		messageList: list,
		modelPicker: components.NewModelPicker(theme),
		emojiPicker: components.NewEmojiPicker(theme),
		registry:    registry,
		parser:      commands.NewParser(registry),
		keyMap:      DefaultKeyMap(),
	}
}

// Conversation returns the conversation driven by this view.
func (m Model) Conversation() *model.Conversation {
	return m.exchanger.Conversation()
}

// CurrentModel returns the model ID in use.
func (m Model) CurrentModel() string {
	return m.exchanger.Config().ModelID
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.spinner.IsActive() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refreshViewport()
			return m, cmd
		}
		return m, nil

	case ExchangeResultMsg:
		return m.handleExchangeResult(msg)

	case StatusMsg:
		m.statusMsg = msg.Text
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case components.ModelSelectedMsg:
		return m.applyModelSwitch(msg.ModelID)

	case components.EmojiSelectedMsg:
		return m.handleEmojiSelected(msg)

	case commands.ShowHelpMsg:
		m.showHelp = true
		return m, nil

	case commands.ClearConversationMsg:
		m.Conversation().Clear()
		m.refreshViewport()
		m.statusMsg = "Conversation cleared"
		return m, nil

	case commands.ModelSwitchMsg:
		if msg.Error != nil {
			m.lastError = &commands.ErrorMsg{
				Title:   "Model Switch Failed",
				Message: msg.Error.Error(),
				Tip:     "Run /models to see the choices",
			}
			return m, nil
		}
		return m.applyModelSwitch(msg.Model)

	case commands.ShowModelPickerMsg:
		m.modelPicker.Show(m.CurrentModel())
		return m, nil

	case commands.ShowModelsMsg:
		m.statusMsg = "Models: " + strings.Join(msg.Models, ", ")
		return m, nil

	case commands.ShowEmojiPickerMsg:
		m.emojiPicker.ShowForInput()
		return m, nil

	case commands.ThemeSwitchMsg:
		return m.handleThemeSwitch(msg)

	case commands.ExportConversationMsg:
		return m.handleExportConversation(msg)

	case commands.ExportCompleteMsg:
		return m.handleExportComplete(msg)

	case commands.ShowConfigMsg:
		m.statusMsg = m.describeConfig()
		return m, nil

	case commands.ErrorMsg:
		m.lastError = &msg
		return m, nil

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

// View renders the chat view.
func (m Model) View() string {
	return m.renderChat()
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Layout: header (1 line) + viewport + input (3 lines) + status bar (1 line).
	// Conservative estimates keep the viewport from overflowing the terminal.
	const (
		headerHeight    = 1
		inputAreaHeight = 3
		statusBarHeight = 1
	)

	viewportHeight := m.height - headerHeight - inputAreaHeight - statusBarHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	viewportWidth := m.width
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	m.viewport.Width = viewportWidth
	m.viewport.Height = viewportHeight

	m.input.SetWidth(m.width)
	m.modelPicker.SetWidth(m.width)
	m.messageList.SetWidth(minInt(m.width, 100))

	if m.theme != nil {
		m.theme.Resize(m.width, m.height)
	}

	m.refreshViewport()

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, vpCmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+Q always quits regardless of state.
	if msg.String() == "ctrl+q" || msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Overlays take key priority when visible.
	if m.modelPicker.Visible() {
		var cmd tea.Cmd
		m.modelPicker, cmd = m.modelPicker.Update(msg)
		return m, cmd
	}
	if m.emojiPicker.Visible() {
		var cmd tea.Cmd
		m.emojiPicker, cmd = m.emojiPicker.Update(msg)
		return m, cmd
	}

	// Any key dismisses the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Error box dismissal.
	if m.lastError != nil {
		switch msg.String() {
		case "esc", "enter", " ":
			m.lastError = nil
			return m, m.input.Focus()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		// Only when not mid-sentence; "?" must still be typeable.
		if m.input.Value() == "" {
			m.showHelp = true
			return m, nil
		}

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitInput()

	case key.Matches(msg, m.keyMap.Models):
		m.modelPicker.Show(m.CurrentModel())
		return m, nil

	case key.Matches(msg, m.keyMap.Emoji):
		m.emojiPicker.ShowForInput()
		return m, nil

	case key.Matches(msg, m.keyMap.React):
		if last := m.Conversation().LastMessage(); last != nil {
			m.emojiPicker.ShowForReaction(last.ID)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.Conversation().Clear()
		m.refreshViewport()
		m.statusMsg = "Conversation cleared"
		return m, nil

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Home):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keyMap.End):
		m.viewport.GotoBottom()
		return m, nil
	}

	// Forward everything else to the text input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// INPUT SUBMISSION
// =============================================================================

// submitInput handles Enter: slash commands run through the registry,
// everything else becomes a completion exchange.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	if commands.IsCommand(content) {
		return m.runCommand(content)
	}

	userMsg, err := m.exchanger.Begin(content)
	if err != nil {
		if errors.Is(err, session.ErrBusy) {
			m.statusMsg = "Still waiting for the current reply..."
		}
		return m, nil
	}

	m.input.Reset()
	m.statusMsg = ""
	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		m.spinner.Start(),
		RequestCompletionCmd(m.exchanger, userMsg, content),
	)
}

// runCommand parses and dispatches a slash command.
func (m Model) runCommand(content string) (tea.Model, tea.Cmd) {
	result := m.parser.Parse(content)
	if result.Command == nil {
		m.lastError = &commands.ErrorMsg{
			Title:   "Unknown Command",
			Message: result.CommandName + " is not a recognized command.",
			Tip:     "Type /help to list the available commands",
		}
		return m, nil
	}

	m.input.Reset()
	ctx := &commands.Context{
		CurrentModel: m.CurrentModel(),
		CurrentTheme: m.theme.Name(),
		MessageCount: m.Conversation().MessageCount(),
	}
	return m, result.Command.Handler(ctx, result.Args)
}

// =============================================================================
// EXCHANGE COMPLETION
// =============================================================================

func (m Model) handleExchangeResult(msg ExchangeResultMsg) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	result := m.exchanger.Finish(msg.UserMessage, msg.Reply, msg.Err)
	if result.Failed {
		m.statusMsg = "The last request failed"
	}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, m.input.Focus()
}

// =============================================================================
// COMMAND EFFECTS
// =============================================================================

func (m Model) applyModelSwitch(modelID string) (tea.Model, tea.Cmd) {
	if err := m.exchanger.SetModel(modelID); err != nil {
		m.lastError = &commands.ErrorMsg{
			Title:   "Model Switch Failed",
			Message: err.Error(),
			Tip:     "Run /models to see the choices",
		}
		return m, nil
	}
	if info, ok := model.Lookup(modelID); ok {
		m.statusMsg = "Switched to " + info.Name
	} else {
		m.statusMsg = "Switched to " + modelID
	}
	return m, nil
}

func (m Model) handleEmojiSelected(msg components.EmojiSelectedMsg) (tea.Model, tea.Cmd) {
	switch msg.Target {
	case components.EmojiTargetInput:
		m.input.InsertAtCursor(msg.Emoji)
		return m, m.input.Focus()
	case components.EmojiTargetReaction:
		if m.Conversation().AddReaction(msg.MessageID, msg.Emoji) {
			m.refreshViewport()
		}
	}
	return m, nil
}

func (m Model) handleThemeSwitch(msg commands.ThemeSwitchMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		m.lastError = &commands.ErrorMsg{
			Title:   "Theme Switch Failed",
			Message: msg.Error.Error(),
			Tip:     "Valid themes are dark and light",
		}
		return m, nil
	}

	// Every component shares the theme pointer, so replacing the pointee
	// restyles all of them at once.
	*m.theme = *styles.NewThemeWithBackground(msg.Theme == "dark")
	m.theme.Resize(m.width, m.height)
	m.refreshViewport()
	m.statusMsg = "Theme: " + msg.Theme
	return m, nil
}

// handleConfigReloaded applies a config that changed on disk. The request
// settings take effect for the next exchange; the conversation is untouched.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}
	m.cfg = msg.Config
	if err := m.exchanger.SetConfig(msg.Config.ChatConfig()); err != nil {
		m.statusMsg = "Config reload rejected: " + err.Error()
		return m, nil
	}
	m.messageList.ShowTimestamps = msg.Config.UI.ShowTimestamps
	m.refreshViewport()
	m.statusMsg = "Configuration reloaded"
	return m, nil
}

func (m Model) describeConfig() string {
	cfg := m.exchanger.Config()
	return fmt.Sprintf("model=%s temperature=%.1f max_tokens=%d theme=%s",
		cfg.ModelID, cfg.Temperature, cfg.MaxTokens, m.theme.Name())
}

// =============================================================================
// VIEWPORT CONTENT
// =============================================================================

// refreshViewport re-renders the message list into the viewport.
func (m *Model) refreshViewport() {
	m.messageList.SetMessages(m.Conversation().Messages())

	content := m.messageList.View()
	if m.spinner.IsActive() {
		content += "\n" + m.spinner.View()
	}

	m.viewport.SetContent(content)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
