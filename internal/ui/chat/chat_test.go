// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/chatbox-tui/internal/commands"
	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
	"github.com/jeranaias/chatbox-tui/internal/ui/components"
	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// stubCompleter scripts the completion outcome.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, text string, cfg model.ChatConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestModel(stub *stubCompleter) Model {
	theme := styles.NewThemeWithBackground(true)
	ex := session.New(model.NewConversation(), stub, model.DefaultChatConfig())
	m := New(theme, ex, config.Default())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

// =============================================================================
// EXCHANGE FLOW
// =============================================================================

func TestSubmit_StartsExchange(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "Hello!"})
	m.input.SetValue("hi there")

	updated, cmd := m.submitInput()
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("submitInput returned no command")
	}
	if got := m.Conversation().MessageCount(); got != 1 {
		t.Fatalf("conversation has %d messages, want 1", got)
	}
	if !m.Conversation().Awaiting() {
		t.Error("awaiting false during exchange")
	}
	if m.input.Value() != "" {
		t.Error("input not cleared after submit")
	}
}

func TestExchange_RoundTrip(t *testing.T) {
	stub := &stubCompleter{reply: "Hello!"}
	m := newTestModel(stub)

	userMsg, err := m.exchanger.Begin("hi there")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	msg := RequestCompletionCmd(m.exchanger, userMsg, "hi there")()
	result, ok := msg.(ExchangeResultMsg)
	if !ok {
		t.Fatalf("command produced %T, want ExchangeResultMsg", msg)
	}
	if result.Reply != "Hello!" {
		t.Errorf("reply = %q, want Hello!", result.Reply)
	}

	updated, _ := m.Update(result)
	m = updated.(Model)

	msgs := m.Conversation().Messages()
	if len(msgs) != 2 {
		t.Fatalf("conversation has %d messages, want 2", len(msgs))
	}
	if msgs[1].Role != model.RoleAssistant || msgs[1].Content != "Hello!" {
		t.Errorf("assistant message = %+v", msgs[1])
	}
	if m.Conversation().Awaiting() {
		t.Error("awaiting still true after exchange settled")
	}
}

func TestExchange_FailureRendersErrorMessage(t *testing.T) {
	stub := &stubCompleter{err: errors.New("dial tcp: connection refused")}
	m := newTestModel(stub)

	userMsg, err := m.exchanger.Begin("hi")
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	msg := RequestCompletionCmd(m.exchanger, userMsg, "hi")()

	updated, _ := m.Update(msg)
	m = updated.(Model)

	last := m.Conversation().LastMessage()
	if last == nil || last.Kind != model.KindError {
		t.Errorf("last message = %+v, want KindError", last)
	}
	if strings.Contains(last.Content, "connection refused") {
		t.Error("raw transport error leaked into the conversation")
	}
}

func TestSubmit_BusyShowsStatus(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	m.Conversation().SetAwaiting(true)
	m.input.SetValue("second message")

	updated, cmd := m.submitInput()
	m = updated.(Model)

	if cmd != nil {
		t.Error("busy submit produced a command")
	}
	if m.Conversation().MessageCount() != 0 {
		t.Error("busy submit appended a message")
	}
	if m.statusMsg == "" {
		t.Error("busy submit set no status notice")
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

func TestSubmit_ClearCommand(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	if _, err := m.Conversation().AddUserMessage("hello"); err != nil {
		t.Fatalf("AddUserMessage() error = %v", err)
	}

	m.input.SetValue("/clear")
	updated, cmd := m.submitInput()
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("command handler returned no command")
	}

	updated, _ = m.Update(cmd())
	m = updated.(Model)

	if got := m.Conversation().MessageCount(); got != 0 {
		t.Errorf("conversation has %d messages after /clear, want 0", got)
	}
}

func TestSubmit_UnknownCommand(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	m.input.SetValue("/bogus")

	updated, _ := m.submitInput()
	m = updated.(Model)

	if m.lastError == nil {
		t.Fatal("unknown command set no error")
	}
	if !strings.Contains(m.lastError.Message, "/bogus") {
		t.Errorf("error message = %q, want the command name", m.lastError.Message)
	}
	if m.Conversation().MessageCount() != 0 {
		t.Error("unknown command appended a message")
	}
}

// =============================================================================
// MODEL SWITCHING
// =============================================================================

func TestModelSelected(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})

	updated, _ := m.Update(components.ModelSelectedMsg{ModelID: "claude-3-5-haiku"})
	m = updated.(Model)

	if got := m.CurrentModel(); got != "claude-3-5-haiku" {
		t.Errorf("current model = %q, want claude-3-5-haiku", got)
	}
	if m.statusMsg == "" {
		t.Error("model switch set no status notice")
	}
}

func TestModelSwitch_RejectedShowsError(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	before := m.CurrentModel()

	updated, _ := m.Update(components.ModelSelectedMsg{ModelID: "gpt-9000"})
	m = updated.(Model)

	if m.lastError == nil {
		t.Fatal("rejected switch set no error")
	}
	if m.CurrentModel() != before {
		t.Errorf("current model changed to %q", m.CurrentModel())
	}
}

// =============================================================================
// REACTIONS
// =============================================================================

func TestEmojiReaction(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	userMsg, err := m.Conversation().AddUserMessage("hello")
	if err != nil {
		t.Fatalf("AddUserMessage() error = %v", err)
	}

	updated, _ := m.Update(components.EmojiSelectedMsg{
		Emoji:     "🎉",
		Target:    components.EmojiTargetReaction,
		MessageID: userMsg.ID,
	})
	m = updated.(Model)

	if !userMsg.HasReaction("🎉") {
		t.Error("reaction not recorded on the message")
	}
}

func TestEmojiInsert(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	m.input.SetValue("nice ")

	updated, _ := m.Update(components.EmojiSelectedMsg{
		Emoji:  "👍",
		Target: components.EmojiTargetInput,
	})
	m = updated.(Model)

	if got := m.input.Value(); got != "nice 👍" {
		t.Errorf("input value = %q, want %q", got, "nice 👍")
	}
}

// =============================================================================
// RENDERING
// =============================================================================

func TestView_Smoke(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})

	out := m.View()
	if !strings.Contains(out, "chatbox") {
		t.Error("view missing the header title")
	}
	if !strings.Contains(out, m.CurrentModel()) {
		t.Error("view missing the current model")
	}
}

func TestView_HelpOverlay(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})

	updated, _ := m.Update(commands.ShowHelpMsg{})
	m = updated.(Model)

	out := m.View()
	if !strings.Contains(out, "/help") {
		t.Error("help overlay missing slash commands")
	}

	// Any key dismisses it.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = updated.(Model)
	if m.showHelp {
		t.Error("help overlay still visible after key press")
	}
}

func TestStatusBar_ShowsMessageCount(t *testing.T) {
	m := newTestModel(&stubCompleter{reply: "ok"})
	if _, err := m.Conversation().AddUserMessage("one"); err != nil {
		t.Fatalf("AddUserMessage() error = %v", err)
	}
	m.refreshViewport()

	if !strings.Contains(m.renderStatusBar(), "1 messages") {
		t.Error("status bar missing the message count")
	}
}
