// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"testing"
)

// =============================================================================
// APPEND TESTS
// =============================================================================

func TestAppend_RejectsBlankUserMessages(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"normal text", "hello", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"text with padding", "  hello  ", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conv := NewConversation()
			_, err := conv.AddUserMessage(tc.content)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMessage) {
					t.Errorf("AddUserMessage(%q) error = %v, want ErrInvalidMessage", tc.content, err)
				}
				if conv.MessageCount() != 0 {
					t.Error("rejected message was appended anyway")
				}
			} else {
				if err != nil {
					t.Errorf("AddUserMessage(%q) error = %v", tc.content, err)
				}
				if conv.MessageCount() != 1 {
					t.Error("accepted message was not appended")
				}
			}
		})
	}
}

func TestAppend_AssistantMessagesNeverRejected(t *testing.T) {
	conv := NewConversation()
	msg := conv.AddAssistantMessage("", KindNormal)
	if msg == nil || conv.MessageCount() != 1 {
		t.Error("empty assistant message was rejected; only user messages are validated")
	}
}

func TestAppend_OrderingIsAppendOnly(t *testing.T) {
	conv := NewConversation()

	if _, err := conv.AddUserMessage("one"); err != nil {
		t.Fatal(err)
	}
	conv.AddAssistantMessage("two", KindNormal)
	if _, err := conv.AddUserMessage("three"); err != nil {
		t.Fatal(err)
	}

	msgs := conv.Messages()
	wantContents := []string{"one", "two", "three"}
	for i, want := range wantContents {
		if msgs[i].Content != want {
			t.Errorf("messages[%d].Content = %q, want %q", i, msgs[i].Content, want)
		}
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			t.Errorf("messages[%d].CreatedAt precedes messages[%d]", i, i-1)
		}
	}

	// IDs are unique.
	seen := map[string]bool{}
	for _, m := range msgs {
		if seen[m.ID] {
			t.Errorf("duplicate message ID %q", m.ID)
		}
		seen[m.ID] = true
	}
}

// =============================================================================
// CLEAR TESTS
// =============================================================================

func TestClear(t *testing.T) {
	conv := NewConversation()
	if _, err := conv.AddUserMessage("hello"); err != nil {
		t.Fatal(err)
	}
	conv.AddAssistantMessage("hi", KindNormal)
	conv.SetAwaiting(true)
	conv.Draft = "half-typed"

	conv.Clear()

	if !conv.IsEmpty() {
		t.Error("Clear() left messages behind")
	}
	if conv.Awaiting() {
		t.Error("Clear() left awaiting set")
	}
	if conv.Draft != "" {
		t.Error("Clear() left draft text")
	}

	// Clear on an already-empty conversation succeeds too.
	conv.Clear()
	if !conv.IsEmpty() {
		t.Error("second Clear() failed")
	}
}

// =============================================================================
// LOOKUP TESTS
// =============================================================================

func TestLookupHelpers(t *testing.T) {
	conv := NewConversation()
	if conv.LastMessage() != nil || conv.LastUserMessage() != nil {
		t.Error("lookups on empty conversation should return nil")
	}

	u1, _ := conv.AddUserMessage("first")
	a1 := conv.AddAssistantMessage("reply", KindNormal)

	if conv.LastMessage() != a1 {
		t.Error("LastMessage() != most recent append")
	}
	if conv.LastUserMessage() != u1 {
		t.Error("LastUserMessage() != last user append")
	}
	if conv.LastAssistantMessage() != a1 {
		t.Error("LastAssistantMessage() != last assistant append")
	}
	if conv.MessageByID(u1.ID) != u1 {
		t.Error("MessageByID failed to find existing message")
	}
	if conv.MessageByID("nope") != nil {
		t.Error("MessageByID found a non-existent message")
	}
}

// =============================================================================
// REACTION TESTS
// =============================================================================

func TestAddReaction(t *testing.T) {
	conv := NewConversation()
	msg, _ := conv.AddUserMessage("hello")

	if !conv.AddReaction(msg.ID, "👍") {
		t.Error("first AddReaction returned false")
	}
	if conv.AddReaction(msg.ID, "👍") {
		t.Error("duplicate reaction was added; reactions form a set")
	}
	if !conv.AddReaction(msg.ID, "🎉") {
		t.Error("second distinct reaction returned false")
	}
	if conv.AddReaction("missing-id", "👍") {
		t.Error("AddReaction on unknown message returned true")
	}
	if conv.AddReaction(msg.ID, "") {
		t.Error("empty reaction was added")
	}

	if got := len(msg.Reactions); got != 2 {
		t.Errorf("message carries %d reactions, want 2", got)
	}
	if !msg.HasReaction("🎉") {
		t.Error("HasReaction(🎉) = false after append")
	}
}
