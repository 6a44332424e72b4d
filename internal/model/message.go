// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind classifies a message for rendering purposes.
type Kind string

const (
	// KindNormal is a regular prose message.
	KindNormal Kind = "normal"

	// KindCode marks a reply that is a single fenced code block.
	KindCode Kind = "code"

	// KindError marks an assistant message synthesized from a failed exchange.
	KindError Kind = "error"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation.
//
// Messages are immutable once created, with one exception: emoji reactions
// may be appended later via AddReaction. Identity is the ID; ordering within
// a conversation is CreatedAt ascending, append-only.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Kind      Kind      `json:"kind"`

	// Reactions is an append-only set of emoji annotations.
	Reactions []string `json:"reactions,omitempty"`
}

// NewMessage creates a new message with a generated ID.
func NewMessage(role Role, content string, kind Kind) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
		Kind:      kind,
	}
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) *Message {
	return NewMessage(RoleUser, content, KindNormal)
}

// NewAssistantMessage creates a new assistant message of the given kind.
func NewAssistantMessage(content string, kind Kind) *Message {
	return NewMessage(RoleAssistant, content, kind)
}

// NewErrorMessage creates an assistant-authored error message.
// Exchange failures surface in the conversation rather than as faults.
func NewErrorMessage(content string) *Message {
	return NewMessage(RoleAssistant, content, KindError)
}

// =============================================================================
// MESSAGE METHODS
// =============================================================================

// AddReaction appends an emoji reaction to the message.
// Reactions form a set: adding the same emoji twice is a no-op.
// Returns true if the reaction was added.
func (m *Message) AddReaction(emoji string) bool {
	if emoji == "" {
		return false
	}
	for _, r := range m.Reactions {
		if r == emoji {
			return false
		}
	}
	m.Reactions = append(m.Reactions, emoji)
	return true
}

// HasReaction reports whether the message carries the given reaction.
func (m *Message) HasReaction(emoji string) bool {
	for _, r := range m.Reactions {
		if r == emoji {
			return true
		}
	}
	return false
}

// IsError reports whether this is a synthesized error message.
func (m *Message) IsError() bool {
	return m.Kind == KindError
}

// IsEmpty returns true if the message has no content.
func (m *Message) IsEmpty() bool {
	return len(m.Content) == 0
}

// Preview returns a truncated preview of the message content.
// Uses rune-based truncation to handle Unicode correctly.
func (m *Message) Preview(maxLen int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxLen {
		return m.Content
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
