// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidMessage is returned when a user-authored message is empty after
// trimming whitespace. Such submissions append nothing and trigger no request.
var ErrInvalidMessage = errors.New("message text is empty")

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered, append-only message sequence for one chat
// session, plus the transient state that drives submission.
//
// The conversation is owned by a single UI session and is never shared across
// goroutines without external coordination: all mutation happens on the event
// loop that owns it, so no locking is needed here.
type Conversation struct {
	messages []*Message

	// awaiting gates submission: at most one exchange may be in flight.
	awaiting bool

	// Draft is the text currently sitting in the input box.
	Draft string

	createdAt time.Time
	updatedAt time.Time
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		messages:  make([]*Message, 0),
		createdAt: now,
		updatedAt: now,
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the sequence.
// User-authored messages that are empty after trimming whitespace are
// rejected with ErrInvalidMessage.
func (c *Conversation) Append(msg *Message) error {
	if msg.Role == RoleUser && strings.TrimSpace(msg.Content) == "" {
		return ErrInvalidMessage
	}
	c.messages = append(c.messages, msg)
	c.updatedAt = time.Now()
	return nil
}

// AddUserMessage creates and appends a user message.
func (c *Conversation) AddUserMessage(content string) (*Message, error) {
	msg := NewUserMessage(content)
	if err := c.Append(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// AddAssistantMessage creates and appends an assistant message.
func (c *Conversation) AddAssistantMessage(content string, kind Kind) *Message {
	msg := NewAssistantMessage(content, kind)
	// Assistant messages are never rejected; an empty reply is still a reply.
	c.messages = append(c.messages, msg)
	c.updatedAt = time.Now()
	return msg
}

// Clear empties the sequence and resets the transient flags.
// It always succeeds. History is discarded irrecoverably; there is no undo.
func (c *Conversation) Clear() {
	c.messages = make([]*Message, 0)
	c.awaiting = false
	c.Draft = ""
	c.updatedAt = time.Now()
}

// =============================================================================
// AWAITING FLAG
// =============================================================================

// SetAwaiting toggles the in-flight guard. Callers set it true immediately
// before issuing a request and release it in a defer so the flag cannot be
// stuck after a failure or timeout.
func (c *Conversation) SetAwaiting(v bool) {
	c.awaiting = v
}

// Awaiting reports whether an exchange is currently in flight.
func (c *Conversation) Awaiting() bool {
	return c.awaiting
}

// =============================================================================
// LOOKUP AND METADATA
// =============================================================================

// Messages returns the message history for display.
func (c *Conversation) Messages() []*Message {
	return c.messages
}

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.messages) == 0 {
		return nil
	}
	return c.messages[len(c.messages)-1]
}

// LastUserMessage returns the most recent user message, or nil.
func (c *Conversation) LastUserMessage() *Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleUser {
			return c.messages[i]
		}
	}
	return nil
}

// LastAssistantMessage returns the most recent assistant message, or nil.
func (c *Conversation) LastAssistantMessage() *Message {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAssistant {
			return c.messages[i]
		}
	}
	return nil
}

// MessageByID returns a message by its ID, or nil.
func (c *Conversation) MessageByID(id string) *Message {
	for _, msg := range c.messages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

// AddReaction appends an emoji reaction to the message with the given ID.
// Returns false if the message does not exist or already has the reaction.
func (c *Conversation) AddReaction(messageID, emoji string) bool {
	msg := c.MessageByID(messageID)
	if msg == nil {
		return false
	}
	if !msg.AddReaction(emoji) {
		return false
	}
	c.updatedAt = time.Now()
	return true
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// Preview returns a short preview of the conversation for display.
func (c *Conversation) Preview() string {
	if len(c.messages) == 0 {
		return "Empty conversation"
	}
	first := c.LastUserMessage()
	if first == nil {
		first = c.messages[0]
	}
	return first.Preview(100)
}

// CreatedAt returns when the conversation started.
func (c *Conversation) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns when the conversation last changed.
func (c *Conversation) UpdatedAt() time.Time {
	return c.updatedAt
}
