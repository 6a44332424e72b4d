// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session drives the one-exchange-at-a-time conversation loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/chatbox-tui/internal/cloud"
	"github.com/jeranaias/chatbox-tui/internal/model"
)

// Error variables for pre-flight rejection. Once an exchange is in flight its
// failures never propagate; they land in the conversation as error messages.
var (
	// ErrBusy indicates an exchange is already in flight.
	ErrBusy = errors.New("an exchange is already in flight")

	// ErrEmptyInput indicates a blank submission. Suppressed: nothing is
	// appended and no request is issued.
	ErrEmptyInput = errors.New("empty input")
)

// Completer is the slice of the cloud client the exchanger needs.
type Completer interface {
	Complete(ctx context.Context, text string, cfg model.ChatConfig) (string, error)
}

// =============================================================================
// EXCHANGER
// =============================================================================

// Exchanger owns a conversation and runs exchanges against a completion
// client. One exchange is:
//
//	IDLE --submit(text)--> SENDING --success--> IDLE (assistant message appended)
//	SENDING --failure--> IDLE (error message appended)
//
// The awaiting flag gates submission and is released in a defer, so it cannot
// stick after a timeout or failure. There is no way to abort an in-flight
// exchange; it runs to completion or timeout.
type Exchanger struct {
	conv   *model.Conversation
	client Completer
	cfg    model.ChatConfig
}

// Result reports the outcome of one exchange for callers that render it.
type Result struct {
	UserMessage      *model.Message
	AssistantMessage *model.Message
	Failed           bool
}

// New creates an exchanger for the given conversation and client.
func New(conv *model.Conversation, client Completer, cfg model.ChatConfig) *Exchanger {
	return &Exchanger{conv: conv, client: client, cfg: cfg}
}

// Conversation returns the conversation this exchanger drives.
func (e *Exchanger) Conversation() *model.Conversation {
	return e.conv
}

// Config returns the current request configuration.
func (e *Exchanger) Config() model.ChatConfig {
	return e.cfg
}

// SetModel switches the model used for subsequent requests. Prior messages
// are untouched. Unknown models are rejected.
func (e *Exchanger) SetModel(modelID string) error {
	if !model.IsAllowed(modelID) {
		return fmt.Errorf("unknown model %q", modelID)
	}
	e.cfg.ModelID = modelID
	return nil
}

// SetConfig replaces the request configuration after validating it.
func (e *Exchanger) SetConfig(cfg model.ChatConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit runs one exchange: append the user message, issue the request,
// append the reply. The returned error covers only pre-flight rejection
// (blank input, exchange already in flight); request failures are swallowed
// into the conversation as a KindError assistant message.
func (e *Exchanger) Submit(ctx context.Context, text string) (Result, error) {
	userMsg, err := e.Begin(text)
	if err != nil {
		return Result{}, err
	}

	reply, reqErr := e.Request(ctx, text)
	return e.Finish(userMsg, reply, reqErr), nil
}

// =============================================================================
// SPLIT EXCHANGE
// =============================================================================

// The TUI owns the conversation on its event loop, so it cannot run Submit in
// a background goroutine. Begin and Finish mutate the conversation and must
// run on the owning goroutine; Request touches only the client and may run
// anywhere in between.

// Begin validates the submission and appends the user message, raising the
// awaiting flag. On any error nothing is appended and the flag stays down.
func (e *Exchanger) Begin(text string) (*model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	if e.conv.Awaiting() {
		return nil, ErrBusy
	}

	userMsg, err := e.conv.AddUserMessage(text)
	if err != nil {
		return nil, err
	}

	e.conv.SetAwaiting(true)
	return userMsg, nil
}

// Request issues the completion call for a begun exchange.
func (e *Exchanger) Request(ctx context.Context, text string) (string, error) {
	return e.client.Complete(ctx, text, e.cfg)
}

// Finish applies the outcome of a begun exchange and releases the awaiting
// flag. A request failure becomes a KindError assistant message.
func (e *Exchanger) Finish(userMsg *model.Message, reply string, err error) Result {
	defer e.conv.SetAwaiting(false)

	if err != nil {
		errMsg := e.conv.AddAssistantMessage(renderFailure(err), model.KindError)
		return Result{UserMessage: userMsg, AssistantMessage: errMsg, Failed: true}
	}

	botMsg := e.conv.AddAssistantMessage(reply, classifyReply(reply))
	return Result{UserMessage: userMsg, AssistantMessage: botMsg}
}

// =============================================================================
// REPLY CLASSIFICATION
// =============================================================================

// classifyReply marks a reply that is a single fenced code block as KindCode.
func classifyReply(reply string) model.Kind {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return model.KindNormal
	}
	// The closing fence must be the only other fence.
	inner := strings.TrimPrefix(trimmed, "```")
	if strings.Count(inner, "```") != 1 {
		return model.KindNormal
	}
	return model.KindCode
}

// renderFailure turns an exchange failure into the text of the synthesized
// assistant message. Credentials and request bodies never appear here.
func renderFailure(err error) string {
	switch {
	case errors.Is(err, cloud.ErrMissingCredential):
		return "No credential is configured for this model. " + afterContext(err)
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. Please try again."
	}

	var httpErr *cloud.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Status {
		case 401, 403:
			return "The completion service rejected the credential."
		case 429:
			return "The completion service is overloaded. Please try again shortly."
		default:
			return fmt.Sprintf("The completion service returned an error (HTTP %d).", httpErr.Status)
		}
	}

	return "Something went wrong while contacting the completion service. Please try again."
}

// afterContext extracts the detail portion of a wrapped sentinel error for
// display, e.g. the env var hint of a missing credential.
func afterContext(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, "(set "); i >= 0 {
		return "Set the " + strings.TrimSuffix(msg[i+5:], ")") + " environment variable."
	}
	return ""
}
