// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud implements the chat-completions client.
//
// The client is a thin adapter over the hosted completion API: given the text
// of the latest user message and a ChatConfig, it issues exactly one POST to
// {base}/chat/completions and returns the extracted reply text or a typed
// failure. There is no retry, no backoff, and no streaming.
//
// # Key Types
//
//   - Client: HTTP client built from explicit Options (base URL, credential
//     map, timeout) — never from ambient global state
//   - HTTPError: non-2xx responses with status, code, and message
//   - ErrMissingCredential: the model's credential is absent, detected
//     before any network I/O
//
// # Usage
//
//	client := cloud.NewClient(cloud.Options{
//	    Credentials: map[string]string{"CHATBOX_OPENAI_KEY": key},
//	})
//	reply, err := client.Complete(ctx, "Hello", model.DefaultChatConfig())
//
// A success body missing choices[0].message.content degrades to the fixed
// FallbackReply string instead of failing.
package cloud
