// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session drives the one-exchange-at-a-time conversation loop.
//
// An Exchanger pairs a Conversation with a completion client and runs the
// exchange state machine:
//
//	IDLE --submit(text)--> SENDING --success--> IDLE (assistant message appended)
//	SENDING --failure--> IDLE (error message appended)
//
// Blank submissions are suppressed, a second submission while one is in
// flight is rejected, and every request failure is converted into a
// KindError assistant message rather than propagating. The awaiting flag is
// released in a defer on every path.
//
// There is deliberately no way to abort an in-flight exchange: it runs to
// completion or timeout.
package session
