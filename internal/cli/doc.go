// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the chatbox command-line interface: argument
// parsing, the one-shot "ask" command, the line-mode "chat" REPL, and the
// models/config/version subcommands. The full-screen interface lives in
// ui/chat; this package covers everything reachable without the TUI.
//
// Output is TTY-aware throughout: markdown rendering and colors only when
// stdout is a terminal, plain text when piped, NO_COLOR respected.
//
// # Key Types
//
//   - Command: which subcommand to run, returned by Parse
//   - Args: parsed flags and positionals
//   - ChatCLI: readline wrapper with persistent history for the REPL
//
// # Usage
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdAsk:
//		cli.HandleAsk(args)
//	case cli.CmdChat:
//		cli.HandleChat(args)
//	}
package cli
