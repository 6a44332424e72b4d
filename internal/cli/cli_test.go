// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/chatbox-tui/internal/cloud"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
)

// =============================================================================
// ARGUMENT PARSING
// =============================================================================

func TestParseArgs_DefaultsToTUI(t *testing.T) {
	cmd, _ := ParseArgs(nil)
	if cmd != CmdTUI {
		t.Errorf("expected CmdTUI, got %v", cmd)
	}
}

func TestParseArgs_Ask(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "what", "is", "a", "goroutine"})
	if cmd != CmdAsk {
		t.Fatalf("expected CmdAsk, got %v", cmd)
	}
	if args.Query != "what is a goroutine" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseArgs_AskWithFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "-m", "gpt-4o", "--file", "main.go", "review", "this"})
	if cmd != CmdAsk {
		t.Fatalf("expected CmdAsk, got %v", cmd)
	}
	if args.Model != "gpt-4o" {
		t.Errorf("model = %q", args.Model)
	}
	if args.File != "main.go" {
		t.Errorf("file = %q", args.File)
	}
	if args.Query != "review this" {
		t.Errorf("query = %q", args.Query)
	}
}

func TestParseArgs_AskEqualsSyntax(t *testing.T) {
	_, args := ParseArgs([]string{"ask", "--model=claude-3-5-haiku", "--file=x.go", "hi"})
	if args.Model != "claude-3-5-haiku" {
		t.Errorf("model = %q", args.Model)
	}
	if args.File != "x.go" {
		t.Errorf("file = %q", args.File)
	}
}

func TestParseArgs_ChatModel(t *testing.T) {
	cmd, args := ParseArgs([]string{"chat", "--model", "llama-3.1-70b"})
	if cmd != CmdChat {
		t.Fatalf("expected CmdChat, got %v", cmd)
	}
	if args.Model != "llama-3.1-70b" {
		t.Errorf("model = %q", args.Model)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"-q", "--model", "gpt-4o", "ask", "hello"})
	if cmd != CmdAsk {
		t.Fatalf("expected CmdAsk, got %v", cmd)
	}
	if !args.Quiet {
		t.Error("expected quiet")
	}
	if args.Model != "gpt-4o" {
		t.Errorf("model = %q", args.Model)
	}
}

func TestParseArgs_ConfigSet(t *testing.T) {
	cmd, args := ParseArgs([]string{"config", "set", "ui.theme", "dark"})
	if cmd != CmdConfig {
		t.Fatalf("expected CmdConfig, got %v", cmd)
	}
	if args.Subcommand != "set" || args.ConfigKey != "ui.theme" || args.ConfigVal != "dark" {
		t.Errorf("parsed %q %q %q", args.Subcommand, args.ConfigKey, args.ConfigVal)
	}
}

func TestParseArgs_VersionAliases(t *testing.T) {
	for _, alias := range []string{"version", "-v", "--version"} {
		cmd, _ := ParseArgs([]string{alias})
		if cmd != CmdVersion {
			t.Errorf("%q: expected CmdVersion, got %v", alias, cmd)
		}
	}
}

func TestParseArgs_UnknownCommandFallsBackToTUI(t *testing.T) {
	cmd, _ := ParseArgs([]string{"bogus"})
	if cmd != CmdTUI {
		t.Errorf("expected CmdTUI, got %v", cmd)
	}
}

// =============================================================================
// EXIT CODES
// =============================================================================

func TestGetExitCode(t *testing.T) {
	if got := GetExitCode(nil); got != 0 {
		t.Errorf("nil error: got %d", got)
	}
	if got := GetExitCode(errors.New("boom")); got != 1 {
		t.Errorf("generic error: got %d", got)
	}
	wrapped := errors.Join(cloud.ErrMissingCredential, errors.New("gpt-4o"))
	if got := GetExitCode(wrapped); got != 2 {
		t.Errorf("missing credential: got %d", got)
	}
}

// =============================================================================
// FILE CONTEXT
// =============================================================================

func TestReadFileForContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snippet.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := readFileForContext(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "package main") {
		t.Errorf("content missing from %q", got)
	}
	if !strings.Contains(got, path) {
		t.Error("expected the file path in the header")
	}
}

func TestReadFileForContext_Missing(t *testing.T) {
	_, err := readFileForContext(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFileForContext_TooLarge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, make([]byte, MaxFileSize+1), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := readFileForContext(path)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected size error, got %v", err)
	}
}

// =============================================================================
// TEXT WRAPPING
// =============================================================================

func TestWrapText(t *testing.T) {
	wrapped := WrapText("one two three four five six seven eight nine ten", 20)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 20 {
			t.Errorf("line too long: %q", line)
		}
	}
}

func TestWrapText_PreservesNewlines(t *testing.T) {
	in := "first\nsecond"
	if got := WrapText(in, 80); got != in {
		t.Errorf("got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1234567: "1,234,567",
	}
	for n, want := range cases {
		if got := formatNumber(n); got != want {
			t.Errorf("formatNumber(%d) = %q, want %q", n, got, want)
		}
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(ctx context.Context, text string, cfg model.ChatConfig) (string, error) {
	return s.reply, s.err
}

func newTestExchanger() *session.Exchanger {
	return session.New(model.NewConversation(), &stubCompleter{reply: "ok"}, model.DefaultChatConfig())
}

func TestHandleSlashCommand_Quit(t *testing.T) {
	ex := newTestExchanger()
	for _, cmd := range []string{"/quit", "/q", "/exit"} {
		keepGoing, err := handleSlashCommand(ex, cmd)
		if err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
		if keepGoing {
			t.Errorf("%s should stop the loop", cmd)
		}
	}
}

func TestHandleSlashCommand_Clear(t *testing.T) {
	ex := newTestExchanger()
	if _, err := ex.Submit(context.Background(), "hello"); err != nil {
		t.Fatal(err)
	}
	keepGoing, err := handleSlashCommand(ex, "/clear")
	if err != nil || !keepGoing {
		t.Fatalf("keepGoing=%v err=%v", keepGoing, err)
	}
	if !ex.Conversation().IsEmpty() {
		t.Error("conversation should be empty after /clear")
	}
}

func TestHandleSlashCommand_ModelSwitch(t *testing.T) {
	ex := newTestExchanger()
	keepGoing, err := handleSlashCommand(ex, "/model claude-3-5-sonnet")
	if err != nil || !keepGoing {
		t.Fatalf("keepGoing=%v err=%v", keepGoing, err)
	}
	if ex.Config().ModelID != "claude-3-5-sonnet" {
		t.Errorf("model = %q", ex.Config().ModelID)
	}
}

func TestHandleSlashCommand_ModelRejected(t *testing.T) {
	ex := newTestExchanger()
	before := ex.Config().ModelID
	_, err := handleSlashCommand(ex, "/model gpt-9000")
	if err == nil {
		t.Fatal("expected error for unknown model")
	}
	if ex.Config().ModelID != before {
		t.Error("model changed despite rejection")
	}
}

func TestHandleSlashCommand_Unknown(t *testing.T) {
	ex := newTestExchanger()
	keepGoing, err := handleSlashCommand(ex, "/bogus")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !keepGoing {
		t.Error("unknown command should not end the session")
	}
}
