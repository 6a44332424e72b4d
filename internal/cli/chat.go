// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive line-mode chat for the chatbox CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Markdown rendering and history for better CLI experience
//
// Handles the "chatbox chat" command: a readline-style REPL with
// persistent input history, slash commands, and whole-reply exchanges.
// For the full-screen interface use the TUI (run chatbox with no
// arguments).
//
// Command: chat
// Short:   Interactive chat
//
// Examples:
//   chatbox chat
//   chatbox chat --model claude-3-5-sonnet
//
// Flags:
//   -m, --model NAME    Start the session with a specific model
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
)

// historyFileName is the input history file kept under the config directory.
const historyFileName = "chat_history"

// =============================================================================
// LINE EDITOR
// =============================================================================

// ChatCLI wraps the liner readline state with history persistence.
type ChatCLI struct {
	line        *liner.State
	historyPath string
}

// NewChatCLI creates the line editor and loads prior input history.
// A missing or unreadable history file is not an error.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &ChatCLI{line: line}
	if dir, err := config.ConfigDir(); err == nil {
		c.historyPath = filepath.Join(dir, historyFileName)
		c.loadHistory()
	}
	return c
}

// loadHistory reads prior inputs into the editor.
func (c *ChatCLI) loadHistory() {
	if c.historyPath == "" {
		return
	}
	f, err := os.Open(c.historyPath)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.ReadHistory(f)
}

// SaveHistory writes the input history back to disk.
// History is user-private state, written 0600 like the config file.
func (c *ChatCLI) SaveHistory() error {
	if c.historyPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.historyPath), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(c.historyPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = c.line.WriteHistory(f)
	return err
}

// ReadInput reads one line of input with the given prompt.
// Returns liner.ErrPromptAborted on Ctrl+C.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	input = strings.TrimSpace(input)
	if input != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal state.
func (c *ChatCLI) Close() {
	c.line.Close()
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand handles the "chat" command: the line-mode REPL.
// This replaces the stub implementation in cli.go.
func HandleChatCommand(args Args) error {
	if err := RequiresTTYForChat(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	chatCfg := cfg.ChatConfig()
	if args.Model != "" {
		info, ok := model.Lookup(args.Model)
		if !ok {
			return fmt.Errorf("unknown model %q (one of: %s)",
				args.Model, strings.Join(model.ModelIDs(), ", "))
		}
		chatCfg.ModelID = info.ID
	}

	ex := newExchanger(cfg, chatCfg)

	cli := NewChatCLI()
	defer cli.Close()

	// Ctrl+C during a pending read aborts the prompt via liner; a signal
	// arriving between prompts still needs a handler so the terminal is
	// restored before exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cli.Close()
		os.Exit(0)
	}()

	printWelcome(chatCfg.ModelID)

	start := time.Now()
	for {
		// Plain prompt: liner counts prompt width in bytes, so ANSI
		// escapes would break cursor positioning.
		input, err := cli.ReadInput("you> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				break
			}
			if errors.Is(err, liner.ErrNotTerminalOutput) {
				return err
			}
			// EOF (Ctrl+D) ends the session
			break
		}

		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := handleSlashCommand(ex, input)
			if err != nil {
				fmt.Println(errorStyle.Render("Error: ") + err.Error())
			}
			if !keepGoing {
				break
			}
			continue
		}

		runExchange(ex, input)
	}

	if err := cli.SaveHistory(); err != nil {
		fmt.Fprintf(os.Stderr, "%s could not save history: %v\n",
			warningStyle.Render("Warning:"), err)
	}

	printExitSummary(ex.Conversation(), time.Since(start))
	return nil
}

// RequiresTTYForChat rejects chat when stdin is not a terminal.
func RequiresTTYForChat() error {
	if !IsTTY() {
		return errors.New("stdin is not a terminal; use 'chatbox ask' for piped input")
	}
	return nil
}

// runExchange performs one synchronous exchange and prints the reply.
// A failed request surfaces as an error-kind assistant message in the
// conversation, never as a REPL fault.
func runExchange(ex *session.Exchanger, input string) {
	fmt.Println(mutedStyle.Render("thinking..."))

	result, err := ex.Submit(context.Background(), input)
	if err != nil {
		// Submit only errors on invalid input or a busy exchanger;
		// request failures come back inside the result.
		fmt.Println(errorStyle.Render("Error: ") + err.Error())
		return
	}

	msg := result.AssistantMessage
	if msg == nil {
		return
	}
	if msg.Kind == model.KindError {
		fmt.Println(errorStyle.Render("assistant> ") + msg.Content)
		return
	}
	fmt.Print(commandStyle.Render("assistant> "))
	displayResponse(msg.Content)
	if !strings.HasSuffix(msg.Content, "\n") {
		fmt.Println()
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes a /command line.
// Returns false when the REPL should exit.
func handleSlashCommand(ex *session.Exchanger, input string) (bool, error) {
	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "/help", "/h":
		printChatHelp()
		return true, nil

	case "/clear":
		ex.Conversation().Clear()
		fmt.Println(infoStyle.Render("Conversation cleared."))
		return true, nil

	case "/model", "/m":
		if len(fields) < 2 {
			fmt.Printf("Current model: %s\n", summaryValueStyle.Render(ex.Config().ModelID))
			fmt.Println(mutedStyle.Render("Usage: /model <name>"))
			return true, nil
		}
		info, ok := model.Lookup(fields[1])
		if !ok {
			return true, fmt.Errorf("unknown model %q (one of: %s)",
				fields[1], strings.Join(model.ModelIDs(), ", "))
		}
		if err := ex.SetModel(info.ID); err != nil {
			return true, err
		}
		fmt.Printf("Switched to %s\n", summaryValueStyle.Render(info.Name))
		return true, nil

	case "/models":
		printModelList(ex.Config().ModelID)
		return true, nil

	case "/history":
		printHistory(ex.Conversation())
		return true, nil

	case "/status":
		printStatus(ex)
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command %s (try /help)", cmd)
	}
}

// =============================================================================
// DISPLAY
// =============================================================================

// printWelcome prints the session banner.
func printWelcome(modelID string) {
	fmt.Println(summaryHeaderStyle.Render("chatbox chat"))
	fmt.Printf("%s %s\n", summaryLabelStyle.Render("Model:"), modelID)
	fmt.Println(mutedStyle.Render("Type /help for commands, /quit or Ctrl+C to exit."))
	fmt.Println()
}

// printChatHelp lists the REPL slash commands.
func printChatHelp() {
	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help", "Show this help"},
		{"/clear", "Clear the conversation"},
		{"/model <name>", "Switch model"},
		{"/models", "List available models"},
		{"/history", "Show the conversation so far"},
		{"/status", "Show session status"},
		{"/quit", "Exit"},
	}

	fmt.Println(summaryHeaderStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Printf("  %-16s %s\n", commandStyle.Render(c.cmd), c.desc)
	}
	fmt.Println()
}

// printModelList lists the model allow-list with credential status.
// SECURITY: Reports only whether a credential is set, never its value.
func printModelList(currentID string) {
	for _, id := range model.ModelIDs() {
		info := model.Models[id]
		marker := "  "
		if id == currentID {
			marker = commandStyle.Render("* ")
		}
		credNote := mutedStyle.Render("credential not set")
		if os.Getenv(info.CredentialEnv) != "" {
			credNote = summaryValueStyle.Render("ready")
		}
		fmt.Printf("%s%-20s %-10s %s\n", marker, id, info.Provider, credNote)
	}
	fmt.Println()
}

// printHistory shows the conversation so far.
func printHistory(conv *model.Conversation) {
	if conv.IsEmpty() {
		fmt.Println(mutedStyle.Render("No messages yet."))
		return
	}
	for _, msg := range conv.Messages() {
		label := promptStyle.Render("you> ")
		if msg.Role == model.RoleAssistant {
			label = commandStyle.Render("assistant> ")
			if msg.Kind == model.KindError {
				label = errorStyle.Render("assistant> ")
			}
		}
		fmt.Println(label + msg.Preview(100))
	}
	fmt.Println()
}

// printStatus shows the current session state.
func printStatus(ex *session.Exchanger) {
	cfg := ex.Config()
	conv := ex.Conversation()
	fmt.Printf("%s %s\n", summaryLabelStyle.Render("Model:"), cfg.ModelID)
	fmt.Printf("%s %.1f\n", summaryLabelStyle.Render("Temperature:"), cfg.Temperature)
	fmt.Printf("%s %d\n", summaryLabelStyle.Render("Max tokens:"), cfg.MaxTokens)
	fmt.Printf("%s %d\n", summaryLabelStyle.Render("Messages:"), conv.MessageCount())
	fmt.Println()
}

// printExitSummary prints a short wrap-up when the REPL ends.
func printExitSummary(conv *model.Conversation, elapsed time.Duration) {
	fmt.Println()
	separator := strings.Repeat("─", 45)
	fmt.Println(separatorStyle.Render(separator))
	fmt.Printf("%s %s | %s %v\n",
		summaryLabelStyle.Render("Messages:"),
		summaryValueStyle.Render(fmt.Sprintf("%d", conv.MessageCount())),
		summaryLabelStyle.Render("Session:"),
		elapsed.Round(time.Second))
}
