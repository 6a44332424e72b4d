// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for the chatbox CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Markdown rendering for better CLI experience
//
// Handles the "chatbox ask" command which sends a single question to the
// completion endpoint and prints the reply to stdout.
//
// Command: ask [question]
// Short:   Ask a single question
//
// Examples:
//   chatbox ask "What is the capital of France?"
//   chatbox ask -m claude-3-5-sonnet "Explain this error"
//   chatbox ask "Review this code:" --file main.go
//   cat error.log | chatbox ask
//
// Flags:
//   -f, --file FILE     Include file content with the question
//   -m, --model NAME    Use specific model (overrides config)
//   -q, --quiet         Minimal output
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/chatbox-tui/internal/cloud"
	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// MaxFileSize is the maximum file size to include (50KB).
	MaxFileSize = 50 * 1024
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the global glamour renderer for markdown output.
// USABILITY: Renders markdown replies with syntax highlighting and formatting.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to plain text if renderer initialization fails
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown content for terminal display.
// Returns the original content if rendering fails or renderer is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}

	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse displays a reply with markdown rendering when appropriate.
// Only renders markdown when stdout is a TTY to avoid corrupting piped output.
func displayResponse(reply string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(reply))
	} else {
		fmt.Print(reply)
	}
}

// =============================================================================
// FILE READING
// =============================================================================

// readFileForContext reads a file and formats it for inclusion in a prompt.
// Files larger than MaxFileSize are rejected.
func readFileForContext(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d bytes)", info.Size(), MaxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("\n--- File: %s ---\n", path))
	builder.Write(content)
	builder.WriteString("\n--- End of file ---\n")

	return builder.String(), nil
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// HandleAskCommand handles the "ask" command.
// This replaces the stub implementation in cli.go.
func HandleAskCommand(args Args) error {
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

	// Get the question (built by parseAskArgs from positional args)
	question := args.Query

	// If no question from args, try reading from stdin (for piped input)
	if question == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			// Stdin is a pipe, read from it
			reader := bufio.NewReader(os.Stdin)
			stdinData, err := io.ReadAll(reader)
			if err == nil && len(stdinData) > 0 {
				question = strings.TrimSpace(string(stdinData))
				if !args.Quiet {
					fmt.Fprintf(os.Stderr, "%s Read question from stdin (%d bytes)\n",
						infoStyle.Render("[+]"), len(stdinData))
				}
			}
		}
	}

	if question == "" {
		return fmt.Errorf("no question provided. Usage: chatbox ask \"your question\"")
	}

	// If file is specified, read and append to question
	if args.File != "" {
		fileContent, err := readFileForContext(args.File)
		if err != nil {
			return err
		}
		question = question + "\n" + fileContent

		if !args.Quiet {
			fmt.Fprintf(os.Stderr, "%s Including file: %s\n",
				infoStyle.Render("[+]"), args.File)
		}
	}

	// SECURITY: Credentials come from the environment only; the credential
	// for the selected model is checked before any network I/O.
	client := cloud.NewClient(cloud.Options{
		BaseURL:     cfg.Completion.BaseURL,
		Credentials: config.Credentials(),
		Timeout:     time.Duration(cfg.Completion.TimeoutSecs) * time.Second,
	})
	if !client.HasCredential(chatCfg.ModelID) {
		env, _ := model.CredentialEnv(chatCfg.ModelID)
		return fmt.Errorf("%w %q (set %s)", cloud.ErrMissingCredential, chatCfg.ModelID, env)
	}

	if !args.Quiet {
		fmt.Fprintf(os.Stderr, "%s %s\n", summaryLabelStyle.Render("Model:"), chatCfg.ModelID)
		fmt.Fprintln(os.Stderr)
	}

	start := time.Now()
	reply, err := client.Complete(context.Background(), question, chatCfg)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	// USABILITY: Render markdown on TTY, plain text for pipes
	displayResponse(reply)
	if !strings.HasSuffix(reply, "\n") {
		fmt.Println()
	}

	if !args.Quiet {
		displayAskSummary(chatCfg.ModelID, reply, duration)
	}

	return nil
}

// displayAskSummary shows a one-line summary after the reply.
func displayAskSummary(modelID, reply string, duration time.Duration) {
	separator := strings.Repeat("─", 45)
	fmt.Fprintln(os.Stderr, separatorStyle.Render(separator))
	fmt.Fprintf(os.Stderr, "%s %s | %s %s | %s %v\n",
		summaryLabelStyle.Render("Model:"),
		summaryValueStyle.Render(modelID),
		summaryLabelStyle.Render("Reply:"),
		summaryValueStyle.Render(formatNumber(len(reply))+" bytes"),
		summaryLabelStyle.Render("Time:"),
		duration.Round(time.Millisecond))
}

// formatNumber formats an integer with commas for thousands.
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+len(s)/3)

	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}

	return string(result)
}

// newExchanger builds a session exchanger from loaded config, shared by the
// chat REPL. The ask path calls the client directly; chat keeps a
// conversation.
func newExchanger(cfg *config.Config, chatCfg model.ChatConfig) *session.Exchanger {
	client := cloud.NewClient(cloud.Options{
		BaseURL:     cfg.Completion.BaseURL,
		Credentials: config.Credentials(),
		Timeout:     time.Duration(cfg.Completion.TimeoutSecs) * time.Second,
	})
	return session.New(model.NewConversation(), client, chatCfg)
}
