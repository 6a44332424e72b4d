// chatbox - a terminal chat client for hosted language models.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/jeranaias/chatbox-tui/internal/cli"
	"github.com/jeranaias/chatbox-tui/internal/cloud"
	"github.com/jeranaias/chatbox-tui/internal/config"
	"github.com/jeranaias/chatbox-tui/internal/model"
	"github.com/jeranaias/chatbox-tui/internal/session"
	"github.com/jeranaias/chatbox-tui/internal/ui/chat"
	"github.com/jeranaias/chatbox-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdAsk:
		cli.HandleAsk(args)
	case cli.CmdChat:
		cli.HandleChat(args)
	case cli.CmdModels:
		cli.HandleModels(args)
	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	default:
		runTUI(args)
	}
}

// runTUI starts the full-screen interface.
func runTUI(args cli.Args) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	chatCfg := cfg.ChatConfig()
	if args.Model != "" {
		info, ok := model.Lookup(args.Model)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown model %q\n", args.Model)
			os.Exit(1)
		}
		chatCfg.ModelID = info.ID
	}

	client := cloud.NewClient(cloud.Options{
		BaseURL:     cfg.Completion.BaseURL,
		Credentials: config.Credentials(),
		Timeout:     time.Duration(cfg.Completion.TimeoutSecs) * time.Second,
	})

	// A missing credential is not fatal: exchanges fail in-conversation,
	// and the user can switch to a model whose credential is set.
	if !client.HasCredential(chatCfg.ModelID) {
		if env, err := model.CredentialEnv(chatCfg.ModelID); err == nil {
			fmt.Fprintf(os.Stderr, "Warning: no credential for %s (set %s)\n", chatCfg.ModelID, env)
		}
	}

	theme := styles.NewThemeWithBackground(useDarkTheme(cfg.UI.Theme))
	ex := session.New(model.NewConversation(), client, chatCfg)
	m := chat.New(theme, ex, cfg)

	// The request logger writes to stderr, which would tear the alternate
	// screen while the TUI owns the terminal.
	log.SetOutput(io.Discard)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	// Reload the config file when it changes on disk; delivered onto the
	// event loop so the running session picks up new request settings.
	if path, err := config.ConfigPath(); err == nil {
		if w, err := config.NewWatcher(path, func(next *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: next})
		}); err == nil {
			if err := w.Watch(); err == nil {
				defer w.Close()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running chatbox: %v\n", err)
		os.Exit(1)
	}
}

// useDarkTheme resolves the configured theme name to a background choice.
// "auto" asks the terminal.
func useDarkTheme(name string) bool {
	switch name {
	case "dark":
		return true
	case "light":
		return false
	default:
		return termenv.HasDarkBackground()
	}
}
