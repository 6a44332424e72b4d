// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"
)

func TestParse(t *testing.T) {
	parser := NewParser(NewRegistry())

	tests := []struct {
		name      string
		input     string
		isCommand bool
		cmdName   string
		args      []string
		matched   bool
	}{
		{
			name:      "plain text",
			input:     "hello there",
			isCommand: false,
		},
		{
			name:      "bare command",
			input:     "/help",
			isCommand: true,
			cmdName:   "/help",
			matched:   true,
		},
		{
			name:      "command with arg",
			input:     "/model gpt-4o",
			isCommand: true,
			cmdName:   "/model",
			args:      []string{"gpt-4o"},
			matched:   true,
		},
		{
			name:      "alias resolves",
			input:     "/q",
			isCommand: true,
			cmdName:   "/q",
			matched:   true,
		},
		{
			name:      "unknown command",
			input:     "/frobnicate",
			isCommand: true,
			cmdName:   "/frobnicate",
			matched:   false,
		},
		{
			name:      "quoted argument",
			input:     `/export markdown "my chat.md"`,
			isCommand: true,
			cmdName:   "/export",
			args:      []string{"markdown", "my chat.md"},
			matched:   true,
		},
		{
			name:      "leading whitespace",
			input:     "   /clear",
			isCommand: true,
			cmdName:   "/clear",
			matched:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parser.Parse(tt.input)
			if result.IsCommand != tt.isCommand {
				t.Fatalf("IsCommand = %v, want %v", result.IsCommand, tt.isCommand)
			}
			if !tt.isCommand {
				return
			}
			if result.CommandName != tt.cmdName {
				t.Errorf("CommandName = %q, want %q", result.CommandName, tt.cmdName)
			}
			if (result.Command != nil) != tt.matched {
				t.Errorf("Command matched = %v, want %v", result.Command != nil, tt.matched)
			}
			if len(result.Args) != len(tt.args) {
				t.Fatalf("Args = %v, want %v", result.Args, tt.args)
			}
			for i := range tt.args {
				if result.Args[i] != tt.args[i] {
					t.Errorf("Args[%d] = %q, want %q", i, result.Args[i], tt.args[i])
				}
			}
		})
	}
}

func TestRegistryAliases(t *testing.T) {
	r := NewRegistry()

	aliases := map[string]string{
		"/h":    "/help",
		"/?":    "/help",
		"/q":    "/quit",
		"/exit": "/quit",
		"/new":  "/clear",
		"/m":    "/model",
		"/t":    "/theme",
		"/e":    "/export",
	}

	for alias, want := range aliases {
		cmd := r.Get(alias)
		if cmd == nil {
			t.Errorf("Get(%q) = nil, want %q", alias, want)
			continue
		}
		if cmd.Name != want {
			t.Errorf("Get(%q).Name = %q, want %q", alias, cmd.Name, want)
		}
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry()
	cmds := r.All()
	if len(cmds) == 0 {
		t.Fatal("All() returned no commands")
	}
	for i := 1; i < len(cmds); i++ {
		if cmds[i-1].Name >= cmds[i].Name {
			t.Errorf("All() not sorted: %q before %q", cmds[i-1].Name, cmds[i].Name)
		}
	}
}

func TestHandleModel(t *testing.T) {
	t.Run("no args opens picker", func(t *testing.T) {
		cmd := HandleModel(&Context{}, nil)
		if _, ok := cmd().(ShowModelPickerMsg); !ok {
			t.Errorf("msg = %T, want ShowModelPickerMsg", cmd())
		}
	})

	t.Run("allowed model switches", func(t *testing.T) {
		cmd := HandleModel(&Context{}, []string{"gpt-4o"})
		msg, ok := cmd().(ModelSwitchMsg)
		if !ok {
			t.Fatalf("msg = %T, want ModelSwitchMsg", cmd())
		}
		if msg.Model != "gpt-4o" {
			t.Errorf("Model = %q, want %q", msg.Model, "gpt-4o")
		}
	})

	t.Run("unknown model errors", func(t *testing.T) {
		cmd := HandleModel(&Context{}, []string{"gpt-99"})
		if _, ok := cmd().(ErrorMsg); !ok {
			t.Errorf("msg = %T, want ErrorMsg", cmd())
		}
	})
}

func TestHandleTheme(t *testing.T) {
	t.Run("toggles without args", func(t *testing.T) {
		cmd := HandleTheme(&Context{CurrentTheme: "dark"}, nil)
		msg, ok := cmd().(ThemeSwitchMsg)
		if !ok {
			t.Fatalf("msg = %T, want ThemeSwitchMsg", cmd())
		}
		if msg.Theme != "light" {
			t.Errorf("Theme = %q, want %q", msg.Theme, "light")
		}
	})

	t.Run("rejects unknown theme", func(t *testing.T) {
		cmd := HandleTheme(&Context{}, []string{"neon"})
		if _, ok := cmd().(ErrorMsg); !ok {
			t.Errorf("msg = %T, want ErrorMsg", cmd())
		}
	})
}

func TestHandleExport(t *testing.T) {
	t.Run("defaults to markdown", func(t *testing.T) {
		cmd := HandleExport(&Context{}, nil)
		msg, ok := cmd().(ExportConversationMsg)
		if !ok {
			t.Fatalf("msg = %T, want ExportConversationMsg", cmd())
		}
		if msg.Format != "markdown" {
			t.Errorf("Format = %q, want markdown", msg.Format)
		}
	})

	t.Run("md alias", func(t *testing.T) {
		cmd := HandleExport(&Context{}, []string{"md"})
		msg := cmd().(ExportConversationMsg)
		if msg.Format != "markdown" {
			t.Errorf("Format = %q, want markdown", msg.Format)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cmd := HandleExport(&Context{}, []string{"html"})
		if _, ok := cmd().(ErrorMsg); !ok {
			t.Errorf("msg = %T, want ErrorMsg", cmd())
		}
	})

	t.Run("carries path", func(t *testing.T) {
		cmd := HandleExport(&Context{}, []string{"json", "out.json"})
		msg := cmd().(ExportConversationMsg)
		if msg.Format != "json" || msg.Path != "out.json" {
			t.Errorf("got %+v, want json/out.json", msg)
		}
	})
}

func TestExtractCommandName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/model gpt-4o", "/model"},
		{"/help", "/help"},
		{"hello", ""},
		{"  /clear  ", "/clear"},
	}

	for _, tt := range tests {
		if got := ExtractCommandName(tt.input); got != tt.want {
			t.Errorf("ExtractCommandName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
