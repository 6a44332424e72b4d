// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/chatbox-tui/internal/model"
)

func testConversation(t *testing.T) *model.Conversation {
	t.Helper()
	conv := model.NewConversation()
	if _, err := conv.AddUserMessage("How do I sort a slice in Go?"); err != nil {
		t.Fatal(err)
	}
	conv.AddAssistantMessage("Use sort.Slice with a less function.", model.KindNormal)
	return conv
}

func TestMarkdownExport(t *testing.T) {
	conv := testConversation(t)

	opts := DefaultOptions()
	opts.Model = "gpt-4o-mini"

	content, err := NewMarkdownExporter(opts).Export(conv)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := string(content)
	for _, want := range []string{
		"---\n",
		"model: gpt-4o-mini",
		"[User]",
		"[Assistant]",
		"How do I sort a slice in Go?",
		"sort.Slice",
		"generator: chatbox",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}

	// User message comes before the assistant reply.
	if strings.Index(out, "[User]") > strings.Index(out, "[Assistant]") {
		t.Error("messages exported out of order")
	}
}

func TestMarkdownExport_ErrorMessageLabel(t *testing.T) {
	conv := model.NewConversation()
	if _, err := conv.AddUserMessage("hi"); err != nil {
		t.Fatal(err)
	}
	conv.AddAssistantMessage("The request timed out.", model.KindError)

	content, err := NewMarkdownExporter(nil).Export(conv)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(string(content), "[Error]") {
		t.Error("error message not labelled [Error]")
	}
}

func TestMarkdownExport_EmptyConversation(t *testing.T) {
	if _, err := NewMarkdownExporter(nil).Export(model.NewConversation()); err == nil {
		t.Error("Export() of empty conversation should fail")
	}
	if _, err := NewMarkdownExporter(nil).Export(nil); err == nil {
		t.Error("Export() of nil conversation should fail")
	}
}

func TestJSONExport(t *testing.T) {
	conv := testConversation(t)
	msg := conv.LastMessage()
	conv.AddReaction(msg.ID, "👍")

	opts := DefaultOptions()
	opts.Model = "claude-3-5-haiku"

	content, err := NewJSONExporter(opts).Export(conv)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var doc struct {
		Model    string `json:"model"`
		Messages []struct {
			ID        string   `json:"id"`
			Role      string   `json:"role"`
			Content   string   `json:"content"`
			Kind      string   `json:"kind"`
			Reactions []string `json:"reactions"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Model != "claude-3-5-haiku" {
		t.Errorf("model = %q, want claude-3-5-haiku", doc.Model)
	}
	if len(doc.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(doc.Messages))
	}
	if doc.Messages[0].Role != "user" || doc.Messages[1].Role != "assistant" {
		t.Errorf("roles = %q/%q, want user/assistant", doc.Messages[0].Role, doc.Messages[1].Role)
	}
	if doc.Messages[1].Kind != "normal" {
		t.Errorf("kind = %q, want normal", doc.Messages[1].Kind)
	}
	if len(doc.Messages[1].Reactions) != 1 || doc.Messages[1].Reactions[0] != "👍" {
		t.Errorf("reactions = %v, want [👍]", doc.Messages[1].Reactions)
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"markdown", ".md", false},
		{"md", ".md", false},
		{"json", ".json", false},
		{"html", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		exp, err := ForFormat(tt.format, nil)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			continue
		}
		if err == nil && exp.FileExtension() != tt.wantExt {
			t.Errorf("ForFormat(%q).FileExtension() = %q, want %q", tt.format, exp.FileExtension(), tt.wantExt)
		}
	}
}

func TestExportToFile(t *testing.T) {
	conv := testConversation(t)
	dir := t.TempDir()

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(dir, "chat.md")
		got, err := ExportToFile(conv, NewMarkdownExporter(nil), nil, path)
		if err != nil {
			t.Fatalf("ExportToFile() error = %v", err)
		}
		if got != path {
			t.Errorf("path = %q, want %q", got, path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("exported file missing: %v", err)
		}
	})

	t.Run("generated filename", func(t *testing.T) {
		opts := DefaultOptions()
		opts.OutputDir = dir
		got, err := ExportToFile(conv, NewJSONExporter(nil), opts, "")
		if err != nil {
			t.Fatalf("ExportToFile() error = %v", err)
		}
		if filepath.Ext(got) != ".json" {
			t.Errorf("generated path %q lacks .json extension", got)
		}
		base := filepath.Base(got)
		if !strings.HasPrefix(base, "conversation_") {
			t.Errorf("generated filename %q lacks conversation_ prefix", base)
		}
		if strings.ContainsAny(base, " ?*") {
			t.Errorf("generated filename %q contains unsafe characters", base)
		}
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "hello_world"},
		{"a/b\\c:d", "a-b-c-d"},
		{"", "conversation"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
