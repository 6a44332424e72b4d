// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/chatbox-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports conversations to JSON format.
// NOTE: JSON exports always include the complete conversation data and do not
// respect filtering options, so the output is a faithful representation that
// could be re-imported.
type JSONExporter struct {
	options *Options
}

// jsonDocument is the exported top-level structure.
type jsonDocument struct {
	Model      string         `json:"model,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	ExportedAt time.Time      `json:"exported_at"`
	Messages   []*jsonMessage `json:"messages"`
}

// jsonMessage is one exported message.
type jsonMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Reactions []string  `json:"reactions,omitempty"`
}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// Export converts a conversation to JSON format.
func (e *JSONExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}

	doc := jsonDocument{
		Model:      e.options.Model,
		CreatedAt:  conv.CreatedAt(),
		UpdatedAt:  conv.UpdatedAt(),
		ExportedAt: time.Now(),
	}

	for _, msg := range conv.Messages() {
		doc.Messages = append(doc.Messages, &jsonMessage{
			ID:        msg.ID,
			Role:      string(msg.Role),
			Content:   msg.Content,
			Kind:      string(msg.Kind),
			CreatedAt: msg.CreatedAt,
			Reactions: msg.Reactions,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
