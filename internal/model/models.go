// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// MODEL INFO TYPE
// =============================================================================

// ModelInfo contains detailed information about an allow-listed model.
// This is used for model selection and display in the UI.
type ModelInfo struct {
	// ID is the model identifier used in API calls
	ID string `json:"id"`

	// Name is the human-readable display name
	Name string `json:"name"`

	// Provider identifies who provides the model
	Provider string `json:"provider"`

	// CredentialEnv names the environment variable holding the bearer
	// credential for this model. The mapping is fixed: every allow-listed
	// model carries exactly one credential-lookup key.
	CredentialEnv string `json:"-"`

	// MaxContext is the model's context window size in tokens
	MaxContext int `json:"max_context"`

	// Description is a brief explanation of the model's strengths
	Description string `json:"description"`
}

// =============================================================================
// MODEL REGISTRY
// =============================================================================

// Models is the closed registry of models the client may talk to.
// Requests for anything outside this list are rejected before any network
// call is made.
var Models = map[string]ModelInfo{
	"gpt-4o-mini": {
		ID:            "gpt-4o-mini",
		Name:          "GPT-4o Mini",
		Provider:      "OpenAI",
		CredentialEnv: "CHATBOX_OPENAI_KEY",
		MaxContext:    128000,
		Description:   "Cost-effective for everyday questions",
	},
	"gpt-4o": {
		ID:            "gpt-4o",
		Name:          "GPT-4o",
		Provider:      "OpenAI",
		CredentialEnv: "CHATBOX_OPENAI_KEY",
		MaxContext:    128000,
		Description:   "Fast multimodal model",
	},
	"claude-3-5-haiku": {
		ID:            "claude-3-5-haiku",
		Name:          "Claude 3.5 Haiku",
		Provider:      "Anthropic",
		CredentialEnv: "CHATBOX_ANTHROPIC_KEY",
		MaxContext:    200000,
		Description:   "Fast and efficient for simple tasks",
	},
	"claude-3-5-sonnet": {
		ID:            "claude-3-5-sonnet",
		Name:          "Claude 3.5 Sonnet",
		Provider:      "Anthropic",
		CredentialEnv: "CHATBOX_ANTHROPIC_KEY",
		MaxContext:    200000,
		Description:   "Best balance of speed and capability",
	},
	"llama-3.1-70b": {
		ID:            "llama-3.1-70b",
		Name:          "Llama 3.1 70B",
		Provider:      "Meta",
		CredentialEnv: "CHATBOX_META_KEY",
		MaxContext:    128000,
		Description:   "Open-weights model for general chat",
	},
}

// DefaultModelID is used when the config names no model.
const DefaultModelID = "gpt-4o-mini"

// IsAllowed reports whether the model ID is in the registry.
func IsAllowed(modelID string) bool {
	_, ok := Models[modelID]
	return ok
}

// CredentialEnv returns the credential-lookup key for an allow-listed model.
// An unknown model returns an error rather than falling through to an empty
// credential.
func CredentialEnv(modelID string) (string, error) {
	info, ok := Models[modelID]
	if !ok {
		return "", fmt.Errorf("unknown model %q", modelID)
	}
	return info.CredentialEnv, nil
}

// Lookup finds a model by ID or, failing that, by partial name match.
func Lookup(nameOrID string) (ModelInfo, bool) {
	if info, ok := Models[nameOrID]; ok {
		return info, true
	}
	lower := strings.ToLower(nameOrID)
	for _, info := range Models {
		if strings.Contains(strings.ToLower(info.Name), lower) {
			return info, true
		}
	}
	return ModelInfo{}, false
}

// ModelIDs returns the allow-list sorted for stable display.
func ModelIDs() []string {
	ids := make([]string, 0, len(Models))
	for id := range Models {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ModelsByProvider returns all models from a specific provider.
func ModelsByProvider(provider string) []ModelInfo {
	result := []ModelInfo{}
	lower := strings.ToLower(provider)
	for _, info := range Models {
		if strings.ToLower(info.Provider) == lower {
			result = append(result, info)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// =============================================================================
// CHAT CONFIG
// =============================================================================

// Temperature and token bounds for a completion request.
const (
	MinTemperature   = 0.0
	MaxTemperature   = 2.0
	DefaultMaxTokens = 1024
)

// ChatConfig carries the per-request tuning supplied by the caller.
// It is immutable for the duration of one request and may be changed
// between requests.
type ChatConfig struct {
	ModelID     string  `json:"model_id"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultChatConfig returns a valid baseline configuration.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		ModelID:     DefaultModelID,
		Temperature: 0.7,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Validate checks the configuration against the registry and bounds.
func (c ChatConfig) Validate() error {
	if !IsAllowed(c.ModelID) {
		return fmt.Errorf("unknown model %q", c.ModelID)
	}
	if c.Temperature < MinTemperature || c.Temperature > MaxTemperature {
		return fmt.Errorf("temperature %.2f out of range [%.0f, %.0f]",
			c.Temperature, MinTemperature, MaxTemperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive, got %d", c.MaxTokens)
	}
	return nil
}
