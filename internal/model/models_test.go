// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestModels_HaveRequiredFields(t *testing.T) {
	for id, info := range Models {
		t.Run(id, func(t *testing.T) {
			if info.ID != id {
				t.Errorf("registry key %q != ModelInfo.ID %q", id, info.ID)
			}
			if info.Name == "" {
				t.Error("ModelInfo.Name should not be empty")
			}
			if info.Provider == "" {
				t.Error("ModelInfo.Provider should not be empty")
			}
			if info.MaxContext <= 0 {
				t.Error("ModelInfo.MaxContext should be positive")
			}
		})
	}
}

// Every allow-listed model must map to a credential-lookup key; an entry
// without one would fall through to an empty credential at request time.
func TestModels_EveryModelHasCredentialEnv(t *testing.T) {
	for id, info := range Models {
		if info.CredentialEnv == "" {
			t.Errorf("model %q has no CredentialEnv", id)
		}
		if !strings.HasPrefix(info.CredentialEnv, "CHATBOX_") {
			t.Errorf("model %q credential env %q lacks the CHATBOX_ prefix", id, info.CredentialEnv)
		}
	}
}

func TestCredentialEnv(t *testing.T) {
	env, err := CredentialEnv(DefaultModelID)
	if err != nil {
		t.Fatalf("CredentialEnv(%s) error = %v", DefaultModelID, err)
	}
	if env == "" {
		t.Error("CredentialEnv returned empty key")
	}

	if _, err := CredentialEnv("not-a-model"); err == nil {
		t.Error("CredentialEnv(not-a-model) succeeded, want error")
	}
}

func TestIsAllowed(t *testing.T) {
	if !IsAllowed(DefaultModelID) {
		t.Errorf("IsAllowed(%s) = false", DefaultModelID)
	}
	if IsAllowed("gpt-9000") {
		t.Error("IsAllowed(gpt-9000) = true")
	}
	if IsAllowed("") {
		t.Error("IsAllowed(\"\") = true")
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("gpt-4o-mini"); !ok {
		t.Error("Lookup by ID failed")
	}
	if info, ok := Lookup("sonnet"); !ok || info.ID != "claude-3-5-sonnet" {
		t.Errorf("Lookup(sonnet) = %+v, %v; want claude-3-5-sonnet", info, ok)
	}
	if _, ok := Lookup("no-such-model"); ok {
		t.Error("Lookup(no-such-model) succeeded")
	}
}

func TestModelIDs_Sorted(t *testing.T) {
	ids := ModelIDs()
	if len(ids) != len(Models) {
		t.Fatalf("ModelIDs() returned %d entries, want %d", len(ids), len(Models))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("ModelIDs() not sorted: %q >= %q", ids[i-1], ids[i])
		}
	}
}

// =============================================================================
// CHAT CONFIG TESTS
// =============================================================================

func TestChatConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ChatConfig
		wantErr bool
	}{
		{"default", DefaultChatConfig(), false},
		{"temperature floor", ChatConfig{ModelID: DefaultModelID, Temperature: 0, MaxTokens: 1}, false},
		{"temperature ceiling", ChatConfig{ModelID: DefaultModelID, Temperature: 2, MaxTokens: 1}, false},
		{"temperature too high", ChatConfig{ModelID: DefaultModelID, Temperature: 2.01, MaxTokens: 1}, true},
		{"temperature negative", ChatConfig{ModelID: DefaultModelID, Temperature: -0.01, MaxTokens: 1}, true},
		{"zero max tokens", ChatConfig{ModelID: DefaultModelID, Temperature: 1, MaxTokens: 0}, true},
		{"negative max tokens", ChatConfig{ModelID: DefaultModelID, Temperature: 1, MaxTokens: -5}, true},
		{"unknown model", ChatConfig{ModelID: "gpt-9000", Temperature: 1, MaxTokens: 100}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
