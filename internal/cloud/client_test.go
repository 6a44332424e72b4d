// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/chatbox-tui/internal/model"
)

// testCredentials covers every credential key in the registry so any
// allow-listed model can be exercised against a mock server.
func testCredentials() map[string]string {
	creds := make(map[string]string)
	for _, info := range model.Models {
		creds[info.CredentialEnv] = "test-secret-" + info.CredentialEnv
	}
	return creds
}

func newTestClient(serverURL string) *Client {
	return NewClient(Options{
		BaseURL:     serverURL,
		Credentials: testCredentials(),
	})
}

// =============================================================================
// SUCCESS PATH
// =============================================================================

func TestComplete_Success(t *testing.T) {
	var gotPath string
	var gotBody chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "test-id",
			"model": "gpt-4o-mini",
			"choices": [{
				"message": {"role": "assistant", "content": "Hello"},
				"finish_reason": "stop"
			}]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	cfg := model.DefaultChatConfig()

	reply, err := client.Complete(context.Background(), "hi there", cfg)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "Hello" {
		t.Errorf("Complete() = %q, want %q", reply, "Hello")
	}

	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q, want /chat/completions", gotPath)
	}
	if !strings.HasPrefix(gotAuth, "Bearer ") {
		t.Errorf("Authorization = %q, want Bearer prefix", gotAuth)
	}
	if gotBody.Model != cfg.ModelID {
		t.Errorf("request model = %q, want %q", gotBody.Model, cfg.ModelID)
	}
	if len(gotBody.Messages) != 1 {
		t.Fatalf("request carried %d messages, want exactly 1 (latest user message only)", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "user" || gotBody.Messages[0].Content != "hi there" {
		t.Errorf("request message = %+v, want user/hi there", gotBody.Messages[0])
	}
	if gotBody.MaxTokens != cfg.MaxTokens {
		t.Errorf("request max_tokens = %d, want %d", gotBody.MaxTokens, cfg.MaxTokens)
	}
	if gotBody.Temperature != cfg.Temperature {
		t.Errorf("request temperature = %v, want %v", gotBody.Temperature, cfg.Temperature)
	}
}

func TestComplete_MissingChoicesFallsBack(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty choices", `{"id":"x","choices":[]}`},
		{"no choices field", `{"id":"x"}`},
		{"empty content", `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
		{"not json", `<html>gateway</html>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			reply, err := client.Complete(context.Background(), "hi", model.DefaultChatConfig())
			if err != nil {
				t.Fatalf("Complete() error = %v, want fallback reply", err)
			}
			if reply != FallbackReply {
				t.Errorf("Complete() = %q, want FallbackReply", reply)
			}
		})
	}
}

// =============================================================================
// FAILURE TAXONOMY
// =============================================================================

func TestComplete_MissingCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request reached the network; credential must be validated first")
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL:     server.URL,
		Credentials: map[string]string{}, // nothing configured
	})

	_, err := client.Complete(context.Background(), "hi", model.DefaultChatConfig())
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("Complete() error = %v, want ErrMissingCredential", err)
	}
}

func TestComplete_BlankCredentialIsMissing(t *testing.T) {
	creds := testCredentials()
	for k := range creds {
		creds[k] = "   "
	}
	client := NewClient(Options{Credentials: creds})

	_, err := client.Complete(context.Background(), "hi", model.DefaultChatConfig())
	if !errors.Is(err, ErrMissingCredential) {
		t.Errorf("Complete() error = %v, want ErrMissingCredential", err)
	}
}

func TestComplete_HTTPError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantInText string
	}{
		{
			name:       "structured error body",
			status:     http.StatusUnauthorized,
			body:       `{"error":{"code":"invalid_key","message":"bad credential"}}`,
			wantCode:   "invalid_key",
			wantInText: "bad credential",
		},
		{
			name:   "opaque error body",
			status: http.StatusInternalServerError,
			body:   "boom",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.Complete(context.Background(), "hi", model.DefaultChatConfig())

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("Complete() error = %v, want *HTTPError", err)
			}
			if httpErr.Status != tc.status {
				t.Errorf("HTTPError.Status = %d, want %d", httpErr.Status, tc.status)
			}
			if httpErr.Code != tc.wantCode {
				t.Errorf("HTTPError.Code = %q, want %q", httpErr.Code, tc.wantCode)
			}
			if tc.wantInText != "" && !strings.Contains(httpErr.Error(), tc.wantInText) {
				t.Errorf("HTTPError.Error() = %q, want to contain %q", httpErr.Error(), tc.wantInText)
			}
		})
	}
}

func TestComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer server.Close()

	client := NewClient(Options{
		BaseURL:     server.URL,
		Credentials: testCredentials(),
		Timeout:     20 * time.Millisecond,
	})

	_, err := client.Complete(context.Background(), "hi", model.DefaultChatConfig())
	if err == nil {
		t.Fatal("Complete() succeeded, want timeout error")
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		t.Errorf("timeout produced *HTTPError %v, want network-class error", httpErr)
	}
}

func TestComplete_NoRetry(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Complete(context.Background(), "hi", model.DefaultChatConfig())
	if err == nil {
		t.Fatal("Complete() succeeded, want error")
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want exactly 1 (no retry)", requests)
	}
}

func TestComplete_InvalidConfig(t *testing.T) {
	client := NewClient(Options{Credentials: testCredentials()})

	tests := []struct {
		name string
		cfg  model.ChatConfig
	}{
		{"unknown model", model.ChatConfig{ModelID: "gpt-9000", Temperature: 1, MaxTokens: 100}},
		{"temperature too high", model.ChatConfig{ModelID: model.DefaultModelID, Temperature: 2.5, MaxTokens: 100}},
		{"temperature negative", model.ChatConfig{ModelID: model.DefaultModelID, Temperature: -0.1, MaxTokens: 100}},
		{"zero max tokens", model.ChatConfig{ModelID: model.DefaultModelID, Temperature: 1, MaxTokens: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := client.Complete(context.Background(), "hi", tc.cfg); err == nil {
				t.Error("Complete() succeeded, want validation error")
			}
		})
	}
}

// =============================================================================
// CREDENTIAL SELECTION
// =============================================================================

func TestComplete_CredentialFollowsModel(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Two models with different credential keys.
	cfgA := model.ChatConfig{ModelID: "gpt-4o-mini", Temperature: 1, MaxTokens: 64}
	cfgB := model.ChatConfig{ModelID: "claude-3-5-haiku", Temperature: 1, MaxTokens: 64}

	if _, err := client.Complete(context.Background(), "hi", cfgA); err != nil {
		t.Fatalf("Complete(cfgA) error = %v", err)
	}
	if _, err := client.Complete(context.Background(), "hi", cfgB); err != nil {
		t.Fatalf("Complete(cfgB) error = %v", err)
	}

	if len(gotAuth) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(gotAuth))
	}
	if gotAuth[0] == gotAuth[1] {
		t.Errorf("both models used the same credential %q, want distinct ones", gotAuth[0])
	}
	if !strings.Contains(gotAuth[0], "CHATBOX_OPENAI_KEY") {
		t.Errorf("first request used %q, want the OpenAI credential", gotAuth[0])
	}
	if !strings.Contains(gotAuth[1], "CHATBOX_ANTHROPIC_KEY") {
		t.Errorf("second request used %q, want the Anthropic credential", gotAuth[1])
	}
}

func TestHasCredential(t *testing.T) {
	client := NewClient(Options{
		Credentials: map[string]string{"CHATBOX_OPENAI_KEY": "secret"},
	})

	if !client.HasCredential("gpt-4o-mini") {
		t.Error("HasCredential(gpt-4o-mini) = false, want true")
	}
	if client.HasCredential("claude-3-5-haiku") {
		t.Error("HasCredential(claude-3-5-haiku) = true, want false")
	}
	if client.HasCredential("not-a-model") {
		t.Error("HasCredential(not-a-model) = true, want false")
	}
}
