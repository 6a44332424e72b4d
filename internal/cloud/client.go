// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud implements the chat-completions client.
package cloud

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jeranaias/chatbox-tui/internal/model"
)

// Configuration constants for the completion endpoint.
const (
	// DefaultBaseURL is the base URL for the hosted completion API.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout bounds one completion request. A request that has not
	// settled by then fails; there is no retry and no backoff.
	DefaultTimeout = 15 * time.Second

	// FallbackReply substitutes for a response whose reply field is absent.
	// A malformed success body degrades to this string rather than failing.
	FallbackReply = "Sorry, I couldn't come up with a reply."

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// Error variables for the exchange failure taxonomy.
var (
	// ErrMissingCredential indicates the credential for the selected model
	// is absent or empty. Detected before any network I/O.
	ErrMissingCredential = errors.New("missing credential for model")
)

// HTTPError represents a non-2xx response from the completion endpoint.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("completion error [%s] (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("completion error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("completion error (HTTP %d)", e.Status)
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatMessage is a single message in the request payload.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the body POSTed to /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the expected success body shape.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// apiErrorResponse represents an error body from the API.
type apiErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Options configures a Client. Everything the client needs is passed in
// explicitly; nothing is read from ambient global state.
type Options struct {
	// BaseURL overrides the completion endpoint base. Empty means DefaultBaseURL.
	BaseURL string

	// Credentials maps a credential-lookup key (as named by the model
	// registry) to its bearer secret.
	Credentials map[string]string

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration

	// HTTPClient overrides the built-in client, mainly for tests.
	HTTPClient *http.Client
}

// Client issues chat-completion requests. One request per Complete call:
// no retry, no backoff, no streaming — the whole reply arrives as one unit.
type Client struct {
	baseURL     string
	credentials map[string]string
	httpClient  *http.Client
	timeout     time.Duration
}

// NewClient creates a completion client from explicit options.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		}
	}
	creds := make(map[string]string, len(opts.Credentials))
	for k, v := range opts.Credentials {
		creds[k] = strings.TrimSpace(v)
	}
	return &Client{
		baseURL:     baseURL,
		credentials: creds,
		httpClient:  httpClient,
		timeout:     timeout,
	}
}

// HasCredential reports whether a non-empty credential is configured for the
// given model.
func (c *Client) HasCredential(modelID string) bool {
	_, err := c.credential(modelID)
	return err == nil
}

// credential resolves the bearer secret for a model via the registry's fixed
// model -> credential-lookup-key mapping. Validated before any network call.
func (c *Client) credential(modelID string) (string, error) {
	key, err := model.CredentialEnv(modelID)
	if err != nil {
		return "", err
	}
	secret := c.credentials[key]
	if secret == "" {
		return "", fmt.Errorf("%w %q (set %s)", ErrMissingCredential, modelID, key)
	}
	return secret, nil
}

// Complete sends the text of the most recent user message to the completion
// endpoint and returns the extracted reply.
//
// Only the single latest message is sent, not the accumulated conversation.
// This mirrors the upstream contract and is a deliberate compatibility
// constraint, not an oversight.
func (c *Client) Complete(ctx context.Context, text string, cfg model.ChatConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	secret, err := c.credential(cfg.ModelID)
	if err != nil {
		return "", err
	}

	reqBody := chatRequest{
		Model:       cfg.ModelID,
		Messages:    []ChatMessage{{Role: "user", Content: text}},
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "chatbox/0.1.0")

	c.logRequest(req)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	body, err := readResponse(resp)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errorFromResponse(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		// A success status with an unreadable body degrades to the fallback
		// rather than surfacing a fault.
		return FallbackReply, nil
	}
	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return FallbackReply, nil
	}
	return chatResp.Choices[0].Message.Content, nil
}

// =============================================================================
// RESPONSE HANDLING
// =============================================================================

// readResponse reads the body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// errorFromResponse converts a non-2xx response to an *HTTPError, carrying
// the API's code and message when the body is parseable.
func errorFromResponse(statusCode int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &HTTPError{
			Status:  statusCode,
			Code:    apiErr.Error.Code,
			Message: apiErr.Error.Message,
		}
	}
	return &HTTPError{Status: statusCode}
}

// =============================================================================
// LOGGING
// =============================================================================

// logRequest logs method and path only. Headers carry the credential and the
// body carries user text; neither is logged.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("API request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs status and duration only.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API response: %d (%v)", resp.StatusCode, duration)
}
