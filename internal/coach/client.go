// Package coach is the gateway to the AI writing coach: a thin client
// for an OpenAI-compatible chat completion API with a fixed persona.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 30 * time.Second

	// Feedback is meant to be a short coaching note, not an essay.
	maxReplyTokens = 500
	temperature    = 0.7
)

var (
	// ErrInvalidRequest is returned before any network I/O when the
	// user text or seed prompt is blank.
	ErrInvalidRequest = errors.New("feedback request is missing user text or seed prompt")

	// ErrMissingCredential is returned when no API key is configured,
	// or the upstream rejects the one we have.
	ErrMissingCredential = errors.New("OpenAI API key not configured")
)

// Client calls the chat completion API. Requests are one-shot: no
// retry, no caching; the lesson UI invites the user to retry instead.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a coach client. An empty apiKey is allowed; every
// Feedback call will then fail with ErrMissingCredential.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewClientWithBaseURL creates a client pointing at a custom base URL
// (for testing).
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// SetModel overrides the default completion model.
func (c *Client) SetModel(model string) {
	if model != "" {
		c.model = model
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Feedback asks the coach to respond to userText for the lesson step
// described by seedPrompt and contextLabel. Blank input fails with
// ErrInvalidRequest before any network call.
func (c *Client) Feedback(ctx context.Context, seedPrompt, userText, contextLabel string) (string, error) {
	if strings.TrimSpace(userText) == "" || strings.TrimSpace(seedPrompt) == "" {
		return "", ErrInvalidRequest
	}
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(seedPrompt, contextLabel)},
			{Role: "user", Content: userMessage(seedPrompt, userText)},
		},
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("upstream rejected credentials (HTTP %d): %w", resp.StatusCode, ErrMissingCredential)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upstream returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(cr.Choices) == 0 || strings.TrimSpace(cr.Choices[0].Message.Content) == "" {
		return "", errors.New("upstream returned no completion")
	}
	return cr.Choices[0].Message.Content, nil
}
