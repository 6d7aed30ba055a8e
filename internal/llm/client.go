// Package llm provides the client for the text-generation endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Sentinel errors for upstream conditions the caller must distinguish.
// None of these are retried by this package.
var (
	// ErrMissingAPIKey means the credential was absent at construction time.
	// This is a configuration error, not a retryable condition.
	ErrMissingAPIKey = errors.New("llm: api key not configured")

	// ErrRateLimited maps HTTP 429 from the completion endpoint.
	ErrRateLimited = errors.New("llm: rate limited by completion endpoint")

	// ErrPaymentRequired maps HTTP 402 (credits exhausted).
	ErrPaymentRequired = errors.New("llm: payment required, credits exhausted")
)

// UpstreamError carries the status of any other non-2xx upstream response.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm: completion endpoint returned status %d: %v", e.Status, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client wraps an OpenAI-compatible chat-completion API.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a completion client. An empty API key fails immediately
// with ErrMissingAPIKey; no request is ever attempted without a credential.
func NewClient(apiKey, model, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Complete sends a single user prompt and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.chat(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

// CompleteWithSystem sends a system+user message pair.
func (c *Client) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.chat(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userPrompt},
	})
}

func (c *Client) chat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: completion endpoint returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// mapError translates upstream HTTP failures into the package's error
// taxonomy. 429 and 402 surface as distinct sentinels; any other non-2xx
// keeps its upstream status.
func mapError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	default:
		return fmt.Errorf("llm: completion failed: %w", err)
	}

	switch status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrPaymentRequired
	default:
		return &UpstreamError{Status: status, Err: err}
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }
