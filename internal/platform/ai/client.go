package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured means no API key was provided, so the drafting feature is
// disabled rather than broken.
var ErrNotConfigured = errors.New("ai: OPENAI_API_KEY not set")

// Generator drafts an initial care plan from an intake form.
type Generator interface {
	GenerateCarePlan(ctx context.Context, form map[string]interface{}) (string, error)
}

// Client calls the OpenAI chat completions API to draft care plans.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient returns a drafting client, or nil when apiKey is empty.
func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		api:     openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// NewClientWithConfig exists for tests that point the client at a local server.
func NewClientWithConfig(cfg openai.ClientConfig, model string, timeout time.Duration) *Client {
	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// GenerateCarePlan submits the intake form and returns the drafted plan text.
// An empty draft is a valid response, not an error.
func (c *Client) GenerateCarePlan(ctx context.Context, form map[string]interface{}) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	prompt, err := buildUserPrompt(form)
	if err != nil {
		return "", fmt.Errorf("encode intake form: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		MaxTokens:   600,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
