// Package generate wraps the hosted chat-completion endpoint behind the
// narrow Generator capability so the rest of the application never sees
// the provider client directly.
package generate

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config configures the chat-completion client.
type Config struct {
	// Token authenticates against the inference router.
	Token string
	// BaseURL is an OpenAI-compatible endpoint; defaults to the Hugging
	// Face inference router.
	BaseURL string
	// Model is the hosted model identifier, e.g.
	// "meta-llama/Llama-3.2-3B-Instruct".
	Model string
	// Timeout bounds each completion call.
	Timeout time.Duration
}

// Client calls an OpenAI-compatible chat-completion endpoint.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a chat-completion client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("missing inference API token")
	}
	if cfg.Model == "" {
		return nil, errors.New("missing model identifier")
	}
	cc := openai.DefaultConfig(cfg.Token)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{client: openai.NewClientWithConfig(cc), model: cfg.Model}, nil
}

// Generate submits the prompt as a single user message and returns the
// model's reply verbatim.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
