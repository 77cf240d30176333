// Package llm answers natural-language questions by calling an
// OpenAI-compatible chat endpoint, typically a local model server.
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultEndpoint targets a local Ollama-compatible server.
	DefaultEndpoint = "http://localhost:11434/v1"
	// DefaultModel is used when config_data has no llm_model.
	DefaultModel = "phi3"
)

const systemPrompt = `You translate natural-language requests into aide CLI commands.
Reply with a single aide command when one applies, for example:
  aide task "fix login bug"
  aide add notes "remember to rotate the certs"
  aide set editor vim
Otherwise reply with a one-sentence answer. Never reply with more than one line.`

// Config selects the endpoint and model; values usually come from the
// llm_endpoint, llm_model, and llm_api_key configuration keys.
type Config struct {
	Endpoint string
	Model    string
	APIKey   string
}

// Client wraps the chat API for the ask command.
type Client struct {
	api   *openai.Client
	model string
}

// New builds a client, filling unset fields with local defaults.
func New(cfg Config) *Client {
	c := openai.DefaultConfig(cfg.APIKey)
	c.BaseURL = cfg.Endpoint
	if c.BaseURL == "" {
		c.BaseURL = DefaultEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{api: openai.NewClientWithConfig(c), model: model}
}

// Ask sends one question and returns the model's single-line reply.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
