// Package llm provides chat completion via langchaingo.
//
// The client speaks any OpenAI-compatible endpoint. The original deployment
// targets Groq (https://api.groq.com/openai/v1); a stock OpenAI endpoint or
// a local inference server works the same way.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyPrompt indicates an empty prompt.
	ErrEmptyPrompt = errors.New("empty prompt")
)

// Client generates text from a prompt. Agents depend on this narrow
// interface so tests can fake completions.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for the chat client.
type Config struct {
	// BaseURL is the OpenAI-compatible API base URL.
	BaseURL string

	// Model is the chat model name.
	Model string

	// APIKey authenticates against the endpoint.
	APIKey string

	// Temperature is the sampling temperature.
	Temperature float64

	// SystemPrompt is prepended to every generation when set.
	SystemPrompt string

	// Timeout bounds each Generate call. Zero means no per-call deadline.
	Timeout time.Duration
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model required", ErrInvalidConfig)
	}
	return nil
}

// ChatClient implements Client over langchaingo's OpenAI-compatible model.
type ChatClient struct {
	model  llms.Model
	config Config
}

// NewChatClient creates a chat client for the configured endpoint.
func NewChatClient(config Config) (*ChatClient, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	apiKey := config.APIKey
	if apiKey == "" {
		// langchaingo requires a token even for keyless local endpoints.
		apiKey = "placeholder"
	}

	model, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithModel(config.Model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}

	return &ChatClient{model: model, config: config}, nil
}

// Generate produces a completion for the prompt.
func (c *ChatClient) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	opts := []llms.CallOption{llms.WithTemperature(c.config.Temperature)}

	if c.config.SystemPrompt != "" {
		content := []llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, c.config.SystemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, prompt),
		}
		resp, err := c.model.GenerateContent(ctx, content, opts...)
		if err != nil {
			return "", fmt.Errorf("generating completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", errors.New("no completion choices returned")
		}
		return resp.Choices[0].Content, nil
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, opts...)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}
	return out, nil
}
