// Package llm wraps an OpenAI-compatible chat completion endpoint. The
// assistant only ever needs "messages in, text out"; everything else
// (retries, timeouts, model selection) lives here.
package llm

import (
	"context"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
	openai "github.com/sashabaranov/go-openai"
)

// Completer is the surface the assistant depends on; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, model string, temperature float32) (string, error)
}

// Config holds connection settings for an OpenAI-compatible endpoint. A
// BaseURL override points the client at OpenRouter, llama.cpp, Ollama and
// friends.
type Config struct {
	BaseURL       string
	APIKey        string
	PlannerModel  string
	ReasonerModel string
	Timeout       time.Duration
	RetryAttempts uint
	Logger        *log.Logger
}

// Client is a thin retrying wrapper around go-openai.
type Client struct {
	api    *openai.Client
	config Config
}

// New creates a client. Timeout defaults to 60s and RetryAttempts to 3 when
// unset.
func New(config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}
	if config.RetryAttempts == 0 {
		config.RetryAttempts = 3
	}

	cfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		config: config,
	}
}

// PlannerModel returns the model used for query planning.
func (c *Client) PlannerModel() string { return c.config.PlannerModel }

// ReasonerModel returns the model used for answer composition.
func (c *Client) ReasonerModel() string { return c.config.ReasonerModel }

// Complete sends a chat completion request and returns the first choice's
// content. Transient failures are retried with backoff; a response with no
// choices is an error.
func (c *Client) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, model string, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var content string
	err := retry.Do(
		func() error {
			resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
				Model:       model,
				Messages:    messages,
				Temperature: temperature,
			})
			if err != nil {
				return fmt.Errorf("chat completion failed: %w", err)
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("no choices returned from model %s", model)
			}
			content = resp.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.config.RetryAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.config.Logger.Warn("Retrying chat completion",
				"attempt", n+1,
				"max_attempts", c.config.RetryAttempts,
				"model", model,
				"error", err)
		}),
	)
	if err != nil {
		return "", err
	}
	return content, nil
}
