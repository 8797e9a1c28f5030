// Package asi wraps the ASI-1 chat-completions API behind a small client.
// The upstream speaks the OpenAI wire protocol, so the client is an OpenAI
// SDK client pointed at the ASI base URL.
package asi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	ErrNotConfigured = errors.New("asi api key is not configured")
	ErrEmptyContent  = errors.New("asi returned empty content")
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.asi1.ai/v1"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"asi1-mini"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// Enabled reports whether a key is present. A client without a key is
// constructed anyway so callers hold a non-nil handle; every call fails
// with ErrNotConfigured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// MaskedKey renders the API key safe for logs.
func (c Config) MaskedKey() string {
	key := strings.TrimSpace(c.APIKey)
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

type Client struct {
	inner       openaisdk.Client
	model       string
	maxTokens   int
	temperature float64
	enabled     bool
}

func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithRequestTimeout(cfg.Timeout),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}

	return &Client{
		inner:       openaisdk.NewClient(opts...),
		model:       strings.TrimSpace(cfg.Model),
		maxTokens:   cfg.MaxCompletionToken,
		temperature: cfg.Temperature,
		enabled:     cfg.Enabled(),
	}
}

// Complete sends one system+user exchange and returns the assistant text.
// An empty or missing completion is an error, not a value.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, 2)
	if strings.TrimSpace(system) != "" {
		messages = append(messages, openaisdk.SystemMessage(system))
	}
	messages = append(messages, openaisdk.UserMessage(user))

	resp, err := c.inner.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:               openaisdk.ChatModel(c.model),
		Messages:            messages,
		Temperature:         openaisdk.Float(c.temperature),
		MaxCompletionTokens: openaisdk.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("asi completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyContent
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}
