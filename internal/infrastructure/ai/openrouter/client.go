// Package openrouter provides the language-model proxy client. The proxy is
// prompt-in/text-out: the engine never depends on the shape of what comes
// back.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "meta-llama/llama-3.2-3b-instruct:free"
)

// Client implements the AIService port against an OpenRouter-compatible
// chat completions endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
	limiter     *rate.Limiter
	logger      *zap.Logger
}

// Options configures the client.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	// RequestsPerMinute caps outbound calls; zero disables the limiter.
	RequestsPerMinute int
}

// NewClient creates a new OpenRouter client
func NewClient(opts Options, logger *zap.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = 0.8
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 2000
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60), opts.RequestsPerMinute)
	}

	return &Client{
		apiKey:      opts.APIKey,
		baseURL:     opts.BaseURL,
		model:       opts.Model,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxTokens,
		client:      &http.Client{Timeout: opts.Timeout},
		limiter:     limiter,
		logger:      logger.Named("openrouter"),
	}
}

// Chat completions wire types.

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete sends one prompt and returns the model's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("AI proxy API key not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("AI proxy request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", fmt.Errorf("AI proxy returned status %d", resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("AI proxy returned no choices")
	}

	c.logger.Debug("Completion finished",
		zap.String("model", c.model),
		zap.Duration("elapsed", time.Since(start)),
	)
	return payload.Choices[0].Message.Content, nil
}
