package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Completer is the completion service contract: one prompt in, generated
// text out. Implemented by Client and by MockCompleter in tests.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client is the completion client for an OpenRouter-compatible API.
type Client struct {
	config *Config
	http   *http.Client
	models map[string]ModelConfig
}

// NewClient creates a new completion client.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.SetDefaults()

	return &Client{
		config: config,
		http: &http.Client{
			Timeout: config.Timeout,
		},
		models: DefaultModels(),
	}, nil
}

// chatRequest represents a request to the completion service (OpenAI-compatible).
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatMessage represents a message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents a response from the completion service.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

const sentinelPrefix = "Error: "

// Sentinel renders an error as the inline failure-sentinel text that takes
// the place of generated content when the retry budget is exhausted.
func Sentinel(err error) string {
	return sentinelPrefix + err.Error()
}

// IsSentinel reports whether text is a failure-sentinel rather than real
// generated content, so the display layer can render it as an error.
func IsSentinel(text string) bool {
	return strings.HasPrefix(text, sentinelPrefix)
}

// Complete sends the prompt to the completion service, retrying transient
// failures up to MaxRetries total attempts with a fixed delay between them.
// On exhaustion it returns the failure-sentinel text instead of an error so
// the pipeline degrades visibly rather than aborting.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var (
		text    string
		attempt int
	)

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(c.config.RetryDelay),
			uint64(c.config.MaxRetries-1),
		),
		ctx,
	)

	err := backoff.Retry(func() error {
		attempt++
		slog.Info("completion attempt",
			"attempt", attempt,
			"model", c.config.DefaultModel,
			"prompt_length", len(prompt),
		)

		result, err := c.call(ctx, prompt)
		if err != nil {
			slog.Warn("completion attempt failed",
				"attempt", attempt,
				"error", err.Error(),
			)
			return err
		}

		text = result
		return nil
	}, policy)

	if err != nil {
		exhausted := NewExhaustedError(attempt, err)
		slog.Error("completion retries exhausted",
			"attempts", attempt,
			"error", err.Error(),
		)
		return Sentinel(exhausted), nil
	}

	return text, nil
}

// call makes a single HTTP call to the chat completions endpoint.
func (c *Client) call(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.config.DefaultModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	if err != nil {
		return "", NewNetworkError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	slog.Debug("completion request finished",
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode != http.StatusOK {
		var errBody bytes.Buffer
		if _, err := errBody.ReadFrom(resp.Body); err != nil {
			return "", NewAPIError(resp.StatusCode, fmt.Sprintf("status %d (failed to read error body)", resp.StatusCode))
		}
		return "", NewAPIError(resp.StatusCode, errBody.String())
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", NewAPIError(0, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", NewAPIError(0, "no choices in response")
	}

	return chatResp.Choices[0].Message.Content, nil
}
