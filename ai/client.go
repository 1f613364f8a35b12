// client.go - OpenAI chat completions client for health insight generation

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fixed request parameters. No configuration surface is exposed to clients.
const (
	model        = "gpt-4"
	maxTokens    = 100
	temperature  = 0.7
	systemPrompt = "You are a helpful medical assistant."
	preamble     = "Provide personalized health recommendations, as one aggregated paragraph, based on the following data:\n"
)

// Summarizer produces a narrative insight from a formatted measurement block.
// Handlers depend on this interface so tests can substitute a fake without a
// network call.
type Summarizer interface {
	Summarize(ctx context.Context, measurements string) (string, error)
}

// Client calls the OpenAI chat completions API over raw net/http with an
// injectable base URL, so tests can point it at an httptest server.
type Client struct {
	APIKey     string
	BaseURL    string // e.g. https://api.openai.com
	HTTPClient *http.Client
}

// NewClient returns a Client with a bounded request timeout.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// chatMessage is a single message in the chat completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// Summarize wraps the measurement block with the instruction preamble, sends
// it as a chat completions request, and returns the provider's text verbatim.
func (c *Client) Summarize(ctx context.Context, measurements string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("OPENAI_API_KEY not set")
	}

	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: preamble + measurements},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	// Extract choices[0].message.content from the response
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	return result.Choices[0].Message.Content, nil
}
