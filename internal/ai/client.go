// Package ai talks to the external workout generation model over an
// OpenAI-compatible chat completions API. Whatever comes back is raw bytes
// for the plan validator; this package makes no promise about its shape.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"academiafit/gym-app/internal/catalog"
	"academiafit/gym-app/internal/config"
	"academiafit/gym-app/internal/plangen"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel   = "llama-3.3-70b-versatile"
	FallbackModel  = "llama-4-scout-17b-16e-instruct"
)

// Client implements plangen.Oracle against a chat completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	catalog    *catalog.Catalog
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature,omitempty"`
	MaxTokens      int           `json:"max_tokens,omitempty"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewClient builds a generation client from config. The catalog is needed to
// tell the model which exercises it is allowed to use.
func NewClient(cfg config.AIConfig, cat *catalog.Catalog) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		catalog:    cat,
	}
}

// GeneratePlan asks the model for a weekly plan and returns the raw JSON it
// produced. Tries the configured model first, then the fallback.
func (c *Client) GeneratePlan(ctx context.Context, req plangen.GenerationRequest) ([]byte, error) {
	messages := []chatMessage{
		{Role: "system", Content: systemPrompt(c.catalog)},
		{Role: "user", Content: userPrompt(req)},
	}

	models := []string{c.model}
	if c.model != FallbackModel {
		models = append(models, FallbackModel)
	}

	var lastErr error
	for _, model := range models {
		raw, err := c.complete(ctx, model, messages)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) complete(ctx context.Context, model string, messages []chatMessage) ([]byte, error) {
	body, err := json.Marshal(chatRequest{
		Model:          model,
		Messages:       messages,
		Temperature:    0.7,
		MaxTokens:      4096,
		ResponseFormat: &respFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generation API status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var chat chatResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	if chat.Error != nil {
		return nil, fmt.Errorf("generation API error: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("generation API returned no choices")
	}

	return []byte(stripFences(chat.Choices[0].Message.Content)), nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one despite the json_object response format.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
