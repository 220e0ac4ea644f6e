package categorizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// OllamaClient categorizes commits through a locally hosted Ollama runtime
// using its /api/chat endpoint.
type OllamaClient struct {
	baseURL        string
	model          string
	temperature    float32
	httpClient     *http.Client
	retry          *RetryController
	preventNumeric bool
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  ollamaOptions   `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float32 `json:"temperature,omitempty"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// NewOllamaClient validates the configuration and builds the client.
// EndpointURL is mandatory since there is no hosted default worth guessing.
func NewOllamaClient(cfg Config) (*OllamaClient, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.EndpointURL == "" {
		return nil, &ConfigurationError{Field: "endpoint_url", Reason: "Ollama endpoint URL is required"}
	}

	return &OllamaClient{
		baseURL:        cfg.EndpointURL,
		model:          cfg.Model,
		temperature:    cfg.Temperature,
		httpClient:     &http.Client{},
		retry:          cfg.retryController(),
		preventNumeric: cfg.PreventNumericCategories,
	}, nil
}

func (c *OllamaClient) Categorize(ctx context.Context, commit CommitContext, existingCategories []string) (Result, error) {
	prompt := BuildPrompt(commit, existingCategories)

	raw, err := c.retry.Do(ctx, "ollama", func(ctx context.Context) (string, error) {
		return c.chat(ctx, prompt)
	})
	if err != nil {
		return Result{}, err
	}

	res, err := ParseResponse(raw, c.preventNumeric)
	if err != nil {
		return Result{}, &APIError{Provider: "ollama", Attempts: 1, Err: err}
	}
	return res, nil
}

func (c *OllamaClient) chat(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaChatRequest{
		Model:    c.model,
		Messages: []ollamaMessage{{Role: "user", Content: prompt}},
		Stream:   false,
		Options:  ollamaOptions{Temperature: c.temperature},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	url := fmt.Sprintf("%s/api/chat", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal ollama response: %w", err)
	}
	return chatResp.Message.Content, nil
}

var _ Client = (*OllamaClient)(nil)
