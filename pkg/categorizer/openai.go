package categorizer

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ChatCompletionCreator is the slice of the OpenAI client the categorizer
// needs. Tests substitute a canned implementation.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient categorizes commits through the OpenAI chat completion API
// (or any OpenAI-compatible endpoint when EndpointURL is set).
type OpenAIClient struct {
	client         ChatCompletionCreator
	model          string
	temperature    float32
	retry          *RetryController
	preventNumeric bool
}

// NewOpenAIClient validates the configuration and builds the client.
// A missing API key or malformed endpoint URL fails here, never at call time.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Field: "api_key", Reason: "OpenAI API key is required"}
	}

	occ := openai.DefaultConfig(cfg.APIKey)
	if cfg.EndpointURL != "" {
		occ.BaseURL = cfg.EndpointURL
	}

	return &OpenAIClient{
		client:         openai.NewClientWithConfig(occ),
		model:          cfg.Model,
		temperature:    cfg.Temperature,
		retry:          cfg.retryController(),
		preventNumeric: cfg.PreventNumericCategories,
	}, nil
}

func (c *OpenAIClient) Categorize(ctx context.Context, commit CommitContext, existingCategories []string) (Result, error) {
	prompt := BuildPrompt(commit, existingCategories)

	raw, err := c.retry.Do(ctx, "openai", func(ctx context.Context) (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Temperature: c.temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return "", fmt.Errorf("openai chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no choices returned from OpenAI")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return Result{}, err
	}

	res, err := ParseResponse(raw, c.preventNumeric)
	if err != nil {
		return Result{}, &APIError{Provider: "openai", Attempts: 1, Err: err}
	}
	return res, nil
}

var _ Client = (*OpenAIClient)(nil)
