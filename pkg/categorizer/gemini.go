package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient categorizes commits through the Google Gemini API.
type GeminiClient struct {
	model          *genai.GenerativeModel
	retry          *RetryController
	preventNumeric bool
}

// NewGeminiClient validates the configuration and builds the client. The
// genai SDK needs a context for its transport setup, which is why this
// constructor takes one while the others do not.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, &ConfigurationError{Field: "api_key", Reason: "Google API key is required"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, &ConfigurationError{Field: "api_key", Reason: fmt.Sprintf("could not initialize Gemini client: %v", err)}
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)

	return &GeminiClient{
		model:          model,
		retry:          cfg.retryController(),
		preventNumeric: cfg.PreventNumericCategories,
	}, nil
}

func (c *GeminiClient) Categorize(ctx context.Context, commit CommitContext, existingCategories []string) (Result, error) {
	prompt := BuildPrompt(commit, existingCategories)

	raw, err := c.retry.Do(ctx, "gemini", func(ctx context.Context) (string, error) {
		resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", fmt.Errorf("gemini content generation failed: %w", err)
		}
		return geminiResponseText(resp)
	})
	if err != nil {
		return Result{}, err
	}

	res, err := ParseResponse(raw, c.preventNumeric)
	if err != nil {
		return Result{}, &APIError{Provider: "gemini", Attempts: 1, Err: err}
	}
	return res, nil
}

// geminiResponseText flattens the first candidate's text parts.
func geminiResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("Gemini returned no text parts")
	}
	return b.String(), nil
}

var _ Client = (*GeminiClient)(nil)
