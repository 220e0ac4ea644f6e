package categorizer

import (
	"context"
	"fmt"
	"strings"
)

// NewClient builds the provider client selected by cfg.Provider. All
// configuration problems surface here as *ConfigurationError; a returned
// client is ready to categorize.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "openai":
		return NewOpenAIClient(cfg)
	case "gemini":
		return NewGeminiClient(ctx, cfg)
	case "ollama":
		return NewOllamaClient(cfg)
	default:
		return nil, &ConfigurationError{
			Field:  "provider",
			Reason: fmt.Sprintf("unsupported provider %q (want openai, gemini or ollama)", cfg.Provider),
		}
	}
}
