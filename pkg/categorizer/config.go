package categorizer

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds everything a provider client needs. It is read once at
// construction; clients never consult the environment at call time.
type Config struct {
	// Provider selects the backend: "openai", "gemini" or "ollama".
	Provider string
	// Model is the provider-specific model identifier.
	Model string
	// APIKey is the credential for hosted providers. Ignored by ollama.
	APIKey string
	// EndpointURL overrides the provider's default endpoint. Required for
	// ollama, optional for openai, unused by gemini.
	EndpointURL string
	// Timeout bounds a single provider call. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxAttempts is the total attempt budget. Zero means DefaultMaxAttempts.
	MaxAttempts int
	// Temperature is the sampling temperature, 0.0-2.0.
	Temperature float32
	// PreventNumericCategories toggles the numeric-category rejection
	// policy in the validator. Callers should leave it on.
	PreventNumericCategories bool
}

func (c Config) validate() error {
	if c.Model == "" {
		return &ConfigurationError{Field: "model", Reason: "model name is required"}
	}
	if c.Timeout < 0 {
		return &ConfigurationError{Field: "timeout", Reason: "timeout must be positive"}
	}
	if c.MaxAttempts < 0 {
		return &ConfigurationError{Field: "retries", Reason: "retry count must be positive"}
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return &ConfigurationError{Field: "temperature", Reason: fmt.Sprintf("temperature %.2f is outside 0.0-2.0", c.Temperature)}
	}
	if c.EndpointURL != "" {
		u, err := url.Parse(c.EndpointURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &ConfigurationError{Field: "endpoint_url", Reason: fmt.Sprintf("%q is not an absolute URL", c.EndpointURL)}
		}
	}
	return nil
}

func (c Config) retryController() *RetryController {
	return NewRetryController(c.Timeout, c.MaxAttempts)
}
