package categorizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_ProviderSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("openai", func(t *testing.T) {
		client, err := NewClient(ctx, Config{Provider: "openai", Model: "gpt-test", APIKey: "sk-test"})
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("ollama", func(t *testing.T) {
		client, err := NewClient(ctx, Config{Provider: "ollama", Model: "llama3", EndpointURL: "http://localhost:11434"})
		require.NoError(t, err)
		assert.IsType(t, &OllamaClient{}, client)
	})

	t.Run("provider name is normalized", func(t *testing.T) {
		client, err := NewClient(ctx, Config{Provider: "  OpenAI ", Model: "gpt-test", APIKey: "sk-test"})
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		_, err := NewClient(ctx, Config{Provider: "anthropic", Model: "m"})
		require.Error(t, err)

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "provider", cfgErr.Field)
		assert.Contains(t, err.Error(), `unsupported provider "anthropic"`)
	})
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{"missing model", Config{}, "model"},
		{"negative timeout", Config{Model: "m", Timeout: -1}, "timeout"},
		{"negative retries", Config{Model: "m", MaxAttempts: -1}, "retries"},
		{"temperature too high", Config{Model: "m", Temperature: 2.5}, "temperature"},
		{"relative endpoint URL", Config{Model: "m", EndpointURL: "localhost:11434"}, "endpoint_url"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.validate()
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.wantField, cfgErr.Field)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		cfg := Config{
			Model:       "gpt-test",
			EndpointURL: "https://api.example.com/v1",
			Temperature: 0.2,
		}
		assert.NoError(t, cfg.validate())
	})
}
