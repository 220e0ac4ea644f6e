package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Database.DSN = "postgres://localhost/gitmind"
	cfg.LLM.Provider = "openai"
	cfg.LLM.Model = "gpt-4o-mini"
	cfg.LLM.TimeoutSeconds = 30
	cfg.LLM.Retries = 3
	cfg.LLM.Temperature = 0.2
	cfg.Categorization.BatchSize = 50
	return cfg
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing DSN",
			mutate:  func(c *Config) { c.Database.DSN = "" },
			wantErr: "database.dsn is required",
		},
		{
			name:    "missing provider",
			mutate:  func(c *Config) { c.LLM.Provider = "" },
			wantErr: "llm.provider is required",
		},
		{
			name:    "unsupported provider",
			mutate:  func(c *Config) { c.LLM.Provider = "anthropic" },
			wantErr: `llm.provider "anthropic" is not supported`,
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.LLM.Model = "" },
			wantErr: "llm.model is required",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.LLM.TimeoutSeconds = 0 },
			wantErr: "llm.timeout_seconds must be a positive integer",
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.LLM.Retries = 0 },
			wantErr: "llm.retries must be a positive integer",
		},
		{
			name:    "temperature out of range",
			mutate:  func(c *Config) { c.LLM.Temperature = 2.5 },
			wantErr: "llm.temperature",
		},
		{
			name: "ollama without endpoint",
			mutate: func(c *Config) {
				c.LLM.Provider = "ollama"
				c.LLM.Model = "llama3"
			},
			wantErr: "llm.endpoint_url is required when llm.provider is ollama",
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.Categorization.BatchSize = 0 },
			wantErr: "categorization.batch_size must be a positive integer",
		},
		{
			name:    "queue with non-positive priority",
			mutate:  func(c *Config) { c.Worker.Queues = map[string]int{"default": 0} },
			wantErr: `worker.queues priority for queue "default" must be positive`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestConfigValidate_OllamaWithEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.LLM.Provider = "ollama"
	cfg.LLM.Model = "llama3"
	cfg.LLM.EndpointURL = "http://localhost:11434"
	assert.NoError(t, cfg.Validate())
}
