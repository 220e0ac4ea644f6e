package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}

	if c.LLM.Provider == "" {
		return errors.New("llm.provider is required")
	}
	switch c.LLM.Provider {
	case "openai", "gemini", "ollama":
	default:
		return fmt.Errorf("llm.provider %q is not supported (want openai, gemini or ollama)", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model is required")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return errors.New("llm.timeout_seconds must be a positive integer")
	}
	if c.LLM.Retries <= 0 {
		return errors.New("llm.retries must be a positive integer")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature (%.2f) must be between 0.0 and 2.0", c.LLM.Temperature)
	}
	if c.LLM.Provider == "ollama" && c.LLM.EndpointURL == "" {
		return errors.New("llm.endpoint_url is required when llm.provider is ollama")
	}

	if c.Categorization.BatchSize <= 0 {
		return errors.New("categorization.batch_size must be a positive integer")
	}

	// Redis and worker settings are only needed by the queue commands, but
	// when queues are declared they must be coherent.
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue %q must be positive", name)
		}
	}

	return nil
}
