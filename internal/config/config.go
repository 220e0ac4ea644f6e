package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	LLM struct {
		Provider                 string  `mapstructure:"provider"`     // "openai", "gemini" or "ollama"
		Model                    string  `mapstructure:"model"`        // model name for the provider
		APIKey                   string  `mapstructure:"api_key"`      // credential for hosted providers
		EndpointURL              string  `mapstructure:"endpoint_url"` // custom endpoint (required for ollama)
		TimeoutSeconds           int     `mapstructure:"timeout_seconds"`
		Retries                  int     `mapstructure:"retries"`
		Temperature              float64 `mapstructure:"temperature"`
		PreventNumericCategories bool    `mapstructure:"prevent_numeric_categories"`
	} `mapstructure:"llm"`

	Categorization struct {
		BatchSize int `mapstructure:"batch_size"`
		ScanLimit int `mapstructure:"scan_limit"` // max commits ingested per scan, 0 = all
	} `mapstructure:"categorization"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`

	Server struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.timeout_seconds", 30)
	viper.SetDefault("llm.retries", 3)
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("llm.prevent_numeric_categories", true)
	viper.SetDefault("categorization.batch_size", 50)
	viper.SetDefault("worker.concurrency", 5)
	viper.SetDefault("server.address", ":8080")

	viper.AutomaticEnv()
	// Credentials usually live in the environment, not in config.yaml.
	viper.BindEnv("llm.api_key", "OPENAI_API_KEY", "GOOGLE_API_KEY")
	viper.BindEnv("database.dsn", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars carry the day.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
