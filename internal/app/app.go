package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"gitmind/internal/config"
	"gitmind/internal/store"
	"gitmind/internal/store/primary"
	"gitmind/pkg/categorizer"
)

// App wires configuration, storage and the LLM client together for the CLI
// commands. The store is connected eagerly; the LLM client and job client
// are built on first use so read-only commands work without an API key or
// Redis.
type App struct {
	Config *config.Config
	Store  store.Store

	primaryStore *primary.StoreImpl
	categorizer  categorizer.Client
	jobClient    store.JobClient
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ps, err := primary.NewStore(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}

	log.Debug("Application initialization complete.")
	return &App{Config: cfg, Store: ps, primaryStore: ps}, nil
}

// CategorizerClient builds (once) and returns the configured LLM client.
// Configuration problems fail here, before any commit is attempted.
func (a *App) CategorizerClient(ctx context.Context) (categorizer.Client, error) {
	if a.categorizer != nil {
		return a.categorizer, nil
	}
	cli, err := categorizer.NewClient(ctx, categorizer.Config{
		Provider:                 a.Config.LLM.Provider,
		Model:                    a.Config.LLM.Model,
		APIKey:                   a.Config.LLM.APIKey,
		EndpointURL:              a.Config.LLM.EndpointURL,
		Timeout:                  time.Duration(a.Config.LLM.TimeoutSeconds) * time.Second,
		MaxAttempts:              a.Config.LLM.Retries,
		Temperature:              float32(a.Config.LLM.Temperature),
		PreventNumericCategories: a.Config.LLM.PreventNumericCategories,
	})
	if err != nil {
		return nil, err
	}
	a.categorizer = cli
	return cli, nil
}

// JobClient builds (once) and returns the queue client.
func (a *App) JobClient() (store.JobClient, error) {
	if a.jobClient != nil {
		return a.jobClient, nil
	}
	jc, err := store.NewAsynqJobClient(a.Config.Redis.Address, a.Config.Redis.Password, a.Config.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("init job client: %w", err)
	}
	a.jobClient = jc
	return jc, nil
}

// Close releases the application's connections.
func (a *App) Close() {
	if a.jobClient != nil {
		if err := a.jobClient.Close(); err != nil {
			log.Warnf("Failed to close job client: %v", err)
		}
	}
	if a.primaryStore != nil {
		a.primaryStore.Close()
	}
}
