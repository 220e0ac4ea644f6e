package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"gitmind/internal/gitsource"
	"gitmind/internal/services"
	"gitmind/internal/store"
	"gitmind/internal/tasks"
	"gitmind/pkg/categorizer"
)

// CategorizeDeps are the collaborators the categorization task handler needs.
type CategorizeDeps struct {
	Store       store.Store
	Categorizer categorizer.Client
	BatchSize   int
}

// RegisterHandlers attaches all task handlers to the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps CategorizeDeps) {
	mux.HandleFunc(tasks.TypeCategorizeRepository, func(ctx context.Context, t *asynq.Task) error {
		return HandleCategorizeRepository(ctx, t, deps)
	})
}

// HandleCategorizeRepository runs one categorization pass over a
// repository's uncategorized commits.
func HandleCategorizeRepository(ctx context.Context, t *asynq.Task, deps CategorizeDeps) error {
	var payload tasks.CategorizeRepositoryPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid categorize payload: %v: %w", err, asynq.SkipRetry)
	}

	repo, err := deps.Store.GetRepository(ctx, payload.RepositoryID)
	if err != nil {
		return fmt.Errorf("repository %d: %w", payload.RepositoryID, err)
	}

	commits, err := deps.Store.ListUncategorizedCommits(ctx, repo.ID, payload.Limit)
	if err != nil {
		return fmt.Errorf("list uncategorized commits for %q: %w", repo.Name, err)
	}
	if len(commits) == 0 {
		log.Infof("Repository %q has no uncategorized commits", repo.Name)
		return nil
	}

	batchSize := payload.BatchSize
	if batchSize <= 0 {
		batchSize = deps.BatchSize
	}

	svc := services.NewCategorizationService(deps.Categorizer, deps.Store, gitsource.New(repo.Path))
	stats, err := svc.CategorizeCommits(ctx, commits, batchSize)
	if err != nil {
		return fmt.Errorf("categorize %q: %w", repo.Name, err)
	}

	log.Infof("Repository %q: processed=%d categorized=%d errors=%d new_categories=%d",
		repo.Name, stats.Processed, stats.Categorized, stats.Errors, stats.NewCategories)
	return nil
}
