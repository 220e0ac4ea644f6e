package store

import (
	"context"

	"github.com/hibiken/asynq"

	"gitmind/internal/models"
)

// --- Category Store ---

type CategoryStore interface {
	// ListCategoryNames returns every known category name ordered by usage
	// descending, then name ascending. The categorizer seeds its in-memory
	// cache from this once per run.
	ListCategoryNames(ctx context.Context) ([]string, error)
	// CreateCategoryIfAbsent inserts a category unless one with the same
	// name exists. It reports whether a row was actually created, which
	// keeps concurrent runs safe: two runs racing to create the same
	// category both succeed, one of them as a no-op.
	CreateCategoryIfAbsent(ctx context.Context, name, description string) (bool, error)
	// IncrementCategoryUsage atomically bumps the category's usage counter.
	IncrementCategoryUsage(ctx context.Context, name string) error
	ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, error)
}

// --- Commit Store ---

type CommitStore interface {
	CreateCommitIfAbsent(ctx context.Context, commit *models.Commit) (bool, error)
	// UpdateCommitCategory sets the category, confidence and description of
	// one commit within a repository scope.
	UpdateCommitCategory(ctx context.Context, repositoryID int64, hash, category string, confidence int, description string) error
	ListUncategorizedCommits(ctx context.Context, repositoryID int64, limit int) ([]*models.Commit, error)
	ListCommitsByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Commit, error)
	GetRepositorySummary(ctx context.Context, repositoryID int64) (*models.RepositorySummary, error)
}

// --- Repository Store ---

type RepositoryStore interface {
	GetOrCreateRepository(ctx context.Context, name, path string) (*models.Repository, error)
	GetRepositoryByName(ctx context.Context, name string) (*models.Repository, error)
	GetRepository(ctx context.Context, id int64) (*models.Repository, error)
	ListRepositories(ctx context.Context) ([]*models.Repository, error)
}

// Store bundles every persistence operation the application needs.
// WithTransaction hands the callback a Store whose writes all land in one
// transaction; if the callback returns an error everything is rolled back.
type Store interface {
	CategoryStore
	CommitStore
	RepositoryStore

	WithTransaction(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}

// --- Job Client ---

// JobClient enqueues background tasks.
type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}
