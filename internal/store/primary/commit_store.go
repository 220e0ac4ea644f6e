package primary

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"gitmind/internal/models"
	"gitmind/internal/store"
)

// --- Commit Management ---

func (s *StoreImpl) CreateCommitIfAbsent(ctx context.Context, commit *models.Commit) (bool, error) {
	query := `
		INSERT INTO commits (repository_id, hash, subject, author, committed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (repository_id, hash) DO NOTHING
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRow(ctx, query,
		commit.RepositoryID, commit.Hash, commit.Subject, commit.Author, commit.CommittedAt, time.Now(),
	).Scan(&commit.ID, &commit.CreatedAt, &commit.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Conflict path: the commit was already known.
			return false, nil
		}
		return false, fmt.Errorf("failed to insert commit %s: %w", commit.Hash, err)
	}
	return true, nil
}

func (s *StoreImpl) UpdateCommitCategory(ctx context.Context, repositoryID int64, hash, category string, confidence int, description string) error {
	query := `
		UPDATE commits
		SET category = $3, ai_confidence = $4, description = NULLIF($5, ''), updated_at = $6
		WHERE repository_id = $1 AND hash = $2`

	tag, err := s.db.Exec(ctx, query, repositoryID, hash, category, confidence, description, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update commit %s: %w", hash, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("commit %s in repository %d: %w", hash, repositoryID, store.ErrNotFound)
	}
	return nil
}

const commitColumns = `id, repository_id, hash, subject, author, committed_at, category, ai_confidence, description, created_at, updated_at`

func scanCommit(rows pgx.Rows, dest *models.Commit) error {
	return rows.Scan(
		&dest.ID,
		&dest.RepositoryID,
		&dest.Hash,
		&dest.Subject,
		&dest.Author,
		&dest.CommittedAt,
		&dest.Category,
		&dest.AIConfidence,
		&dest.Description,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	)
}

func (s *StoreImpl) ListUncategorizedCommits(ctx context.Context, repositoryID int64, limit int) ([]*models.Commit, error) {
	if limit <= 0 {
		limit = 500
	}
	query := fmt.Sprintf(`
		SELECT %s FROM commits
		WHERE repository_id = $1 AND category IS NULL
		ORDER BY committed_at ASC
		LIMIT $2`, commitColumns)

	rows, err := s.db.Query(ctx, query, repositoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncategorized commits: %w", err)
	}
	defer rows.Close()

	return collectCommits(rows)
}

func (s *StoreImpl) ListCommitsByCategory(ctx context.Context, category string, limit, offset int) ([]*models.Commit, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
		SELECT %s FROM commits
		WHERE category = $1
		ORDER BY committed_at DESC
		LIMIT $2 OFFSET $3`, commitColumns)

	rows, err := s.db.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for category %q: %w", category, err)
	}
	defer rows.Close()

	return collectCommits(rows)
}

func collectCommits(rows pgx.Rows) ([]*models.Commit, error) {
	var commits []*models.Commit
	for rows.Next() {
		c := &models.Commit{}
		if err := scanCommit(rows, c); err != nil {
			return nil, fmt.Errorf("failed to scan commit row: %w", err)
		}
		commits = append(commits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commit rows: %w", err)
	}
	return commits, nil
}

func (s *StoreImpl) GetRepositorySummary(ctx context.Context, repositoryID int64) (*models.RepositorySummary, error) {
	query := `
		SELECT COUNT(*), COUNT(category)
		FROM commits
		WHERE repository_id = $1`

	summary := &models.RepositorySummary{RepositoryID: repositoryID}
	err := s.db.QueryRow(ctx, query, repositoryID).Scan(&summary.Total, &summary.Categorized)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize repository %d: %w", repositoryID, err)
	}
	return summary, nil
}
