package primary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"gitmind/internal/models"
	"gitmind/internal/store"
)

// --- Repository Management ---

func (s *StoreImpl) GetOrCreateRepository(ctx context.Context, name, path string) (*models.Repository, error) {
	repo, err := s.GetRepositoryByName(ctx, name)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	query := `
		INSERT INTO repositories (name, path, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, created_at, updated_at`

	repo = &models.Repository{Name: name, Path: path}
	err = s.db.QueryRow(ctx, query, name, path, time.Now()).Scan(&repo.ID, &repo.CreatedAt, &repo.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost a creation race; the row exists now.
			return s.GetRepositoryByName(ctx, name)
		}
		return nil, fmt.Errorf("failed to insert repository %q: %w", name, err)
	}
	return repo, nil
}

func (s *StoreImpl) GetRepositoryByName(ctx context.Context, name string) (*models.Repository, error) {
	query := `SELECT id, name, path, created_at, updated_at FROM repositories WHERE name = $1`
	repo := &models.Repository{}
	err := s.db.QueryRow(ctx, query, name).Scan(&repo.ID, &repo.Name, &repo.Path, &repo.CreatedAt, &repo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository %q: %w", name, err)
	}
	return repo, nil
}

func (s *StoreImpl) GetRepository(ctx context.Context, id int64) (*models.Repository, error) {
	query := `SELECT id, name, path, created_at, updated_at FROM repositories WHERE id = $1`
	repo := &models.Repository{}
	err := s.db.QueryRow(ctx, query, id).Scan(&repo.ID, &repo.Name, &repo.Path, &repo.CreatedAt, &repo.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository %d: %w", id, err)
	}
	return repo, nil
}

func (s *StoreImpl) ListRepositories(ctx context.Context) ([]*models.Repository, error) {
	query := `SELECT id, name, path, created_at, updated_at FROM repositories ORDER BY name ASC`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	defer rows.Close()

	var repos []*models.Repository
	for rows.Next() {
		repo := &models.Repository{}
		if err := rows.Scan(&repo.ID, &repo.Name, &repo.Path, &repo.CreatedAt, &repo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan repository row: %w", err)
		}
		repos = append(repos, repo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repository rows: %w", err)
	}
	return repos, nil
}
