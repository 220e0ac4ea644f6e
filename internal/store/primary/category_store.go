package primary

import (
	"context"
	"fmt"
	"time"

	"gitmind/internal/models"
	"gitmind/internal/store"
)

// --- Category Management ---

func (s *StoreImpl) ListCategoryNames(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM categories ORDER BY usage_count DESC, name ASC`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list category names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan category name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return names, nil
}

// CreateCategoryIfAbsent relies on the unique constraint on categories.name:
// losing a creation race is indistinguishable from the category already
// existing, which is exactly what concurrent categorization runs need.
func (s *StoreImpl) CreateCategoryIfAbsent(ctx context.Context, name, description string) (bool, error) {
	query := `
		INSERT INTO categories (name, description, usage_count, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3)
		ON CONFLICT (name) DO NOTHING`

	tag, err := s.db.Exec(ctx, query, name, description, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to insert category %q: %w", name, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *StoreImpl) IncrementCategoryUsage(ctx context.Context, name string) error {
	query := `UPDATE categories SET usage_count = usage_count + 1, updated_at = $2 WHERE name = $1`
	tag, err := s.db.Exec(ctx, query, name, time.Now())
	if err != nil {
		return fmt.Errorf("failed to increment usage for category %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %q: %w", name, store.ErrNotFound)
	}
	return nil
}

func (s *StoreImpl) ListCategories(ctx context.Context, limit, offset int) ([]*models.Category, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT id, name, description, usage_count, created_at, updated_at
		FROM categories
		ORDER BY usage_count DESC, name ASC
		LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		cat := &models.Category{}
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.UsageCount, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}
