package models

import (
	"time"
)

// Repository is a scanned source-control repository.
type Repository struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Path      string    `db:"path"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Commit is a single versioned change, identified by (repository_id, hash).
// The categorizer only ever mutates Category and AIConfidence.
type Commit struct {
	ID           int64      `db:"id"`
	RepositoryID int64      `db:"repository_id"`
	Hash         string     `db:"hash"`
	Subject      string     `db:"subject"`
	Author       string     `db:"author"`
	CommittedAt  time.Time  `db:"committed_at"`
	Category     *string    `db:"category"`      // nullable until categorized
	AIConfidence *int       `db:"ai_confidence"` // nullable until categorized
	Description  *string    `db:"description"`   // nullable, model-generated summary
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Category is a business-domain label shared by many commits. Name is the
// unique, upper-cased key; UsageCount grows by one for every commit assigned.
type Category struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	UsageCount  int64     `db:"usage_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// RepositorySummary aggregates categorization progress for one repository.
type RepositorySummary struct {
	RepositoryID int64
	Total        int64
	Categorized  int64
}
