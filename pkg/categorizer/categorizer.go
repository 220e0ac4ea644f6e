package categorizer

import "context"

// CommitContext carries everything the prompt needs about one commit.
// It is assembled per call and never persisted.
type CommitContext struct {
	Hash          string
	Subject       string
	Files         []string
	Diff          string
	DiffTruncated bool
}

// Result is the structured outcome of a single categorization attempt.
// Category has already passed validation and is upper-cased; Description
// is empty when the model did not provide one.
type Result struct {
	Category       string
	Confidence     int
	BusinessImpact int
	Reason         string
	Description    string
}

// Client categorizes commits via an LLM provider.
type Client interface {
	Categorize(ctx context.Context, commit CommitContext, existingCategories []string) (Result, error)
}
