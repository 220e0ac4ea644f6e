package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gitmind/internal/models"
	"gitmind/internal/store"
	"gitmind/pkg/categorizer"
)

// DefaultBatchSize is the number of commits processed under one transaction.
const DefaultBatchSize = 50

// Stats are the counters of one categorization run. They are never
// decremented and only reset by starting a new run.
type Stats struct {
	Processed     int
	Categorized   int
	Errors        int
	NewCategories int
}

// CommitContextSource resolves per-commit context (file lists, diffs) from
// the underlying repository. An unknown hash yields empty results, not an
// error the run cares about.
type CommitContextSource interface {
	FilesForCommit(ctx context.Context, hash string) ([]string, error)
	DiffForCommit(ctx context.Context, hash string) (diff string, truncated bool, err error)
}

// CategorizationService drives batch categorization of commits: it asks the
// LLM client for a judgment per commit and applies the result to storage
// under per-chunk transactions.
//
// The known-category list is loaded once when the run starts and extended
// in memory as new categories are created; it is never re-fetched mid-run.
// Two services running concurrently against the same database may therefore
// both try to create the same category, which is safe because category
// creation is an idempotent insert-if-absent and usage increments are atomic.
type CategorizationService struct {
	client categorizer.Client
	store  store.Store
	source CommitContextSource

	runID       uuid.UUID
	stats       Stats
	existing    []string
	existingSet map[string]struct{}
}

func NewCategorizationService(client categorizer.Client, st store.Store, source CommitContextSource) *CategorizationService {
	return &CategorizationService{
		client: client,
		store:  st,
		source: source,
		runID:  uuid.New(),
	}
}

// Stats returns a snapshot of the run counters.
func (s *CategorizationService) Stats() Stats { return s.stats }

// CategorizeCommits processes commits in consecutive chunks of batchSize,
// one storage transaction per chunk. Per-commit failures (LLM errors,
// storage update errors) are counted and skipped; a failure of the
// transaction itself marks every commit of that chunk as errored. The run
// always finishes and returns its stats unless the category list cannot be
// seeded at all.
func (s *CategorizationService) CategorizeCommits(ctx context.Context, commits []*models.Commit, batchSize int) (Stats, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	if err := s.seedExistingCategories(ctx); err != nil {
		return s.stats, fmt.Errorf("failed to load existing categories: %w", err)
	}

	log.Infof("Starting categorization run %s: %d commits, batch size %d, %d known categories",
		s.runID, len(commits), batchSize, len(s.existing))

	for start := 0; start < len(commits); start += batchSize {
		end := start + batchSize
		if end > len(commits) {
			end = len(commits)
		}
		chunk := commits[start:end]

		err := s.store.WithTransaction(ctx, func(tx store.Store) error {
			for _, commit := range chunk {
				s.processCommit(ctx, tx, commit)
			}
			return nil
		})
		if err != nil {
			// The whole chunk rolled back; its work is lost wholesale.
			s.stats.Errors += len(chunk)
			log.Errorf("Run %s: chunk of %d commits failed: %v", s.runID, len(chunk), err)
		}
	}

	log.Infof("Run %s finished: processed=%d categorized=%d errors=%d new_categories=%d",
		s.runID, s.stats.Processed, s.stats.Categorized, s.stats.Errors, s.stats.NewCategories)
	return s.stats, nil
}

func (s *CategorizationService) seedExistingCategories(ctx context.Context) error {
	names, err := s.store.ListCategoryNames(ctx)
	if err != nil {
		return err
	}
	s.existing = names
	s.existingSet = make(map[string]struct{}, len(names))
	for _, name := range names {
		s.existingSet[name] = struct{}{}
	}
	return nil
}

// processCommit handles one commit. All failures are commit-scoped: they
// bump the error counter and the loop moves on.
func (s *CategorizationService) processCommit(ctx context.Context, tx store.Store, commit *models.Commit) {
	s.stats.Processed++

	res, err := s.client.Categorize(ctx, s.buildContext(ctx, commit), s.existing)
	if err != nil {
		s.stats.Errors++
		log.Warnf("Run %s: categorization of %s failed: %v", s.runID, commit.Hash, err)
		return
	}

	if _, known := s.existingSet[res.Category]; !known {
		created, err := tx.CreateCategoryIfAbsent(ctx, res.Category, defaultCategoryDescription(res.Category))
		if err != nil {
			s.stats.Errors++
			log.Warnf("Run %s: could not create category %q for %s: %v", s.runID, res.Category, commit.Hash, err)
			return
		}
		s.existing = append(s.existing, res.Category)
		s.existingSet[res.Category] = struct{}{}
		if created {
			s.stats.NewCategories++
			log.Infof("Run %s: created new category %q", s.runID, res.Category)
		}
	}

	if err := tx.UpdateCommitCategory(ctx, commit.RepositoryID, commit.Hash, res.Category, res.Confidence, res.Description); err != nil {
		s.stats.Errors++
		log.Warnf("Run %s: could not update commit %s: %v", s.runID, commit.Hash, err)
		return
	}
	if err := tx.IncrementCategoryUsage(ctx, res.Category); err != nil {
		s.stats.Errors++
		log.Warnf("Run %s: could not increment usage of %q: %v", s.runID, res.Category, err)
		return
	}

	s.stats.Categorized++
	log.Debugf("Run %s: %s -> %s (confidence %d, impact %d)",
		s.runID, commit.Hash, res.Category, res.Confidence, res.BusinessImpact)
}

func (s *CategorizationService) buildContext(ctx context.Context, commit *models.Commit) categorizer.CommitContext {
	cc := categorizer.CommitContext{
		Hash:    commit.Hash,
		Subject: commit.Subject,
	}
	if s.source == nil {
		return cc
	}

	files, err := s.source.FilesForCommit(ctx, commit.Hash)
	if err != nil {
		log.Debugf("Run %s: no file list for %s: %v", s.runID, commit.Hash, err)
	} else {
		cc.Files = files
	}

	diff, truncated, err := s.source.DiffForCommit(ctx, commit.Hash)
	if err != nil {
		log.Debugf("Run %s: no diff for %s: %v", s.runID, commit.Hash, err)
	} else {
		cc.Diff = diff
		cc.DiffTruncated = truncated
	}
	return cc
}

func defaultCategoryDescription(name string) string {
	return fmt.Sprintf("Automatically created while categorizing commits (%s)", name)
}
