package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitmind/internal/gitsource"
	"gitmind/internal/models"
)

var (
	scanName  string
	scanLimit int
)

// scanCmd registers a repository and ingests its commit metadata. Commits
// already known are skipped, so re-scanning is cheap.
var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Register a git repository and ingest its commits",
	Long: `Reads commit metadata from a local git repository and stores it for later
categorization. Scanning is idempotent: commits that are already known are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid repository path: %w", err)
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("repository path %q is not accessible: %w", path, err)
		}

		name := scanName
		if name == "" {
			name = filepath.Base(path)
		}

		limit := scanLimit
		if limit == 0 {
			limit = appInstance.Config.Categorization.ScanLimit
		}

		src := gitsource.New(path)
		infos, err := src.ListCommits(ctx, limit)
		if err != nil {
			return fmt.Errorf("failed to read git history: %w", err)
		}

		repo, err := appInstance.Store.GetOrCreateRepository(ctx, name, path)
		if err != nil {
			return err
		}

		var ingested int
		for _, info := range infos {
			commit := &models.Commit{
				RepositoryID: repo.ID,
				Hash:         info.Hash,
				Subject:      info.Subject,
				Author:       info.Author,
				CommittedAt:  info.CommittedAt,
			}
			created, err := appInstance.Store.CreateCommitIfAbsent(ctx, commit)
			if err != nil {
				return fmt.Errorf("failed to store commit %s: %w", info.Hash, err)
			}
			if created {
				ingested++
			}
		}

		fmt.Printf("Repository %q: %d commits read, %d new.\n", repo.Name, len(infos), ingested)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanName, "name", "", "repository name (defaults to the directory name)")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "maximum number of commits to read (0 = full history)")
}
