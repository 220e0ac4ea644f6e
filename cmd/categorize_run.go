package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitmind/internal/gitsource"
	"gitmind/internal/services"
)

var (
	runRepoName  string
	runBatchSize int
	runLimit     int
)

var categorizeRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Categorize pending commits of a repository",
	Long: `Runs the categorizer over the repository's uncategorized commits and
applies the results. Per-commit failures are counted and skipped; the run
always finishes with a stats summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}
		if runRepoName == "" {
			return fmt.Errorf("--repo is required")
		}

		client, err := appInstance.CategorizerClient(ctx)
		if err != nil {
			return fmt.Errorf("cannot start run: %w", err)
		}

		repo, err := appInstance.Store.GetRepositoryByName(ctx, runRepoName)
		if err != nil {
			return fmt.Errorf("repository %q: %w", runRepoName, err)
		}

		commits, err := appInstance.Store.ListUncategorizedCommits(ctx, repo.ID, runLimit)
		if err != nil {
			return err
		}
		if len(commits) == 0 {
			fmt.Printf("Repository %q has no uncategorized commits.\n", repo.Name)
			return nil
		}

		batchSize := runBatchSize
		if batchSize <= 0 {
			batchSize = appInstance.Config.Categorization.BatchSize
		}

		svc := services.NewCategorizationService(client, appInstance.Store, gitsource.New(repo.Path))
		stats, err := svc.CategorizeCommits(ctx, commits, batchSize)
		if err != nil {
			return err
		}

		printStats(repo.Name, stats)
		return nil
	},
}

func printStats(repoName string, stats services.Stats) {
	fmt.Printf("Repository %q:\n", repoName)
	fmt.Printf("  processed:      %d\n", stats.Processed)
	color.Green("  categorized:    %d", stats.Categorized)
	if stats.Errors > 0 {
		color.Red("  errors:         %d", stats.Errors)
	} else {
		fmt.Printf("  errors:         %d\n", stats.Errors)
	}
	fmt.Printf("  new categories: %d\n", stats.NewCategories)
}

func init() {
	categorizeCmd.AddCommand(categorizeRunCmd)
	categorizeRunCmd.Flags().StringVar(&runRepoName, "repo", "", "repository name (as registered by scan)")
	categorizeRunCmd.Flags().IntVar(&runBatchSize, "batch-size", 0, "commits per transaction (defaults to categorization.batch_size)")
	categorizeRunCmd.Flags().IntVar(&runLimit, "limit", 0, "maximum commits to categorize this run (0 = store default)")
}
