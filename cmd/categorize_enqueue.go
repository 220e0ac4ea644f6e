package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitmind/internal/tasks"
)

var (
	enqueueRepoName  string
	enqueueBatchSize int
	enqueueLimit     int
)

var categorizeEnqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Queue a categorization run for the background worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}
		if enqueueRepoName == "" {
			return fmt.Errorf("--repo is required")
		}

		repo, err := appInstance.Store.GetRepositoryByName(ctx, enqueueRepoName)
		if err != nil {
			return fmt.Errorf("repository %q: %w", enqueueRepoName, err)
		}

		jc, err := appInstance.JobClient()
		if err != nil {
			return err
		}

		task, err := tasks.NewCategorizeRepositoryTask(repo.ID, enqueueBatchSize, enqueueLimit)
		if err != nil {
			return err
		}
		info, err := jc.Enqueue(ctx, task)
		if err != nil {
			return err
		}

		fmt.Printf("Enqueued categorization of %q (task id %s).\n", repo.Name, info.ID)
		return nil
	},
}

func init() {
	categorizeCmd.AddCommand(categorizeEnqueueCmd)
	categorizeEnqueueCmd.Flags().StringVar(&enqueueRepoName, "repo", "", "repository name (as registered by scan)")
	categorizeEnqueueCmd.Flags().IntVar(&enqueueBatchSize, "batch-size", 0, "commits per transaction (defaults to categorization.batch_size)")
	categorizeEnqueueCmd.Flags().IntVar(&enqueueLimit, "limit", 0, "maximum commits to categorize (0 = store default)")
}
