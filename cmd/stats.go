package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show categorization progress per repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		repos, err := appInstance.Store.ListRepositories(ctx)
		if err != nil {
			return fmt.Errorf("failed to list repositories: %w", err)
		}
		if len(repos) == 0 {
			fmt.Println("No repositories scanned yet. Run 'gitmind scan <path>' first.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Repository", "Commits", "Categorized", "Remaining", "Progress"})
		table.SetBorder(true)

		for _, repo := range repos {
			summary, err := appInstance.Store.GetRepositorySummary(ctx, repo.ID)
			if err != nil {
				return fmt.Errorf("failed to summarize %q: %w", repo.Name, err)
			}
			progress := "0%"
			if summary.Total > 0 {
				progress = fmt.Sprintf("%.0f%%", float64(summary.Categorized)/float64(summary.Total)*100)
			}
			table.Append([]string{
				repo.Name,
				strconv.FormatInt(summary.Total, 10),
				strconv.FormatInt(summary.Categorized, 10),
				strconv.FormatInt(summary.Total-summary.Categorized, 10),
				progress,
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
