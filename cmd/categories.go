package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var categoriesLimit int

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List known categories ordered by usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		categories, err := appInstance.Store.ListCategories(ctx, categoriesLimit, 0)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		if len(categories) == 0 {
			fmt.Println("No categories recorded yet. Run 'gitmind categorize run' first.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Usage", "Description", "Created At"})
		table.SetBorder(true)
		table.SetRowLine(true)

		for _, c := range categories {
			table.Append([]string{
				c.Name,
				strconv.FormatInt(c.UsageCount, 10),
				c.Description,
				c.CreatedAt.Format(time.RFC3339),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().IntVar(&categoriesLimit, "limit", 50, "maximum categories to show")
}
