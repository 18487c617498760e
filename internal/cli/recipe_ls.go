package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var recipeLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved recipes",
	Long:  `Display all saved recipes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		summaries, err := eng.ListRecipes(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), summaries)
		}

		w := cmd.OutOrStdout()
		if len(summaries) == 0 {
			PrintSection(w, "Recipes")
			PrintEmptyState(w, "No recipes found")
			return nil
		}

		PrintSection(w, "Saved Recipes")
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, string(s.Method), s.UpdatedAt.Local().Format(time.DateTime), s.Description})
		}
		PrintTable(w, []string{"Name", "Method", "Updated", "Description"}, rows)
		fmt.Fprintln(w)
		PrintInfo(w, PrintCount(len(summaries), "recipe", "recipes"))
		return nil
	},
}
