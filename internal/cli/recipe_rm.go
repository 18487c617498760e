package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var recipeRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved recipe",
	Long: `Delete a recipe permanently. Text obscured with it can still be revealed
by passing the same options as flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		name := args[0]

		err = eng.DeleteRecipe(ctx, name)

		if jsonOutput {
			output := map[string]any{
				"success": err == nil,
				"name":    name,
			}
			if err != nil {
				output["error"] = err.Error()
			}
			if jerr := outputJSON(cmd.OutOrStdout(), output); jerr != nil {
				return jerr
			}
			return err
		}

		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		PrintSection(w, "Delete Recipe")
		PrintSuccess(w, fmt.Sprintf("Deleted recipe: %s", name))
		return nil
	},
}
