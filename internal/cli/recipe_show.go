package cli

import (
	"context"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var recipeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved recipe",
	Long:  `Display a recipe's metadata and its options as YAML.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		recipe, err := eng.LoadRecipe(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), recipe)
		}

		data, err := yaml.Marshal(recipe.Options)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		PrintSection(w, "Recipe: "+recipe.Name)
		PrintLabelValue(w, "ID", recipe.ID)
		PrintLabelValue(w, "Method", string(recipe.Options.Method))
		if recipe.Description != "" {
			PrintLabelValue(w, "Description", recipe.Description)
		}
		PrintLabelValue(w, "Created", recipe.CreatedAt.Local().Format(time.DateTime))
		PrintLabelValue(w, "Updated", recipe.UpdatedAt.Local().Format(time.DateTime))
		if recipe.Fingerprint != "" {
			PrintLabelValue(w, "Fingerprint", recipe.Fingerprint)
		}

		PrintSection(w, "Options")
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			PrintInfo(w, "  "+line)
		}
		return nil
	},
}
