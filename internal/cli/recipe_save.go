package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/obscura/internal/engine"
)

var (
	recipeSaveFlags       cipherFlags
	recipeSaveDescription string
	recipeSaveForce       bool
)

var recipeSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save options as a named recipe",
	Long: `Save the options given by flags under a name. The options are validated
before anything is written. Use --force to replace an existing recipe.`,
	Example: `  obscura recipe save team -m polyalphabetic -k lemon
  obscura recipe save deep --layer table:prime --layer shift:7 --layer reverse
  obscura recipe save deep --layers-file layers.yaml --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := recipeSaveFlags.options(cmd)
		if err != nil {
			return err
		}
		if opts == nil {
			return fmt.Errorf("no options given: pass --method or method flags")
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		result, err := eng.SaveRecipe(ctx, &engine.SaveRecipeRequest{
			Name:        args[0],
			Description: recipeSaveDescription,
			Options:     *opts,
			Force:       recipeSaveForce,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		w := cmd.OutOrStdout()
		PrintSection(w, "Save Recipe")
		if result.Created {
			PrintSuccess(w, fmt.Sprintf("Saved recipe: %s", result.Recipe.Name))
		} else {
			PrintSuccess(w, fmt.Sprintf("Replaced recipe: %s", result.Recipe.Name))
		}
		PrintLabelValue(w, "Method", string(result.Recipe.Options.Method))
		PrintLabelValue(w, "ID", result.Recipe.ID)
		return nil
	},
}

func init() {
	recipeSaveFlags.register(recipeSaveCmd.Flags())
	recipeSaveCmd.Flags().StringVarP(&recipeSaveDescription, "description", "d", "", "Recipe description")
	recipeSaveCmd.Flags().BoolVarP(&recipeSaveForce, "force", "f", false, "Replace an existing recipe")
}
