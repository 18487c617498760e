package cli

import (
	"github.com/spf13/cobra"
)

// recipeCmd is the parent command for recipe management.
var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage saved recipes",
	Long: `Manage recipes: named option sets saved under ~/.obscura/recipes/.

Encode and decode accept --recipe to reuse a saved configuration, which is
the practical way to reveal text obscured by a long layered pipeline.`,
}

func init() {
	recipeCmd.AddCommand(recipeSaveCmd)
	recipeCmd.AddCommand(recipeLsCmd)
	recipeCmd.AddCommand(recipeShowCmd)
	recipeCmd.AddCommand(recipeRmCmd)
}
