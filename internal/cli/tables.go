package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/obscura/internal/cipher"
)

// tablesInfo is the JSON view of the built-in tables and pipeline.
type tablesInfo struct {
	Tables   []string `json:"tables"`
	Pipeline string   `json:"pipeline"`
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show the default tables and pipeline",
	Long: `Print the default substitution tables used when none are configured, and
the default pipeline used by the advanced method when no layers are given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := tablesInfo{
			Tables:   cipher.DefaultTables(),
			Pipeline: cipher.DefaultPipeline().String(),
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), info)
		}

		w := cmd.OutOrStdout()
		PrintSection(w, "Default Tables")
		PrintNumberedList(w, info.Tables, 1)
		PrintSection(w, "Default Pipeline")
		PrintList(w, []string{info.Pipeline}, 1)
		return nil
	},
}
