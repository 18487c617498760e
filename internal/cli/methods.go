package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/obscura/internal/options"
)

// methodInfo is the JSON view of a method.
type methodInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List supported methods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		methods := options.Methods()

		if jsonOutput {
			infos := make([]methodInfo, len(methods))
			for i, m := range methods {
				infos[i] = methodInfo{Name: string(m), Description: m.Description()}
			}
			return outputJSON(cmd.OutOrStdout(), infos)
		}

		w := cmd.OutOrStdout()
		PrintSection(w, "Methods")
		rows := make([][]string, len(methods))
		for i, m := range methods {
			rows[i] = []string{string(m), m.Description()}
		}
		PrintTable(w, []string{"Method", "Description"}, rows)
		return nil
	},
}
