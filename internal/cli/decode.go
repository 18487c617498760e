package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/obscura/internal/engine"
)

var decodeFlags transformFlags

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Reveal obscured text",
	Long: `Reveal text obscured by encode. Pass the same method flags or recipe
that were used to encode it.

Text is taken from the arguments, or read from stdin when it is piped.`,
	Example: `  obscura decode "Khoor, Zruog!"
  obscura decode -m polyalphabetic -k lemon "..."
  obscura encode -r team "notes" | obscura decode -r team`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts, err := decodeFlags.resolve(cmd)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		result, err := eng.Decode(ctx, &engine.DecodeRequest{
			Text:    text,
			Options: opts,
			Recipe:  decodeFlags.recipe,
			Verify:  decodeFlags.verify,
			Trace:   decodeFlags.verbose,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		if decodeFlags.verbose {
			printTrace(cmd.ErrOrStderr(), result.Method, result.Recipe, result.Steps, result.Verified)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Output)
		return err
	},
}

func init() {
	decodeFlags.register(decodeCmd.Flags())
}
