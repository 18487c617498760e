package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/obscura/internal/engine"
	"github.com/danieljhkim/obscura/internal/options"
)

// transformFlags are the flags shared by encode and decode.
type transformFlags struct {
	cipherFlags
	recipe  string
	verify  bool
	verbose bool
}

func (f *transformFlags) register(flags *pflag.FlagSet) {
	f.cipherFlags.register(flags)
	flags.StringVarP(&f.recipe, "recipe", "r", "", "Use a saved recipe")
	flags.BoolVar(&f.verify, "verify", false, "Check that the result inverts back to the input")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Print the method and per-layer trace to stderr")
}

func (f *transformFlags) resolve(cmd *cobra.Command) (*options.Options, error) {
	opts, err := f.options(cmd)
	if err != nil {
		return nil, err
	}
	if opts != nil && f.recipe != "" {
		return nil, fmt.Errorf("--recipe cannot be combined with option flags")
	}
	return opts, nil
}

var encodeFlags transformFlags

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Obscure text",
	Long: `Obscure text with a method, a saved recipe or the configured defaults.

Text is taken from the arguments, or read from stdin when it is piped. Without
--method the method is inferred from the other flags, then from --recipe, then
from config.yaml (default: caesar).`,
	Example: `  obscura encode "Hello, World!"
  obscura encode -m polyalphabetic -k lemon "attack at dawn"
  obscura encode --layer shift:5 --layer transpose:4 --layer reverse "secret"
  echo "notes" | obscura encode -r team`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts, err := encodeFlags.resolve(cmd)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()

		result, err := eng.Encode(ctx, &engine.EncodeRequest{
			Text:    text,
			Options: opts,
			Recipe:  encodeFlags.recipe,
			Verify:  encodeFlags.verify,
			Trace:   encodeFlags.verbose,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		if encodeFlags.verbose {
			printTrace(cmd.ErrOrStderr(), result.Method, result.Recipe, result.Steps, result.Verified)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Output)
		return err
	},
}

func init() {
	encodeFlags.register(encodeCmd.Flags())
}

// printTrace writes the verbose report for encode and decode.
func printTrace(w io.Writer, method options.Method, recipe string, steps []engine.Step, verified bool) {
	PrintLabelValue(w, "Method", string(method))
	if recipe != "" {
		PrintLabelValue(w, "Recipe", recipe)
	}
	for _, step := range steps {
		PrintStep(w, step.Index, step.Layer, step.Output)
	}
	if verified {
		PrintSuccess(w, "Round trip verified")
	}
}
