package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/danieljhkim/obscura/internal/options"
)

// methodValue is a pflag.Value that only accepts supported method names.
// Matching ignores case so "rot13", "ROT13" and "multitable" all work.
type methodValue options.Method

var _ pflag.Value = (*methodValue)(nil)

func (m *methodValue) String() string { return string(*m) }

func (m *methodValue) Set(s string) error {
	for _, method := range options.Methods() {
		if strings.EqualFold(s, string(method)) {
			*m = methodValue(method)
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", methodNames())
}

func (m *methodValue) Type() string { return "method" }

func methodNames() string {
	methods := options.Methods()
	names := make([]string, len(methods))
	for i, method := range methods {
		names[i] = string(method)
	}
	return strings.Join(names, ", ")
}

// cipherFlags are the flags that describe options on the command line.
// encode, decode and recipe save each own one set.
type cipherFlags struct {
	method       methodValue
	shift        int
	keyword      string
	tables       []string
	pattern      string
	baseShift    int
	customShifts []int
	layers       []string
	layersFile   string
}

func (f *cipherFlags) register(flags *pflag.FlagSet) {
	flags.VarP(&f.method, "method", "m", "Method: "+methodNames())
	flags.IntVarP(&f.shift, "shift", "s", 3, "Caesar shift")
	flags.StringVarP(&f.keyword, "keyword", "k", "", "Keyword for polyalphabetic")
	flags.StringArrayVar(&f.tables, "table", nil, "Substitution table (repeatable, replaces the defaults)")
	flags.StringVar(&f.pattern, "pattern", string(options.DefaultPattern), "Shift pattern for multiTable: even-odd, fibonacci, prime, progressive, custom")
	flags.IntVar(&f.baseShift, "base-shift", 3, "Base shift for multiTable")
	flags.IntSliceVar(&f.customShifts, "custom-shifts", nil, "Shift cycle for the custom pattern, e.g. 1,-2,5")
	flags.StringArrayVar(&f.layers, "layer", nil, "Pipeline layer for advanced (repeatable): shift:N, reverse, transpose:N, table[:PATTERN[:BASE[:S1,S2]]]")
	flags.StringVar(&f.layersFile, "layers-file", "", "YAML file listing pipeline layers for advanced")
}

// options builds options from the flags that were set. It returns nil when no
// option flag was given, leaving the choice to recipes and settings. Without
// --method the method is inferred from the other flags.
func (f *cipherFlags) options(cmd *cobra.Command) (*options.Options, error) {
	flags := cmd.Flags()
	changed := func(names ...string) bool {
		for _, name := range names {
			if flags.Changed(name) {
				return true
			}
		}
		return false
	}

	method := options.Method(f.method)
	if !changed("method") {
		switch {
		case changed("layer", "layers-file"):
			method = options.MethodAdvanced
		case changed("keyword"):
			method = options.MethodPolyalphabetic
		case changed("table", "pattern", "base-shift", "custom-shifts"):
			method = options.MethodMultiTable
		case changed("shift"):
			method = options.MethodCaesar
		default:
			return nil, nil
		}
	}

	opts := &options.Options{Method: method}
	switch method {
	case options.MethodCaesar:
		if changed("shift") {
			opts.Shift = options.Int(f.shift)
		}
	case options.MethodMultiTable:
		if changed("table", "pattern", "base-shift", "custom-shifts") {
			opts.TableConfig = f.tableConfig(changed("base-shift"))
		}
	case options.MethodPolyalphabetic:
		if changed("keyword", "table") {
			opts.PolyConfig = &options.PolyConfig{Keyword: f.keyword, Tables: f.tables}
		}
	case options.MethodAdvanced:
		layers, err := f.layerSpecs(changed("layer"), changed("layers-file"))
		if err != nil {
			return nil, err
		}
		opts.Layers = layers
	}
	return opts, nil
}

func (f *cipherFlags) tableConfig(baseShiftSet bool) *options.TableConfig {
	cfg := &options.TableConfig{
		Tables:       f.tables,
		ShiftPattern: f.pattern,
		CustomShifts: f.customShifts,
	}
	if baseShiftSet {
		cfg.BaseShift = options.Int(f.baseShift)
	}
	return cfg
}

func (f *cipherFlags) layerSpecs(fromFlags, fromFile bool) ([]options.LayerSpec, error) {
	if fromFlags && fromFile {
		return nil, fmt.Errorf("--layer and --layers-file cannot be combined")
	}
	if fromFile {
		data, err := os.ReadFile(f.layersFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read layers file: %w", err)
		}
		return options.ParseLayersYAML(data)
	}
	return options.ParseLayers(f.layers)
}
