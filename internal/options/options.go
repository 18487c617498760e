// Package options defines the serialisable configuration accepted by the
// obscure and reveal operations.
//
// The same Options value is read from CLI flags, stored in recipe files and
// passed to the engine. JSON and YAML field names are identical. Options is a
// loosely filled document; the conversion methods turn it into the strongly
// typed values of the cipher and classic packages, applying defaults for
// anything left out.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/obscura/internal/cipher"
	"github.com/danieljhkim/obscura/internal/classic"
	"github.com/danieljhkim/obscura/internal/hash"
)

// Method selects an obscuring scheme.
type Method string

const (
	MethodCaesar         Method = "caesar"
	MethodROT13          Method = "rot13"
	MethodMirror         Method = "mirror"
	MethodSymbolMap      Method = "symbolMap"
	MethodMultiTable     Method = "multiTable"
	MethodPolyalphabetic Method = "polyalphabetic"
	MethodAdvanced       Method = "advanced"
)

// DefaultPattern is the shift pattern used when a table configuration omits one.
const DefaultPattern = cipher.PatternEvenOdd

var methodDescriptions = map[Method]string{
	MethodCaesar:         "Fixed shift of every letter (--shift, default 3)",
	MethodROT13:          "Caesar shift of 13, its own inverse",
	MethodMirror:         "Atbash mirror of the alphabet (a<->z)",
	MethodSymbolMap:      "Letters replaced by emoji glyphs",
	MethodMultiTable:     "Position-selected tables with a shift pattern",
	MethodPolyalphabetic: "Keyword-driven tables and shifts (--keyword)",
	MethodAdvanced:       "Layered pipeline of table, shift, reverse and transpose steps",
}

// Methods returns the supported methods in a stable order.
func Methods() []Method {
	return []Method{
		MethodCaesar,
		MethodROT13,
		MethodMirror,
		MethodSymbolMap,
		MethodMultiTable,
		MethodPolyalphabetic,
		MethodAdvanced,
	}
}

// Supported reports whether m is a known method.
func (m Method) Supported() bool {
	_, ok := methodDescriptions[m]
	return ok
}

// Description returns a one-line summary of the method.
func (m Method) Description() string {
	return methodDescriptions[m]
}

// Options configures a single obscure or reveal call.
type Options struct {
	// Method selects the scheme.
	Method Method `json:"method" yaml:"method"`

	// Shift is the caesar shift (default 3).
	Shift *int `json:"shift,omitempty" yaml:"shift,omitempty"`

	// SymbolMap overrides the default glyph map for symbolMap.
	SymbolMap map[string]string `json:"symbolMap,omitempty" yaml:"symbolMap,omitempty"`

	// TableConfig configures multiTable.
	TableConfig *TableConfig `json:"tableConfig,omitempty" yaml:"tableConfig,omitempty"`

	// PolyConfig configures polyalphabetic.
	PolyConfig *PolyConfig `json:"polyConfig,omitempty" yaml:"polyConfig,omitempty"`

	// Layers configures advanced. Empty means the default pipeline.
	Layers []LayerSpec `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// TableConfig configures a multi-table substitution.
type TableConfig struct {
	Tables       []string `json:"tables,omitempty" yaml:"tables,omitempty"`
	ShiftPattern string   `json:"shiftPattern,omitempty" yaml:"shiftPattern,omitempty"`
	BaseShift    *int     `json:"baseShift,omitempty" yaml:"baseShift,omitempty"`
	CustomShifts []int    `json:"customShifts,omitempty" yaml:"customShifts,omitempty"`
}

// PolyConfig configures a polyalphabetic substitution.
type PolyConfig struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	Tables  []string `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// Validate checks the parts of o that its method uses.
func (o Options) Validate() error {
	if !o.Method.Supported() {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, o.Method)
	}

	switch o.Method {
	case MethodSymbolMap:
		_, err := o.SymbolMapCipher()
		return err
	case MethodPolyalphabetic:
		_, err := o.Polyalphabetic()
		return err
	case MethodAdvanced:
		_, err := o.Pipeline()
		return err
	}
	return nil
}

// CaesarShift returns the configured caesar shift.
func (o Options) CaesarShift() int {
	if o.Shift == nil {
		return classic.DefaultCaesarShift
	}
	return *o.Shift
}

// SymbolMapCipher returns the configured glyph map, or the default one.
func (o Options) SymbolMapCipher() (*classic.SymbolMap, error) {
	if len(o.SymbolMap) == 0 {
		return classic.DefaultSymbolMap(), nil
	}
	m, err := classic.NewSymbolMap(o.SymbolMap)
	if err != nil {
		return nil, fmt.Errorf("invalid symbol map: %w", err)
	}
	return m, nil
}

// MultiTable returns the configured multi-table transform.
func (o Options) MultiTable() cipher.MultiTable {
	return o.TableConfig.MultiTable()
}

// Polyalphabetic returns the configured keyword transform.
func (o Options) Polyalphabetic() (*cipher.Polyalphabetic, error) {
	if o.PolyConfig == nil || o.PolyConfig.Keyword == "" {
		return nil, ErrMissingKeyword
	}
	return cipher.NewPolyalphabetic(o.PolyConfig.Keyword, cipher.NewTableSet(o.PolyConfig.Tables...))
}

// Pipeline returns the configured layers as a typed pipeline. No layers yields
// the default pipeline.
func (o Options) Pipeline() (cipher.Pipeline, error) {
	if len(o.Layers) == 0 {
		return cipher.DefaultPipeline(), nil
	}

	pipeline := make(cipher.Pipeline, 0, len(o.Layers))
	for i, spec := range o.Layers {
		layer, err := spec.Layer()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		pipeline = append(pipeline, layer)
	}
	return pipeline, nil
}

// Fingerprint identifies the options by content.
func (o Options) Fingerprint(h hash.Hasher) (string, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("failed to marshal options: %w", err)
	}
	return h.HashBytes(data), nil
}

// MultiTable converts the configuration, filling defaults. A nil config yields
// the default tables with the even-odd pattern and a base shift of 3.
func (c *TableConfig) MultiTable() cipher.MultiTable {
	m := cipher.MultiTable{
		Tables:    cipher.DefaultTableSet(),
		Pattern:   DefaultPattern,
		BaseShift: cipher.DefaultBaseShift,
	}
	if c == nil {
		return m
	}

	m.Tables = cipher.NewTableSet(c.Tables...)
	if c.ShiftPattern != "" {
		m.Pattern = cipher.ShiftPattern(c.ShiftPattern)
	}
	if c.BaseShift != nil {
		m.BaseShift = *c.BaseShift
	}
	m.CustomShifts = c.CustomShifts
	return m
}

// Int returns a pointer to v, for filling optional fields.
func Int(v int) *int {
	return &v
}
