package options

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/obscura/internal/cipher"
)

// LayerSpec describes one pipeline layer. Only the fields of its Type are
// read: Shift for shift, BlockSize for transpose, TableConfig for table.
type LayerSpec struct {
	Type        string       `json:"type" yaml:"type"`
	Shift       *int         `json:"shift,omitempty" yaml:"shift,omitempty"`
	BlockSize   *int         `json:"blockSize,omitempty" yaml:"blockSize,omitempty"`
	TableConfig *TableConfig `json:"tableConfig,omitempty" yaml:"tableConfig,omitempty"`
}

// Layer converts s into a typed layer. Missing shift and block size
// default to 3.
func (s LayerSpec) Layer() (cipher.Layer, error) {
	switch cipher.LayerKind(s.Type) {
	case cipher.LayerTable:
		return cipher.TableLayer{MultiTable: s.TableConfig.MultiTable()}, nil
	case cipher.LayerShift:
		shift := 3
		if s.Shift != nil {
			shift = *s.Shift
		}
		return cipher.ShiftLayer{Shift: shift}, nil
	case cipher.LayerReverse:
		return cipher.ReverseLayer{}, nil
	case cipher.LayerTranspose:
		size := cipher.DefaultBlockSize
		if s.BlockSize != nil {
			size = *s.BlockSize
		}
		return cipher.TransposeLayer{BlockSize: size}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, s.Type)
	}
}

// String renders s in the --layer flag syntax.
func (s LayerSpec) String() string {
	switch cipher.LayerKind(s.Type) {
	case cipher.LayerShift:
		if s.Shift != nil {
			return fmt.Sprintf("shift:%d", *s.Shift)
		}
	case cipher.LayerTranspose:
		if s.BlockSize != nil {
			return fmt.Sprintf("transpose:%d", *s.BlockSize)
		}
	case cipher.LayerTable:
		c := s.TableConfig
		if c == nil || c.ShiftPattern == "" {
			return s.Type
		}
		out := "table:" + c.ShiftPattern
		if c.BaseShift != nil {
			out += ":" + strconv.Itoa(*c.BaseShift)
		}
		if len(c.CustomShifts) > 0 {
			if c.BaseShift == nil {
				out += ":" + strconv.Itoa(cipher.DefaultBaseShift)
			}
			out += ":" + joinInts(c.CustomShifts)
		}
		return out
	}
	return s.Type
}

// ParseLayer parses the --layer flag syntax:
//
//	reverse
//	shift[:N]
//	transpose[:SIZE]
//	table[:PATTERN[:BASE[:S1,S2,...]]]
func ParseLayer(text string) (LayerSpec, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	kind := cipher.LayerKind(parts[0])
	args := parts[1:]
	spec := LayerSpec{Type: parts[0]}

	switch kind {
	case cipher.LayerReverse:
		if len(args) > 0 {
			return LayerSpec{}, fmt.Errorf("%w: reverse takes no arguments: %q", ErrInvalidLayer, text)
		}
	case cipher.LayerShift, cipher.LayerTranspose:
		if len(args) > 1 {
			return LayerSpec{}, fmt.Errorf("%w: %s takes one argument: %q", ErrInvalidLayer, kind, text)
		}
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return LayerSpec{}, fmt.Errorf("%w: %q: %v", ErrInvalidLayer, text, err)
			}
			if kind == cipher.LayerShift {
				spec.Shift = Int(n)
			} else {
				spec.BlockSize = Int(n)
			}
		}
	case cipher.LayerTable:
		if len(args) > 3 {
			return LayerSpec{}, fmt.Errorf("%w: table takes at most three arguments: %q", ErrInvalidLayer, text)
		}
		if len(args) == 0 {
			break
		}
		cfg := &TableConfig{ShiftPattern: args[0]}
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return LayerSpec{}, fmt.Errorf("%w: %q: base shift: %v", ErrInvalidLayer, text, err)
			}
			cfg.BaseShift = Int(n)
		}
		if len(args) > 2 {
			shifts, err := splitInts(args[2])
			if err != nil {
				return LayerSpec{}, fmt.Errorf("%w: %q: custom shifts: %v", ErrInvalidLayer, text, err)
			}
			cfg.CustomShifts = shifts
		}
		spec.TableConfig = cfg
	default:
		return LayerSpec{}, fmt.Errorf("%w: %q", ErrUnknownLayer, parts[0])
	}

	return spec, nil
}

// ParseLayers parses several --layer values in order.
func ParseLayers(texts []string) ([]LayerSpec, error) {
	specs := make([]LayerSpec, 0, len(texts))
	for _, text := range texts {
		spec, err := ParseLayer(text)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ParseLayersYAML reads layers from a YAML document that is either a list of
// layers or a mapping with a "layers" list. Every layer type is checked.
func ParseLayersYAML(data []byte) ([]LayerSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layers: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	var specs []LayerSpec
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&specs); err != nil {
			return nil, fmt.Errorf("failed to decode layers: %w", err)
		}
	case yaml.MappingNode:
		var wrapped struct {
			Layers []LayerSpec `yaml:"layers"`
		}
		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode layers: %w", err)
		}
		specs = wrapped.Layers
	default:
		return nil, fmt.Errorf("%w: expected a list of layers at line %d", ErrInvalidLayer, root.Line)
	}

	for i, spec := range specs {
		if _, err := spec.Layer(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return specs, nil
}

func splitInts(text string) ([]int, error) {
	fields := strings.Split(text, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
