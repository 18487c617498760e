package options

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danieljhkim/obscura/internal/cipher"
)

func TestParseLayer(t *testing.T) {
	tests := []struct {
		input string
		want  LayerSpec
	}{
		{"reverse", LayerSpec{Type: "reverse"}},
		{"shift", LayerSpec{Type: "shift"}},
		{"shift:-4", LayerSpec{Type: "shift", Shift: Int(-4)}},
		{"transpose:5", LayerSpec{Type: "transpose", BlockSize: Int(5)}},
		{" transpose ", LayerSpec{Type: "transpose"}},
		{"table", LayerSpec{Type: "table"}},
		{"table:prime", LayerSpec{Type: "table", TableConfig: &TableConfig{ShiftPattern: "prime"}}},
		{"table:fibonacci:2", LayerSpec{Type: "table", TableConfig: &TableConfig{ShiftPattern: "fibonacci", BaseShift: Int(2)}}},
		{"table:custom:3:1, 2,-3", LayerSpec{Type: "table", TableConfig: &TableConfig{ShiftPattern: "custom", BaseShift: Int(3), CustomShifts: []int{1, 2, -3}}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLayer(tt.input)
			if err != nil {
				t.Fatalf("ParseLayer(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLayer(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLayer_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{"rotate", ErrUnknownLayer},
		{"", ErrUnknownLayer},
		{"reverse:2", ErrInvalidLayer},
		{"shift:x", ErrInvalidLayer},
		{"shift:1:2", ErrInvalidLayer},
		{"transpose:four", ErrInvalidLayer},
		{"table:prime:x", ErrInvalidLayer},
		{"table:custom:1:a,b", ErrInvalidLayer},
		{"table:a:1:2:3", ErrInvalidLayer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseLayer(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLayer(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLayerSpec_StringRoundTrip(t *testing.T) {
	inputs := []string{
		"reverse",
		"shift",
		"shift:7",
		"transpose:2",
		"table",
		"table:prime",
		"table:progressive:4",
		"table:custom:3:1,2,-3",
	}
	for _, input := range inputs {
		spec, err := ParseLayer(input)
		if err != nil {
			t.Fatalf("ParseLayer(%q) error = %v", input, err)
		}
		if got := spec.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestLayerSpec_LayerDefaults(t *testing.T) {
	tests := []struct {
		spec LayerSpec
		want string
	}{
		{LayerSpec{Type: "shift"}, "shift(+3)"},
		{LayerSpec{Type: "shift", Shift: Int(0)}, "shift(+0)"},
		{LayerSpec{Type: "transpose"}, "transpose(3)"},
		{LayerSpec{Type: "reverse"}, "reverse"},
		{LayerSpec{Type: "table"}, "table(even-odd, base 3, 4 tables)"},
	}
	for _, tt := range tests {
		layer, err := tt.spec.Layer()
		if err != nil {
			t.Fatalf("Layer() error = %v", err)
		}
		if layer.String() != tt.want {
			t.Errorf("Layer() = %s, want %s", layer, tt.want)
		}
	}
}

func TestParseLayers(t *testing.T) {
	specs, err := ParseLayers([]string{"shift:3", "reverse"})
	if err != nil {
		t.Fatalf("ParseLayers() error = %v", err)
	}

	p, err := (Options{Method: MethodAdvanced, Layers: specs}).Pipeline()
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}
	if got := p.Encode("abc"); got != "fed" {
		t.Errorf("Encode(abc) = %q, want %q", got, "fed")
	}

	if _, err := ParseLayers([]string{"reverse", "spin"}); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("expected ErrUnknownLayer, got %v", err)
	}
}

func TestParseLayersYAML(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		data := []byte(`
- type: shift
  shift: 3
- type: reverse
`)
		specs, err := ParseLayersYAML(data)
		if err != nil {
			t.Fatalf("ParseLayersYAML() error = %v", err)
		}
		if len(specs) != 2 || specs[0].Type != "shift" || *specs[0].Shift != 3 || specs[1].Type != "reverse" {
			t.Errorf("unexpected specs %+v", specs)
		}
	})

	t.Run("mapping", func(t *testing.T) {
		data := []byte(`
layers:
  - type: table
    tableConfig:
      shiftPattern: custom
      customShifts: [1, 2, 3]
  - type: transpose
    blockSize: 4
`)
		specs, err := ParseLayersYAML(data)
		if err != nil {
			t.Fatalf("ParseLayersYAML() error = %v", err)
		}
		if len(specs) != 2 {
			t.Fatalf("expected 2 layers, got %d", len(specs))
		}
		layer, err := specs[0].Layer()
		if err != nil {
			t.Fatalf("Layer() error = %v", err)
		}
		table, ok := layer.(cipher.TableLayer)
		if !ok {
			t.Fatalf("expected TableLayer, got %T", layer)
		}
		if !reflect.DeepEqual(table.CustomShifts, []int{1, 2, 3}) {
			t.Errorf("custom shifts = %v", table.CustomShifts)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		specs, err := ParseLayersYAML([]byte(""))
		if err != nil || len(specs) != 0 {
			t.Errorf("got %v, %v; want no layers", specs, err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := ParseLayersYAML([]byte("- type: spin\n"))
		if !errors.Is(err, ErrUnknownLayer) {
			t.Errorf("expected ErrUnknownLayer, got %v", err)
		}
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := ParseLayersYAML([]byte("just text\n"))
		if !errors.Is(err, ErrInvalidLayer) {
			t.Errorf("expected ErrInvalidLayer, got %v", err)
		}
	})
}
