package cipher

import (
	"reflect"
	"strings"
	"testing"
)

func TestPipeline_ShiftThenReverse(t *testing.T) {
	p := Pipeline{ShiftLayer{Shift: 3}, ReverseLayer{}}

	var encodeTrace []string
	encoded := p.EncodeObserved("abc", func(step int, layer Layer, output string) {
		encodeTrace = append(encodeTrace, output)
	})
	if encoded != "fed" {
		t.Fatalf("Encode(abc) = %q, want %q", encoded, "fed")
	}
	if want := []string{"def", "fed"}; !reflect.DeepEqual(encodeTrace, want) {
		t.Errorf("encode trace = %v, want %v", encodeTrace, want)
	}

	var decodeTrace []string
	decoded := p.DecodeObserved("fed", func(step int, layer Layer, output string) {
		decodeTrace = append(decodeTrace, output)
	})
	if decoded != "abc" {
		t.Fatalf("Decode(fed) = %q, want %q", decoded, "abc")
	}
	if want := []string{"def", "abc"}; !reflect.DeepEqual(decodeTrace, want) {
		t.Errorf("decode trace = %v, want %v", decodeTrace, want)
	}
}

func TestPipeline_ObserverSteps(t *testing.T) {
	p := Pipeline{ShiftLayer{Shift: 1}, TransposeLayer{BlockSize: 2}, ReverseLayer{}}

	var steps []int
	p.EncodeObserved("hello", func(step int, layer Layer, output string) {
		steps = append(steps, step)
	})
	if want := []int{0, 1, 2}; !reflect.DeepEqual(steps, want) {
		t.Errorf("encode steps = %v, want %v", steps, want)
	}

	steps = nil
	p.DecodeObserved("hello", func(step int, layer Layer, output string) {
		steps = append(steps, step)
	})
	if want := []int{2, 1, 0}; !reflect.DeepEqual(steps, want) {
		t.Errorf("decode steps = %v, want %v", steps, want)
	}
}

func TestPipeline_DefaultWhenEmpty(t *testing.T) {
	// shift(+3): abc -> def
	// table(fibonacci, base 2): d->e (t0,+1), e->d (t1,+1), f->h (t2,+2)
	// reverse: edh -> hde
	if got := DefaultPipeline().Encode("abc"); got != "hde" {
		t.Fatalf("DefaultPipeline().Encode(abc) = %q, want %q", got, "hde")
	}

	for _, p := range []Pipeline{nil, {}} {
		if got := p.Encode("abc"); got != "hde" {
			t.Errorf("empty pipeline Encode(abc) = %q, want %q", got, "hde")
		}
		if got := p.Decode("hde"); got != "abc" {
			t.Errorf("empty pipeline Decode(hde) = %q, want %q", got, "abc")
		}
	}
}

func TestDefaultPipeline_ReturnsCopy(t *testing.T) {
	p := DefaultPipeline()
	p[0] = ReverseLayer{}

	if kind := DefaultPipeline()[0].Kind(); kind != LayerShift {
		t.Errorf("default pipeline was mutated: first layer is %s", kind)
	}
}

func TestPipeline_String(t *testing.T) {
	want := "shift(+3) -> table(fibonacci, base 2, 4 tables) -> reverse"
	if got := DefaultPipeline().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPipeline_RoundTrip(t *testing.T) {
	pipelines := map[string]Pipeline{
		"default": nil,
		"everything": {
			ShiftLayer{Shift: 7},
			TransposeLayer{BlockSize: 4},
			TableLayer{MultiTable{Pattern: PatternPrime, BaseShift: 3}},
			ReverseLayer{},
			TableLayer{MultiTable{Tables: NewTableSet("qwertyuiopasdfghjklzxcvbnm"), Pattern: PatternCustom, CustomShifts: []int{3, 1, 4, 1, 5}}},
			ShiftLayer{Shift: -40},
		},
		"transpose default size": {TransposeLayer{}},
		"nil layer skipped":      {ShiftLayer{Shift: 2}, nil, ReverseLayer{}},
	}

	for name, p := range pipelines {
		for _, input := range roundTripInputs {
			t.Run(name+"/"+input, func(t *testing.T) {
				encoded := p.Encode(input)
				if got := p.Decode(encoded); got != input {
					t.Errorf("round trip of %q via %q gave %q", input, encoded, got)
				}
			})
		}
	}
}

func TestTransposeLayer(t *testing.T) {
	layer := TransposeLayer{BlockSize: 4}

	tests := []struct {
		input string
		want  string
	}{
		{"abcdefghij", "dcbahgfeji"},
		{"abcd", "dcba"},
		{"ab", "ba"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := layer.Encode(tt.input); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	for _, input := range roundTripInputs {
		if got := layer.Encode(layer.Encode(input)); got != input {
			t.Errorf("transpose twice of %q gave %q", input, got)
		}
	}
}

func TestTransposeLayer_DefaultBlockSize(t *testing.T) {
	for _, size := range []int{0, -2} {
		layer := TransposeLayer{BlockSize: size}
		if got := layer.Encode("abcdef"); got != "cbafed" {
			t.Errorf("BlockSize %d: Encode(abcdef) = %q, want %q", size, got, "cbafed")
		}
	}
}

func TestReverseLayer(t *testing.T) {
	if got := (ReverseLayer{}).Encode("héllo!"); got != "!olléh" {
		t.Errorf("Encode = %q, want %q", got, "!olléh")
	}
}

func TestShiftLetters(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"xyz", 3, "abc"},
		{"ABC", -1, "ZAB"},
		{"a", 29, "d"},
		{"Hello, World!", 26, "Hello, World!"},
		{"Hello, World!", 13, "Uryyb, Jbeyq!"},
		{"123", 5, "123"},
	}
	for _, tt := range tests {
		if got := ShiftLetters(tt.input, tt.n); got != tt.want {
			t.Errorf("ShiftLetters(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestLayer_Kinds(t *testing.T) {
	layers := map[LayerKind]Layer{
		LayerTable:     TableLayer{},
		LayerShift:     ShiftLayer{},
		LayerReverse:   ReverseLayer{},
		LayerTranspose: TransposeLayer{},
	}
	for want, layer := range layers {
		if layer.Kind() != want {
			t.Errorf("%T.Kind() = %s, want %s", layer, layer.Kind(), want)
		}
		if strings.TrimSpace(layer.String()) == "" {
			t.Errorf("%T.String() is empty", layer)
		}
	}
}
