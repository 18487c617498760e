package cipher

import (
	"fmt"
	"slices"
)

// LayerKind identifies a layer variant.
type LayerKind string

const (
	LayerTable     LayerKind = "table"
	LayerShift     LayerKind = "shift"
	LayerReverse   LayerKind = "reverse"
	LayerTranspose LayerKind = "transpose"
)

// DefaultBlockSize is the transpose block size used for sizes below 1.
const DefaultBlockSize = 3

// Layer is one reversible step of a Pipeline.
type Layer interface {
	// Kind returns the layer variant.
	Kind() LayerKind

	// Encode applies the step forward.
	Encode(text string) string

	// Decode applies the inverse step.
	Decode(text string) string

	// String describes the layer for traces.
	String() string
}

// TableLayer runs a multi-table substitution.
type TableLayer struct {
	MultiTable
}

func (l TableLayer) Kind() LayerKind { return LayerTable }

func (l TableLayer) String() string {
	return fmt.Sprintf("table(%s, base %d, %d tables)", l.Pattern, l.BaseShift, l.tableSet().Len())
}

// ShiftLayer moves every ASCII letter by Shift places, wrapping within its case.
type ShiftLayer struct {
	Shift int
}

func (l ShiftLayer) Kind() LayerKind { return LayerShift }

func (l ShiftLayer) Encode(text string) string { return ShiftLetters(text, l.Shift) }

func (l ShiftLayer) Decode(text string) string { return ShiftLetters(text, -l.Shift) }

func (l ShiftLayer) String() string { return fmt.Sprintf("shift(%+d)", l.Shift) }

// ReverseLayer reverses the rune order of the whole string. It is its own
// inverse.
type ReverseLayer struct{}

func (ReverseLayer) Kind() LayerKind { return LayerReverse }

func (ReverseLayer) Encode(text string) string { return reverseRunes(text) }

func (ReverseLayer) Decode(text string) string { return reverseRunes(text) }

func (ReverseLayer) String() string { return "reverse" }

// TransposeLayer reverses the runes inside consecutive blocks of BlockSize,
// keeping block order. The final block may be shorter. Because the length
// never changes, block boundaries line up again on decode and the layer is its
// own inverse.
type TransposeLayer struct {
	BlockSize int
}

func (TransposeLayer) Kind() LayerKind { return LayerTranspose }

func (l TransposeLayer) Encode(text string) string { return transposeBlocks(text, l.size()) }

func (l TransposeLayer) Decode(text string) string { return transposeBlocks(text, l.size()) }

func (l TransposeLayer) String() string { return fmt.Sprintf("transpose(%d)", l.size()) }

func (l TransposeLayer) size() int {
	if l.BlockSize < 1 {
		return DefaultBlockSize
	}
	return l.BlockSize
}

// ShiftLetters moves each ASCII letter by n places modulo 26, preserving case.
// Other characters are copied unchanged.
func ShiftLetters(text string, n int) string {
	n = mod(n, 26)
	if n == 0 {
		return text
	}
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			runes[i] = 'a' + rune(mod(int(r-'a')+n, 26))
		case r >= 'A' && r <= 'Z':
			runes[i] = 'A' + rune(mod(int(r-'A')+n, 26))
		}
	}
	return string(runes)
}

func reverseRunes(text string) string {
	runes := []rune(text)
	slices.Reverse(runes)
	return string(runes)
}

func transposeBlocks(text string, size int) string {
	runes := []rune(text)
	for start := 0; start < len(runes); start += size {
		end := min(start+size, len(runes))
		slices.Reverse(runes[start:end])
	}
	return string(runes)
}
