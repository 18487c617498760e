package engine

import (
	"fmt"

	"github.com/danieljhkim/obscura/internal/classic"
	"github.com/danieljhkim/obscura/internal/options"
)

// transform is a reversible text mapping.
type transform interface {
	Encode(text string) string
	Decode(text string) string
}

type caesarTransform struct {
	shift int
}

func (c caesarTransform) Encode(text string) string { return classic.Caesar(text, c.shift) }

func (c caesarTransform) Decode(text string) string { return classic.CaesarDecode(text, c.shift) }

// involution is a transform that is its own inverse.
type involution func(string) string

func (f involution) Encode(text string) string { return f(text) }

func (f involution) Decode(text string) string { return f(text) }

// Obscure encodes text with the method and configuration in opts.
func Obscure(text string, opts options.Options) (string, error) {
	t, err := transformFor(opts)
	if err != nil {
		return "", err
	}
	return t.Encode(text), nil
}

// Reveal inverts Obscure for the same opts.
func Reveal(text string, opts options.Options) (string, error) {
	t, err := transformFor(opts)
	if err != nil {
		return "", err
	}
	return t.Decode(text), nil
}

// transformFor selects the transform for opts.Method. Configuration errors
// surface here, before any text is touched.
func transformFor(opts options.Options) (transform, error) {
	switch opts.Method {
	case options.MethodCaesar:
		return caesarTransform{shift: opts.CaesarShift()}, nil
	case options.MethodROT13:
		return involution(classic.ROT13), nil
	case options.MethodMirror:
		return involution(classic.Mirror), nil
	case options.MethodSymbolMap:
		m, err := opts.SymbolMapCipher()
		if err != nil {
			return nil, err
		}
		return m, nil
	case options.MethodMultiTable:
		return opts.MultiTable(), nil
	case options.MethodPolyalphabetic:
		p, err := opts.Polyalphabetic()
		if err != nil {
			return nil, err
		}
		return p, nil
	case options.MethodAdvanced:
		p, err := opts.Pipeline()
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, opts.Method)
	}
}
