package options

import (
	"errors"

	"github.com/danieljhkim/obscura/internal/cipher"
)

var (
	// ErrUnsupportedMethod indicates an unknown top-level method name.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrMissingKeyword indicates polyalphabetic options without a keyword.
	ErrMissingKeyword = cipher.ErrMissingKeyword

	// ErrUnknownLayer indicates a layer whose type is not table, shift,
	// reverse or transpose.
	ErrUnknownLayer = errors.New("unknown layer type")

	// ErrInvalidLayer indicates a malformed layer description.
	ErrInvalidLayer = errors.New("invalid layer")
)
