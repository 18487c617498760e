package engine

import (
	"errors"

	"github.com/danieljhkim/obscura/internal/options"
	"github.com/danieljhkim/obscura/internal/recipes"
)

var (
	// ErrUnsupportedMethod indicates an unknown method name.
	ErrUnsupportedMethod = options.ErrUnsupportedMethod

	// ErrMissingKeyword indicates polyalphabetic options without a keyword.
	ErrMissingKeyword = options.ErrMissingKeyword

	// ErrUnknownLayer indicates a layer of unknown type.
	ErrUnknownLayer = options.ErrUnknownLayer

	// ErrRecipeNotFound indicates a recipe does not exist.
	ErrRecipeNotFound = recipes.ErrNotFound

	// ErrRecipeExists indicates a save would overwrite a recipe without Force.
	ErrRecipeExists = errors.New("recipe already exists")

	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrRoundTrip indicates a verified transform did not invert.
	ErrRoundTrip = errors.New("round trip mismatch")
)
