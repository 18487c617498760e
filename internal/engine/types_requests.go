package engine

import "github.com/danieljhkim/obscura/internal/options"

// EncodeRequest represents a request to obscure text.
type EncodeRequest struct {
	// Text is the input to obscure
	Text string

	// Options configures the transform. Nil means use Recipe, then the
	// settings' default recipe, then the settings' default method.
	Options *options.Options

	// Recipe is an optional saved recipe to use when Options is nil
	Recipe string

	// Verify decodes the output again and fails unless it matches Text
	Verify bool

	// Trace records the output of each pipeline layer (advanced only)
	Trace bool
}

// DecodeRequest represents a request to reveal text.
type DecodeRequest struct {
	// Text is the obscured input
	Text string

	// Options configures the transform, resolved as for EncodeRequest
	Options *options.Options

	// Recipe is an optional saved recipe to use when Options is nil
	Recipe string

	// Verify encodes the output again and fails unless it matches Text
	Verify bool

	// Trace records the output of each pipeline layer (advanced only)
	Trace bool
}

// SaveRecipeRequest represents a request to save options under a name.
type SaveRecipeRequest struct {
	// Name is the recipe name
	Name string

	// Description is an optional description
	Description string

	// Options are the options to save
	Options options.Options

	// Force allows replacing an existing recipe
	Force bool
}
