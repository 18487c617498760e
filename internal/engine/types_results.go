package engine

import (
	"time"

	"github.com/danieljhkim/obscura/internal/options"
	"github.com/danieljhkim/obscura/internal/recipes"
)

// Step is the working text after one pipeline layer.
type Step struct {
	// Index is the layer's position in the pipeline
	Index int `json:"index"`

	// Layer describes the layer, e.g. "shift(+3)"
	Layer string `json:"layer"`

	// Output is the text after the layer ran
	Output string `json:"output"`
}

// EncodeResult represents the result of obscuring text.
type EncodeResult struct {
	// Output is the obscured text
	Output string `json:"output"`

	// Method is the method that was used
	Method options.Method `json:"method"`

	// Recipe is the recipe that supplied the options, if any
	Recipe string `json:"recipe,omitempty"`

	// Verified is true when the round trip was checked
	Verified bool `json:"verified"`

	// Steps holds the per-layer trace when requested
	Steps []Step `json:"steps,omitempty"`
}

// DecodeResult represents the result of revealing text.
type DecodeResult struct {
	// Output is the revealed text
	Output string `json:"output"`

	// Method is the method that was used
	Method options.Method `json:"method"`

	// Recipe is the recipe that supplied the options, if any
	Recipe string `json:"recipe,omitempty"`

	// Verified is true when the round trip was checked
	Verified bool `json:"verified"`

	// Steps holds the per-layer trace when requested, in decode order
	Steps []Step `json:"steps,omitempty"`
}

// SaveRecipeResult represents the result of saving a recipe.
type SaveRecipeResult struct {
	// Recipe is the recipe as written
	Recipe *recipes.Recipe `json:"recipe"`

	// Created is false when an existing recipe was replaced
	Created bool `json:"created"`
}

// RecipeSummary is a one-line view of a saved recipe.
type RecipeSummary struct {
	Name        string         `json:"name"`
	Method      options.Method `json:"method"`
	Description string         `json:"description,omitempty"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
