// Package engine provides the core business logic for obscura operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// the cipher packages. It resolves options from explicit requests, saved
// recipes and user settings, routes them to the right transform, and manages
// the recipe store.
//
// Key components:
//   - Obscure/Reveal: Stateless routing by method
//   - Engine: Encode/Decode with recipe resolution, verification and tracing
//   - Recipes: Save, load, list and delete named option sets
package engine

import (
	"github.com/danieljhkim/obscura/internal/clock"
	"github.com/danieljhkim/obscura/internal/config"
	"github.com/danieljhkim/obscura/internal/hash"
	"github.com/danieljhkim/obscura/internal/options"
	"github.com/danieljhkim/obscura/internal/recipes"
)

// Engine orchestrates all obscura operations.
// It is the main API surface called by the CLI.
type Engine struct {
	recipeRepo recipes.RecipeRepo
	hasher     hash.Hasher
	clock      clock.Clock
	settings   config.Settings
}

// New creates a new Engine with the given dependencies.
func New(
	recipeRepo recipes.RecipeRepo,
	hasher hash.Hasher,
	clk clock.Clock,
	settings config.Settings,
) *Engine {
	return &Engine{
		recipeRepo: recipeRepo,
		hasher:     hasher,
		clock:      clk,
		settings:   settings,
	}
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// applySettings fills fields the caller left empty from user settings.
func (e *Engine) applySettings(opts options.Options) options.Options {
	if opts.Method == "" {
		opts.Method = options.Method(e.settings.Method)
	}

	switch opts.Method {
	case options.MethodCaesar:
		if opts.Shift == nil && e.settings.Shift != nil {
			opts.Shift = options.Int(*e.settings.Shift)
		}
	case options.MethodPolyalphabetic:
		if e.settings.Keyword == "" {
			break
		}
		if opts.PolyConfig == nil {
			opts.PolyConfig = &options.PolyConfig{}
		}
		if opts.PolyConfig.Keyword == "" {
			opts.PolyConfig = &options.PolyConfig{
				Keyword: e.settings.Keyword,
				Tables:  opts.PolyConfig.Tables,
			}
		}
	}
	return opts
}
