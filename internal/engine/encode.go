package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/obscura/internal/cipher"
	"github.com/danieljhkim/obscura/internal/options"
)

// Encode obscures req.Text.
// Algorithm steps:
// 1. Resolve options (explicit, recipe, default recipe, settings)
// 2. Build the transform, failing on configuration errors
// 3. Encode, recording layer steps if tracing
// 4. Optionally decode again and compare
func (e *Engine) Encode(ctx context.Context, req *EncodeRequest) (*EncodeResult, error) {
	opts, recipeName, err := e.resolveOptions(ctx, req.Options, req.Recipe)
	if err != nil {
		return nil, err
	}

	t, err := transformFor(opts)
	if err != nil {
		return nil, err
	}

	output, steps := run(t, req.Text, true, req.Trace)
	result := &EncodeResult{
		Output: output,
		Method: opts.Method,
		Recipe: recipeName,
		Steps:  steps,
	}

	if req.Verify || e.settings.Verify {
		if back := t.Decode(output); back != req.Text {
			return nil, fmt.Errorf("%w: %s decoded to %q, want %q", ErrRoundTrip, opts.Method, back, req.Text)
		}
		result.Verified = true
	}

	return result, nil
}

// Decode reveals req.Text. It mirrors Encode; verification re-encodes the
// revealed text and compares it with the input.
func (e *Engine) Decode(ctx context.Context, req *DecodeRequest) (*DecodeResult, error) {
	opts, recipeName, err := e.resolveOptions(ctx, req.Options, req.Recipe)
	if err != nil {
		return nil, err
	}

	t, err := transformFor(opts)
	if err != nil {
		return nil, err
	}

	output, steps := run(t, req.Text, false, req.Trace)
	result := &DecodeResult{
		Output: output,
		Method: opts.Method,
		Recipe: recipeName,
		Steps:  steps,
	}

	if req.Verify || e.settings.Verify {
		if again := t.Encode(output); again != req.Text {
			return nil, fmt.Errorf("%w: %s re-encoded to %q, want %q", ErrRoundTrip, opts.Method, again, req.Text)
		}
		result.Verified = true
	}

	return result, nil
}

// resolveOptions picks the options for a request. Explicit options win and are
// completed from settings; otherwise a named recipe, then the settings'
// default recipe, then the settings' default method.
func (e *Engine) resolveOptions(ctx context.Context, explicit *options.Options, recipeName string) (options.Options, string, error) {
	if explicit != nil {
		return e.applySettings(*explicit), "", nil
	}

	if recipeName == "" {
		recipeName = e.settings.Recipe
	}
	if recipeName != "" {
		recipe, err := e.LoadRecipe(ctx, recipeName)
		if err != nil {
			return options.Options{}, "", err
		}
		return recipe.Options, recipe.Name, nil
	}

	return e.applySettings(options.Options{}), "", nil
}

// run applies t in one direction. Tracing only records steps for layered
// pipelines; other transforms have a single step and return none.
func run(t transform, text string, encode, trace bool) (string, []Step) {
	pipeline, ok := t.(cipher.Pipeline)
	if !trace || !ok {
		if encode {
			return t.Encode(text), nil
		}
		return t.Decode(text), nil
	}

	var steps []Step
	observe := func(i int, layer cipher.Layer, output string) {
		steps = append(steps, Step{Index: i, Layer: layer.String(), Output: output})
	}

	var output string
	if encode {
		output = pipeline.EncodeObserved(text, observe)
	} else {
		output = pipeline.DecodeObserved(text, observe)
	}
	return output, steps
}
