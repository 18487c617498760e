package cipher

import (
	"slices"
	"strings"
	"sync"
)

var (
	defaultPipeline     Pipeline
	defaultPipelineOnce sync.Once
)

// Pipeline is an ordered list of layers. Encoding applies the layers in order;
// decoding applies them in reverse order, each with its inverse. An empty
// pipeline stands for DefaultPipeline on both paths.
type Pipeline []Layer

// Observer receives the working string after each layer runs. Step is the
// layer's index in the pipeline, so decode reports steps in descending order.
type Observer func(step int, layer Layer, output string)

// DefaultPipeline returns a copy of the built-in pipeline:
// shift(+3), table(fibonacci, base 2, default tables), reverse.
func DefaultPipeline() Pipeline {
	defaultPipelineOnce.Do(func() {
		defaultPipeline = Pipeline{
			ShiftLayer{Shift: 3},
			TableLayer{MultiTable{
				Tables:    DefaultTableSet(),
				Pattern:   PatternFibonacci,
				BaseShift: 2,
			}},
			ReverseLayer{},
		}
	})
	return slices.Clone(defaultPipeline)
}

// Encode runs text through every layer in order.
func (p Pipeline) Encode(text string) string {
	return p.EncodeObserved(text, nil)
}

// Decode inverts Encode.
func (p Pipeline) Decode(text string) string {
	return p.DecodeObserved(text, nil)
}

// EncodeObserved is Encode with a per-layer callback. A nil observer is
// allowed.
func (p Pipeline) EncodeObserved(text string, observe Observer) string {
	layers := p.resolve()
	for i, layer := range layers {
		if layer == nil {
			continue
		}
		text = layer.Encode(text)
		if observe != nil {
			observe(i, layer, text)
		}
	}
	return text
}

// DecodeObserved is Decode with a per-layer callback. A nil observer is
// allowed.
func (p Pipeline) DecodeObserved(text string, observe Observer) string {
	layers := p.resolve()
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		if layer == nil {
			continue
		}
		text = layer.Decode(text)
		if observe != nil {
			observe(i, layer, text)
		}
	}
	return text
}

// String describes the layers in order.
func (p Pipeline) String() string {
	layers := p.resolve()
	parts := make([]string, 0, len(layers))
	for _, layer := range layers {
		if layer != nil {
			parts = append(parts, layer.String())
		}
	}
	return strings.Join(parts, " -> ")
}

func (p Pipeline) resolve() Pipeline {
	if len(p) == 0 {
		return DefaultPipeline()
	}
	return p
}
