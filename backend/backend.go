// Package backend implements the renderer-selection handoff: a registry
// of model factories that turn a resolved (coordinate format, model type,
// depth, render depth) tuple into a renderer handle installed on a scene
// state.
//
// The core state and parsing packages know nothing about model geometry;
// this registry is the only place a state is shared outward into model
// construction. Factories are registered via Register, typically from
// init() functions in model packages, and are selected via Select.
package backend

import (
	"errors"

	"github.com/ndscene/ndscene"
)

// Common backend errors.
var (
	// ErrNoModel is returned when output is requested before any
	// successful renderer selection.
	ErrNoModel = errors.New("backend: no model selected")
)

// Output identifies the output capability a renderer is built for.
// It is a configuration value, not a type hierarchy: the same factory
// serves both capabilities.
type Output int

const (
	// Vector renderers produce an embeddable vector document (SVG).
	Vector Output = iota
	// Interactive renderers draw into an interactive surface.
	Interactive
)

// String returns a human-readable name for the output capability.
func (o Output) String() string {
	switch o {
	case Vector:
		return "vector"
	case Interactive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Options carries the resolved selection tuple into a factory.
type Options struct {
	// Format is the vector format the model is evaluated in,
	// e.g. "cartesian" or "polar".
	Format string
	// Depth is the model's intrinsic dimension.
	Depth int
	// RenderDepth is the dimension the model is embedded in when
	// rendered. At least Depth.
	RenderDepth int
	// Output is the capability the renderer must provide.
	Output Output
}

// ModelFactory builds a renderer bound to the given state, or returns nil
// when the factory cannot serve the requested format/depth combination.
type ModelFactory func(s *ndscene.State, opts Options) ndscene.Renderer
