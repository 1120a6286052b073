package backend

import (
	"github.com/ndscene/ndscene"
)

// Select resolves the (format, model, depth, renderDepth) tuple against
// the registry and, on success, replaces the state's active model handle
// with a renderer built by the matching factory. On failure — no factory
// registered for the model type, or the factory declines the format/depth
// combination — the state is left unchanged and Select reports false.
//
// This is the renderer-selection handoff: the only operation that shares
// a State outward into model construction.
func Select(s *ndscene.State, format, model string, depth, renderDepth int) bool {
	registryMu.RLock()
	factory, ok := factories[model]
	out := output
	registryMu.RUnlock()
	if !ok {
		ndscene.Logger().Debug("backend: no factory registered", "model", model)
		return false
	}

	r := factory(s, Options{
		Format:      format,
		Depth:       depth,
		RenderDepth: renderDepth,
		Output:      out,
	})
	if r == nil {
		ndscene.Logger().Debug("backend: factory declined",
			"model", model, "format", format, "depth", depth, "renderDepth", renderDepth)
		return false
	}

	s.SetModel(r)
	return true
}
