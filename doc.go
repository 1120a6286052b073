// Package ndscene maintains the viewing and geometry state of an
// N-dimensional scene and keeps that state synchronized with external
// document formats.
//
// # Overview
//
// A State is a chain of per-dimension layers, one for every dimension from
// 2 up to a maximum fixed at construction time. Each layer holds a camera
// position (in both cartesian and polar form), a camera target, an affine
// transform and a perspective projection for that dimension. Fields shared
// by every dimension — the coordinate mode, the color scheme, the model
// parameters and the active model handle — live once on the State itself.
//
// # Quick Start
//
//	import "github.com/ndscene/ndscene"
//
//	// A scene state good for up to 4 dimensions.
//	s := ndscene.New(4)
//
//	// Point the 4D camera somewhere and recompute projections.
//	s.Mode = ndscene.Cartesian
//	s.Layer(4).CartesianPosition.SetVec(3, 2)
//	s.UpdateMatrix()
//
//	// Emit the canonical metadata fragment describing the state.
//	fmt.Println(s.Fragment())
//
// # Documents
//
// The metadata fragment emitted by State.Fragment is re-ingestible: the
// document package parses it (or any attribute or structured document
// containing the same elements) back into a State. Round-trips are exact.
//
// # Architecture
//
// The library is organized into:
//   - Root package: state chain, layers, projection, colors, parameters,
//     axis naming and the metadata serializer.
//   - document/: tolerant parsers for attribute (XML) and structured
//     (JSON/YAML) documents.
//   - backend/: the model factory registry and renderer-selection handoff.
//
// # Logging
//
// ndscene produces no log output by default. Call SetLogger to receive
// warnings about skipped malformed document fields.
package ndscene
