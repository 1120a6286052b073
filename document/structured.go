package document

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ndscene/ndscene"
	"github.com/ndscene/ndscene/backend"
)

// ErrNotMapping is returned when a structured document's top-level value
// is not a mapping.
var ErrNotMapping = errors.New("document: top-level value is not a mapping")

// Structured is a parsed structured value document. Fields are keyed by
// name; camera and transform data are positional arrays matched to a
// dimension by length. A nil Structured (the result of a failed parse)
// fails every operation without touching state.
type Structured struct {
	root map[string]any
}

// ParseStructured decodes a structured value document. YAML is a superset
// of JSON, so one decode path accepts both spellings. A decodable
// document with a mapping at the top level is the single validity gate
// for all subsequent operations.
func ParseStructured(data []byte) (*Structured, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("document: malformed structured document: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotMapping
	}
	return &Structured{root: m}, nil
}

// Apply mutates the state from the document. The coordinate mode is
// resolved once from the polar field before the per-dimension descent and
// decides which camera representation positional entries write into.
// Fields absent from the document retain their prior values; entries of
// the wrong length or type are skipped. Returns false without touching
// state only when the document failed to parse.
func (d *Structured) Apply(s *ndscene.State) bool {
	if d == nil {
		return false
	}

	polar := s.Mode == ndscene.Polar
	if v, present := d.root["polar"]; present {
		if b, ok := boolean(v); ok {
			polar = b
			s.Mode = ndscene.Cartesian
			if polar {
				s.Mode = ndscene.Polar
			}
		} else {
			warnField("polar", v)
		}
	}

	for dim := s.MaxDepth(); dim >= ndscene.MinDepth; dim-- {
		d.applyDimension(s.Layer(dim), polar)
	}
	d.applyBase(s)
	return true
}

// applyDimension applies camera rows and transform arrays matching one
// dimension. A camera row matches when its length equals the dimension; a
// transform array when its length equals (dim+1)², read row-major.
// Entries apply in document order, last value winning per cell.
func (d *Structured) applyDimension(l *ndscene.Layer, polar bool) {
	dim := l.Dim()

	if arr, ok := d.root["camera"].([]any); ok {
		for _, c := range arr {
			row, ok := c.([]any)
			if !ok || len(row) != dim {
				continue
			}
			for i, cell := range row {
				v, ok := number(cell)
				if !ok {
					warnField("camera", cell)
					continue
				}
				if polar {
					l.PolarPosition.SetVec(i, v)
				} else {
					l.CartesianPosition.SetVec(i, v)
				}
			}
		}
	}

	n := dim + 1
	if arr, ok := d.root["transformation"].([]any); ok {
		for _, t := range arr {
			row, ok := t.([]any)
			if !ok || len(row) != n*n {
				continue
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if v, ok := number(row[i*n+j]); ok {
						l.Transform.Set(i, j, v)
					} else {
						warnField("transformation", row[i*n+j])
					}
				}
			}
		}
	}
}

// applyBase applies the shared fields read once at the base dimension.
func (d *Structured) applyBase(s *ndscene.State) {
	d.floatField("radius", &s.Parameters.Radius)
	d.floatField("minorRadius", &s.Parameters.MinorRadius)
	d.floatField("constant", &s.Parameters.Constant)
	d.floatField("precision", &s.Parameters.Precision)

	d.intField("iterations", &s.Parameters.Iterations)
	d.intField("seed", &s.Parameters.Seed)
	d.intField("functions", &s.Parameters.Functions)
	d.intField("flameCoefficients", &s.Parameters.FlameCoefficients)

	d.boolField("preRotate", &s.Parameters.PreRotate)
	d.boolField("postRotate", &s.Parameters.PostRotate)

	d.colorField("background", &s.Colors.Background)
	d.colorField("wireframe", &s.Colors.Wireframe)
	d.colorField("surface", &s.Colors.Surface)
}

// floatField applies a named numeric field when present and numeric.
func (d *Structured) floatField(name string, dst *float64) {
	v, present := d.root[name]
	if !present {
		return
	}
	if n, ok := number(v); ok {
		*dst = n
	} else {
		warnField(name, v)
	}
}

// intField applies a named integer field when present and numeric.
func (d *Structured) intField(name string, dst *int) {
	v, present := d.root[name]
	if !present {
		return
	}
	if n, ok := number(v); ok {
		*dst = int(n)
	} else {
		warnField(name, v)
	}
}

// boolField applies a named boolean field when present and boolean.
func (d *Structured) boolField(name string, dst *bool) {
	v, present := d.root[name]
	if !present {
		return
	}
	if b, ok := boolean(v); ok {
		*dst = b
	} else {
		warnField(name, v)
	}
}

// colorField applies a named color field. Colors are 5-element
// [label, r, g, b, a] arrays; positions 1 through 4 must all be numeric
// or the whole color is skipped.
func (d *Structured) colorField(name string, dst *ndscene.RGBA) {
	v, present := d.root[name]
	if !present {
		return
	}
	row, ok := v.([]any)
	if !ok || len(row) < 5 {
		warnField(name, v)
		return
	}
	var ch [4]float64
	for i := 0; i < 4; i++ {
		n, ok := number(row[i+1])
		if !ok {
			warnField(name, row[i+1])
			return
		}
		ch[i] = n
	}
	dst.R, dst.G, dst.B, dst.A = ch[0], ch[1], ch[2], ch[3]
}

// ApplyModel resolves the model descriptor from the document and hands it
// to the renderer-selection registry. Absent fields fall back to a
// cartesian 4-dimensional cube; an absent render depth falls back to the
// model depth. Unlike the attribute parser, no legacy render-depth bump
// is applied. State is only modified on a successful handoff.
func (d *Structured) ApplyModel(s *ndscene.State) bool {
	if d == nil {
		return false
	}

	format := "cartesian"
	model := "cube"
	depth := 4

	if v, present := d.root["coordinateFormat"]; present {
		if str, ok := v.(string); ok {
			format = str
		} else {
			warnField("coordinateFormat", v)
		}
	}
	if v, present := d.root["model"]; present {
		if str, ok := v.(string); ok {
			model = str
		} else {
			warnField("model", v)
		}
	}
	if v, present := d.root["depth"]; present {
		if n, ok := number(v); ok {
			depth = int(n)
		} else {
			warnField("depth", v)
		}
	}

	renderDepth := depth
	if v, present := d.root["renderDepth"]; present {
		if n, ok := number(v); ok {
			renderDepth = int(n)
		} else {
			warnField("renderDepth", v)
		}
	}

	return backend.Select(s, format, model, depth, renderDepth)
}
