package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ndscene/ndscene"
	"github.com/ndscene/ndscene/backend"
)

// metadataPrefix is the namespace prefix canonical fragments are emitted
// with. Standalone fragments leave it unbound; the parser accepts it
// either way.
const metadataPrefix = "t"

// xmlElement is one recognized metadata element: its local name and its
// attributes, with namespace declarations stripped so that the
// attribute-count dimension predicate sees only real fields.
type xmlElement struct {
	name  string
	attrs []xml.Attr
}

// attr returns the named attribute's value. Present-but-empty counts as
// absent: every recognized field requires a non-empty value.
func (e *xmlElement) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name && a.Name.Space == "" && a.Value != "" {
			return a.Value, true
		}
	}
	return "", false
}

// Document is a parsed attribute-based markup document, reduced to its
// recognized metadata elements in document order. A nil Document (the
// result of a failed parse) fails every operation without touching state.
type Document struct {
	elems []*xmlElement
}

// ParseXML parses an attribute-based markup document. Well-formedness of
// the whole document is the single validity gate for all subsequent
// operations; beyond that it may contain any amount of unrelated content,
// and only metadata elements are retained. Standalone fragments (multiple
// top-level elements, unbound metadata prefix) are accepted.
func ParseXML(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	doc := &Document{}
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("document: malformed markup: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !inMetadataNamespace(start.Name.Space) {
			continue
		}

		e := &xmlElement{name: start.Name.Local}
		for _, a := range start.Attr {
			if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
				continue
			}
			e.attrs = append(e.attrs, a)
		}
		doc.elems = append(doc.elems, e)
	}
	return doc, nil
}

// inMetadataNamespace reports whether an element namespace belongs to the
// metadata vocabulary: the canonical namespace, the bare canonical prefix
// (unbound in standalone fragments), or no namespace at all.
func inMetadataNamespace(space string) bool {
	return space == ndscene.Namespace || space == metadataPrefix || space == ""
}

// firstAttr returns the value of the named attribute on the first element
// with the given name that carries it non-empty.
func (d *Document) firstAttr(element, attr string) (string, bool) {
	for _, e := range d.elems {
		if e.name != element {
			continue
		}
		if v, ok := e.attr(attr); ok {
			return v, true
		}
	}
	return "", false
}

// Apply mutates the state from the document: coordinate mode first, then
// every dimension from the highest configured down to the base, then the
// shared base fields. Fields absent from the document retain their prior
// values; malformed fields are skipped with a warning. Returns false
// without touching state only when the document failed to parse.
func (d *Document) Apply(s *ndscene.State) bool {
	if d == nil {
		return false
	}

	if v, ok := d.firstAttr("camera", "mode"); ok {
		s.Mode = ndscene.Cartesian
		if v == "polar" {
			s.Mode = ndscene.Polar
		}
	}

	for dim := s.MaxDepth(); dim >= ndscene.MinDepth; dim-- {
		d.applyDimension(s.Layer(dim))
	}
	d.applyBase(s)
	return true
}

// applyDimension applies camera and transform fields matching one
// dimension. Camera elements match when their attribute count equals the
// dimension; transform cell elements when it equals (dim+1)². Matching
// siblings apply in document order, last value winning per field. An
// identity directive, if present, resets the transform before any cell
// values apply.
func (d *Document) applyDimension(l *ndscene.Layer) {
	dim := l.Dim()

	for _, e := range d.elems {
		if e.name != "camera" || len(e.attrs) != dim {
			continue
		}
		for i := 0; i < dim; i++ {
			if i == 0 {
				if raw, ok := e.attr("radius"); ok {
					if v, okv := parseFloat("camera", "radius", raw); okv {
						l.PolarPosition.SetVec(0, v)
					}
					continue
				}
			} else if raw, ok := e.attr(ndscene.ThetaName(i)); ok {
				if v, okv := parseFloat("camera", ndscene.ThetaName(i), raw); okv {
					l.PolarPosition.SetVec(i, v)
				}
				continue
			}
			if raw, ok := e.attr(ndscene.AxisName(i)); ok {
				if v, okv := parseFloat("camera", ndscene.AxisName(i), raw); okv {
					l.CartesianPosition.SetVec(i, v)
				}
			}
		}
	}

	for _, e := range d.elems {
		if e.name != "transformation" {
			continue
		}
		raw, ok := e.attr("depth")
		if !ok {
			continue
		}
		if v, okv := parseInt("transformation", "depth", raw); !okv || v != dim {
			continue
		}
		if m, ok := e.attr("matrix"); ok && m == "identity" {
			l.ResetTransform()
		}
	}

	n := dim + 1
	for _, e := range d.elems {
		if e.name != "transformation" || len(e.attrs) != n*n {
			continue
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				name := "e" + strconv.Itoa(i) + "-" + strconv.Itoa(j)
				raw, ok := e.attr(name)
				if !ok {
					continue
				}
				if v, okv := parseFloat("transformation", name, raw); okv {
					l.Transform.Set(i, j, v)
				}
			}
		}
	}
}

// applyBase applies the shared fields read once at the base dimension.
func (d *Document) applyBase(s *ndscene.State) {
	if raw, ok := d.firstAttr("precision", "polar"); ok {
		if v, okv := parseFloat("precision", "polar", raw); okv {
			s.Parameters.Precision = v
		}
	}
	if raw, ok := d.firstAttr("precision", "export-multiplier"); ok {
		if v, okv := parseFloat("precision", "export-multiplier", raw); okv {
			s.ExportMultiplier = v
		}
	}

	if raw, ok := d.firstAttr("options", "radius"); ok {
		if v, okv := parseFloat("options", "radius", raw); okv {
			s.Parameters.Radius = v
		}
	}
	if raw, ok := d.firstAttr("options", "minor-radius"); ok {
		if v, okv := parseFloat("options", "minor-radius", raw); okv {
			s.Parameters.MinorRadius = v
		}
	}
	if raw, ok := d.firstAttr("options", "constant"); ok {
		if v, okv := parseFloat("options", "constant", raw); okv {
			s.Parameters.Constant = v
		}
	}
	if raw, ok := d.firstAttr("options", "id-prefix"); ok {
		s.IDPrefix = raw
	}

	d.applyColor("background", &s.Colors.Background)
	d.applyColor("wireframe", &s.Colors.Wireframe)
	d.applyColor("surface", &s.Colors.Surface)

	if raw, ok := d.firstAttr("ifs", "iterations"); ok {
		if v, okv := parseInt("ifs", "iterations", raw); okv {
			s.Parameters.Iterations = v
		}
	}
	if raw, ok := d.firstAttr("ifs", "seed"); ok {
		if v, okv := parseInt("ifs", "seed", raw); okv {
			s.Parameters.Seed = v
		}
	}
	if raw, ok := d.firstAttr("ifs", "functions"); ok {
		if v, okv := parseInt("ifs", "functions", raw); okv {
			s.Parameters.Functions = v
		}
	}
	if raw, ok := d.firstAttr("ifs", "pre-rotate"); ok {
		s.Parameters.PreRotate = raw == "yes"
	}
	if raw, ok := d.firstAttr("ifs", "post-rotate"); ok {
		s.Parameters.PostRotate = raw == "yes"
	}
	if raw, ok := d.firstAttr("flame", "coefficients"); ok {
		if v, okv := parseInt("flame", "coefficients", raw); okv {
			s.Parameters.FlameCoefficients = v
		}
	}
}

// applyColor applies one colour element's channels individually, so a
// document may override a single channel.
func (d *Document) applyColor(name string, c *ndscene.RGBA) {
	element := "colour-" + name
	channels := []struct {
		attr string
		dst  *float64
	}{
		{"red", &c.R},
		{"green", &c.G},
		{"blue", &c.B},
		{"alpha", &c.A},
	}
	for _, ch := range channels {
		if raw, ok := d.firstAttr(element, ch.attr); ok {
			if v, okv := parseFloat(element, ch.attr, raw); okv {
				*ch.dst = v
			}
		}
	}
}

// ApplyModel resolves the model descriptor from the document and hands it
// to the renderer-selection registry. The coordinate format defaults to
// "cartesian"; the first model element carrying both type and depth wins.
// A missing or zero render-depth defaults to the model depth, bumped by
// one for the legacy round model types. Returns false when no model
// element resolves or no factory matches; state is only modified on a
// successful handoff.
func (d *Document) ApplyModel(s *ndscene.State) bool {
	if d == nil {
		return false
	}

	format := "cartesian"
	if v, ok := d.firstAttr("coordinates", "format"); ok {
		format = v
	}

	for _, e := range d.elems {
		if e.name != "model" {
			continue
		}
		typ, okT := e.attr("type")
		rawDepth, okD := e.attr("depth")
		if !okT || !okD {
			continue
		}
		depth, ok := parseInt("model", "depth", rawDepth)
		if !ok {
			return false
		}

		renderDepth := 0
		if raw, ok := e.attr("render-depth"); ok {
			if v, okv := parseInt("model", "render-depth", raw); okv {
				renderDepth = v
			}
		}
		if renderDepth == 0 {
			renderDepth = depth
			if legacyRenderDepthBump(typ) {
				renderDepth++
			}
		}

		return backend.Select(s, format, typ, depth, renderDepth)
	}
	return false
}

// legacyRenderDepthBump reports whether a model type historically needs
// one extra render dimension when none is given explicitly. The
// misspelling "klein-bagle" is accepted alongside the corrected name so
// documents saved by older tooling keep working.
func legacyRenderDepthBump(typ string) bool {
	switch typ {
	case "sphere", "moebius-strip", "klein-bottle", "klein-bagle":
		return true
	}
	return false
}
