package ndscene

import (
	"strconv"
	"strings"
)

// Namespace is the XML namespace canonical metadata fragments live in.
// Hosts embedding a fragment must bind it, e.g.
//
//	<metadata xmlns:t="http://ef.gy/2012/topologic">...</metadata>
const Namespace = "http://ef.gy/2012/topologic"

// Fragment emits the canonical metadata fragment fully describing the
// current state. Per-dimension fragments come first, highest dimension
// down to the base, followed by the shared base fragment (coordinate
// mode, model descriptor, options, precision, colors and generic
// parameters).
//
// The fragment is re-ingestible by the document package: parsing it into
// a fresh default State reproduces this one field for field.
func (s *State) Fragment() string {
	var b strings.Builder
	for d := s.MaxDepth(); d >= MinDepth; d-- {
		l := s.Layer(d)
		writeCamera(&b, s.Mode, l)
		writeTransform(&b, l)
	}
	s.writeBase(&b)
	return b.String()
}

// writeCamera emits one per-dimension camera element. In polar mode the
// fields are radius and theta-1..theta-(dim-1); in cartesian mode one
// field per axis, named from the shared axis table.
func writeCamera(b *strings.Builder, mode CoordinateMode, l *Layer) {
	b.WriteString("<t:camera")
	if mode == Polar {
		attrNum(b, "radius", l.PolarPosition.AtVec(0))
		for i := 1; i < l.Dim(); i++ {
			attrNum(b, ThetaName(i), l.PolarPosition.AtVec(i))
		}
	} else {
		for i := 0; i < l.Dim(); i++ {
			attrNum(b, AxisName(i), l.CartesianPosition.AtVec(i))
		}
	}
	b.WriteString("/>")
}

// writeTransform emits one per-dimension transformation element carrying
// all (dim+1)² cells as e<i>-<j> attributes, row-major.
func writeTransform(b *strings.Builder, l *Layer) {
	n := l.Dim() + 1
	b.WriteString("<t:transformation")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			attrNum(b, "e"+strconv.Itoa(i)+"-"+strconv.Itoa(j), l.Transform.At(i, j))
		}
	}
	b.WriteString("/>")
}

// writeBase emits the shared base fragment.
func (s *State) writeBase(b *strings.Builder) {
	b.WriteString("<t:camera")
	attrStr(b, "mode", s.Mode.String())
	b.WriteString("/>")

	if s.Model != nil {
		b.WriteString("<t:model")
		attrStr(b, "type", s.Model.ID())
		attrInt(b, "depth", s.Model.Depth())
		attrInt(b, "render-depth", s.Model.RenderDepth())
		b.WriteString("/>")
	}

	b.WriteString("<t:options")
	attrNum(b, "radius", s.Parameters.Radius)
	attrNum(b, "minor-radius", s.Parameters.MinorRadius)
	attrNum(b, "constant", s.Parameters.Constant)
	attrStr(b, "id-prefix", s.IDPrefix)
	b.WriteString("/>")

	b.WriteString("<t:precision")
	attrNum(b, "polar", s.Parameters.Precision)
	attrNum(b, "export-multiplier", s.ExportMultiplier)
	b.WriteString("/>")

	writeColor(b, "background", s.Colors.Background)
	writeColor(b, "wireframe", s.Colors.Wireframe)
	writeColor(b, "surface", s.Colors.Surface)

	b.WriteString("<t:ifs")
	attrInt(b, "iterations", s.Parameters.Iterations)
	attrInt(b, "seed", s.Parameters.Seed)
	attrInt(b, "functions", s.Parameters.Functions)
	attrStr(b, "pre-rotate", yesNo(s.Parameters.PreRotate))
	attrStr(b, "post-rotate", yesNo(s.Parameters.PostRotate))
	b.WriteString("/>")

	b.WriteString("<t:flame")
	attrInt(b, "coefficients", s.Parameters.FlameCoefficients)
	b.WriteString("/>")
}

// writeColor emits one colour-<name> element with its four channels.
func writeColor(b *strings.Builder, name string, c RGBA) {
	b.WriteString("<t:colour-" + name)
	attrNum(b, "red", c.R)
	attrNum(b, "green", c.G)
	attrNum(b, "blue", c.B)
	attrNum(b, "alpha", c.A)
	b.WriteString("/>")
}

// attrNum writes a numeric attribute using shortest-roundtrip formatting
// so that serialize→parse is exact.
func attrNum(b *strings.Builder, name string, v float64) {
	b.WriteString(" " + name + "='" + strconv.FormatFloat(v, 'g', -1, 64) + "'")
}

// attrInt writes an integer attribute.
func attrInt(b *strings.Builder, name string, v int) {
	b.WriteString(" " + name + "='" + strconv.Itoa(v) + "'")
}

// attrStr writes a string attribute, escaped for single-quoted XML.
func attrStr(b *strings.Builder, name, v string) {
	b.WriteString(" " + name + "='" + escapeAttr(v) + "'")
}

// escapeAttr escapes the characters that cannot appear verbatim inside a
// single-quoted attribute value.
func escapeAttr(v string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", "'", "&apos;")
	return r.Replace(v)
}

// yesNo renders a boolean the way attribute documents spell it.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
