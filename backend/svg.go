package backend

import (
	"fmt"
	"strings"

	"github.com/ndscene/ndscene"
)

// SVGDocument wraps the active renderer's vector output in a complete SVG
// document: header, title, the canonical metadata fragment (so the
// document can be re-ingested later), a style block derived from the
// state's color scheme, and the rendered body.
//
// The geometry itself comes entirely from the renderer; this function
// only assembles the host document. When updateMatrix is true the
// renderer recomputes projections before drawing.
func SVGDocument(s *ndscene.State, updateMatrix bool) (string, error) {
	if s.Model == nil {
		return "", ErrNoModel
	}

	body, err := s.Model.Render(updateMatrix)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<?xml version='1.0' encoding='utf-8'?>" +
		"<svg xmlns='http://www.w3.org/2000/svg'" +
		" xmlns:xlink='http://www.w3.org/1999/xlink'" +
		" version='1.1' width='100%' height='100%' viewBox='-1.2 -1.2 2.4 2.4'>")
	b.WriteString("<title>" + s.Model.Name() + "</title>")
	b.WriteString("<metadata xmlns:t='" + ndscene.Namespace + "'>")
	b.WriteString(s.Fragment())
	b.WriteString("</metadata>")

	b.WriteString("<style type='text/css'>svg { background: " +
		cssColor(s.Colors.Background) + "; }" +
		" path#" + s.IDPrefix + "wireframe { stroke-width: 0.002; fill: none; stroke: " +
		cssColor(s.Colors.Wireframe) + "; }" +
		" path { stroke: none; fill: " + cssColor(s.Colors.Surface) + "; }</style>")

	b.WriteString(body)
	b.WriteString("</svg>\n")
	return b.String(), nil
}

// cssColor renders an RGBA color as a CSS rgba() value with percentage
// channels.
func cssColor(c ndscene.RGBA) string {
	return fmt.Sprintf("rgba(%g%%,%g%%,%g%%,%g)", c.R*100, c.G*100, c.B*100, c.A)
}
