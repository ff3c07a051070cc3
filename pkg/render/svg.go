package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/darasoba/iconset-builder/pkg/geom"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fill    string
	padding float64
	clipSeq int
}

// WithFill sets the color used for drawable geometry. Defaults to #1a1a1a.
func WithFill(color string) SVGOption { return func(r *svgRenderer) { r.fill = color } }

// WithPadding adds empty space around the rendered subtree.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// RenderSVG renders a scene subtree to a standalone SVG document.
// The viewBox covers the node's bounds plus padding, so the output is
// position-independent regardless of where the node sits in its document.
func RenderSVG(n scene.Node, opts ...SVGOption) []byte {
	r := svgRenderer{fill: "#1a1a1a"}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := n.Size()
	w += 2 * r.padding
	h += 2 * r.padding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(w), num(h), num(w), num(h))

	pos := n.Position()
	r.renderNode(&buf, n, r.padding-pos.X, r.padding-pos.Y)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderNode emits one node translated by (dx, dy) in output space.
func (r *svgRenderer) renderNode(buf *bytes.Buffer, n scene.Node, dx, dy float64) {
	pos := n.Position()
	x := pos.X + dx
	y := pos.Y + dy

	switch t := n.(type) {
	case *scene.Frame:
		r.renderFrame(buf, t, x, y)
	case *scene.Component:
		r.renderFrame(buf, &t.Frame, x, y)
	case *scene.ComponentSet:
		r.renderFrame(buf, &t.Frame, x, y)
	case *scene.Instance:
		r.renderFrame(buf, &t.Frame, x, y)
	case *scene.Group:
		for _, c := range t.Children() {
			r.renderNode(buf, c, x, y)
		}
	case *scene.Text:
		// Text carries no exportable geometry.
	default:
		r.renderDrawable(buf, n, x, y)
	}
}

func (r *svgRenderer) renderFrame(buf *bytes.Buffer, f *scene.Frame, x, y float64) {
	w, h := f.Size()

	for _, p := range f.Fills {
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`+"\n",
			num(x), num(y), num(w), num(h), num(f.CornerRadius), paintColor(p))
	}

	clipID := ""
	if f.Clip {
		r.clipSeq++
		clipID = fmt.Sprintf("clip-%d", r.clipSeq)
		fmt.Fprintf(buf, `  <clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s" rx="%s"/></clipPath>`+"\n",
			clipID, num(x), num(y), num(w), num(h), num(f.CornerRadius))
		fmt.Fprintf(buf, `  <g clip-path="url(#%s)">`+"\n", clipID)
	}

	for _, c := range f.Children() {
		r.renderNode(buf, c, x, y)
	}

	if f.Clip {
		buf.WriteString("  </g>\n")
	}

	if f.StrokePaint != nil {
		dash := ""
		if len(f.DashPattern) > 0 {
			parts := make([]string, len(f.DashPattern))
			for i, d := range f.DashPattern {
				parts[i] = num(d)
			}
			dash = fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
		}
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="none" stroke="%s" stroke-width="%s"%s/>`+"\n",
			num(x), num(y), num(w), num(h), num(f.CornerRadius), paintColor(*f.StrokePaint), num(f.StrokeWeight()), dash)
	}
}

// renderDrawable emits a drawable as a single filled path. Outline geometry
// already folds strokes into fills, so the export matches what flattening
// would have produced.
func (r *svgRenderer) renderDrawable(buf *bytes.Buffer, n scene.Node, x, y float64) {
	d, ok := n.(scene.Drawable)
	if !ok {
		return
	}
	path, err := d.Outline()
	if err != nil || len(path) == 0 {
		return
	}
	path = path.Transformed(geom.Translate(x, y))
	fmt.Fprintf(buf, `  <path d="%s" fill="%s" fill-rule="nonzero"/>`+"\n", path.SVG(), r.fill)
}

// paintColor converts a scene paint to a CSS color.
func paintColor(p scene.Paint) string {
	if p.A >= 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", channel(p.R), channel(p.G), channel(p.B))
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", channel(p.R), channel(p.G), channel(p.B), num(p.A))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return int(v*255 + 0.5)
	}
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
