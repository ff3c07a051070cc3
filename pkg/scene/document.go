package scene

import (
	"math"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

// Nominal viewport window used when fitting. Matches the default canvas
// window of the editors these documents come from.
const (
	viewportWidth  = 1024.0
	viewportHeight = 768.0
)

// Viewport is the visible canvas window.
type Viewport struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Zoom    float64 `json:"zoom"`
}

// Document is one design file: a flat canvas of top-level nodes, the
// current selection, and the viewport.
type Document struct {
	Name      string
	Schema    int
	Selection []string
	Viewport  Viewport

	children []Node
}

// CurrentSchema is the document schema version this package writes.
const CurrentSchema = 1

// NewDocument creates an empty document.
func NewDocument(name string) *Document {
	return &Document{Name: name, Schema: CurrentSchema, Viewport: Viewport{Zoom: 1}}
}

// Children returns the top-level canvas nodes.
func (d *Document) Children() []Node { return d.children }

// AppendChild adds a node to the canvas.
func (d *Document) AppendChild(n Node) { d.children = append(d.children, n) }

// FindByID returns the node with the given ID anywhere in the document.
func (d *Document) FindByID(id string) (Node, bool) {
	for _, c := range d.children {
		if n, ok := FindByID(c, id); ok {
			return n, true
		}
	}
	return nil, false
}

// SelectedNodes resolves the selection to nodes, preserving selection
// order. IDs that no longer resolve are skipped.
func (d *Document) SelectedNodes() []Node {
	out := make([]Node, 0, len(d.Selection))
	for _, id := range d.Selection {
		if n, ok := d.FindByID(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// Select replaces the selection with the given node IDs.
func (d *Document) Select(ids ...string) {
	d.Selection = append([]string(nil), ids...)
}

// FitViewport centers the viewport on r and zooms so that r fits the
// nominal canvas window with a small margin.
func (d *Document) FitViewport(r geom.Rect) {
	if r.Empty() {
		return
	}
	r = r.Expand(32)
	d.Viewport.CenterX = (r.MinX + r.MaxX) / 2
	d.Viewport.CenterY = (r.MinY + r.MaxY) / 2
	zoom := math.Min(viewportWidth/r.Width(), viewportHeight/r.Height())
	d.Viewport.Zoom = math.Min(math.Max(zoom, 0.02), 4)
}
