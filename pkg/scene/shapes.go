package scene

import (
	"errors"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

// ErrCannotOutline is returned by Drawable.Outline when the node's
// geometry cannot be reduced to fill paths (non-union boolean operations,
// nested non-drawable children). Flatten treats it as a structural failure.
var ErrCannotOutline = errors.New("node geometry cannot be outlined")

// stroke is the stroke state shared by the drawable shape types.
type stroke struct {
	weight  float64
	enabled bool
}

func (s *stroke) StrokeWeight() float64 { return s.weight }

func (s *stroke) SetStrokeWeight(w float64) error {
	if w <= 0 {
		return errors.New("stroke weight must be positive")
	}
	s.weight = w
	return nil
}

// outlineStroke converts fill geometry into stroke-outline geometry.
func (s *stroke) outlineStroke(p geom.Path) geom.Path {
	var out geom.Path
	for _, pl := range p.Flatten() {
		out = append(out, geom.Outline(pl, s.weight)...)
	}
	return out
}

// =============================================================================
// Vector
// =============================================================================

// Vector is a freeform path node. It may carry fill geometry, stroke
// geometry, or both.
type Vector struct {
	base
	stroke
	Data   geom.Path
	Filled bool
}

// NewVector creates a vector node sized to its path bounds.
func NewVector(name string, data geom.Path) *Vector {
	b := data.Bounds()
	v := &Vector{base: newBase(name, b.Width(), b.Height()), Data: data, Filled: true}
	return v
}

func (v *Vector) Type() Type { return TypeVector }

func (v *Vector) Clone() Node {
	nv := *v
	nv.base = v.cloneBase()
	nv.Data = append(geom.Path(nil), v.Data...)
	return &nv
}

func (v *Vector) Rescale(factor float64) {
	v.rescaleBase(factor)
	v.Data = v.Data.Transformed(geom.ScaleBy(factor))
	if v.enabled {
		v.weight *= factor
	}
}

func (v *Vector) Outline() (geom.Path, error) {
	var out geom.Path
	if v.Filled {
		out = append(out, v.Data...)
	}
	if v.enabled && v.weight > 0 {
		out = append(out, v.outlineStroke(v.Data)...)
	}
	if len(out) == 0 {
		return nil, ErrCannotOutline
	}
	return out, nil
}

// EnableStroke turns on stroking with the given weight.
func (v *Vector) EnableStroke(weight float64) {
	v.enabled = true
	v.weight = weight
}

// =============================================================================
// Rectangle
// =============================================================================

// Rectangle is a filled rectangle with an optional corner radius.
type Rectangle struct {
	base
	stroke
	CornerRadius float64
	Filled       bool
}

// NewRectangle creates a filled rectangle node.
func NewRectangle(name string, w, h float64) *Rectangle {
	return &Rectangle{base: newBase(name, w, h), Filled: true}
}

func (r *Rectangle) Type() Type { return TypeRectangle }

func (r *Rectangle) Clone() Node {
	nr := *r
	nr.base = r.cloneBase()
	return &nr
}

func (r *Rectangle) Rescale(factor float64) {
	r.rescaleBase(factor)
	r.CornerRadius *= factor
	if r.enabled {
		r.weight *= factor
	}
}

func (r *Rectangle) Outline() (geom.Path, error) {
	shape := geom.RectPath(r.w, r.h, r.CornerRadius)
	var out geom.Path
	if r.Filled {
		out = append(out, shape...)
	}
	if r.enabled && r.weight > 0 {
		out = append(out, r.outlineStroke(shape)...)
	}
	if len(out) == 0 {
		return nil, ErrCannotOutline
	}
	return out, nil
}

// EnableStroke turns on stroking with the given weight.
func (r *Rectangle) EnableStroke(weight float64) {
	r.enabled = true
	r.weight = weight
}

// =============================================================================
// Ellipse
// =============================================================================

// Ellipse is an ellipse inscribed in the node's box.
type Ellipse struct {
	base
	stroke
	Filled bool
}

// NewEllipse creates a filled ellipse node.
func NewEllipse(name string, w, h float64) *Ellipse {
	return &Ellipse{base: newBase(name, w, h), Filled: true}
}

func (e *Ellipse) Type() Type { return TypeEllipse }

func (e *Ellipse) Clone() Node {
	ne := *e
	ne.base = e.cloneBase()
	return &ne
}

func (e *Ellipse) Rescale(factor float64) {
	e.rescaleBase(factor)
	if e.enabled {
		e.weight *= factor
	}
}

func (e *Ellipse) Outline() (geom.Path, error) {
	shape := geom.EllipsePath(e.w, e.h)
	var out geom.Path
	if e.Filled {
		out = append(out, shape...)
	}
	if e.enabled && e.weight > 0 {
		out = append(out, e.outlineStroke(shape)...)
	}
	if len(out) == 0 {
		return nil, ErrCannotOutline
	}
	return out, nil
}

// EnableStroke turns on stroking with the given weight.
func (e *Ellipse) EnableStroke(weight float64) {
	e.enabled = true
	e.weight = weight
}

// =============================================================================
// Polygon and Star
// =============================================================================

// Polygon is a regular polygon inscribed in the node's box.
type Polygon struct {
	base
	stroke
	PointCount int
	Filled     bool
}

// NewPolygon creates a filled regular polygon node.
func NewPolygon(name string, w, h float64, points int) *Polygon {
	return &Polygon{base: newBase(name, w, h), PointCount: points, Filled: true}
}

func (p *Polygon) Type() Type { return TypePolygon }

func (p *Polygon) Clone() Node {
	np := *p
	np.base = p.cloneBase()
	return &np
}

func (p *Polygon) Rescale(factor float64) {
	p.rescaleBase(factor)
	if p.enabled {
		p.weight *= factor
	}
}

func (p *Polygon) Outline() (geom.Path, error) {
	shape := geom.PolygonPath(p.w, p.h, p.PointCount)
	var out geom.Path
	if p.Filled {
		out = append(out, shape...)
	}
	if p.enabled && p.weight > 0 {
		out = append(out, p.outlineStroke(shape)...)
	}
	if len(out) == 0 {
		return nil, ErrCannotOutline
	}
	return out, nil
}

// Star is a star shape inscribed in the node's box.
type Star struct {
	base
	stroke
	PointCount int
	InnerRatio float64
	Filled     bool
}

// NewStar creates a filled star node.
func NewStar(name string, w, h float64, points int, innerRatio float64) *Star {
	return &Star{base: newBase(name, w, h), PointCount: points, InnerRatio: innerRatio, Filled: true}
}

func (s *Star) Type() Type { return TypeStar }

func (s *Star) Clone() Node {
	ns := *s
	ns.base = s.cloneBase()
	return &ns
}

func (s *Star) Rescale(factor float64) {
	s.rescaleBase(factor)
	if s.enabled {
		s.weight *= factor
	}
}

func (s *Star) Outline() (geom.Path, error) {
	shape := geom.StarPath(s.w, s.h, s.PointCount, s.InnerRatio)
	var out geom.Path
	if s.Filled {
		out = append(out, shape...)
	}
	if s.enabled && s.weight > 0 {
		out = append(out, s.outlineStroke(shape)...)
	}
	if len(out) == 0 {
		return nil, ErrCannotOutline
	}
	return out, nil
}

// =============================================================================
// Line
// =============================================================================

// Line is a straight stroked segment. Lines have zero height and are
// always stroked, never filled.
type Line struct {
	base
	stroke
}

// NewLine creates a horizontal line node of the given length.
func NewLine(name string, length, weight float64) *Line {
	l := &Line{base: newBase(name, length, 0)}
	l.enabled = true
	l.weight = weight
	return l
}

func (l *Line) Type() Type { return TypeLine }

func (l *Line) Clone() Node {
	nl := *l
	nl.base = l.cloneBase()
	return &nl
}

func (l *Line) Rescale(factor float64) {
	l.rescaleBase(factor)
	l.weight *= factor
}

func (l *Line) Outline() (geom.Path, error) {
	if l.weight <= 0 {
		return nil, ErrCannotOutline
	}
	return l.outlineStroke(geom.LinePath(l.w)), nil
}

// =============================================================================
// Boolean operation
// =============================================================================

// BoolOp identifies a boolean combination mode.
type BoolOp string

// Boolean combination modes.
const (
	BoolUnion     BoolOp = "union"
	BoolSubtract  BoolOp = "subtract"
	BoolIntersect BoolOp = "intersect"
	BoolExclude   BoolOp = "exclude"
)

// BooleanOperation combines drawable children. Only union reduces to fill
// paths by subpath concatenation under the nonzero winding rule; the other
// modes report ErrCannotOutline and leave flattening to the degraded path.
type BooleanOperation struct {
	base
	Op       BoolOp
	children []Node
}

// NewBooleanOperation creates a boolean node over the given children,
// sized to their combined bounds.
func NewBooleanOperation(name string, op BoolOp, children ...Node) *BooleanOperation {
	var r geom.Rect
	for _, c := range children {
		r = r.Union(Bounds(c))
	}
	b := &BooleanOperation{base: newBase(name, r.Width(), r.Height()), Op: op, children: children}
	return b
}

func (b *BooleanOperation) Type() Type { return TypeBooleanOp }

func (b *BooleanOperation) Children() []Node   { return b.children }
func (b *BooleanOperation) AppendChild(n Node) { b.children = append(b.children, n) }
func (b *BooleanOperation) RemoveAllChildren() { b.children = nil }

func (b *BooleanOperation) Clone() Node {
	nb := *b
	nb.base = b.cloneBase()
	nb.children = make([]Node, len(b.children))
	for i, c := range b.children {
		nb.children[i] = c.Clone()
	}
	return &nb
}

func (b *BooleanOperation) Rescale(factor float64) {
	b.rescaleBase(factor)
	for _, c := range b.children {
		if r, ok := c.(Rescaler); ok {
			r.Rescale(factor)
		}
	}
}

func (b *BooleanOperation) Outline() (geom.Path, error) {
	if b.Op != BoolUnion {
		return nil, ErrCannotOutline
	}
	var out geom.Path
	for _, c := range b.children {
		d, ok := c.(Drawable)
		if !ok {
			return nil, ErrCannotOutline
		}
		p, err := d.Outline()
		if err != nil {
			return nil, err
		}
		off := c.Position()
		out = append(out, p.Transformed(geom.Translate(off.X, off.Y))...)
	}
	if len(out) == 0 {
		return nil, ErrCannotOutline
	}
	return out, nil
}

// =============================================================================
// Text
// =============================================================================

// Text is a non-drawable leaf. It exists so that validation has node types
// to reject; the pipeline never produces text.
type Text struct {
	base
	Characters string
}

// NewText creates a text node.
func NewText(name, characters string, w, h float64) *Text {
	return &Text{base: newBase(name, w, h), Characters: characters}
}

func (t *Text) Type() Type { return TypeText }

func (t *Text) Clone() Node {
	nt := *t
	nt.base = t.cloneBase()
	return &nt
}
