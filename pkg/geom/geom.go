// Package geom provides the small amount of 2D geometry the icon pipeline
// needs: points, rectangles, uniform transforms, path command lists, and
// stroke outlining. It is deliberately not a general vector-graphics engine;
// paths support exactly the operations the scene package performs on them
// (transform into a parent space, compute bounds, flatten to polylines, and
// convert strokes to fill geometry).
package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns p normalized to length 1. The zero vector is returned
// unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Rect is an axis-aligned rectangle in min/max form.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle acts as the identity.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		MinX: math.Min(r.MinX, s.MinX),
		MinY: math.Min(r.MinY, s.MinY),
		MaxX: math.Max(r.MaxX, s.MaxX),
		MaxY: math.Max(r.MaxY, s.MaxY),
	}
}

// Expand grows r by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.MinX - d, r.MinY - d, r.MaxX + d, r.MaxY + d}
}

// RectAt builds a Rect from origin and size.
func RectAt(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// Transform is a uniform scale followed by a translation. The pipeline
// never shears or rotates, so this is all the scene package needs.
type Transform struct {
	Scale  float64
	TX, TY float64
}

// Identity is the no-op transform.
var Identity = Transform{Scale: 1}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{p.X*t.Scale + t.TX, p.Y*t.Scale + t.TY}
}

// Then returns the transform equivalent to applying t first, then u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		Scale: t.Scale * u.Scale,
		TX:    t.TX*u.Scale + u.TX,
		TY:    t.TY*u.Scale + u.TY,
	}
}

// Translate returns a pure translation transform.
func Translate(dx, dy float64) Transform {
	return Transform{Scale: 1, TX: dx, TY: dy}
}

// ScaleBy returns a pure uniform scale transform.
func ScaleBy(s float64) Transform {
	return Transform{Scale: s}
}
