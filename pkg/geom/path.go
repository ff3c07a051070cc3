package geom

import (
	"fmt"
	"math"
	"strings"
)

// Op identifies a path command.
type Op uint8

// Path commands. CubicTo covers quadratics as well; callers elevate
// quadratic segments before appending them.
const (
	MoveTo Op = iota
	LineTo
	CubicTo
	ClosePath
)

// Cmd is one path command. MoveTo and LineTo use Pts[0]; CubicTo uses all
// three (control, control, end); ClosePath uses none.
type Cmd struct {
	Op  Op
	Pts [3]Point
}

// Path is an ordered command list describing one or more subpaths.
type Path []Cmd

// Move appends a MoveTo command.
func (p *Path) Move(pt Point) { *p = append(*p, Cmd{Op: MoveTo, Pts: [3]Point{pt}}) }

// Line appends a LineTo command.
func (p *Path) Line(pt Point) { *p = append(*p, Cmd{Op: LineTo, Pts: [3]Point{pt}}) }

// Cubic appends a CubicTo command with control points c1, c2 and endpoint end.
func (p *Path) Cubic(c1, c2, end Point) {
	*p = append(*p, Cmd{Op: CubicTo, Pts: [3]Point{c1, c2, end}})
}

// Close appends a ClosePath command.
func (p *Path) Close() { *p = append(*p, Cmd{Op: ClosePath}) }

// Transformed returns a copy of p with t applied to every point.
func (p Path) Transformed(t Transform) Path {
	out := make(Path, len(p))
	for i, c := range p {
		nc := Cmd{Op: c.Op}
		for j, pt := range c.Pts {
			nc.Pts[j] = t.Apply(pt)
		}
		out[i] = nc
	}
	return out
}

// Bounds returns the bounding rectangle of p. Cubic segments contribute
// their control hull, which can overestimate slightly; the pipeline only
// uses bounds for centering and viewport fitting, where the hull is close
// enough.
func (p Path) Bounds() Rect {
	first := true
	var r Rect
	add := func(pt Point) {
		if first {
			r = Rect{pt.X, pt.Y, pt.X, pt.Y}
			first = false
			return
		}
		r.MinX = math.Min(r.MinX, pt.X)
		r.MinY = math.Min(r.MinY, pt.Y)
		r.MaxX = math.Max(r.MaxX, pt.X)
		r.MaxY = math.Max(r.MaxY, pt.Y)
	}
	for _, c := range p {
		switch c.Op {
		case MoveTo, LineTo:
			add(c.Pts[0])
		case CubicTo:
			add(c.Pts[0])
			add(c.Pts[1])
			add(c.Pts[2])
		}
	}
	return r
}

// SVG renders p as an SVG path data string.
func (p Path) SVG() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M%s %s", num(c.Pts[0].X), num(c.Pts[0].Y))
		case LineTo:
			fmt.Fprintf(&b, "L%s %s", num(c.Pts[0].X), num(c.Pts[0].Y))
		case CubicTo:
			fmt.Fprintf(&b, "C%s %s %s %s %s %s",
				num(c.Pts[0].X), num(c.Pts[0].Y),
				num(c.Pts[1].X), num(c.Pts[1].Y),
				num(c.Pts[2].X), num(c.Pts[2].Y))
		case ClosePath:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// num formats a coordinate without trailing zeros.
func num(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

// Polyline is a flattened subpath.
type Polyline struct {
	Pts    []Point
	Closed bool
}

// cubicSteps is the fixed subdivision count for cubic segments during
// flattening. Icons are small; 16 steps keeps the error well under a
// device pixel at typical sizes.
const cubicSteps = 16

// Flatten converts p into polylines, subdividing cubic segments.
func (p Path) Flatten() []Polyline {
	var out []Polyline
	var cur Polyline
	var start, last Point
	flush := func() {
		if len(cur.Pts) > 1 {
			out = append(out, cur)
		}
		cur = Polyline{}
	}
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			flush()
			start = c.Pts[0]
			last = start
			cur.Pts = append(cur.Pts, start)
		case LineTo:
			cur.Pts = append(cur.Pts, c.Pts[0])
			last = c.Pts[0]
		case CubicTo:
			p0 := last
			for i := 1; i <= cubicSteps; i++ {
				t := float64(i) / cubicSteps
				cur.Pts = append(cur.Pts, cubicAt(p0, c.Pts[0], c.Pts[1], c.Pts[2], t))
			}
			last = c.Pts[2]
		case ClosePath:
			cur.Closed = true
			flush()
			last = start
		}
	}
	flush()
	return out
}

// cubicAt evaluates a cubic Bezier at parameter t.
func cubicAt(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}
