package geom

// Stroke-to-fill conversion. Outline offsets a flattened subpath by half
// the stroke width on each side and joins the offsets into fill geometry.
// Joins are mitered with a clamp; caps are butt caps. Icon strokes are
// overwhelmingly straight or gently curved, so this stays visually faithful
// without a full stroker.

// miterLimit clamps the miter scale at sharp joins, matching the SVG
// default of 4.
const miterLimit = 4.0

// Outline converts a stroked polyline into closed fill geometry of the
// given stroke width. Open polylines become a single closed outline; closed
// polylines become an outer ring plus a reversed inner ring, which fills
// correctly under the nonzero winding rule.
func Outline(pl Polyline, width float64) Path {
	if len(pl.Pts) < 2 || width <= 0 {
		return nil
	}
	half := width / 2
	if pl.Closed {
		outer := offsetRing(pl.Pts, half)
		inner := offsetRing(pl.Pts, -half)
		reverse(inner)
		var p Path
		appendRing(&p, outer)
		appendRing(&p, inner)
		return p
	}

	left := offsetOpen(pl.Pts, half)
	right := offsetOpen(pl.Pts, -half)
	reverse(right)
	var p Path
	p.Move(left[0])
	for _, pt := range left[1:] {
		p.Line(pt)
	}
	for _, pt := range right {
		p.Line(pt)
	}
	p.Close()
	return p
}

// offsetOpen offsets an open point chain by d. Endpoints use the adjacent
// segment normal (butt cap); interior points use a clamped miter normal.
func offsetOpen(pts []Point, d float64) []Point {
	n := len(pts)
	out := make([]Point, n)
	for i := range pts {
		var normal Point
		switch i {
		case 0:
			normal = segNormal(pts[0], pts[1])
		case n - 1:
			normal = segNormal(pts[n-2], pts[n-1])
		default:
			normal = miterNormal(pts[i-1], pts[i], pts[i+1])
		}
		out[i] = pts[i].Add(normal.Mul(d))
	}
	return out
}

// offsetRing offsets a closed point ring by d using miter normals
// throughout.
func offsetRing(pts []Point, d float64) []Point {
	n := len(pts)
	// Drop a duplicated closing point so wrap-around indexing is clean.
	if n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
		n--
	}
	out := make([]Point, n)
	for i := range pts {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		out[i] = pts[i].Add(miterNormal(prev, pts[i], next).Mul(d))
	}
	return out
}

// segNormal returns the unit normal of segment a→b.
func segNormal(a, b Point) Point {
	return b.Sub(a).Unit().Perp()
}

// miterNormal returns the miter offset direction at vertex b between
// segments a→b and b→c, scaled so that offsetting by it yields a uniform
// stroke width. The scale is clamped to miterLimit for sharp corners.
func miterNormal(a, b, c Point) Point {
	n1 := segNormal(a, b)
	n2 := segNormal(b, c)
	m := n1.Add(n2).Unit()
	if m == (Point{}) {
		// 180 degree turn: fall back to the incoming normal.
		return n1
	}
	scale := 1 / max(m.Dot(n1), 1/miterLimit)
	if scale > miterLimit {
		scale = miterLimit
	}
	return m.Mul(scale)
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func appendRing(p *Path, pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.Move(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
	p.Close()
}
