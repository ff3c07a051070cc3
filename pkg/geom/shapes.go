package geom

import "math"

// kappa is the cubic Bezier approximation constant for a quarter circle.
const kappa = 0.5522847498307936

// RectPath returns a closed path for a w×h rectangle at the origin with an
// optional corner radius. The radius is clamped to half the shorter side.
func RectPath(w, h, radius float64) Path {
	var p Path
	r := math.Min(radius, math.Min(w, h)/2)
	if r <= 0 {
		p.Move(Point{0, 0})
		p.Line(Point{w, 0})
		p.Line(Point{w, h})
		p.Line(Point{0, h})
		p.Close()
		return p
	}
	k := r * kappa
	p.Move(Point{r, 0})
	p.Line(Point{w - r, 0})
	p.Cubic(Point{w - r + k, 0}, Point{w, r - k}, Point{w, r})
	p.Line(Point{w, h - r})
	p.Cubic(Point{w, h - r + k}, Point{w - r + k, h}, Point{w - r, h})
	p.Line(Point{r, h})
	p.Cubic(Point{r - k, h}, Point{0, h - r + k}, Point{0, h - r})
	p.Line(Point{0, r})
	p.Cubic(Point{0, r - k}, Point{r - k, 0}, Point{r, 0})
	p.Close()
	return p
}

// EllipsePath returns a closed path for an ellipse inscribed in a w×h box
// at the origin, built from four cubic segments.
func EllipsePath(w, h float64) Path {
	rx, ry := w/2, h/2
	cx, cy := rx, ry
	kx, ky := rx*kappa, ry*kappa
	var p Path
	p.Move(Point{cx + rx, cy})
	p.Cubic(Point{cx + rx, cy + ky}, Point{cx + kx, cy + ry}, Point{cx, cy + ry})
	p.Cubic(Point{cx - kx, cy + ry}, Point{cx - rx, cy + ky}, Point{cx - rx, cy})
	p.Cubic(Point{cx - rx, cy - ky}, Point{cx - kx, cy - ry}, Point{cx, cy - ry})
	p.Cubic(Point{cx + kx, cy - ry}, Point{cx + rx, cy - ky}, Point{cx + rx, cy})
	p.Close()
	return p
}

// PolygonPath returns a closed path for a regular polygon with the given
// point count, inscribed in a w×h box at the origin. The first vertex
// points up, matching the usual design-tool convention.
func PolygonPath(w, h float64, count int) Path {
	if count < 3 {
		count = 3
	}
	return radialPath(w, h, count, 1)
}

// StarPath returns a closed path for a star with the given point count and
// inner radius ratio, inscribed in a w×h box at the origin.
func StarPath(w, h float64, count int, innerRatio float64) Path {
	if count < 3 {
		count = 3
	}
	if innerRatio <= 0 || innerRatio >= 1 {
		innerRatio = 0.5
	}
	rx, ry := w/2, h/2
	cx, cy := rx, ry
	var p Path
	for i := 0; i < count*2; i++ {
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(count)
		f := 1.0
		if i%2 == 1 {
			f = innerRatio
		}
		pt := Point{cx + rx*f*math.Cos(angle), cy + ry*f*math.Sin(angle)}
		if i == 0 {
			p.Move(pt)
		} else {
			p.Line(pt)
		}
	}
	p.Close()
	return p
}

// LinePath returns an open path for a horizontal line of length w at the
// origin. Design tools store lines as zero-height nodes.
func LinePath(w float64) Path {
	var p Path
	p.Move(Point{0, 0})
	p.Line(Point{w, 0})
	return p
}

func radialPath(w, h float64, count int, radiusRatio float64) Path {
	rx, ry := w/2*radiusRatio, h/2*radiusRatio
	cx, cy := w/2, h/2
	var p Path
	for i := 0; i < count; i++ {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(count)
		pt := Point{cx + rx*math.Cos(angle), cy + ry*math.Sin(angle)}
		if i == 0 {
			p.Move(pt)
		} else {
			p.Line(pt)
		}
	}
	p.Close()
	return p
}
