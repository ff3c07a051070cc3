package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestTransformApply(t *testing.T) {
	tr := ScaleBy(2).Then(Translate(10, 20))
	got := tr.Apply(Point{3, 4})
	if !approx(got.X, 16) || !approx(got.Y, 28) {
		t.Errorf("Apply = %v, want (16, 28)", got)
	}
}

func TestTransformThenOrder(t *testing.T) {
	// Scale-then-translate must differ from translate-then-scale.
	a := ScaleBy(2).Then(Translate(10, 0)).Apply(Point{1, 0})
	b := Translate(10, 0).Then(ScaleBy(2)).Apply(Point{1, 0})
	if approx(a.X, b.X) {
		t.Fatalf("composition order collapsed: both %v", a.X)
	}
	if !approx(a.X, 12) {
		t.Errorf("scale then translate: got %v, want 12", a.X)
	}
	if !approx(b.X, 22) {
		t.Errorf("translate then scale: got %v, want 22", b.X)
	}
}

func TestRectUnion(t *testing.T) {
	a := RectAt(0, 0, 10, 10)
	b := RectAt(20, 5, 10, 10)
	u := a.Union(b)
	if u.MinX != 0 || u.MinY != 0 || u.MaxX != 30 || u.MaxY != 15 {
		t.Errorf("Union = %+v", u)
	}

	var empty Rect
	if got := empty.Union(a); got != a {
		t.Errorf("empty Union should be identity, got %+v", got)
	}
}

func TestPathBounds(t *testing.T) {
	p := RectPath(24, 24, 0)
	b := p.Bounds()
	if !approx(b.Width(), 24) || !approx(b.Height(), 24) {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestPathTransformed(t *testing.T) {
	p := RectPath(10, 10, 0).Transformed(ScaleBy(2).Then(Translate(5, 5)))
	b := p.Bounds()
	if !approx(b.MinX, 5) || !approx(b.MaxX, 25) {
		t.Errorf("transformed bounds = %+v", b)
	}
}

func TestFlattenLine(t *testing.T) {
	p := LinePath(24)
	polys := p.Flatten()
	if len(polys) != 1 {
		t.Fatalf("got %d polylines, want 1", len(polys))
	}
	if polys[0].Closed {
		t.Error("line should flatten to an open polyline")
	}
	if n := len(polys[0].Pts); n != 2 {
		t.Errorf("line flattened to %d points, want 2", n)
	}
}

func TestFlattenEllipseStaysOnRadius(t *testing.T) {
	p := EllipsePath(24, 24)
	polys := p.Flatten()
	if len(polys) != 1 || !polys[0].Closed {
		t.Fatalf("ellipse should flatten to one closed polyline")
	}
	for _, pt := range polys[0].Pts {
		r := pt.Sub(Point{12, 12}).Len()
		// Cubic circle approximation stays within ~0.03% of the radius.
		if math.Abs(r-12) > 0.02 {
			t.Fatalf("point %v at radius %v, want ~12", pt, r)
		}
	}
}

func TestOutlineOpenLine(t *testing.T) {
	outline := Outline(Polyline{Pts: []Point{{0, 0}, {24, 0}}}, 2)
	if outline == nil {
		t.Fatal("outline should not be nil")
	}
	b := outline.Bounds()
	if !approx(b.Width(), 24) {
		t.Errorf("outline width = %v, want 24", b.Width())
	}
	if !approx(b.Height(), 2) {
		t.Errorf("outline height = %v, want stroke width 2", b.Height())
	}
}

func TestOutlineClosedRing(t *testing.T) {
	square := Polyline{
		Pts:    []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
		Closed: true,
	}
	outline := Outline(square, 2)
	b := outline.Bounds()
	// Outer ring extends half the stroke width beyond the square.
	if !approx(b.MinX, -1) || !approx(b.MaxX, 11) {
		t.Errorf("outer ring bounds = %+v", b)
	}
	// Two rings, each with its own MoveTo.
	moves := 0
	for _, c := range outline {
		if c.Op == MoveTo {
			moves++
		}
	}
	if moves != 2 {
		t.Errorf("closed outline has %d subpaths, want 2", moves)
	}
}

func TestOutlineRejectsDegenerate(t *testing.T) {
	if got := Outline(Polyline{Pts: []Point{{0, 0}}}, 2); got != nil {
		t.Error("single point should produce no outline")
	}
	if got := Outline(Polyline{Pts: []Point{{0, 0}, {1, 0}}}, 0); got != nil {
		t.Error("zero width should produce no outline")
	}
}

func TestStarPath(t *testing.T) {
	p := StarPath(24, 24, 5, 0.4)
	// 5 outer + 5 inner vertices: one MoveTo, nine LineTos, one Close.
	if len(p) != 11 {
		t.Errorf("star path has %d commands, want 11", len(p))
	}
	b := p.Bounds()
	if b.Width() > 24+eps || b.Height() > 24+eps {
		t.Errorf("star exceeds its box: %+v", b)
	}
}

func TestSVGOutput(t *testing.T) {
	var p Path
	p.Move(Point{0, 0})
	p.Line(Point{24, 0})
	p.Close()
	if got := p.SVG(); got != "M0 0 L24 0 Z" {
		t.Errorf("SVG() = %q", got)
	}
}
