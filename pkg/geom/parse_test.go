package geom

import "testing"

func TestParsePathBasic(t *testing.T) {
	p, err := ParsePath("M0 0 L24 0 L24 24 L0 24 Z")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if len(p) != 5 {
		t.Fatalf("commands = %d, want 5", len(p))
	}
	b := p.Bounds()
	if !approx(b.Width(), 24) || !approx(b.Height(), 24) {
		t.Errorf("bounds = %+v", b)
	}
}

func TestParsePathRelative(t *testing.T) {
	p, err := ParsePath("m10 10 l5 0 l0 5 z")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := p[2].Pts[0]; !approx(got.X, 15) || !approx(got.Y, 15) {
		t.Errorf("relative line endpoint = %v, want (15, 15)", got)
	}
}

func TestParsePathHV(t *testing.T) {
	p, err := ParsePath("M0 0 H10 V10 h-5 v-5")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	last := p[len(p)-1].Pts[0]
	if !approx(last.X, 5) || !approx(last.Y, 5) {
		t.Errorf("endpoint = %v, want (5, 5)", last)
	}
}

func TestParsePathCubicAndSmooth(t *testing.T) {
	p, err := ParsePath("M0 0 C1 2 3 4 5 6 S9 10 11 12")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if p[1].Op != CubicTo || p[2].Op != CubicTo {
		t.Fatal("expected two cubic commands")
	}
	// Smooth control point reflects the previous C's second control
	// (3,4) over the current point (5,6) giving (7,8).
	c1 := p[2].Pts[0]
	if !approx(c1.X, 7) || !approx(c1.Y, 8) {
		t.Errorf("smooth control = %v, want (7, 8)", c1)
	}
}

func TestParsePathQuadraticElevates(t *testing.T) {
	p, err := ParsePath("M0 0 Q6 0 6 6")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if p[1].Op != CubicTo {
		t.Fatal("quadratic should be elevated to cubic")
	}
	if end := p[1].Pts[2]; !approx(end.X, 6) || !approx(end.Y, 6) {
		t.Errorf("endpoint = %v", end)
	}
}

func TestParsePathImplicitRepeat(t *testing.T) {
	// Coordinates after M continue as implicit LineTo.
	p, err := ParsePath("M0 0 10 0 10 10")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if len(p) != 3 || p[1].Op != LineTo || p[2].Op != LineTo {
		t.Fatalf("implicit repeat parsed as %+v", p)
	}
}

func TestParsePathCommaAndNegative(t *testing.T) {
	p, err := ParsePath("M10,20L-5,-6")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := p[1].Pts[0]; !approx(got.X, -5) || !approx(got.Y, -6) {
		t.Errorf("endpoint = %v", got)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, bad := range []string{
		"10 10",          // missing initial command
		"M0 0 A5 5 0 0 1 10 10", // arcs unsupported
		"M0",             // truncated coordinate pair
		"MX Y",           // not numbers
	} {
		if _, err := ParsePath(bad); err == nil {
			t.Errorf("ParsePath(%q) should fail", bad)
		}
	}
}

func TestParseRoundTripThroughSVG(t *testing.T) {
	orig := RectPath(24, 24, 4)
	parsed, err := ParsePath(orig.SVG())
	if err != nil {
		t.Fatalf("ParsePath(SVG()): %v", err)
	}
	if len(parsed) != len(orig) {
		t.Fatalf("round-trip commands = %d, want %d", len(parsed), len(orig))
	}
	ob, pb := orig.Bounds(), parsed.Bounds()
	if !approx(ob.Width(), pb.Width()) || !approx(ob.Height(), pb.Height()) {
		t.Errorf("round-trip bounds drifted: %+v vs %+v", ob, pb)
	}
}
