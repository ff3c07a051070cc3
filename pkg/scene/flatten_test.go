package scene

import (
	"testing"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

func TestFlattenMergesDrawables(t *testing.T) {
	f := NewFrame("container", 24, 24)
	r := NewRectangle("a", 10, 10)
	e := NewEllipse("b", 8, 8)
	e.SetPosition(12, 12)
	f.AppendChild(r)
	f.AppendChild(e)

	v, err := Flatten(f)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(f.Children()) != 1 || f.Children()[0] != Node(v) {
		t.Fatal("container should hold exactly the flattened vector")
	}
	if v.Name() != "vector" {
		t.Errorf("flattened node name = %q", v.Name())
	}
	b := v.Data.Bounds()
	// Rect spans 0..10, ellipse 12..20; merged geometry re-origined at 0.
	if !approx(b.MinX, 0) || !approx(b.MaxX, 20) {
		t.Errorf("merged bounds = %+v", b)
	}
	if p := v.Position(); !approx(p.X, 0) || !approx(p.Y, 0) {
		t.Errorf("vector position = %v", p)
	}
}

func TestFlattenAppliesNestedOffsets(t *testing.T) {
	f := NewFrame("container", 24, 24)
	g := NewGroup("g", NewRectangle("r", 4, 4))
	g.SetPosition(10, 10)
	f.AppendChild(g)

	v, err := Flatten(f)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if p := v.Position(); !approx(p.X, 10) || !approx(p.Y, 10) {
		t.Errorf("nested offset lost: vector at %v, want (10, 10)", p)
	}
}

func TestFlattenConvertsStrokes(t *testing.T) {
	f := NewFrame("container", 24, 24)
	f.AppendChild(NewLine("l", 24, 2))

	v, err := Flatten(f)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if !v.Filled {
		t.Error("flattened vector should be filled geometry")
	}
	b := v.Data.Bounds()
	if !approx(b.Height(), 2) {
		t.Errorf("stroke-to-fill height = %v, want stroke width 2", b.Height())
	}
}

func TestFlattenFailsOnText(t *testing.T) {
	f := NewFrame("container", 24, 24)
	f.AppendChild(NewRectangle("r", 10, 10))
	f.AppendChild(NewText("label", "x", 5, 5))

	if _, err := Flatten(f); err == nil {
		t.Fatal("text child should make flatten fail")
	}
	if len(f.Children()) != 2 {
		t.Error("failed flatten must leave the container untouched")
	}
}

func TestFlattenFailsOnNonUnionBoolean(t *testing.T) {
	f := NewFrame("container", 24, 24)
	f.AppendChild(NewBooleanOperation("cut", BoolSubtract,
		NewRectangle("a", 10, 10), NewEllipse("b", 6, 6)))

	if _, err := Flatten(f); err == nil {
		t.Fatal("subtract boolean should make flatten fail")
	}
}

func TestFlattenUnionBoolean(t *testing.T) {
	f := NewFrame("container", 24, 24)
	b := NewBooleanOperation("merge", BoolUnion,
		NewRectangle("a", 10, 10), NewEllipse("b", 6, 6))
	f.AppendChild(b)

	v, err := Flatten(f)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(v.Data) == 0 {
		t.Error("union boolean should contribute geometry")
	}
}

func TestFlattenEmptyContainer(t *testing.T) {
	f := NewFrame("container", 24, 24)
	if _, err := Flatten(f); err == nil {
		t.Fatal("empty container should fail to flatten")
	}
}

func TestOutlineRequiresGeometry(t *testing.T) {
	v := NewVector("v", geom.RectPath(10, 10, 0))
	v.Filled = false
	if _, err := v.Outline(); err == nil {
		t.Error("vector with no fill and no stroke cannot be outlined")
	}
	v.EnableStroke(1)
	if _, err := v.Outline(); err != nil {
		t.Errorf("stroked vector should outline: %v", err)
	}
}
