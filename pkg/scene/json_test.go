package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

func sampleDocument() *Document {
	d := NewDocument("icons")

	icon := NewFrame("icon/home", 24, 24)
	r := NewRectangle("roof", 20, 12)
	r.SetPosition(2, 2)
	r.CornerRadius = 1
	r.EnableStroke(1.5)
	icon.AppendChild(r)
	v := NewVector("door", geom.RectPath(4, 8, 0))
	v.SetPosition(10, 14)
	icon.AppendChild(v)
	d.AppendChild(icon)

	d.Select(icon.ID())
	return d
}

func roundTrip(t *testing.T, d *Document) *Document {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteDocument(d, &buf); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	got, err := ReadDocument(&buf)
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	return got
}

func TestDocumentRoundTrip(t *testing.T) {
	d := sampleDocument()
	got := roundTrip(t, d)

	if got.Name != "icons" {
		t.Errorf("name = %q", got.Name)
	}
	if len(got.Children()) != 1 {
		t.Fatalf("children = %d", len(got.Children()))
	}
	icon, ok := got.Children()[0].(*Frame)
	if !ok {
		t.Fatalf("child type = %T", got.Children()[0])
	}
	if icon.ID() != d.Children()[0].ID() {
		t.Error("IDs must survive the round trip")
	}
	if len(icon.Children()) != 2 {
		t.Fatalf("icon children = %d", len(icon.Children()))
	}
	r, ok := icon.Children()[0].(*Rectangle)
	if !ok {
		t.Fatalf("first child = %T", icon.Children()[0])
	}
	if !approx(r.StrokeWeight(), 1.5) || !approx(r.CornerRadius, 1) {
		t.Errorf("rectangle state lost: weight=%v radius=%v", r.StrokeWeight(), r.CornerRadius)
	}
	if len(got.Selection) != 1 || got.Selection[0] != d.Selection[0] {
		t.Error("selection lost")
	}
}

func TestVectorPathRoundTrip(t *testing.T) {
	d := NewDocument("doc")
	var p geom.Path
	p.Move(geom.Point{X: 0, Y: 0})
	p.Cubic(geom.Point{X: 4, Y: 0}, geom.Point{X: 8, Y: 4}, geom.Point{X: 8, Y: 8})
	p.Close()
	d.AppendChild(NewVector("v", p))

	got := roundTrip(t, d)
	v := got.Children()[0].(*Vector)
	if len(v.Data) != len(p) {
		t.Fatalf("path commands = %d, want %d", len(v.Data), len(p))
	}
	if v.Data[1].Op != geom.CubicTo {
		t.Error("cubic command lost")
	}
}

func TestComponentSetRoundTrip(t *testing.T) {
	d := NewDocument("doc")
	set := NewComponentSet("icon-home")
	set.Axes = []VariantAxis{{Name: "Size", Values: []string{"16px", "24px"}}}
	set.Fills = []Paint{}
	set.EnableStroke(Paint{R: 0.6, G: 0.4, B: 0.9, A: 1}, 1)
	set.DashPattern = []float64{8, 4}
	set.CornerRadius = 8
	set.Layout = LayoutProps{
		Mode: LayoutHorizontal, ItemSpacing: 40, Padding: 20,
		CounterAlign: AlignCenter, SizingMain: SizingAuto, SizingCross: SizingAuto,
	}
	comp := NewComponent("Size=16px", 16, 16)
	comp.LockAspect()
	set.AppendChild(comp)
	d.AppendChild(set)

	got := roundTrip(t, d)
	gs, ok := got.Children()[0].(*ComponentSet)
	if !ok {
		t.Fatalf("child = %T", got.Children()[0])
	}
	if len(gs.Axes) != 1 || gs.Axes[0].Name != "Size" || len(gs.Axes[0].Values) != 2 {
		t.Errorf("axes lost: %+v", gs.Axes)
	}
	if gs.StrokePaint == nil || !approx(gs.StrokePaint.B, 0.9) {
		t.Error("stroke paint lost")
	}
	if len(gs.DashPattern) != 2 || gs.DashPattern[0] != 8 {
		t.Errorf("dash pattern lost: %v", gs.DashPattern)
	}
	if gs.Layout.Mode != LayoutHorizontal || gs.Layout.ItemSpacing != 40 {
		t.Errorf("layout lost: %+v", gs.Layout)
	}
	gc := gs.Children()[0].(*Component)
	if !gc.AspectLocked() {
		t.Error("aspect lock lost")
	}
}

func TestInstanceRoundTripKeepsMaster(t *testing.T) {
	d := NewDocument("doc")
	master := NewComponent("icon", 24, 24)
	master.AppendChild(NewRectangle("r", 24, 24))
	inst := master.NewInstance()
	d.AppendChild(master)
	d.AppendChild(inst)

	got := roundTrip(t, d)
	gi, ok := got.Children()[1].(*Instance)
	if !ok {
		t.Fatalf("child = %T", got.Children()[1])
	}
	if gi.MasterID != master.ID() {
		t.Error("master link lost")
	}
}

func TestReadDocumentRejectsUnknownType(t *testing.T) {
	in := `{"schema_version":1,"nodes":[{"id":"a","type":"gradient"}]}`
	if _, err := ReadDocument(strings.NewReader(in)); err == nil {
		t.Fatal("unknown node type should fail")
	}
}

func TestReadDocumentRejectsNewerSchema(t *testing.T) {
	in := `{"schema_version":99,"nodes":[]}`
	if _, err := ReadDocument(strings.NewReader(in)); err == nil {
		t.Fatal("newer schema should fail")
	}
}

func TestSelectedNodesSkipsMissing(t *testing.T) {
	d := sampleDocument()
	d.Select(d.Selection[0], "gone")
	if got := d.SelectedNodes(); len(got) != 1 {
		t.Errorf("SelectedNodes = %d, want 1", len(got))
	}
}

func TestFitViewport(t *testing.T) {
	d := NewDocument("doc")
	d.FitViewport(geom.RectAt(100, 100, 200, 100))
	if !approx(d.Viewport.CenterX, 200) || !approx(d.Viewport.CenterY, 150) {
		t.Errorf("viewport center = (%v, %v)", d.Viewport.CenterX, d.Viewport.CenterY)
	}
	if d.Viewport.Zoom <= 0 || d.Viewport.Zoom > 4 {
		t.Errorf("zoom out of range: %v", d.Viewport.Zoom)
	}

	before := d.Viewport
	d.FitViewport(geom.Rect{})
	if d.Viewport != before {
		t.Error("empty rect should leave viewport unchanged")
	}
}
