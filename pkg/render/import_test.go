package render

import (
	"strings"
	"testing"

	"github.com/darasoba/iconset-builder/pkg/errors"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

const importableSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <rect x="2" y="2" width="20" height="20" rx="4" fill="#000"/>
  <circle cx="12" cy="12" r="5" fill="#fff"/>
  <path d="M4 4 L20 4 L20 20 Z" fill="#000"/>
</svg>`

func TestImportSVG(t *testing.T) {
	f, err := ImportSVG(strings.NewReader(importableSVG), "sample")
	if err != nil {
		t.Fatalf("ImportSVG() error: %v", err)
	}

	if f.Name() != "sample" {
		t.Errorf("frame name = %q", f.Name())
	}
	w, h := f.Size()
	if w != 24 || h != 24 {
		t.Errorf("frame size = %gx%g, want 24x24", w, h)
	}
	if len(f.Children()) != 3 {
		t.Fatalf("children = %d, want 3", len(f.Children()))
	}

	r, ok := f.Children()[0].(*scene.Rectangle)
	if !ok {
		t.Fatalf("first child is %T, want *scene.Rectangle", f.Children()[0])
	}
	if r.CornerRadius != 4 {
		t.Errorf("corner radius = %g, want 4", r.CornerRadius)
	}
	pos := r.Position()
	if pos.X != 2 || pos.Y != 2 {
		t.Errorf("rect at (%g,%g), want (2,2)", pos.X, pos.Y)
	}

	c, ok := f.Children()[1].(*scene.Ellipse)
	if !ok {
		t.Fatalf("second child is %T, want *scene.Ellipse", f.Children()[1])
	}
	cw, ch := c.Size()
	if cw != 10 || ch != 10 {
		t.Errorf("circle size = %gx%g, want 10x10", cw, ch)
	}
	cpos := c.Position()
	if cpos.X != 7 || cpos.Y != 7 {
		t.Errorf("circle at (%g,%g), want (7,7)", cpos.X, cpos.Y)
	}

	v, ok := f.Children()[2].(*scene.Vector)
	if !ok {
		t.Fatalf("third child is %T, want *scene.Vector", f.Children()[2])
	}
	vpos := v.Position()
	if vpos.X != 4 || vpos.Y != 4 {
		t.Errorf("path at (%g,%g), want (4,4)", vpos.X, vpos.Y)
	}
	// Geometry is re-origined to the node position.
	if b := v.Data.Bounds(); b.MinX != 0 || b.MinY != 0 {
		t.Errorf("path bounds should start at origin, got (%g,%g)", b.MinX, b.MinY)
	}
}

func TestImportSVG_NestedGroups(t *testing.T) {
	svg := `<svg viewBox="0 0 24 24"><g><g><rect width="4" height="4"/></g></g></svg>`
	f, err := ImportSVG(strings.NewReader(svg), "nested")
	if err != nil {
		t.Fatalf("ImportSVG() error: %v", err)
	}
	if len(f.Children()) != 1 {
		t.Errorf("children = %d, want 1", len(f.Children()))
	}
}

func TestImportSVG_WidthHeightFallback(t *testing.T) {
	svg := `<svg width="32px" height="16"><rect width="4" height="4"/></svg>`
	f, err := ImportSVG(strings.NewReader(svg), "dims")
	if err != nil {
		t.Fatalf("ImportSVG() error: %v", err)
	}
	w, h := f.Size()
	if w != 32 || h != 16 {
		t.Errorf("frame size = %gx%g, want 32x16", w, h)
	}
}

func TestImportSVG_Errors(t *testing.T) {
	tests := []struct {
		name string
		svg  string
	}{
		{"not xml", "hello"},
		{"wrong root", `<div viewBox="0 0 24 24"/>`},
		{"no dimensions", `<svg><rect width="4" height="4"/></svg>`},
		{"no geometry", `<svg viewBox="0 0 24 24"><desc>empty</desc></svg>`},
		{"arc path", `<svg viewBox="0 0 24 24"><path d="M0 0 A5 5 0 0 1 10 10"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportSVG(strings.NewReader(tt.svg), "bad")
			if err == nil {
				t.Fatal("ImportSVG() should fail")
			}
			if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}
