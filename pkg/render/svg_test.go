package render

import (
	"strings"
	"testing"

	"github.com/darasoba/iconset-builder/pkg/geom"
	"github.com/darasoba/iconset-builder/pkg/scene"
)

func TestRenderSVG_Drawable(t *testing.T) {
	v := scene.NewVector("icon", geom.RectPath(24, 24, 0))

	svg := string(RenderSVG(v))

	if !strings.Contains(svg, `viewBox="0 0 24 24"`) {
		t.Errorf("RenderSVG() missing viewBox: %s", svg)
	}
	if !strings.Contains(svg, "<path d=") {
		t.Error("RenderSVG() missing path element")
	}
	if !strings.Contains(svg, `fill-rule="nonzero"`) {
		t.Error("RenderSVG() missing fill rule")
	}
}

func TestRenderSVG_PositionIndependent(t *testing.T) {
	v1 := scene.NewVector("icon", geom.RectPath(24, 24, 0))
	v2 := scene.NewVector("icon", geom.RectPath(24, 24, 0))
	v2.SetPosition(500, 300)

	if string(RenderSVG(v1)) != string(RenderSVG(v2)) {
		t.Error("output should not depend on the node's document position")
	}
}

func TestRenderSVG_FrameStyling(t *testing.T) {
	f := scene.NewFrame("card", 100, 60)
	f.Fills = []scene.Paint{{R: 1, G: 1, B: 1, A: 1}}
	f.CornerRadius = 8
	f.EnableStroke(scene.Paint{R: 0.6, G: 0.4, B: 0.9, A: 1}, 1)
	f.DashPattern = []float64{8, 4}

	child := scene.NewVector("icon", geom.RectPath(24, 24, 0))
	child.SetPosition(10, 10)
	f.AppendChild(child)

	svg := string(RenderSVG(f))

	if !strings.Contains(svg, `fill="rgb(255,255,255)"`) {
		t.Error("missing background fill")
	}
	if !strings.Contains(svg, `rx="8"`) {
		t.Error("missing corner radius")
	}
	if !strings.Contains(svg, `stroke="rgb(153,102,230)"`) {
		t.Errorf("missing stroke color: %s", svg)
	}
	if !strings.Contains(svg, `stroke-dasharray="8 4"`) {
		t.Error("missing dash pattern")
	}
}

func TestRenderSVG_ClippedFrame(t *testing.T) {
	f := scene.NewFrame("clip", 48, 48)
	f.Clip = true
	f.AppendChild(scene.NewVector("icon", geom.RectPath(80, 80, 0)))

	svg := string(RenderSVG(f))

	if !strings.Contains(svg, "<clipPath") {
		t.Error("missing clipPath element")
	}
	if !strings.Contains(svg, `clip-path="url(#clip-1)"`) {
		t.Errorf("missing clip reference: %s", svg)
	}
}

func TestRenderSVG_Padding(t *testing.T) {
	v := scene.NewVector("icon", geom.RectPath(24, 24, 0))

	svg := string(RenderSVG(v, WithPadding(8)))

	if !strings.Contains(svg, `viewBox="0 0 40 40"`) {
		t.Errorf("padding should widen the viewBox: %s", svg)
	}
}

func TestRenderSVG_TextSkipped(t *testing.T) {
	f := scene.NewFrame("mixed", 48, 48)
	f.AppendChild(scene.NewText("label", "hello", 40, 12))
	f.AppendChild(scene.NewVector("icon", geom.RectPath(24, 24, 0)))

	svg := string(RenderSVG(f))

	if strings.Contains(svg, "hello") {
		t.Error("text content should not appear in output")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("drawable sibling should still render")
	}
}

func TestPaintColor(t *testing.T) {
	tests := []struct {
		name  string
		paint scene.Paint
		want  string
	}{
		{"opaque", scene.Paint{R: 1, G: 0, B: 0, A: 1}, "rgb(255,0,0)"},
		{"translucent", scene.Paint{R: 0, G: 0, B: 0, A: 0.5}, "rgba(0,0,0,0.5)"},
		{"clamped", scene.Paint{R: 2, G: -1, B: 0.5, A: 1}, "rgb(255,0,128)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paintColor(tt.paint); got != tt.want {
				t.Errorf("paintColor() = %q, want %q", got, tt.want)
			}
		})
	}
}
