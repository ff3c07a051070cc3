package iconset

import (
	"strings"

	"github.com/darasoba/iconset-builder/pkg/scene"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// SizeAxis is the single discrete choice axis every generated set exposes.
const SizeAxis = "Size"

// Component set styling. Fixed by convention so generated sets are
// recognizable at a glance.
const (
	setStrokeWeight = 1.0
	setCornerRadius = 8.0
	setItemSpacing  = 40.0
	setPadding      = 20.0
)

var (
	setStrokePaint = scene.Paint{R: 0.6, G: 0.4, B: 0.9, A: 1}
	setDashPattern = []float64{8, 4}
)

// SetName derives the component set name from a source icon name.
// Slashes collide with the host's grouping-path syntax, so they become
// dashes.
func SetName(sourceName string) string {
	return strings.ReplaceAll(sourceName, "/", "-")
}

// Assemble combines the ordered variant components for one source icon
// into a styled component set exposing the Size axis. comps and variants
// correspond index-wise.
func Assemble(sourceName string, comps []*scene.Component, variants []variant.Config) *scene.ComponentSet {
	set := scene.NewComponentSet(SetName(sourceName))

	values := make([]string, len(variants))
	for i, v := range variants {
		values[i] = v.AxisValue()
	}
	set.Axes = []scene.VariantAxis{{Name: SizeAxis, Values: values}}

	set.Fills = []scene.Paint{}
	set.EnableStroke(setStrokePaint, setStrokeWeight)
	set.DashPattern = append([]float64(nil), setDashPattern...)
	set.CornerRadius = setCornerRadius
	set.Layout = scene.LayoutProps{
		Mode:         scene.LayoutHorizontal,
		ItemSpacing:  setItemSpacing,
		Padding:      setPadding,
		CounterAlign: scene.AlignCenter,
		SizingMain:   scene.SizingAuto,
		SizingCross:  scene.SizingAuto,
	}

	for _, c := range comps {
		set.AppendChild(c)
	}
	set.ApplyAutoLayout()
	return set
}
