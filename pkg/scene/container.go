package scene

import (
	"math"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

// LayoutMode selects a frame's auto-layout flow direction.
type LayoutMode string

// Auto-layout flow directions.
const (
	LayoutNone       LayoutMode = ""
	LayoutHorizontal LayoutMode = "horizontal"
	LayoutVertical   LayoutMode = "vertical"
)

// Align positions children on the counter axis of an auto-layout frame.
type Align string

// Counter-axis alignments.
const (
	AlignStart  Align = ""
	AlignCenter Align = "center"
)

// Sizing controls whether an auto-layout axis hugs its content.
type Sizing string

// Axis sizing modes.
const (
	SizingFixed Sizing = ""
	SizingAuto  Sizing = "auto"
)

// LayoutProps is a frame's auto-layout configuration.
type LayoutProps struct {
	Mode         LayoutMode `json:"mode,omitempty"`
	ItemSpacing  float64    `json:"item_spacing,omitempty"`
	Padding      float64    `json:"padding,omitempty"`
	CounterAlign Align      `json:"counter_align,omitempty"`
	SizingMain   Sizing     `json:"sizing_main,omitempty"`
	SizingCross  Sizing     `json:"sizing_cross,omitempty"`
}

// =============================================================================
// Frame
// =============================================================================

// Frame is the general-purpose container: it clips, paints, and optionally
// auto-lays-out its children. Component, ComponentSet, and Instance build
// on it.
type Frame struct {
	base
	children []Node

	Fills        []Paint
	StrokePaint  *Paint
	DashPattern  []float64
	CornerRadius float64
	Clip         bool
	Layout       LayoutProps

	stroke
}

// NewFrame creates an empty frame of the given size.
func NewFrame(name string, w, h float64) *Frame {
	return &Frame{base: newBase(name, w, h)}
}

func (f *Frame) Type() Type { return TypeFrame }

func (f *Frame) Children() []Node   { return f.children }
func (f *Frame) AppendChild(n Node) { f.children = append(f.children, n) }
func (f *Frame) RemoveAllChildren() { f.children = nil }

// Resize sets the frame's size without touching children.
func (f *Frame) Resize(w, h float64) { f.w, f.h = w, h }

func (f *Frame) Clone() Node {
	nf := f.cloneFrame()
	return &nf
}

// cloneFrame copies frame state; shared by the frame-like types.
func (f *Frame) cloneFrame() Frame {
	nf := *f
	nf.base = f.cloneBase()
	nf.Fills = append([]Paint(nil), f.Fills...)
	nf.DashPattern = append([]float64(nil), f.DashPattern...)
	if f.StrokePaint != nil {
		sp := *f.StrokePaint
		nf.StrokePaint = &sp
	}
	nf.children = make([]Node, len(f.children))
	for i, c := range f.children {
		nf.children[i] = c.Clone()
	}
	return nf
}

// Rescale scales the frame and its whole subtree uniformly.
func (f *Frame) Rescale(factor float64) {
	f.rescaleBase(factor)
	f.CornerRadius *= factor
	if f.enabled {
		f.weight *= factor
	}
	for i := range f.DashPattern {
		f.DashPattern[i] *= factor
	}
	f.Layout.ItemSpacing *= factor
	f.Layout.Padding *= factor
	for _, c := range f.children {
		if r, ok := c.(Rescaler); ok {
			r.Rescale(factor)
		}
	}
}

// EnableStroke turns on stroking with the given paint and weight.
func (f *Frame) EnableStroke(paint Paint, weight float64) {
	f.StrokePaint = &paint
	f.enabled = true
	f.weight = weight
}

// ApplyAutoLayout repositions children according to the frame's layout
// properties and, for auto-sized axes, hugs the frame to its content.
// Frames without a layout mode are left untouched.
func (f *Frame) ApplyAutoLayout() {
	if f.Layout.Mode == LayoutNone || len(f.children) == 0 {
		return
	}

	pad := f.Layout.Padding
	gap := f.Layout.ItemSpacing

	// Content extents.
	var mainTotal, crossMax float64
	for i, c := range f.children {
		w, h := c.Size()
		mw, ch := w, h
		if f.Layout.Mode == LayoutVertical {
			mw, ch = h, w
		}
		if i > 0 {
			mainTotal += gap
		}
		mainTotal += mw
		crossMax = math.Max(crossMax, ch)
	}

	if f.Layout.SizingMain == SizingAuto {
		if f.Layout.Mode == LayoutHorizontal {
			f.w = mainTotal + 2*pad
		} else {
			f.h = mainTotal + 2*pad
		}
	}
	if f.Layout.SizingCross == SizingAuto {
		if f.Layout.Mode == LayoutHorizontal {
			f.h = crossMax + 2*pad
		} else {
			f.w = crossMax + 2*pad
		}
	}

	cursor := pad
	for _, c := range f.children {
		w, h := c.Size()
		mw, ch := w, h
		if f.Layout.Mode == LayoutVertical {
			mw, ch = h, w
		}
		cross := pad
		if f.Layout.CounterAlign == AlignCenter {
			cross = pad + (crossMax-ch)/2
		}
		if f.Layout.Mode == LayoutHorizontal {
			c.SetPosition(cursor, cross)
		} else {
			c.SetPosition(cross, cursor)
		}
		cursor += mw + gap
	}
}

// =============================================================================
// Group
// =============================================================================

// Group is a loose container without paints or clipping.
type Group struct {
	base
	children []Node
}

// NewGroup creates a group over the given children, sized to their
// combined bounds.
func NewGroup(name string, children ...Node) *Group {
	var r geom.Rect
	for _, c := range children {
		r = r.Union(Bounds(c))
	}
	return &Group{base: newBase(name, r.Width(), r.Height()), children: children}
}

func (g *Group) Type() Type { return TypeGroup }

func (g *Group) Children() []Node   { return g.children }
func (g *Group) AppendChild(n Node) { g.children = append(g.children, n) }
func (g *Group) RemoveAllChildren() { g.children = nil }

func (g *Group) Clone() Node {
	ng := *g
	ng.base = g.cloneBase()
	ng.children = make([]Node, len(g.children))
	for i, c := range g.children {
		ng.children[i] = c.Clone()
	}
	return &ng
}

func (g *Group) Rescale(factor float64) {
	g.rescaleBase(factor)
	for _, c := range g.children {
		if r, ok := c.(Rescaler); ok {
			r.Rescale(factor)
		}
	}
}

// =============================================================================
// Component, ComponentSet, Instance
// =============================================================================

// Component is a reusable frame that instances link to.
type Component struct {
	Frame
}

// NewComponent creates an empty component of the given size.
func NewComponent(name string, w, h float64) *Component {
	return &Component{Frame: Frame{base: newBase(name, w, h)}}
}

func (c *Component) Type() Type { return TypeComponent }

func (c *Component) Clone() Node {
	return &Component{Frame: c.Frame.cloneFrame()}
}

// NewInstance creates an instance of c, carrying a deep copy of the
// component's subtree and a link back to it.
func (c *Component) NewInstance() *Instance {
	inst := &Instance{Frame: c.Frame.cloneFrame(), MasterID: c.id}
	return inst
}

// VariantAxis is one discrete choice axis of a component set.
type VariantAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ComponentSet groups alternative components behind discrete choice axes.
type ComponentSet struct {
	Frame
	Axes []VariantAxis
}

// NewComponentSet creates an empty component set.
func NewComponentSet(name string) *ComponentSet {
	return &ComponentSet{Frame: Frame{base: newBase(name, 0, 0)}}
}

func (s *ComponentSet) Type() Type { return TypeComponentSet }

func (s *ComponentSet) Clone() Node {
	ns := &ComponentSet{Frame: s.Frame.cloneFrame()}
	for _, a := range s.Axes {
		ns.Axes = append(ns.Axes, VariantAxis{Name: a.Name, Values: append([]string(nil), a.Values...)})
	}
	return ns
}

// Instance is a linked copy of a component. As long as the link stands the
// host keeps it in sync; Detach severs the link.
type Instance struct {
	Frame
	MasterID string
}

func (i *Instance) Type() Type { return TypeInstance }

func (i *Instance) Clone() Node {
	return &Instance{Frame: i.Frame.cloneFrame(), MasterID: i.MasterID}
}

// Detach converts the instance into an independent frame. The returned
// frame carries the instance's geometry and a deep copy of its subtree;
// the component link is dropped, so the copy receives no further sync.
func (i *Instance) Detach() *Frame {
	f := i.Frame.cloneFrame()
	f.name = i.name
	f.x, f.y = i.x, i.y
	return &f
}
