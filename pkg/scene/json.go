package scene

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

// Document JSON is the canonical serialization format. Nodes are encoded
// as a polymorphic tree keyed by "type"; vector path data uses SVG path
// syntax so documents stay hand-editable and diffable.

type documentJSON struct {
	Schema    int        `json:"schema_version"`
	Name      string     `json:"name,omitempty"`
	Nodes     []nodeJSON `json:"nodes"`
	Selection []string   `json:"selection,omitempty"`
	Viewport  *Viewport  `json:"viewport,omitempty"`
}

type nodeJSON struct {
	ID         string     `json:"id"`
	Type       Type       `json:"type"`
	Name       string     `json:"name,omitempty"`
	X          float64    `json:"x,omitempty"`
	Y          float64    `json:"y,omitempty"`
	W          float64    `json:"width,omitempty"`
	H          float64    `json:"height,omitempty"`
	Locked     bool       `json:"aspect_locked,omitempty"`
	Constraint Constraint `json:"constraint,omitempty"`
	Effects    []Effect   `json:"effects,omitempty"`
	Children   []nodeJSON `json:"children,omitempty"`

	// Drawable fields
	Path          string  `json:"path,omitempty"`
	Filled        *bool   `json:"filled,omitempty"`
	StrokeEnabled bool    `json:"stroke_enabled,omitempty"`
	StrokeWeight  float64 `json:"stroke_weight,omitempty"`
	CornerRadius  float64 `json:"corner_radius,omitempty"`
	PointCount    int     `json:"point_count,omitempty"`
	InnerRatio    float64 `json:"inner_ratio,omitempty"`
	Op            BoolOp  `json:"op,omitempty"`
	Characters    string  `json:"characters,omitempty"`

	// Frame fields
	Fills       []Paint      `json:"fills,omitempty"`
	StrokePaint *Paint       `json:"stroke_paint,omitempty"`
	Dash        []float64    `json:"dash_pattern,omitempty"`
	Clip        bool         `json:"clip,omitempty"`
	Layout      *LayoutProps `json:"layout,omitempty"`

	// ComponentSet / Instance fields
	Axes     []VariantAxis `json:"axes,omitempty"`
	MasterID string        `json:"master_id,omitempty"`
}

// WriteDocument encodes d as indented JSON.
func WriteDocument(d *Document, w io.Writer) error {
	out := documentJSON{
		Schema:    CurrentSchema,
		Name:      d.Name,
		Selection: d.Selection,
		Nodes:     make([]nodeJSON, len(d.children)),
	}
	if d.Viewport != (Viewport{}) {
		vp := d.Viewport
		out.Viewport = &vp
	}
	for i, n := range d.children {
		out.Nodes[i] = encodeNode(n)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadDocument decodes a document from JSON.
func ReadDocument(r io.Reader) (*Document, error) {
	var in documentJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if in.Schema > CurrentSchema {
		return nil, fmt.Errorf("unsupported schema version %d", in.Schema)
	}
	d := NewDocument(in.Name)
	d.Schema = in.Schema
	d.Selection = in.Selection
	if in.Viewport != nil {
		d.Viewport = *in.Viewport
	}
	for _, nj := range in.Nodes {
		n, err := decodeNode(nj)
		if err != nil {
			return nil, err
		}
		d.AppendChild(n)
	}
	return d, nil
}

func encodeNode(n Node) nodeJSON {
	pos := n.Position()
	w, h := n.Size()
	nj := nodeJSON{
		ID:         n.ID(),
		Type:       n.Type(),
		Name:       n.Name(),
		X:          pos.X,
		Y:          pos.Y,
		W:          w,
		H:          h,
		Locked:     n.AspectLocked(),
		Constraint: n.Constraint(),
	}

	switch t := n.(type) {
	case *Vector:
		nj.Path = t.Data.SVG()
		nj.Filled = boolPtr(t.Filled)
		nj.StrokeEnabled = t.enabled
		nj.StrokeWeight = t.weight
		nj.Effects = t.effects
	case *Rectangle:
		nj.CornerRadius = t.CornerRadius
		nj.Filled = boolPtr(t.Filled)
		nj.StrokeEnabled = t.enabled
		nj.StrokeWeight = t.weight
		nj.Effects = t.effects
	case *Ellipse:
		nj.Filled = boolPtr(t.Filled)
		nj.StrokeEnabled = t.enabled
		nj.StrokeWeight = t.weight
		nj.Effects = t.effects
	case *Polygon:
		nj.PointCount = t.PointCount
		nj.Filled = boolPtr(t.Filled)
		nj.StrokeEnabled = t.enabled
		nj.StrokeWeight = t.weight
		nj.Effects = t.effects
	case *Star:
		nj.PointCount = t.PointCount
		nj.InnerRatio = t.InnerRatio
		nj.Filled = boolPtr(t.Filled)
		nj.StrokeEnabled = t.enabled
		nj.StrokeWeight = t.weight
		nj.Effects = t.effects
	case *Line:
		nj.StrokeWeight = t.weight
		nj.Effects = t.effects
	case *BooleanOperation:
		nj.Op = t.Op
		nj.Children = encodeChildren(t.children)
		nj.Effects = t.effects
	case *Text:
		nj.Characters = t.Characters
		nj.Effects = t.effects
	case *Instance:
		nj.MasterID = t.MasterID
		encodeFrame(&nj, &t.Frame)
	case *ComponentSet:
		nj.Axes = t.Axes
		encodeFrame(&nj, &t.Frame)
	case *Component:
		encodeFrame(&nj, &t.Frame)
	case *Frame:
		encodeFrame(&nj, t)
	case *Group:
		nj.Children = encodeChildren(t.children)
		nj.Effects = t.effects
	}
	return nj
}

func encodeFrame(nj *nodeJSON, f *Frame) {
	nj.Fills = f.Fills
	nj.StrokePaint = f.StrokePaint
	nj.StrokeEnabled = f.enabled
	nj.StrokeWeight = f.weight
	nj.Dash = f.DashPattern
	nj.CornerRadius = f.CornerRadius
	nj.Clip = f.Clip
	nj.Effects = f.effects
	if f.Layout != (LayoutProps{}) {
		lp := f.Layout
		nj.Layout = &lp
	}
	nj.Children = encodeChildren(f.children)
}

func encodeChildren(children []Node) []nodeJSON {
	if len(children) == 0 {
		return nil
	}
	out := make([]nodeJSON, len(children))
	for i, c := range children {
		out[i] = encodeNode(c)
	}
	return out
}

func decodeNode(nj nodeJSON) (Node, error) {
	var n Node

	switch nj.Type {
	case TypeVector:
		data, err := geom.ParsePath(nj.Path)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", nj.ID, err)
		}
		v := &Vector{Data: data, Filled: filled(nj)}
		v.enabled = nj.StrokeEnabled
		v.weight = nj.StrokeWeight
		n = v
	case TypeRectangle:
		r := &Rectangle{CornerRadius: nj.CornerRadius, Filled: filled(nj)}
		r.enabled = nj.StrokeEnabled
		r.weight = nj.StrokeWeight
		n = r
	case TypeEllipse:
		e := &Ellipse{Filled: filled(nj)}
		e.enabled = nj.StrokeEnabled
		e.weight = nj.StrokeWeight
		n = e
	case TypePolygon:
		p := &Polygon{PointCount: nj.PointCount, Filled: filled(nj)}
		p.enabled = nj.StrokeEnabled
		p.weight = nj.StrokeWeight
		n = p
	case TypeStar:
		s := &Star{PointCount: nj.PointCount, InnerRatio: nj.InnerRatio, Filled: filled(nj)}
		s.enabled = nj.StrokeEnabled
		s.weight = nj.StrokeWeight
		n = s
	case TypeLine:
		l := &Line{}
		l.enabled = true
		l.weight = nj.StrokeWeight
		n = l
	case TypeBooleanOp:
		children, err := decodeChildren(nj.Children)
		if err != nil {
			return nil, err
		}
		n = &BooleanOperation{Op: nj.Op, children: children}
	case TypeText:
		n = &Text{Characters: nj.Characters}
	case TypeFrame:
		f := &Frame{}
		if err := decodeFrame(nj, f); err != nil {
			return nil, err
		}
		n = f
	case TypeGroup:
		children, err := decodeChildren(nj.Children)
		if err != nil {
			return nil, err
		}
		n = &Group{children: children}
	case TypeComponent:
		c := &Component{}
		if err := decodeFrame(nj, &c.Frame); err != nil {
			return nil, err
		}
		n = c
	case TypeComponentSet:
		s := &ComponentSet{Axes: nj.Axes}
		if err := decodeFrame(nj, &s.Frame); err != nil {
			return nil, err
		}
		n = s
	case TypeInstance:
		i := &Instance{MasterID: nj.MasterID}
		if err := decodeFrame(nj, &i.Frame); err != nil {
			return nil, err
		}
		n = i
	default:
		return nil, fmt.Errorf("node %s: unknown type %q", nj.ID, nj.Type)
	}

	b := baseOf(n)
	b.id = nj.ID
	if b.id == "" {
		b.id = newID()
	}
	b.name = nj.Name
	b.x, b.y = nj.X, nj.Y
	b.w, b.h = nj.W, nj.H
	b.locked = nj.Locked
	b.constraint = nj.Constraint
	b.effects = nj.Effects
	return n, nil
}

func decodeFrame(nj nodeJSON, f *Frame) error {
	children, err := decodeChildren(nj.Children)
	if err != nil {
		return err
	}
	f.children = children
	f.Fills = nj.Fills
	f.StrokePaint = nj.StrokePaint
	f.enabled = nj.StrokeEnabled
	f.weight = nj.StrokeWeight
	f.DashPattern = nj.Dash
	f.CornerRadius = nj.CornerRadius
	f.Clip = nj.Clip
	if nj.Layout != nil {
		f.Layout = *nj.Layout
	}
	return nil
}

func decodeChildren(njs []nodeJSON) ([]Node, error) {
	if len(njs) == 0 {
		return nil, nil
	}
	out := make([]Node, len(njs))
	for i, nj := range njs {
		n, err := decodeNode(nj)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// baseOf returns the embedded base of any concrete node type.
func baseOf(n Node) *base {
	switch t := n.(type) {
	case *Vector:
		return &t.base
	case *Rectangle:
		return &t.base
	case *Ellipse:
		return &t.base
	case *Polygon:
		return &t.base
	case *Star:
		return &t.base
	case *Line:
		return &t.base
	case *BooleanOperation:
		return &t.base
	case *Text:
		return &t.base
	case *Frame:
		return &t.base
	case *Group:
		return &t.base
	case *Component:
		return &t.base
	case *ComponentSet:
		return &t.base
	case *Instance:
		return &t.base
	}
	panic(fmt.Sprintf("unknown node type %T", n))
}

func filled(nj nodeJSON) bool {
	if nj.Filled == nil {
		return true
	}
	return *nj.Filled
}

func boolPtr(b bool) *bool { return &b }
