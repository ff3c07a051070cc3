// Package scene implements the node tree that icon generation operates on.
//
// The tree mirrors the node categories of vector design tools: container
// nodes (frame, group, component, component set, instance) and drawable
// leaves (vector, rectangle, ellipse, polygon, star, line, boolean
// operation). Text exists as a non-drawable leaf.
//
// # Capabilities
//
// Instead of probing nodes for dynamic properties, optional behavior is
// expressed as capability interfaces checked with type assertions:
//
//   - [Container]: nodes holding children
//   - [Drawable]: nodes producing fill/stroke geometry directly
//   - [Rescaler]: nodes supporting uniform proportional rescale
//   - [Stroked]: nodes exposing a writable stroke weight
//
// Every node supports aspect locking; the lock is idempotent.
//
// # Coordinates
//
// Node positions are relative to their parent. Sizes are in the same
// design units as positions. The package never shears or rotates, so all
// transforms are uniform scale plus translation (see [geom.Transform]).
package scene

import (
	"github.com/google/uuid"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

// Type identifies a node category.
type Type string

// Node categories. The string values appear in document JSON.
const (
	TypeFrame        Type = "frame"
	TypeGroup        Type = "group"
	TypeComponent    Type = "component"
	TypeComponentSet Type = "component-set"
	TypeInstance     Type = "instance"
	TypeVector       Type = "vector"
	TypeRectangle    Type = "rectangle"
	TypeEllipse      Type = "ellipse"
	TypePolygon      Type = "polygon"
	TypeStar         Type = "star"
	TypeLine         Type = "line"
	TypeBooleanOp    Type = "boolean-operation"
	TypeText         Type = "text"
)

// Node is the behavior common to every scene node.
type Node interface {
	ID() string
	Type() Type
	Name() string
	SetName(string)

	// Position returns the node's origin relative to its parent.
	Position() geom.Point
	SetPosition(x, y float64)

	// Size returns the node's width and height.
	Size() (w, h float64)

	// LockAspect constrains the node's proportions. Locking an already
	// locked node leaves it locked.
	LockAspect()
	AspectLocked() bool

	// Constraint returns the node's resize behavior within its parent.
	Constraint() Constraint
	SetConstraint(Constraint)

	// Clone returns a deep copy of the node with fresh IDs.
	Clone() Node
}

// Container is the capability of holding child nodes.
type Container interface {
	Node
	Children() []Node
	AppendChild(Node)
	RemoveAllChildren()
}

// Drawable is the capability of producing fill/stroke geometry directly.
// Outline returns the node's geometry in its own coordinate space with
// strokes already converted to fill geometry. Nodes whose geometry cannot
// be expressed that way (for example a non-union boolean operation) return
// an error.
type Drawable interface {
	Node
	Outline() (geom.Path, error)
}

// Rescaler is the capability of uniform proportional rescale: geometry,
// strokes, and effects all scale by the same factor, as opposed to an
// independent width/height stretch.
type Rescaler interface {
	Node
	Rescale(factor float64)
}

// Stroked is the capability of exposing a writable stroke weight.
// SetStrokeWeight may refuse the write.
type Stroked interface {
	Node
	StrokeWeight() float64
	SetStrokeWeight(w float64) error
}

// Constraint is a node's resize behavior within its parent.
type Constraint string

// Resize behaviors.
const (
	// ConstraintFixed pins the node at a fixed offset and size.
	ConstraintFixed Constraint = ""
	// ConstraintScale scales the node proportionally with its parent.
	ConstraintScale Constraint = "scale"
)

// Paint is a solid RGBA color. Channel values are in [0, 1].
type Paint struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Effect is a size-bearing visual effect (blur, shadow spread). Only the
// radius matters to the pipeline: proportional rescale must scale it.
type Effect struct {
	Kind   string  `json:"kind"`
	Radius float64 `json:"radius"`
}

// newID returns a fresh node identifier.
func newID() string { return uuid.NewString() }

// base carries the state shared by every node type.
type base struct {
	id         string
	name       string
	x, y       float64
	w, h       float64
	locked     bool
	constraint Constraint
	effects    []Effect
}

func newBase(name string, w, h float64) base {
	return base{id: newID(), name: name, w: w, h: h}
}

func (b *base) ID() string                  { return b.id }
func (b *base) Name() string                { return b.name }
func (b *base) SetName(name string)         { b.name = name }
func (b *base) Position() geom.Point        { return geom.Point{X: b.x, Y: b.y} }
func (b *base) SetPosition(x, y float64)    { b.x, b.y = x, y }
func (b *base) Size() (float64, float64)    { return b.w, b.h }
func (b *base) LockAspect()                 { b.locked = true }
func (b *base) AspectLocked() bool          { return b.locked }
func (b *base) Constraint() Constraint      { return b.constraint }
func (b *base) SetConstraint(c Constraint)  { b.constraint = c }
func (b *base) Effects() []Effect           { return b.effects }
func (b *base) SetEffects(effects []Effect) { b.effects = effects }

// cloneBase copies base state under a fresh ID.
func (b *base) cloneBase() base {
	nb := *b
	nb.id = newID()
	nb.effects = append([]Effect(nil), b.effects...)
	return nb
}

// rescaleBase scales position, size, and effect radii by factor.
func (b *base) rescaleBase(factor float64) {
	b.x *= factor
	b.y *= factor
	b.w *= factor
	b.h *= factor
	for i := range b.effects {
		b.effects[i].Radius *= factor
	}
}

// Bounds returns the node's rectangle in parent coordinates.
func Bounds(n Node) geom.Rect {
	p := n.Position()
	w, h := n.Size()
	return geom.RectAt(p.X, p.Y, w, h)
}

// IsDrawable reports whether n produces geometry directly.
func IsDrawable(n Node) bool {
	_, ok := n.(Drawable)
	return ok
}
