// Package iconset turns a source icon node into a set of fixed-size
// variant components.
//
// The package implements the per-icon half of the generation pipeline:
//
//  1. Validate: is this node an icon we can work with?
//  2. Build: clone, rescale, restroke, flatten, and lock one variant.
//  3. Assemble: combine the variants into a styled component set.
//  4. Place: position sets on the canvas.
//
// Everything here is pure tree manipulation; orchestration, logging, and
// error reporting live in pkg/pipeline.
package iconset

import (
	"math"

	"github.com/darasoba/iconset-builder/pkg/scene"
)

// SquareTolerance is the maximum width/height difference for a node to
// count as square.
const SquareTolerance = 0.01

// eligibleTypes are the node categories that can serve as source icons.
var eligibleTypes = map[scene.Type]bool{
	scene.TypeFrame:     true,
	scene.TypeComponent: true,
	scene.TypeInstance:  true,
	scene.TypeGroup:     true,
}

// Eligible reports whether n can serve as a source icon: an eligible
// container type, square within SquareTolerance, with at least one
// drawable node in its subtree.
func Eligible(n scene.Node) bool {
	if !eligibleTypes[n.Type()] {
		return false
	}
	w, h := n.Size()
	if w <= 0 || math.Abs(w-h) > SquareTolerance {
		return false
	}
	for range scene.Filter(n, scene.IsDrawable) {
		return true
	}
	return false
}

// Filter returns the eligible subset of nodes, preserving order.
// Ineligible nodes are dropped silently; deciding whether an empty result
// is fatal is the caller's concern.
func Filter(nodes []scene.Node) []scene.Node {
	out := make([]scene.Node, 0, len(nodes))
	for _, n := range nodes {
		if Eligible(n) {
			out = append(out, n)
		}
	}
	return out
}
