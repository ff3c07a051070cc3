package iconset

import (
	"math"

	"github.com/darasoba/iconset-builder/pkg/scene"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

// BuildReport records what the best-effort steps of a build actually did.
// Soft failures (a node refusing a stroke write, a clone that cannot
// rescale, a flatten that falls back) are counted here and logged by the
// caller; they never fail the build.
type BuildReport struct {
	// Rescaled is true when a proportional rescale was applied. It stays
	// false both when the scale factor is exactly 1 and when the clone
	// does not support rescaling.
	Rescaled bool

	// StrokeWrites and StrokeSkips count stroke-weight writes that
	// succeeded and were refused, respectively.
	StrokeWrites int
	StrokeSkips  int

	// Flattened is false when flatten was structurally impossible and
	// the degraded rename-in-place path ran instead.
	Flattened bool

	// FlattenErr carries the reason for a degraded flatten, for debug
	// logging only.
	FlattenErr error
}

// Build produces one finished variant component from a source icon.
// The source is never mutated. Build does not fail: soft failures are
// absorbed into the report and the variant is emitted in a degraded but
// usable form.
func Build(source scene.Node, v variant.Config, customStroke bool) (*scene.Component, BuildReport) {
	var report BuildReport

	// Clone, severing any instance link so later edits cannot sync back.
	clone := source.Clone()
	if inst, ok := clone.(*scene.Instance); ok {
		clone = inst.Detach()
	}

	size := float64(v.SizePx)
	comp := scene.NewComponent(v.Name(), size, size)
	comp.Fills = []scene.Paint{}
	comp.Clip = true
	comp.AppendChild(clone)
	clone.SetPosition(0, 0)

	srcW, _ := source.Size()
	if scale := size / srcW; scale != 1 {
		if r, ok := clone.(scene.Rescaler); ok {
			r.Rescale(scale)
			report.Rescaled = true
		}
	}

	if customStroke {
		applyStrokeWeight(clone, v.StrokeWeight, &report)
	}

	// Center the content. Offsets are rounded so small sizes stay on the
	// pixel grid.
	cw, ch := clone.Size()
	clone.SetPosition(math.Round((size-cw)/2), math.Round((size-ch)/2))

	flatten(comp, &report)

	for n := range scene.Walk(comp) {
		n.LockAspect()
	}

	return comp, report
}

// applyStrokeWeight walks the subtree and sets the weight on every node
// exposing a writable stroke. Refused writes are counted and skipped.
func applyStrokeWeight(root scene.Node, weight float64, report *BuildReport) {
	for n := range scene.Walk(root) {
		s, ok := n.(scene.Stroked)
		if !ok {
			continue
		}
		if err := s.SetStrokeWeight(weight); err != nil {
			report.StrokeSkips++
			continue
		}
		report.StrokeWrites++
	}
}

// flatten merges the container into a single "vector" node, or falls back
// to renaming the children in place when the merge is structurally
// impossible. Both paths end with scale constraints and aspect locks.
func flatten(comp *scene.Component, report *BuildReport) {
	vec, err := scene.Flatten(comp)
	if err == nil {
		report.Flattened = true
		vec.SetConstraint(scene.ConstraintScale)
		vec.LockAspect()
		return
	}

	report.FlattenErr = err
	for _, child := range comp.Children() {
		child.SetName("vector")
		child.SetConstraint(scene.ConstraintScale)
		child.LockAspect()
	}
}
