package scene

import (
	"fmt"

	"github.com/darasoba/iconset-builder/pkg/geom"
)

// Flatten merges every drawable descendant of the container into a single
// filled vector node and replaces the container's children with it.
// Strokes are converted to fill geometry by each drawable's Outline.
//
// Flatten is all-or-nothing: if any descendant is neither a container nor
// a drawable, or a drawable cannot be outlined, the container is left
// untouched and an error is returned so the caller can take a degraded
// path instead.
func Flatten(c Container) (*Vector, error) {
	var merged geom.Path
	if err := collectOutlines(c.Children(), geom.Identity, &merged); err != nil {
		return nil, err
	}
	if len(merged) == 0 {
		return nil, fmt.Errorf("flatten %s: no drawable content", c.Name())
	}

	// Re-origin the merged geometry so the vector sits at its bounds.
	b := merged.Bounds()
	merged = merged.Transformed(geom.Translate(-b.MinX, -b.MinY))

	v := NewVector("vector", merged)
	v.SetPosition(b.MinX, b.MinY)

	c.RemoveAllChildren()
	c.AppendChild(v)
	return v, nil
}

// collectOutlines accumulates outlined geometry of drawables, carrying
// the translation from each node's parent space into the container space.
func collectOutlines(nodes []Node, t geom.Transform, merged *geom.Path) error {
	for _, n := range nodes {
		off := n.Position()
		nt := geom.Translate(off.X, off.Y).Then(t)

		if d, ok := n.(Drawable); ok {
			p, err := d.Outline()
			if err != nil {
				return fmt.Errorf("flatten %s (%s): %w", n.Name(), n.Type(), err)
			}
			*merged = append(*merged, p.Transformed(nt)...)
			continue
		}

		inner, ok := n.(Container)
		if !ok {
			return fmt.Errorf("flatten %s (%s): %w", n.Name(), n.Type(), ErrCannotOutline)
		}
		if err := collectOutlines(inner.Children(), nt, merged); err != nil {
			return err
		}
	}
	return nil
}
