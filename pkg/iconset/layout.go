package iconset

import "github.com/darasoba/iconset-builder/pkg/scene"

// Canvas placement gaps.
const (
	// sourceGapX separates the first set from its source icon.
	sourceGapX = 48.0
	// setGapY separates stacked sets.
	setGapY = 40.0
)

// PlaceSets positions generated sets on the canvas. The first set goes to
// the right of the first source icon; every subsequent set stacks directly
// below the previous set, regardless of where its own source sits. This
// keeps the output in one column even when sources are scattered.
func PlaceSets(firstSource scene.Node, sets []*scene.ComponentSet) {
	if len(sets) == 0 {
		return
	}

	srcPos := firstSource.Position()
	srcW, _ := firstSource.Size()
	sets[0].SetPosition(srcPos.X+srcW+sourceGapX, srcPos.Y)

	for i := 1; i < len(sets); i++ {
		prevPos := sets[i-1].Position()
		_, prevH := sets[i-1].Size()
		sets[i].SetPosition(prevPos.X, prevPos.Y+prevH+setGapY)
	}
}
