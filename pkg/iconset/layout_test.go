package iconset

import (
	"testing"

	"github.com/darasoba/iconset-builder/pkg/scene"
	"github.com/darasoba/iconset-builder/pkg/variant"
)

func newPlacedSet(t *testing.T, source scene.Node) *scene.ComponentSet {
	t.Helper()
	variants := variant.Defaults()
	return Assemble(source.Name(), buildVariants(t, source, variants), variants)
}

func TestPlaceSetsFirstNextToSource(t *testing.T) {
	source := scene.NewFrame("icon", 24, 24)
	source.SetPosition(100, 50)
	set := newPlacedSet(t, source)

	PlaceSets(source, []*scene.ComponentSet{set})

	pos := set.Position()
	if pos.X != 100+24+sourceGapX {
		t.Errorf("set x = %v, want source right edge + gap", pos.X)
	}
	if pos.Y != 50 {
		t.Errorf("set y = %v, want source y", pos.Y)
	}
}

func TestPlaceSetsStacksBelow(t *testing.T) {
	first := scene.NewFrame("a", 24, 24)
	second := scene.NewFrame("b", 24, 24)
	second.SetPosition(500, 500) // scattered source must not affect placement

	sets := []*scene.ComponentSet{newPlacedSet(t, first), newPlacedSet(t, second)}
	PlaceSets(first, sets)

	p0, p1 := sets[0].Position(), sets[1].Position()
	if p1.X != p0.X {
		t.Errorf("stacked set x = %v, want column x %v", p1.X, p0.X)
	}
	_, h0 := sets[0].Size()
	if p1.Y != p0.Y+h0+setGapY {
		t.Errorf("stacked set y = %v, want below previous", p1.Y)
	}
}

func TestPlaceSetsEmpty(t *testing.T) {
	// No sets is a no-op, not a panic.
	PlaceSets(scene.NewFrame("icon", 24, 24), nil)
}
