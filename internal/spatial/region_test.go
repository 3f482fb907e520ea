package spatial

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func TestRegionCenterSizeExtents(t *testing.T) {
	r := NewRegion(rl.Vector3{X: -2, Y: 0, Z: 2}, rl.Vector3{X: 2, Y: 4, Z: 6})

	require.Equal(t, rl.Vector3{X: 0, Y: 2, Z: 4}, r.Center())
	require.Equal(t, rl.Vector3{X: 4, Y: 4, Z: 4}, r.Size())
	require.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, r.Extents())
}

func TestRegionContainsAndIntersects(t *testing.T) {
	outer := NewRegionFromCenter(rl.Vector3{}, rl.Vector3{X: 10, Y: 10, Z: 10})
	inner := NewRegionFromCenter(rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{X: 2, Y: 2, Z: 2})
	overlapping := NewRegionFromCenter(rl.Vector3{X: 5, Y: 0, Z: 0}, rl.Vector3{X: 4, Y: 4, Z: 4})
	far := NewRegionFromCenter(rl.Vector3{X: 50, Y: 0, Z: 0}, rl.Vector3{X: 2, Y: 2, Z: 2})

	require.True(t, outer.ContainsBox(inner))
	require.False(t, outer.ContainsBox(overlapping))
	require.True(t, outer.IntersectsBox(overlapping))
	require.False(t, outer.IntersectsBox(far))
	require.True(t, outer.ContainsBox(outer), "a region contains itself")
}

func TestRegionValidity(t *testing.T) {
	require.True(t, NewRegion(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}).IsValid())
	require.True(t, NewRegion(rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{X: 1, Y: 1, Z: 1}).IsValid(),
		"zero-size box is representable")

	inverted := NewRegion(rl.Vector3{X: 1, Y: 0, Z: 0}, rl.Vector3{X: 0, Y: 1, Z: 1})
	require.False(t, inverted.IsValid())

	nan := NewRegion(rl.Vector3{X: float32(math.NaN())}, rl.Vector3{X: 1, Y: 1, Z: 1})
	require.False(t, nan.IsValid())

	inf := NewRegion(rl.Vector3{}, rl.Vector3{X: float32(math.Inf(1)), Y: 1, Z: 1})
	require.False(t, inf.IsValid())
}

func TestOctantAddressing(t *testing.T) {
	r := NewRegionFromCenter(rl.Vector3{}, rl.Vector3{X: 8, Y: 8, Z: 8})

	for i := 0; i < 8; i++ {
		oct := r.Octant(i)
		c := oct.Center()

		// Bit 0 selects +X, bit 1 +Y, bit 2 +Z.
		require.Equal(t, i&1 != 0, c.X > 0, "octant %d X half", i)
		require.Equal(t, i&2 != 0, c.Y > 0, "octant %d Y half", i)
		require.Equal(t, i&4 != 0, c.Z > 0, "octant %d Z half", i)
		require.True(t, r.ContainsBox(oct))

		// A small box at the octant center maps back to the same index.
		probe := NewRegionFromCenter(c, rl.Vector3{X: 1, Y: 1, Z: 1})
		idx, ok := r.OctantFor(probe)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestOctantForStraddlingBox(t *testing.T) {
	r := NewRegionFromCenter(rl.Vector3{}, rl.Vector3{X: 8, Y: 8, Z: 8})

	// Crosses the midpoint on X: no single octant holds it.
	straddler := NewRegionFromCenter(rl.Vector3{X: 0, Y: 2, Z: 2}, rl.Vector3{X: 2, Y: 1, Z: 1})
	_, ok := r.OctantFor(straddler)
	require.False(t, ok)

	// Spans the whole region: corners land in opposite octants.
	_, ok = r.OctantFor(r)
	require.False(t, ok)

	// Invalid boxes never pick an octant.
	_, ok = r.OctantFor(Region{Min: rl.Vector3{X: float32(math.NaN())}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}})
	require.False(t, ok)
}
