package spatial

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Region is an axis-aligned bounding box. Node regions are immutable once
// created; they are only recomputed when a node splits into octants or the
// whole tree is rebuilt.
type Region struct {
	Min rl.Vector3
	Max rl.Vector3
}

func NewRegion(min, max rl.Vector3) Region {
	return Region{Min: min, Max: max}
}

// NewRegionFromCenter builds a region from a center point and full size.
func NewRegionFromCenter(center, size rl.Vector3) Region {
	half := rl.Vector3Scale(size, 0.5)
	return Region{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (r Region) Center() rl.Vector3 {
	return rl.Vector3{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
		Z: (r.Min.Z + r.Max.Z) / 2,
	}
}

func (r Region) Size() rl.Vector3 {
	return rl.Vector3Subtract(r.Max, r.Min)
}

// Extents returns the half-size on each axis.
func (r Region) Extents() rl.Vector3 {
	return rl.Vector3Scale(r.Size(), 0.5)
}

// IsValid reports whether the region is a representable box: finite corners
// with Min not exceeding Max on any axis. Items with invalid bounds are kept
// at the root instead of being placed in the hierarchy.
func (r Region) IsValid() bool {
	return isFinite(r.Min) && isFinite(r.Max) &&
		r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y && r.Min.Z <= r.Max.Z
}

func isFinite(v rl.Vector3) bool {
	for _, f := range [3]float32{v.X, v.Y, v.Z} {
		f64 := float64(f)
		if math.IsNaN(f64) || math.IsInf(f64, 0) {
			return false
		}
	}
	return true
}

func (r Region) ContainsPoint(p rl.Vector3) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y &&
		p.Z >= r.Min.Z && p.Z <= r.Max.Z
}

// ContainsBox reports whether o lies entirely inside r.
func (r Region) ContainsBox(o Region) bool {
	return o.Min.X >= r.Min.X && o.Max.X <= r.Max.X &&
		o.Min.Y >= r.Min.Y && o.Max.Y <= r.Max.Y &&
		o.Min.Z >= r.Min.Z && o.Max.Z <= r.Max.Z
}

func (r Region) IntersectsBox(o Region) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y &&
		r.Min.Z <= o.Max.Z && r.Max.Z >= o.Min.Z
}

// Octant addressing: each region splits at its midpoint into 8 children.
// Bit 0 selects the +X half, bit 1 the +Y half, bit 2 the +Z half. The same
// mapping is used for splitting and lookup everywhere in the tree.

// Octant returns the bounds of octant i (0..7) of r.
func (r Region) Octant(i int) Region {
	c := r.Center()
	out := r
	if i&1 != 0 {
		out.Min.X = c.X
	} else {
		out.Max.X = c.X
	}
	if i&2 != 0 {
		out.Min.Y = c.Y
	} else {
		out.Max.Y = c.Y
	}
	if i&4 != 0 {
		out.Min.Z = c.Z
	} else {
		out.Max.Z = c.Z
	}
	return out
}

func (r Region) octantOfPoint(p rl.Vector3) int {
	c := r.Center()
	i := 0
	if p.X >= c.X {
		i |= 1
	}
	if p.Y >= c.Y {
		i |= 2
	}
	if p.Z >= c.Z {
		i |= 4
	}
	return i
}

// OctantFor returns the single octant of r that fully contains o. It fails
// when o straddles the midpoint on any axis; a straddling box stays at the
// current level. A box spanning the whole region has its corners in opposite
// octants and therefore also stays put.
func (r Region) OctantFor(o Region) (int, bool) {
	if !o.IsValid() {
		return -1, false
	}
	lo := r.octantOfPoint(o.Min)
	hi := r.octantOfPoint(o.Max)
	if lo != hi {
		return -1, false
	}
	if !r.Octant(lo).ContainsBox(o) {
		return -1, false
	}
	return lo, true
}
