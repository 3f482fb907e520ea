package spatial

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Segment is a finite ray between two points.
type Segment struct {
	From rl.Vector3
	To   rl.Vector3
}

func (s Segment) Direction() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(s.To, s.From))
}

func (s Segment) Length() float32 {
	return rl.Vector3Length(rl.Vector3Subtract(s.To, s.From))
}

// intersectsBox is a slab test clamped to the segment's parameter range
// [0, 1].
func (s Segment) intersectsBox(r Region) bool {
	d := rl.Vector3Subtract(s.To, s.From)
	tmin := float32(0)
	tmax := float32(1)

	// X slab
	if d.X != 0 {
		t1 := (r.Min.X - s.From.X) / d.X
		t2 := (r.Max.X - s.From.X) / d.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if s.From.X < r.Min.X || s.From.X > r.Max.X {
		return false
	}

	// Y slab
	if d.Y != 0 {
		t1 := (r.Min.Y - s.From.Y) / d.Y
		t2 := (r.Max.Y - s.From.Y) / d.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if s.From.Y < r.Min.Y || s.From.Y > r.Max.Y {
		return false
	}

	// Z slab
	if d.Z != 0 {
		t1 := (r.Min.Z - s.From.Z) / d.Z
		t2 := (r.Max.Z - s.From.Z) / d.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if s.From.Z < r.Min.Z || s.From.Z > r.Max.Z {
		return false
	}

	return tmin <= tmax
}

// DirectTest runs the caller's precise geometry test against one item,
// returning the hit distance along the segment and an arbitrary payload.
type DirectTest func(it Item, seg Segment) (distance float32, payload any, ok bool)

type Hit struct {
	Distance float32
	Item     Item
	Payload  any
}

// HitSet accumulates hits ordered by distance. Several hits may share a
// distance; ties keep insertion order, so this is a multimap rather than a
// map keyed by distance.
type HitSet struct {
	hits []Hit
}

func (h *HitSet) Insert(hit Hit) {
	i := sort.Search(len(h.hits), func(i int) bool {
		return h.hits[i].Distance > hit.Distance
	})
	h.hits = append(h.hits, Hit{})
	copy(h.hits[i+1:], h.hits[i:])
	h.hits[i] = hit
}

// Hits returns the accumulated hits nearest-first.
func (h *HitSet) Hits() []Hit { return h.hits }

func (h *HitSet) Len() int { return len(h.hits) }

func (h *HitSet) Nearest() (Hit, bool) {
	if len(h.hits) == 0 {
		return Hit{}, false
	}
	return h.hits[0], true
}

func (h *HitSet) Reset() { h.hits = h.hits[:0] }

// Raycast walks the subtree, pruning nodes the segment misses, and runs test
// against every item of surviving nodes. Hits land in results keyed by
// distance.
func (n *Node) Raycast(seg Segment, results *HitSet, test DirectTest) {
	if !seg.intersectsBox(n.bounds) {
		return
	}
	for _, it := range n.items {
		if dist, payload, ok := test(it, seg); ok {
			results.Insert(Hit{Distance: dist, Item: it, Payload: payload})
		}
	}
	for _, child := range n.children {
		if child != nil {
			child.Raycast(seg, results, test)
		}
	}
}
