package spatial

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Containment is the outcome of testing a node region against a query volume.
type Containment int

const (
	Disjoint Containment = iota
	Intersects
	Contains
)

func (c Containment) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Intersects:
		return "Intersects"
	case Contains:
		return "Contains"
	}
	return fmt.Sprintf("Containment(%d)", int(c))
}

// VolumeKind tags the shape held by a Volume.
type VolumeKind int

const (
	VolumeBox VolumeKind = iota
	VolumeSphere
	VolumeFrustum
	VolumeCapsule
	VolumeCone
)

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// Capsule is a segment swept by a sphere.
type Capsule struct {
	Start  rl.Vector3
	End    rl.Vector3
	Radius float32
}

// Cone opens from Apex along Direction (unit vector) up to Height, with
// half-angle Angle in radians.
type Cone struct {
	Apex      rl.Vector3
	Direction rl.Vector3
	Height    float32
	Angle     float32
}

// Volume is a query shape for culling traversals. Exactly one field, selected
// by Kind, is meaningful.
type Volume struct {
	Kind    VolumeKind
	Box     Region
	Sphere  Sphere
	Frustum Frustum
	Capsule Capsule
	Cone    Cone
}

func BoxVolume(r Region) *Volume {
	return &Volume{Kind: VolumeBox, Box: r}
}

func SphereVolume(s Sphere) *Volume {
	return &Volume{Kind: VolumeSphere, Sphere: s}
}

func FrustumVolume(f Frustum) *Volume {
	return &Volume{Kind: VolumeFrustum, Frustum: f}
}

func CapsuleVolume(c Capsule) *Volume {
	return &Volume{Kind: VolumeCapsule, Capsule: c}
}

func ConeVolume(c Cone) *Volume {
	return &Volume{Kind: VolumeCone, Cone: c}
}

// ContainsRegion classifies r against the volume. An unrecognized Kind is a
// programming error and panics rather than returning a wrong classification.
func (v *Volume) ContainsRegion(r Region) Containment {
	switch v.Kind {
	case VolumeBox:
		return boxContainsRegion(v.Box, r)
	case VolumeSphere:
		return sphereContainsRegion(v.Sphere, r)
	case VolumeFrustum:
		return v.Frustum.ContainsRegion(r)
	case VolumeCapsule:
		return capsuleContainsRegion(v.Capsule, r)
	case VolumeCone:
		return coneContainsRegion(v.Cone, r)
	}
	panic(fmt.Sprintf("spatial: unsupported volume kind %d", int(v.Kind)))
}

func boxContainsRegion(box, r Region) Containment {
	if !box.IntersectsBox(r) {
		return Disjoint
	}
	if box.ContainsBox(r) {
		return Contains
	}
	return Intersects
}

func sphereContainsRegion(s Sphere, r Region) Containment {
	// Squared distance from the center to the nearest point of the box.
	nearSq := float32(0)
	// Squared distance to the farthest corner.
	farSq := float32(0)
	for _, axis := range [3][3]float32{
		{s.Center.X, r.Min.X, r.Max.X},
		{s.Center.Y, r.Min.Y, r.Max.Y},
		{s.Center.Z, r.Min.Z, r.Max.Z},
	} {
		c, lo, hi := axis[0], axis[1], axis[2]
		if c < lo {
			d := lo - c
			nearSq += d * d
		} else if c > hi {
			d := c - hi
			nearSq += d * d
		}
		far := c - lo
		if hi-c > far {
			far = hi - c
		}
		farSq += far * far
	}
	rSq := s.Radius * s.Radius
	if nearSq > rSq {
		return Disjoint
	}
	if farSq <= rSq {
		return Contains
	}
	return Intersects
}

func capsuleContainsRegion(c Capsule, r Region) Containment {
	// Disjoint check sweeps the box out by the capsule radius and tests the
	// spine segment against it. The swept shape is a superset of the true
	// Minkowski sum, so a miss here is a guaranteed miss.
	grown := Region{
		Min: rl.Vector3{X: r.Min.X - c.Radius, Y: r.Min.Y - c.Radius, Z: r.Min.Z - c.Radius},
		Max: rl.Vector3{X: r.Max.X + c.Radius, Y: r.Max.Y + c.Radius, Z: r.Max.Z + c.Radius},
	}
	if !(Segment{From: c.Start, To: c.End}).intersectsBox(grown) {
		return Disjoint
	}
	rSq := c.Radius * c.Radius
	for _, corner := range r.corners() {
		if distanceSqToSegment(corner, c.Start, c.End) > rSq {
			return Intersects
		}
	}
	return Contains
}

func coneContainsRegion(c Cone, r Region) Containment {
	center := r.Center()
	radius := rl.Vector3Length(r.Extents())
	if !coneIntersectsSphere(c, center, radius) {
		return Disjoint
	}
	for _, corner := range r.corners() {
		if !coneContainsPoint(c, corner) {
			return Intersects
		}
	}
	return Contains
}

func (r Region) corners() [8]rl.Vector3 {
	var out [8]rl.Vector3
	for i := 0; i < 8; i++ {
		out[i] = rl.Vector3{X: r.Min.X, Y: r.Min.Y, Z: r.Min.Z}
		if i&1 != 0 {
			out[i].X = r.Max.X
		}
		if i&2 != 0 {
			out[i].Y = r.Max.Y
		}
		if i&4 != 0 {
			out[i].Z = r.Max.Z
		}
	}
	return out
}

func distanceSqToSegment(p, a, b rl.Vector3) float32 {
	ab := rl.Vector3Subtract(b, a)
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq > 0 {
		t /= lenSq
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := rl.Vector3Add(a, rl.Vector3Scale(ab, t))
	d := rl.Vector3Subtract(p, closest)
	return rl.Vector3DotProduct(d, d)
}

func coneContainsPoint(c Cone, p rl.Vector3) bool {
	d := rl.Vector3Subtract(p, c.Apex)
	along := rl.Vector3DotProduct(d, c.Direction)
	if along < 0 || along > c.Height {
		return false
	}
	length := rl.Vector3Length(d)
	if length == 0 {
		return true // at the apex
	}
	cosA := float32(math.Cos(float64(c.Angle)))
	return along >= length*cosA
}

// coneIntersectsSphere is the sphere-vs-cone rejection test: the cone is
// widened by the sphere radius by shifting the apex back along the axis, then
// the center is classified against the widened cone and the near/far caps.
func coneIntersectsSphere(c Cone, center rl.Vector3, radius float32) bool {
	sinA := float32(math.Sin(float64(c.Angle)))
	cosA := float32(math.Cos(float64(c.Angle)))
	if sinA <= 0 {
		// Degenerate cone: treat as a segment of length Height.
		end := rl.Vector3Add(c.Apex, rl.Vector3Scale(c.Direction, c.Height))
		return distanceSqToSegment(center, c.Apex, end) <= radius*radius
	}

	u := rl.Vector3Subtract(c.Apex, rl.Vector3Scale(c.Direction, radius/sinA))
	d := rl.Vector3Subtract(center, u)
	e := rl.Vector3DotProduct(d, c.Direction)
	if e <= 0 || e*e < rl.Vector3DotProduct(d, d)*cosA*cosA {
		return false
	}

	d = rl.Vector3Subtract(center, c.Apex)
	along := rl.Vector3DotProduct(d, c.Direction)
	if along < -radius || along > c.Height+radius {
		return false
	}
	return true
}
