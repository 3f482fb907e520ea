package spatial

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling.
type Frustum struct {
	Planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0). The normal
// points toward the inside of the frustum.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

// FrustumFromCamera extracts frustum planes from a camera using the
// Gribb/Hartmann method. The caller supplies the aspect ratio so no window
// has to exist.
func FrustumFromCamera(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}

	return FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// FrustumFromMatrix extracts the 6 planes from a combined view-projection
// matrix (VP = P * V).
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	var f Frustum

	// Left plane: row4 + row1
	f.Planes[0] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8},
		Distance: vp.M15 + vp.M12,
	})

	// Right plane: row4 - row1
	f.Planes[1] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8},
		Distance: vp.M15 - vp.M12,
	})

	// Bottom plane: row4 + row2
	f.Planes[2] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9},
		Distance: vp.M15 + vp.M13,
	})

	// Top plane: row4 - row2
	f.Planes[3] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9},
		Distance: vp.M15 - vp.M13,
	})

	// Near plane: row4 + row3
	f.Planes[4] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10},
		Distance: vp.M15 + vp.M14,
	})

	// Far plane: row4 - row3
	f.Planes[5] = normalizePlane(Plane{
		Normal:   rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10},
		Distance: vp.M15 - vp.M14,
	})

	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.Normal)
	if length == 0 {
		return p
	}
	return Plane{
		Normal:   rl.Vector3Scale(p.Normal, 1.0/length),
		Distance: p.Distance / length,
	}
}

// ContainsRegion classifies a box against the frustum using the p-vertex /
// n-vertex test: per plane, only the corner most aligned with the plane
// normal can keep the box inside, and only the opposite corner can keep it
// fully contained.
func (f *Frustum) ContainsRegion(r Region) Containment {
	result := Contains
	for i := range f.Planes {
		p := &f.Planes[i]

		positive := r.Min
		negative := r.Max
		if p.Normal.X >= 0 {
			positive.X = r.Max.X
			negative.X = r.Min.X
		}
		if p.Normal.Y >= 0 {
			positive.Y = r.Max.Y
			negative.Y = r.Min.Y
		}
		if p.Normal.Z >= 0 {
			positive.Z = r.Max.Z
			negative.Z = r.Min.Z
		}

		if rl.Vector3DotProduct(p.Normal, positive)+p.Distance < 0 {
			return Disjoint
		}
		if rl.Vector3DotProduct(p.Normal, negative)+p.Distance < 0 {
			result = Intersects
		}
	}
	return result
}

// ContainsSphere tests if a sphere is inside or intersects the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.Planes {
		dist := rl.Vector3DotProduct(f.Planes[i].Normal, center) + f.Planes[i].Distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := range f.Planes {
		if rl.Vector3DotProduct(f.Planes[i].Normal, point)+f.Planes[i].Distance < 0 {
			return false
		}
	}
	return true
}
