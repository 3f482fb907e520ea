package spatial

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func unitBoxAt(x, y, z float32) Region {
	return NewRegionFromCenter(rl.Vector3{X: x, Y: y, Z: z}, rl.Vector3{X: 1, Y: 1, Z: 1})
}

func TestBoxVolumeClassification(t *testing.T) {
	vol := BoxVolume(NewRegionFromCenter(rl.Vector3{}, rl.Vector3{X: 10, Y: 10, Z: 10}))

	require.Equal(t, Contains, vol.ContainsRegion(unitBoxAt(0, 0, 0)))
	require.Equal(t, Intersects, vol.ContainsRegion(unitBoxAt(5, 0, 0)))
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(50, 0, 0)))
}

func TestSphereVolumeClassification(t *testing.T) {
	vol := SphereVolume(Sphere{Center: rl.Vector3{}, Radius: 5})

	require.Equal(t, Contains, vol.ContainsRegion(unitBoxAt(0, 0, 0)),
		"every corner within the radius")
	require.Equal(t, Intersects, vol.ContainsRegion(unitBoxAt(4.8, 0, 0)))
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(20, 0, 0)))

	// Box whose nearest face touches the sphere but whose corners poke out.
	straddling := NewRegionFromCenter(rl.Vector3{}, rl.Vector3{X: 9.9, Y: 9.9, Z: 9.9})
	require.Equal(t, Intersects, vol.ContainsRegion(straddling))
}

func TestFrustumVolumeClassification(t *testing.T) {
	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: 10},
		Target:     rl.Vector3{X: 0, Y: 0, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	f := FrustumFromCamera(camera, 16.0/9.0, 0.1, 100)
	vol := FrustumVolume(f)

	require.Equal(t, Contains, vol.ContainsRegion(unitBoxAt(0, 0, 0)),
		"box straight ahead of the camera")
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(0, 0, 20)),
		"box behind the camera")
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(0, 200, 0)),
		"box far above the view cone")

	// A box hugging the camera position crosses the near plane.
	nearBox := NewRegionFromCenter(rl.Vector3{X: 0, Y: 0, Z: 10}, rl.Vector3{X: 1, Y: 1, Z: 1})
	require.Equal(t, Intersects, vol.ContainsRegion(nearBox))

	require.True(t, f.ContainsPoint(rl.Vector3{}))
	require.False(t, f.ContainsPoint(rl.Vector3{X: 0, Y: 0, Z: 30}))
	require.True(t, f.ContainsSphere(rl.Vector3{}, 1))
}

func TestCapsuleVolumeClassification(t *testing.T) {
	capsule := Capsule{
		Start:  rl.Vector3{X: -10, Y: 0, Z: 0},
		End:    rl.Vector3{X: 10, Y: 0, Z: 0},
		Radius: 2,
	}
	vol := CapsuleVolume(capsule)

	require.Equal(t, Contains, vol.ContainsRegion(unitBoxAt(0, 0, 0)))
	require.Equal(t, Intersects, vol.ContainsRegion(unitBoxAt(0, 2, 0)))
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(0, 20, 0)))
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(30, 0, 0)),
		"beyond the capsule end plus radius")
}

func TestConeVolumeClassification(t *testing.T) {
	cone := Cone{
		Apex:      rl.Vector3{},
		Direction: rl.Vector3{X: 0, Y: 0, Z: 1},
		Height:    20,
		Angle:     float32(30 * math.Pi / 180),
	}
	vol := ConeVolume(cone)

	require.Equal(t, Contains, vol.ContainsRegion(unitBoxAt(0, 0, 10)),
		"box on the axis well inside the cone")
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(0, 0, -10)),
		"box behind the apex")
	require.Equal(t, Disjoint, vol.ContainsRegion(unitBoxAt(30, 0, 2)),
		"box far to the side")

	// Box straddling the cone surface.
	edge := NewRegionFromCenter(rl.Vector3{X: 5.8, Y: 0, Z: 10}, rl.Vector3{X: 2, Y: 2, Z: 2})
	require.Equal(t, Intersects, vol.ContainsRegion(edge))
}

func TestUnsupportedVolumeKindPanics(t *testing.T) {
	bad := &Volume{Kind: VolumeKind(99)}
	require.Panics(t, func() {
		bad.ContainsRegion(unitBoxAt(0, 0, 0))
	})
}

func TestContainmentString(t *testing.T) {
	require.Equal(t, "Disjoint", Disjoint.String())
	require.Equal(t, "Intersects", Intersects.String())
	require.Equal(t, "Contains", Contains.String())
}
