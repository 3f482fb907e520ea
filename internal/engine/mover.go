package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitMover circles an object around its start position on the XZ plane
// with a sinusoidal bob on Y, keeping demo scenes in constant motion.
type OrbitMover struct {
	BaseComponent
	StartPosition rl.Vector3
	Radius        float32
	Speed         float32
	BobHeight     float32
	Phase         float32
	time          float32
}

func NewOrbitMover(startPos rl.Vector3, radius, speed, phase float32) *OrbitMover {
	return &OrbitMover{
		StartPosition: startPos,
		Radius:        radius,
		Speed:         speed,
		BobHeight:     1.5,
		Phase:         phase,
	}
}

func (m *OrbitMover) Update(deltaTime float32) {
	g := m.GetGameObject()
	if g == nil {
		return
	}

	m.time += deltaTime

	t := m.time*m.Speed + m.Phase
	offset := rl.Vector3{
		X: float32(math.Cos(float64(t))) * m.Radius,
		Y: float32(math.Sin(float64(t*2))) * m.BobHeight,
		Z: float32(math.Sin(float64(t))) * m.Radius,
	}

	g.Transform.Position = rl.Vector3Add(m.StartPosition, offset)
}
