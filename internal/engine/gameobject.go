package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"spatial3d/internal/spatial"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// GameObject is a scene entity. It embeds spatial.TreeItem so the scene's
// octree can track it.
type GameObject struct {
	spatial.TreeItem
	UID       uuid.UUID
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Size      rl.Vector3 // local-space bounding box size
	Color     rl.Color
	Scene     *Scene

	components []Component
	started    bool
	lastBounds spatial.Region
}

func NewGameObject(name string, size rl.Vector3) *GameObject {
	return &GameObject{
		UID:    uuid.New(),
		Name:   name,
		Active: true,
		Size:   size,
		Color:  rl.White,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
	}
}

// Bounds satisfies spatial.Item: the world-space box around the object at
// its current transform.
func (g *GameObject) Bounds() spatial.Region {
	size := rl.Vector3{
		X: g.Size.X * g.Transform.Scale.X,
		Y: g.Size.Y * g.Transform.Scale.Y,
		Z: g.Size.Z * g.Transform.Scale.Z,
	}
	return spatial.NewRegionFromCenter(g.Transform.Position, size)
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of the requested type.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
