package engine

import (
	"spatial3d/internal/spatial"
)

// Scene owns the game objects and the octree that indexes them. All tree
// reads and the per-tick Swap happen on the goroutine calling Update;
// other goroutines may add and remove objects at any time because those
// only enqueue.
type Scene struct {
	Name        string
	Tree        *spatial.Octree
	GameObjects []*GameObject
}

func NewScene(name string, worldBounds spatial.Region, maxDepth int) *Scene {
	return &Scene{
		Name:        name,
		Tree:        spatial.NewOctree(worldBounds, maxDepth),
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	g.lastBounds = g.Bounds()
	s.GameObjects = append(s.GameObjects, g)
	s.Tree.Add(g)
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	s.Tree.Remove(g)
	g.Scene = nil
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update advances every object, queues octree moves for objects whose
// bounds changed, then drains the tree's pending queues. This is the
// single-writer tick.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
	for _, g := range s.GameObjects {
		if b := g.Bounds(); b != g.lastBounds {
			g.lastBounds = b
			s.Tree.Move(g)
		}
	}
	s.Tree.Swap()
}
