package engine

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/segmentio/encoding/json"

	"spatial3d/internal/spatial"
)

// SceneFile is the on-disk description of a scene: the world volume the
// octree covers plus the objects to place in it.
type SceneFile struct {
	World   WorldDef    `json:"world"`
	Objects []ObjectDef `json:"objects"`
}

type WorldDef struct {
	Min      [3]float32 `json:"min"`
	Max      [3]float32 `json:"max"`
	MaxDepth int        `json:"maxDepth"`
}

type ObjectDef struct {
	Name     string     `json:"name"`
	Tags     []string   `json:"tags,omitempty"`
	Position [3]float32 `json:"position"`
	Size     [3]float32 `json:"size"`
	Color    string     `json:"color,omitempty"`
	Orbit    *OrbitDef  `json:"orbit,omitempty"`
}

type OrbitDef struct {
	Radius float32 `json:"radius"`
	Speed  float32 `json:"speed"`
	Phase  float32 `json:"phase,omitempty"`
}

var colorNames = map[string]rl.Color{
	"white":  rl.White,
	"red":    rl.Red,
	"green":  rl.Green,
	"blue":   rl.Blue,
	"yellow": rl.Yellow,
	"orange": rl.Orange,
	"purple": rl.Purple,
	"pink":   rl.Pink,
	"gray":   rl.Gray,
	"brown":  rl.Brown,
}

func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}
	return &sf, nil
}

func SaveSceneFile(path string, sf *SceneFile) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scene file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scene file %s: %w", path, err)
	}
	return nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Build instantiates the described scene, applying one Swap so every
// object is already placed in the tree when Build returns.
func (sf *SceneFile) Build(name string) (*Scene, error) {
	world := spatial.NewRegion(vec3(sf.World.Min), vec3(sf.World.Max))
	if !world.IsValid() {
		return nil, fmt.Errorf("scene %s: invalid world bounds min=%v max=%v", name, sf.World.Min, sf.World.Max)
	}

	scene := NewScene(name, world, sf.World.MaxDepth)
	for _, def := range sf.Objects {
		g := NewGameObject(def.Name, vec3(def.Size))
		g.Transform.Position = vec3(def.Position)
		g.Tags = def.Tags
		if def.Color != "" {
			c, ok := colorNames[def.Color]
			if !ok {
				return nil, fmt.Errorf("scene %s: object %s has unknown color %q", name, def.Name, def.Color)
			}
			g.Color = c
		}
		if def.Orbit != nil {
			g.AddComponent(NewOrbitMover(g.Transform.Position, def.Orbit.Radius, def.Orbit.Speed, def.Orbit.Phase))
		}
		scene.AddGameObject(g)
	}
	scene.Tree.Swap()
	return scene, nil
}
