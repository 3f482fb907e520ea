package main

import (
	"fmt"
	"log"
	"math"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"spatial3d/internal/engine"
	"spatial3d/internal/spatial"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	nearPlane    = 0.1
	farPlane     = 500.0
	pickDistance = 200.0
)

type viewer struct {
	scene  *engine.Scene
	camera rl.Camera3D

	showOctree   bool
	skipEmpty    bool
	paused       bool
	freezeCull   bool
	frozenFrust  spatial.Frustum
	frozenCamPos rl.Vector3

	// cubePool holds the demo cubes; the HUD slider controls how many of
	// them are in the scene. Empty when viewing a scene file.
	cubePool   []*engine.GameObject
	cubeTarget float32

	selected *engine.GameObject
	visible  []*engine.GameObject

	hits spatial.HitSet
}

func main() {
	scene, pool, err := loadScene()
	if err != nil {
		log.Fatalf("loading scene: %v", err)
	}

	v := &viewer{
		scene:      scene,
		cubePool:   pool,
		cubeTarget: float32(len(pool)),
		skipEmpty:  true,
		camera: rl.Camera3D{
			Position:   rl.Vector3{X: 45, Y: 35, Z: 45},
			Target:     rl.Vector3{},
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       60,
			Projection: rl.CameraPerspective,
		},
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(screenWidth, screenHeight, "Octree Viewer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	v.scene.Start()

	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}
}

func loadScene() (*engine.Scene, []*engine.GameObject, error) {
	if len(os.Args) > 1 {
		sf, err := engine.LoadSceneFile(os.Args[1])
		if err != nil {
			return nil, nil, err
		}
		scene, err := sf.Build(os.Args[1])
		return scene, nil, err
	}
	scene, pool := demoScene()
	return scene, pool, nil
}

// demoScene builds a ring of orbiting cubes plus a few static blocks so
// culling and collapse behavior is visible without a scene file.
func demoScene() (*engine.Scene, []*engine.GameObject) {
	world := spatial.NewRegion(
		rl.Vector3{X: -64, Y: -64, Z: -64},
		rl.Vector3{X: 64, Y: 64, Z: 64},
	)
	scene := engine.NewScene("demo", world, 6)

	colors := []rl.Color{rl.Red, rl.Green, rl.Blue, rl.Yellow, rl.Orange, rl.Purple}
	const count = 48
	pool := make([]*engine.GameObject, 0, count)
	for i := 0; i < count; i++ {
		angle := float64(i) / count * 2 * math.Pi
		ring := 14 + float32(i%3)*9
		pos := rl.Vector3{
			X: float32(math.Cos(angle)) * ring,
			Y: float32(i%5)*4 - 8,
			Z: float32(math.Sin(angle)) * ring,
		}

		g := engine.NewGameObject(fmt.Sprintf("cube-%02d", i), rl.Vector3{X: 2, Y: 2, Z: 2})
		g.Transform.Position = pos
		g.Color = colors[i%len(colors)]
		g.Tags = []string{"cube"}
		g.AddComponent(engine.NewOrbitMover(pos, 3+float32(i%4), 0.4+float32(i%3)*0.3, float32(angle)))
		scene.AddGameObject(g)
		pool = append(pool, g)
	}

	for i := 0; i < 4; i++ {
		g := engine.NewGameObject(fmt.Sprintf("pillar-%d", i), rl.Vector3{X: 3, Y: 20, Z: 3})
		g.Transform.Position = rl.Vector3{
			X: float32(i%2)*60 - 30,
			Y: 0,
			Z: float32(i/2)*60 - 30,
		}
		g.Color = rl.Gray
		g.Tags = []string{"pillar"}
		scene.AddGameObject(g)
	}

	scene.Tree.Swap()
	return scene, pool
}

// syncCubeCount adds or removes pooled demo cubes until the scene holds the
// slider's target number. One object per frame keeps the churn visible.
func (v *viewer) syncCubeCount() {
	target := int(v.cubeTarget)
	active := 0
	for _, g := range v.cubePool {
		if g.Scene != nil {
			active++
		}
	}
	if active < target {
		for _, g := range v.cubePool {
			if g.Scene == nil {
				v.scene.AddGameObject(g)
				break
			}
		}
	} else if active > target {
		for i := len(v.cubePool) - 1; i >= 0; i-- {
			if g := v.cubePool[i]; g.Scene != nil {
				if g == v.selected {
					v.selected = nil
				}
				v.scene.RemoveGameObject(g)
				break
			}
		}
	}
}

func (v *viewer) cullFrustum() *spatial.Frustum {
	if v.freezeCull {
		return &v.frozenFrust
	}
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	f := spatial.FrustumFromCamera(v.camera, aspect, nearPlane, farPlane)
	return &f
}

func (v *viewer) update() {
	dt := rl.GetFrameTime()

	rl.UpdateCamera(&v.camera, rl.CameraOrbital)

	if rl.IsKeyPressed(rl.KeyF) {
		v.freezeCull = !v.freezeCull
		if v.freezeCull {
			aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
			v.frozenFrust = spatial.FrustumFromCamera(v.camera, aspect, nearPlane, farPlane)
			v.frozenCamPos = v.camera.Position
		}
	}
	if rl.IsKeyPressed(rl.KeyO) {
		v.showOctree = !v.showOctree
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		v.pick()
	}

	if len(v.cubePool) > 0 {
		v.syncCubeCount()
	}

	// The tick: component updates, queued moves, then one Swap. The pick
	// raycast queued above resolves inside this same Swap.
	if v.paused {
		v.scene.Tree.Swap() // picks and add/removes still resolve
	} else {
		v.scene.Update(dt)
	}

	frustum := v.cullFrustum()
	vol := spatial.FrustumVolume(*frustum)
	v.visible = v.visible[:0]
	v.scene.Tree.CollectVisible(vol, true, func(it spatial.Item) {
		v.visible = append(v.visible, it.(*engine.GameObject))
	}, func(it spatial.Item, volume *spatial.Volume, containsOnly bool) bool {
		if containsOnly {
			return true
		}
		return volume.ContainsRegion(it.Bounds()) != spatial.Disjoint
	})
}

// pick queues a raycast under the mouse cursor; the nearest hit becomes the
// selected object once the scene tick resolves it.
func (v *viewer) pick() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), v.camera)
	seg := spatial.Segment{
		From: ray.Position,
		To:   rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, pickDistance)),
	}

	v.hits.Reset()
	v.scene.Tree.RaycastAsync(seg, &v.hits, func(it spatial.Item, s spatial.Segment) (float32, any, bool) {
		b := it.Bounds()
		coll := rl.GetRayCollisionBox(ray, rl.NewBoundingBox(b.Min, b.Max))
		if !coll.Hit || coll.Distance > pickDistance {
			return 0, nil, false
		}
		return coll.Distance, coll.Point, true
	}, func(results *spatial.HitSet) {
		if hit, ok := results.Nearest(); ok {
			v.selected = hit.Item.(*engine.GameObject)
		} else {
			v.selected = nil
		}
	})
}

func (v *viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 28, 255))

	rl.BeginMode3D(v.camera)
	rl.DrawGrid(32, 4)

	for _, g := range v.visible {
		size := g.Bounds().Size()
		rl.DrawCubeV(g.Transform.Position, size, g.Color)
		if g == v.selected {
			rl.DrawCubeWiresV(g.Transform.Position, rl.Vector3Scale(size, 1.1), rl.White)
		}
	}

	if v.showOctree {
		var frustum *spatial.Frustum
		if v.freezeCull {
			frustum = &v.frozenFrust
		}
		v.scene.Tree.DebugRender(v.skipEmpty, frustum, func(center, size rl.Vector3, color rl.Color) {
			rl.DrawCubeWiresV(center, size, color)
		})
	}

	if v.freezeCull {
		rl.DrawSphere(v.frozenCamPos, 0.8, rl.Magenta)
	}
	rl.EndMode3D()

	v.drawHUD()
	rl.EndDrawing()
}

func (v *viewer) drawHUD() {
	tree := v.scene.Tree
	rl.DrawRectangle(10, 10, 260, 200, rl.NewColor(0, 0, 0, 160))

	rl.DrawText(fmt.Sprintf("items %d  nodes %d", tree.Len(), tree.NodeCount()), 20, 20, 18, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("visible %d / %d", len(v.visible), len(v.scene.GameObjects)), 20, 44, 18, rl.RayWhite)
	rl.DrawFPS(20, 68)

	v.showOctree = gui.CheckBox(rl.NewRectangle(20, 96, 18, 18), "Octree [O]", v.showOctree)
	v.skipEmpty = gui.CheckBox(rl.NewRectangle(20, 120, 18, 18), "Skip empty", v.skipEmpty)
	v.paused = gui.CheckBox(rl.NewRectangle(150, 120, 18, 18), "Pause", v.paused)
	frozen := gui.CheckBox(rl.NewRectangle(150, 96, 18, 18), "Freeze [F]", v.freezeCull)
	if frozen != v.freezeCull {
		v.freezeCull = frozen
		if frozen {
			aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
			v.frozenFrust = spatial.FrustumFromCamera(v.camera, aspect, nearPlane, farPlane)
			v.frozenCamPos = v.camera.Position
		}
	}

	if len(v.cubePool) > 0 {
		v.cubeTarget = gui.Slider(rl.NewRectangle(60, 148, 150, 18), "Cubes",
			fmt.Sprintf("%d", int(v.cubeTarget)), v.cubeTarget, 0, float32(len(v.cubePool)))
	}

	if v.selected != nil {
		rl.DrawText(fmt.Sprintf("selected: %s", v.selected.Name), 20, 176, 16, rl.Yellow)
	}
}
