package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject", rl.Vector3{X: 1, Y: 1, Z: 1})

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("UID should not be the zero UUID")
	}

	if !obj.Active {
		t.Error("new GameObject should be active")
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	size := rl.Vector3{X: 1, Y: 1, Z: 1}
	obj1 := NewGameObject("First", size)
	obj2 := NewGameObject("Second", size)

	if obj1.UID == obj2.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test", rl.Vector3{X: 1, Y: 1, Z: 1})
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2", rl.Vector3{X: 1, Y: 1, Z: 1})
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectBoundsFollowTransform(t *testing.T) {
	obj := NewGameObject("Mover", rl.Vector3{X: 2, Y: 4, Z: 6})
	obj.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: -5}

	b := obj.Bounds()
	if b.Min != (rl.Vector3{X: 9, Y: -2, Z: -8}) {
		t.Errorf("unexpected bounds min: %v", b.Min)
	}
	if b.Max != (rl.Vector3{X: 11, Y: 2, Z: -2}) {
		t.Errorf("unexpected bounds max: %v", b.Max)
	}

	obj.Transform.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}
	b = obj.Bounds()
	if b.Size().X != 4 {
		t.Errorf("scale should grow bounds, got size X %v", b.Size().X)
	}
}

type spyComponent struct {
	BaseComponent
	startCalls  int
	updateCalls int
	lastDelta   float32
}

func (s *spyComponent) Start() { s.startCalls++ }

func (s *spyComponent) Update(deltaTime float32) {
	s.updateCalls++
	s.lastDelta = deltaTime
}

func TestGameObjectComponentLifecycle(t *testing.T) {
	obj := NewGameObject("Test", rl.Vector3{X: 1, Y: 1, Z: 1})
	spy := &spyComponent{}
	obj.AddComponent(spy)

	if spy.GetGameObject() != obj {
		t.Error("AddComponent should wire the back-reference")
	}

	obj.Start()
	obj.Start()
	if spy.startCalls != 1 {
		t.Errorf("Start should run once, got %d", spy.startCalls)
	}

	obj.Update(0.016)
	if spy.updateCalls != 1 || spy.lastDelta != 0.016 {
		t.Errorf("Update not forwarded: calls=%d delta=%v", spy.updateCalls, spy.lastDelta)
	}

	obj.Active = false
	obj.Update(0.016)
	if spy.updateCalls != 1 {
		t.Error("inactive GameObject should not update components")
	}
}

func TestGetComponent(t *testing.T) {
	obj := NewGameObject("Test", rl.Vector3{X: 1, Y: 1, Z: 1})
	spy := &spyComponent{}
	obj.AddComponent(spy)

	found := GetComponent[*spyComponent](obj)
	if found != spy {
		t.Error("GetComponent should return the attached component")
	}

	missing := GetComponent[*OrbitMover](obj)
	if missing != nil {
		t.Error("GetComponent should return nil for missing component type")
	}
}
