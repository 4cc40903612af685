package world

import (
	"math"
	"testing"

	"boardingaction/internal/components"
	"boardingaction/internal/config"
	"boardingaction/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tickDelta = float32(1.0 / 60.0)

func vecNear(a, b rl.Vector3, eps float64) bool {
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func step(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(tickDelta)
	}
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return w
}

func TestNewBuildsRoom(t *testing.T) {
	w := newTestWorld(t)

	if got := len(w.Physics.Statics); got != 6 {
		t.Errorf("Expected 6 static pieces, got %d", got)
	}
	if got := w.Physics.DynamicObjectCount(); got != len(crateSpawns) {
		t.Errorf("Expected %d crates, got %d", len(crateSpawns), got)
	}
	if w.Scene.World != w {
		t.Error("Scene should reach the world for collider queries")
	}
	if p := w.Player(); p == nil || w.Scene.FindByName("Player") != p {
		t.Fatal("Player should be in the scene")
	}
	if len(w.Scene.FindByTag(TagCrate)) != len(crateSpawns) {
		t.Error("Crates should carry the crate tag")
	}
	if w.Gravity().Get() != (rl.Vector3{Z: -9.8}) {
		t.Errorf("Expected default gravity, got %v", w.Gravity().Get())
	}
}

func TestPlayerStandsOnFloor(t *testing.T) {
	w := newTestWorld(t)

	step(w, 30)

	if !w.Movement().IsGrounded() {
		t.Fatal("Player should stand on the floor")
	}
	if z := w.Player().Transform.Position.Z; math.Abs(float64(z-0.9)) > 0.05 {
		t.Errorf("Expected player at z=0.9, got %v", z)
	}
}

func TestCratesComeToRest(t *testing.T) {
	w := newTestWorld(t)

	step(w, 300)

	for _, crate := range w.Physics.Objects {
		rb := engine.GetComponent[*components.Rigidbody](crate)
		if !rb.IsSleeping {
			t.Errorf("%s should be asleep, velocity %v", crate.Name, rb.Velocity)
		}
		if z := crate.Transform.Position.Z; math.Abs(float64(z-0.5)) > 0.05 {
			t.Errorf("%s should rest on the floor, z=%v", crate.Name, z)
		}
	}
}

func TestCycleToUpWalksOnCeiling(t *testing.T) {
	w := newTestWorld(t)
	step(w, 30)

	if g := w.CycleGravity(); g != (rl.Vector3{Z: 9.8}) {
		t.Fatalf("Expected gravity up, got %v", g)
	}
	step(w, 240)

	player := w.Player()
	if down := player.Transform.Down(); !vecNear(down, rl.Vector3{Z: 1}, 1e-2) {
		t.Errorf("Expected player down (0,0,1), got %v", down)
	}
	if !w.Movement().IsGrounded() {
		t.Fatal("Player should be grounded on the ceiling")
	}
	if n := w.Movement().FloorHit().Normal; !vecNear(n, rl.Vector3{Z: -1}, 1e-4) {
		t.Errorf("Expected ceiling normal (0,0,-1), got %v", n)
	}
	if z := player.Transform.Position.Z; math.Abs(float64(z-(RoomHeight-0.9))) > 0.05 {
		t.Errorf("Expected player hanging at z=%v, got %v", RoomHeight-0.9, z)
	}

	for _, crate := range w.Physics.Objects {
		if z := crate.Transform.Position.Z; z < RoomHeight-CrateSize {
			t.Errorf("%s should have fallen to the ceiling, z=%v", crate.Name, z)
		}
	}
}

func TestCycleWrapsAround(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < len(w.Cycle.Steps); i++ {
		w.CycleGravity()
	}

	if g := w.Gravity().Get(); g != (rl.Vector3{Z: -9.8}) {
		t.Errorf("Full cycle should return to down, got %v", g)
	}
}

func TestApplyConfig(t *testing.T) {
	w := newTestWorld(t)

	cfg := config.Default()
	cfg.Reorient.RotationRate = 4
	cfg.Reorient.Frame = config.FrameWorld
	cfg.Movement.SlopeLimit = 30
	cfg.Gravity.Cycle = []config.Vec3{{0, 0, -9.8}, {9.8, 0, 0}}

	if err := w.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}
	if w.Reorienter().RotationRate != 4 || w.Reorienter().Frame != components.FrameWorld {
		t.Errorf("Reorienter not updated: rate %v frame %v", w.Reorienter().RotationRate, w.Reorienter().Frame)
	}
	if w.Movement().SlopeLimit != 30 {
		t.Errorf("Slope limit not updated: %v", w.Movement().SlopeLimit)
	}
	if g := w.CycleGravity(); g != (rl.Vector3{X: 9.8}) {
		t.Errorf("Expected the new cycle, got %v", g)
	}

	cfg.Reorient.Frame = "camera"
	if err := w.ApplyConfig(cfg); err == nil {
		t.Error("Expected unknown frame to be rejected")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.TickRate = 0
	if _, err := New(cfg); err == nil {
		t.Error("Expected invalid config to be rejected")
	}
}

func TestSpawnIntoSidewaysGravity(t *testing.T) {
	cfg := config.Default()
	cfg.Gravity.Default = config.Vec3{0, 9.8, 0}
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	step(w, 240)

	if down := w.Player().Transform.Down(); !vecNear(down, rl.Vector3{Y: 1}, 1e-2) {
		t.Errorf("Expected player down (0,1,0), got %v", down)
	}
	if !w.Movement().IsGrounded() {
		t.Error("Player should stand on the +Y wall")
	}
}

func TestPhysicsWorldRemoveObject(t *testing.T) {
	p := NewPhysicsWorld()
	crate := engine.NewGameObject("Crate")
	crate.AddComponent(components.NewRigidbody())
	crate.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	p.AddObject(crate)

	if p.DynamicObjectCount() != 1 {
		t.Fatalf("Expected one dynamic object, got %d", p.DynamicObjectCount())
	}
	p.RemoveObject(crate)
	if p.DynamicObjectCount() != 0 || len(p.GetCollidableObjects()) != 0 {
		t.Error("Object should be removed")
	}
}

func TestPhysicsWorldBounceAndFriction(t *testing.T) {
	p := NewPhysicsWorld()
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Z: -0.5}
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: 10, Y: 10, Z: 1}))
	p.AddObject(floor)

	crate := engine.NewGameObject("Crate")
	crate.Transform.Position = rl.Vector3{Z: 0.45}
	rb := components.NewRigidbody()
	rb.Velocity = rl.Vector3{X: 2, Z: -5}
	crate.AddComponent(rb)
	crate.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	p.AddObject(crate)

	rb.CanSleep = false
	p.Update(0)

	if p.Contacts() != 1 {
		t.Errorf("Expected one contact, got %d", p.Contacts())
	}
	if z := crate.Transform.Position.Z; math.Abs(float64(z-0.5)) > 1e-5 {
		t.Errorf("Crate should be pushed onto the floor, z=%v", z)
	}
	want := rl.Vector3{X: 2 * (1 - rb.Friction), Z: 5 * rb.Bounciness}
	if !vecNear(rb.Velocity, want, 1e-5) {
		t.Errorf("Expected velocity %v, got %v", want, rb.Velocity)
	}
}
