package components

import (
	"errors"
	"math"
	"testing"

	"boardingaction/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tickDelta = float32(1.0 / 60.0)

func vecNear(a, b rl.Vector3, eps float64) bool {
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

// recordingMover captures impulses forwarded by the reorienter.
type recordingMover struct {
	engine.BaseComponent
	impulses       []rl.Vector3
	velocityChange []bool
}

func (m *recordingMover) AddImpulse(impulse rl.Vector3, velocityChange bool) {
	m.impulses = append(m.impulses, impulse)
	m.velocityChange = append(m.velocityChange, velocityChange)
}

func (m *recordingMover) total() rl.Vector3 {
	var sum rl.Vector3
	for _, v := range m.impulses {
		sum = rl.Vector3Add(sum, v)
	}
	return sum
}

func newStaticBox(scene *engine.Scene, name string, center, size rl.Vector3) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = center
	obj.AddComponent(NewBoxCollider(size))
	scene.AddGameObject(obj)
	return obj
}

func tick(scene *engine.Scene, n int) {
	for i := 0; i < n; i++ {
		scene.Update(tickDelta)
	}
}

func expectPanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic wrapping %v", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("Expected error panic, got %T: %v", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("Expected %v, got %v", target, err)
		}
	}()
	fn()
}
