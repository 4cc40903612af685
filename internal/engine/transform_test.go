package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()

	if tr.Rotation != rl.QuaternionIdentity() {
		t.Errorf("Expected identity rotation, got %v", tr.Rotation)
	}
	if !near(tr.Down(), rl.Vector3{Z: -1}) {
		t.Errorf("Expected down (0,0,-1), got %v", tr.Down())
	}
	if !near(tr.Forward(), LocalForward) {
		t.Errorf("Expected forward (1,0,0), got %v", tr.Forward())
	}
}

func TestAddLocalRotationUsesLocalAxes(t *testing.T) {
	tr := NewTransform()

	// Yaw 90 degrees about up, then a local roll about the new forward (+Y).
	tr.AddLocalRotation(rl.QuaternionFromAxisAngle(LocalUp, math.Pi/2))
	if !near(tr.Forward(), rl.Vector3{Y: 1}) {
		t.Fatalf("Expected forward (0,1,0) after yaw, got %v", tr.Forward())
	}

	tr.AddLocalRotation(rl.QuaternionFromAxisAngle(LocalForward, math.Pi/2))
	if !near(tr.Forward(), rl.Vector3{Y: 1}) {
		t.Errorf("Roll should keep forward, got %v", tr.Forward())
	}
	// Rolling about the yawed forward (+Y) swings up toward +X.
	if !near(tr.Up(), rl.Vector3{X: 1}) {
		t.Errorf("Expected up (1,0,0) after local roll, got %v", tr.Up())
	}
}

func TestAddWorldRotation(t *testing.T) {
	tr := NewTransform()
	tr.AddLocalRotation(rl.QuaternionFromAxisAngle(LocalUp, math.Pi/2))
	tr.AddWorldRotation(rl.QuaternionFromAxisAngle(LocalForward, math.Pi/2))

	// World roll about +X leaves the yawed forward (+Y) pointing at +Z.
	if !near(tr.Forward(), rl.Vector3{Z: 1}) {
		t.Errorf("Expected forward (0,0,1), got %v", tr.Forward())
	}
}

func TestInverseTransformDirection(t *testing.T) {
	tr := NewTransform()
	tr.AddLocalRotation(rl.QuaternionFromAxisAngle(rl.Vector3{X: 1, Y: 1, Z: 0}, 1.2))

	v := rl.Vector3{X: 0.3, Y: -2, Z: 1}
	back := tr.InverseTransformDirection(tr.TransformDirection(v))
	if !near(v, back) {
		t.Errorf("Round trip mismatch: %v vs %v", v, back)
	}
}

func TestWorldRotationComposesParent(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)

	parent.Transform.Position = rl.Vector3{X: 5}
	parent.Transform.AddLocalRotation(rl.QuaternionFromAxisAngle(LocalUp, math.Pi/2))
	child.Transform.Position = rl.Vector3{X: 1}

	if !near(child.WorldPosition(), rl.Vector3{X: 5, Y: 1}) {
		t.Errorf("Expected child at (5,1,0), got %v", child.WorldPosition())
	}

	fwd := rl.Vector3RotateByQuaternion(LocalForward, child.WorldRotation())
	if !near(fwd, rl.Vector3{Y: 1}) {
		t.Errorf("Expected child forward (0,1,0), got %v", fwd)
	}
}
