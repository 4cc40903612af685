package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Local axes of an unrotated object (Z up, X forward, Y right).
var (
	LocalForward = rl.Vector3{X: 1, Y: 0, Z: 0}
	LocalRight   = rl.Vector3{X: 0, Y: 1, Z: 0}
	LocalUp      = rl.Vector3{X: 0, Y: 0, Z: 1}
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion // unit quaternion, local to world
	Scale    rl.Vector3
}

// NewTransform returns an identity transform at the origin.
func NewTransform() Transform {
	return Transform{
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// AddLocalRotation applies q in the object's own frame (Rotation * q).
func (t *Transform) AddLocalRotation(q rl.Quaternion) {
	t.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(t.Rotation, q))
}

// AddWorldRotation applies q about world axes (q * Rotation).
func (t *Transform) AddWorldRotation(q rl.Quaternion) {
	t.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(q, t.Rotation))
}

// TransformDirection rotates a local-space direction into world space.
func (t Transform) TransformDirection(v rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(v, t.Rotation)
}

// InverseTransformDirection rotates a world-space direction into local space.
func (t Transform) InverseTransformDirection(v rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(v, rl.QuaternionInvert(t.Rotation))
}

func (t Transform) Forward() rl.Vector3 { return t.TransformDirection(LocalForward) }
func (t Transform) Right() rl.Vector3   { return t.TransformDirection(LocalRight) }
func (t Transform) Up() rl.Vector3      { return t.TransformDirection(LocalUp) }

// Down is the negated up axis, the direction the object treats as "floor".
func (t Transform) Down() rl.Vector3 { return rl.Vector3Negate(t.Up()) }
