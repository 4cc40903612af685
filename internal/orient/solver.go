// Package orient computes the rotations that align a character's down axis
// with a gravity vector.
package orient

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParallelEpsilon is the cross product length below which two unit vectors
// are treated as parallel or anti-parallel.
const ParallelEpsilon = 1e-6

// World axes (Z up).
var (
	WorldUp      = rl.Vector3{X: 0, Y: 0, Z: 1}
	WorldDown    = rl.Vector3{X: 0, Y: 0, Z: -1}
	WorldForward = rl.Vector3{X: 1, Y: 0, Z: 0}
	WorldRight   = rl.Vector3{X: 0, Y: 1, Z: 0}
)

// Delta is a rotation as a unit axis and an angle in degrees.
// The zero value is the identity.
type Delta struct {
	Axis  rl.Vector3
	Angle float32
}

// IsIdentity reports whether the delta rotates nothing.
func (d Delta) IsIdentity() bool {
	return d.Angle == 0 || rl.Vector3Length(d.Axis) == 0
}

// Quaternion converts the delta into a unit quaternion.
func (d Delta) Quaternion() rl.Quaternion {
	if d.IsIdentity() {
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromAxisAngle(d.Axis, d.Angle*rl.Deg2rad)
}

// Rotator converts the delta into intrinsic yaw/pitch/roll angles.
func (d Delta) Rotator() Rotator {
	return RotatorFromQuaternion(d.Quaternion())
}

// Scale returns the same axis with the angle multiplied by f.
func (d Delta) Scale(f float32) Delta {
	return Delta{Axis: d.Axis, Angle: d.Angle * f}
}

// Rotate applies the delta to v.
func (d Delta) Rotate(v rl.Vector3) rl.Vector3 {
	if d.IsIdentity() {
		return v
	}
	return rl.Vector3RotateByQuaternion(v, d.Quaternion())
}

// Solve returns the rotation carrying referenceDown onto the direction of
// gravity. Zero gravity yields the identity; a zero reference falls back to
// WorldDown. When gravity is exactly opposite the reference the result is a
// half turn about FallbackAxis(referenceDown).
func Solve(referenceDown, gravity rl.Vector3) Delta {
	return SolveAround(referenceDown, gravity, rl.Vector3{})
}

// SolveAround is Solve with a preferred axis for the half turn of a reversal.
// The axis is projected perpendicular to referenceDown; when nothing is left
// of it FallbackAxis is used instead.
func SolveAround(referenceDown, gravity, halfTurnAxis rl.Vector3) Delta {
	g := unit(gravity)
	if g == (rl.Vector3{}) {
		return Delta{}
	}
	d := unit(referenceDown)
	if d == (rl.Vector3{}) {
		d = WorldDown
	}

	axis := rl.Vector3CrossProduct(d, g)
	sin := rl.Vector3Length(axis)
	cos := rl.Vector3DotProduct(d, g)

	if sin < ParallelEpsilon {
		if cos > 0 {
			return Delta{}
		}
		return Delta{Axis: halfTurnAxisFor(d, halfTurnAxis), Angle: 180}
	}

	angle := math.Atan2(float64(sin), float64(cos)) * 180 / math.Pi
	return Delta{
		Axis:  rl.Vector3Scale(axis, 1/sin),
		Angle: float32(angle),
	}
}

// SolveAbsolute returns the rotation from the fixed world down to gravity,
// i.e. the absolute target orientation of an otherwise unrotated actor.
func SolveAbsolute(gravity rl.Vector3) Delta {
	return Solve(WorldDown, gravity)
}

// FallbackAxis picks the half-turn axis for a reversal of down: world
// forward projected onto the plane perpendicular to down, or world right
// when down lies along forward.
func FallbackAxis(down rl.Vector3) rl.Vector3 {
	d := unit(down)
	if d == (rl.Vector3{}) {
		return WorldForward
	}
	for _, candidate := range []rl.Vector3{WorldForward, WorldRight} {
		p := rl.Vector3Subtract(candidate, rl.Vector3Scale(d, rl.Vector3DotProduct(candidate, d)))
		if l := rl.Vector3Length(p); l > 1e-3 {
			return rl.Vector3Scale(p, 1/l)
		}
	}
	// Unreachable for a unit down: it cannot lie along both forward and right.
	return WorldForward
}

func halfTurnAxisFor(down, preferred rl.Vector3) rl.Vector3 {
	p := rl.Vector3Subtract(preferred, rl.Vector3Scale(down, rl.Vector3DotProduct(preferred, down)))
	if l := rl.Vector3Length(p); l > 1e-3 {
		return rl.Vector3Scale(p, 1/l)
	}
	return FallbackAxis(down)
}

// DeltaFromQuaternion converts q into the shorter of its two axis-angle forms.
func DeltaFromQuaternion(q rl.Quaternion) Delta {
	q = rl.QuaternionNormalize(q)
	if q.W < 0 {
		q = rl.Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
	}
	v := rl.Vector3{X: q.X, Y: q.Y, Z: q.Z}
	s := rl.Vector3Length(v)
	if s < ParallelEpsilon {
		return Delta{}
	}
	angle := 2 * math.Atan2(float64(s), float64(q.W)) * 180 / math.Pi
	return Delta{Axis: rl.Vector3Scale(v, 1/s), Angle: float32(angle)}
}

// Between returns the world-frame rotation D with D * from = to.
func Between(from, to rl.Quaternion) Delta {
	return DeltaFromQuaternion(rl.QuaternionMultiply(to, rl.QuaternionInvert(from)))
}

func unit(v rl.Vector3) rl.Vector3 {
	l := rl.Vector3Length(v)
	if l == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, 1/l)
}
