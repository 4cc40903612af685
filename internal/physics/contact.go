package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Hit describes one contact found while moving a body.
type Hit struct {
	Normal  rl.Vector3 // unit, pointing away from the surface toward the body
	Point   rl.Vector3 // approximate contact point on the surface
	PushOut rl.Vector3 // translation that separated the body
	Object  any        // the collider's owner, if known
}

// PushNormal converts a push-out vector into the unit contact normal.
// A zero push-out yields a zero normal.
func PushNormal(pushOut rl.Vector3) rl.Vector3 {
	l := rl.Vector3Length(pushOut)
	if l == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(pushOut, 1/l)
}

// ContactPoint estimates the contact on the face of 'body' opposite the push.
func ContactPoint(body AABB, normal rl.Vector3) rl.Vector3 {
	center := body.Center()
	half := rl.Vector3Scale(body.Size(), 0.5)
	return rl.Vector3{
		X: center.X - normal.X*half.X,
		Y: center.Y - normal.Y*half.Y,
		Z: center.Z - normal.Z*half.Z,
	}
}

// NewHit builds a Hit for a body that was pushed out by pushOut.
func NewHit(body AABB, pushOut rl.Vector3, object any) Hit {
	n := PushNormal(pushOut)
	return Hit{
		Normal:  n,
		Point:   ContactPoint(body.Translate(pushOut), n),
		PushOut: pushOut,
		Object:  object,
	}
}

// RemoveAlong strips the component of v along unit direction n when it
// points into the surface (dot(v, n) < 0).
func RemoveAlong(v, n rl.Vector3) rl.Vector3 {
	d := rl.Vector3DotProduct(v, n)
	if d >= 0 {
		return v
	}
	return rl.Vector3Subtract(v, rl.Vector3Scale(n, d))
}

func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
