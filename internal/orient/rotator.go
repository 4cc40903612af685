package orient

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rotator is an orientation as pitch, yaw and roll in degrees.
//
// Angles apply intrinsically: yaw about the local up axis (Z), then pitch
// about the local right axis (positive pitch lifts the nose), then roll
// about the local forward axis (X).
type Rotator struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

// Quaternion composes the rotator as qYaw * qPitch * qRoll.
func (r Rotator) Quaternion() rl.Quaternion {
	qYaw := rl.QuaternionFromAxisAngle(WorldUp, r.Yaw*rl.Deg2rad)
	qPitch := rl.QuaternionFromAxisAngle(rl.Vector3Negate(WorldRight), r.Pitch*rl.Deg2rad)
	qRoll := rl.QuaternionFromAxisAngle(WorldForward, r.Roll*rl.Deg2rad)
	return rl.QuaternionMultiply(rl.QuaternionMultiply(qYaw, qPitch), qRoll)
}

// Add returns the component-wise sum of two rotators.
func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{Pitch: r.Pitch + o.Pitch, Yaw: r.Yaw + o.Yaw, Roll: r.Roll + o.Roll}
}

// Normalize wraps every angle into (-180, 180].
func (r Rotator) Normalize() Rotator {
	return Rotator{
		Pitch: wrapDegrees(r.Pitch),
		Yaw:   wrapDegrees(r.Yaw),
		Roll:  wrapDegrees(r.Roll),
	}
}

// RotatorFromQuaternion decomposes q into intrinsic yaw, pitch and roll.
// Near pitch = ±90 yaw and roll become coupled; the split is whatever the
// extraction yields.
func RotatorFromQuaternion(q rl.Quaternion) Rotator {
	q = rl.QuaternionNormalize(q)
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)

	roll := math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinPitch := 2 * (w*y - z*x)
	if sinPitch > 1 {
		sinPitch = 1
	} else if sinPitch < -1 {
		sinPitch = -1
	}
	// Rotation about +Y tips the nose down, so the sign flips.
	pitch := -math.Asin(sinPitch)
	yaw := math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	return Rotator{
		Pitch: float32(pitch * 180 / math.Pi),
		Yaw:   float32(yaw * 180 / math.Pi),
		Roll:  float32(roll * 180 / math.Pi),
	}
}

func wrapDegrees(a float32) float32 {
	w := float32(math.Mod(float64(a), 360))
	if w > 180 {
		w -= 360
	} else if w <= -180 {
		w += 360
	}
	return w
}
