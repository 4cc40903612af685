package gravity

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SlopeCosine converts a slope limit in degrees into the cosine threshold
// used by IsWalkable.
func SlopeCosine(slopeLimitDegrees float32) float32 {
	return float32(math.Cos(float64(slopeLimitDegrees) * math.Pi / 180))
}

// Alignment measures how a contact normal lines up with gravity.
// 0 means the normal points along gravity (ceiling), 1 perpendicular (wall),
// 2 straight against gravity (floor).
func Alignment(contactNormal, gravity rl.Vector3) float32 {
	return 1 - rl.Vector3DotProduct(Normalize(gravity), Normalize(contactNormal))
}

// IsWalkable reports whether a surface with the given normal counts as floor
// under gravity: the angle between the normal and the anti-gravity direction
// must be within the slope limit whose cosine is maxSlopeCosine.
// Without gravity nothing is walkable.
func IsWalkable(contactNormal, gravity rl.Vector3, maxSlopeCosine float32) bool {
	if rl.Vector3Length(gravity) == 0 || rl.Vector3Length(contactNormal) == 0 {
		return false
	}
	return Alignment(contactNormal, gravity)-1 >= maxSlopeCosine
}
