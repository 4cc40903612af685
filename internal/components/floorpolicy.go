package components

import (
	"boardingaction/internal/gravity"
	"boardingaction/internal/orient"
	"boardingaction/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FloorPolicy decides which contacts count as ground. CharacterMovement
// consults it for every contact found during a move.
type FloorPolicy interface {
	// IsWalkable reports whether the surface is floor rather than wall.
	IsWalkable(hit physics.Hit, maxSlopeCosine float32) bool
	// IsValidLandingSpot reports whether a body moving with velocity may
	// come to rest on the surface.
	IsValidLandingSpot(hit physics.Hit, velocity rl.Vector3, maxSlopeCosine float32) bool
}

// DefaultFloorPolicy measures slopes against the fixed world up axis.
type DefaultFloorPolicy struct{}

func (DefaultFloorPolicy) IsWalkable(hit physics.Hit, maxSlopeCosine float32) bool {
	return gravity.IsWalkable(hit.Normal, orient.WorldDown, maxSlopeCosine)
}

func (p DefaultFloorPolicy) IsValidLandingSpot(hit physics.Hit, velocity rl.Vector3, maxSlopeCosine float32) bool {
	return p.IsWalkable(hit, maxSlopeCosine) && movingInto(hit, velocity)
}

// GravityFloorPolicy measures slopes against the current gravity vector, so
// walls and ceilings become floor when gravity points at them.
type GravityFloorPolicy struct {
	Store *gravity.Store
}

func (p GravityFloorPolicy) IsWalkable(hit physics.Hit, maxSlopeCosine float32) bool {
	return gravity.IsWalkable(hit.Normal, p.Store.Get(), maxSlopeCosine)
}

func (p GravityFloorPolicy) IsValidLandingSpot(hit physics.Hit, velocity rl.Vector3, maxSlopeCosine float32) bool {
	return p.IsWalkable(hit, maxSlopeCosine) && movingInto(hit, velocity)
}

func movingInto(hit physics.Hit, velocity rl.Vector3) bool {
	return rl.Vector3DotProduct(velocity, hit.Normal) <= 0
}
