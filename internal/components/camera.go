package components

import (
	"boardingaction/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera produces the raylib camera for an actor. Its up vector follows the
// actor's up, so the view rolls with the character when gravity changes.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	forward := g.Transform.Forward()
	up := g.Transform.Up()

	if look := engine.GetComponent[*LookController](g); look != nil {
		eyePos = look.EyePosition()
		forward, up = look.WorldLook()
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         up,
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
