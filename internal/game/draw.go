package game

import (
	"boardingaction/internal/components"
	"boardingaction/internal/engine"
	"boardingaction/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	staticColor = rl.NewColor(90, 95, 110, 255)
	crateColor  = rl.Orange
	wireColor   = rl.NewColor(30, 30, 40, 255)
)

func drawScene(w *world.World) {
	for _, g := range w.Scene.GameObjects {
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		drawBox(g, box)
	}

	// Gravity indicator at the room center.
	dir := w.Gravity().Direction()
	center := rl.Vector3{Z: world.RoomHeight / 2}
	rl.DrawLine3D(center, rl.Vector3Add(center, rl.Vector3Scale(dir, 1.5)), rl.Yellow)
	rl.DrawSphere(rl.Vector3Add(center, rl.Vector3Scale(dir, 1.5)), 0.08, rl.Yellow)
}

func drawBox(g *engine.GameObject, box *components.BoxCollider) {
	center := box.GetCenter()
	size := box.GetWorldSize()
	color := staticColor
	if g.HasTag(world.TagCrate) {
		color = crateColor
	}
	rl.DrawCubeV(center, size, color)
	rl.DrawCubeWiresV(center, size, wireColor)
}
