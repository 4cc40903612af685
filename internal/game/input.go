package game

import (
	"boardingaction/internal/orient"
	"boardingaction/internal/world"
)

// Input is one frame of player intent, already mapped from devices.
type Input struct {
	Turn    float32 // mouse X delta scaled by sensitivity
	LookUp  float32 // mouse Y delta scaled by sensitivity
	Forward float32 // -1..1
	Right   float32 // -1..1
	Jump    bool
	Fire    bool
	// CycleGravity is the "change gravity direction" action.
	CycleGravity bool
	ToggleDebug  bool
}

// Apply routes the input to the player's components. Camera yaw is handed
// over to the body each frame so walking follows the view.
func Apply(w *world.World, in Input) {
	look := w.Look()
	look.Turn(in.Turn)
	look.LookUp(in.LookUp)
	if yaw := look.ConsumeYaw(); yaw != 0 {
		w.Player().Transform.AddLocalRotation(orient.Rotator{Yaw: yaw}.Quaternion())
	}

	move := w.Movement()
	move.SetMoveInput(in.Forward, in.Right)
	if in.Jump {
		move.Jump()
	}

	if in.Fire {
		look.Fire()
	}
	if in.CycleGravity {
		w.CycleGravity()
	}
}
