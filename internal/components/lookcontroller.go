package components

import (
	"boardingaction/internal/engine"
	"boardingaction/internal/logger"
	"boardingaction/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PitchLimit bounds how far the camera looks up or down, in degrees.
const PitchLimit = 85.0

// LookController holds the first-person camera rotation relative to the
// actor. Input arrives as Turn/LookUp axis values.
type LookController struct {
	engine.BaseComponent
	TurnRate   float32
	LookUpRate float32
	EyeHeight  float32

	rotation orient.Rotator
}

func NewLookController() *LookController {
	return &LookController{
		TurnRate:   1,
		LookUpRate: 1,
		EyeHeight:  0.64,
	}
}

// Turn yaws the camera about the actor's up axis. Roll is cleared, since
// local yaw on a pitched camera would otherwise leak into it.
func (l *LookController) Turn(value float32) {
	if value == 0 {
		return
	}
	l.rotation.Yaw += value * l.TurnRate
	l.rotation.Roll = 0
	l.rotation = l.rotation.Normalize()
}

// LookUp pitches the camera. Inputs that would leave (-PitchLimit,
// PitchLimit) are dropped.
func (l *LookController) LookUp(value float32) {
	pitch := l.rotation.Pitch - value*l.LookUpRate
	if pitch < PitchLimit && pitch > -PitchLimit {
		l.rotation.Pitch = pitch
	}
}

// ConsumeYaw returns the accumulated yaw and clears it, for callers that turn
// the actor body instead of the camera.
func (l *LookController) ConsumeYaw() float32 {
	yaw := l.rotation.Yaw
	l.rotation.Yaw = 0
	return yaw
}

// LookRotation returns the camera rotation relative to the actor.
func (l *LookController) LookRotation() orient.Rotator {
	return l.rotation
}

// WorldLook returns the camera's world-space forward and up vectors.
func (l *LookController) WorldLook() (forward, up rl.Vector3) {
	g := l.GetGameObject()
	q := l.rotation.Quaternion()
	if g != nil {
		q = rl.QuaternionMultiply(g.Transform.Rotation, q)
	}
	return rl.Vector3RotateByQuaternion(engine.LocalForward, q), rl.Vector3RotateByQuaternion(engine.LocalUp, q)
}

// EyePosition is the camera position in world space.
func (l *LookController) EyePosition() rl.Vector3 {
	g := l.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return rl.Vector3Add(g.Transform.Position, rl.Vector3Scale(g.Transform.Up(), l.EyeHeight))
}

// GetLookDirection implements engine.LookProvider.
func (l *LookController) GetLookDirection() (x, y, z float32) {
	f, _ := l.WorldLook()
	return f.X, f.Y, f.Z
}

// GetEyeHeight implements engine.LookProvider.
func (l *LookController) GetEyeHeight() float32 {
	return l.EyeHeight
}

// Fire is the weapon trigger. Projectiles are not implemented.
func (l *LookController) Fire() {
	logger.Named("look").Debug("fire ignored: no projectile class")
}
