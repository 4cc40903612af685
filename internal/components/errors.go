package components

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Attachment failures. Components that need these collaborators panic with
// one of them from Start, since ticking without them is a setup bug.
var (
	ErrNoGameObject   = errors.New("component is not attached to a game object")
	ErrNoGravityStore = errors.New("game object has no scene gravity store")
	ErrNoMover        = errors.New("game object has no impulse receiver")
	ErrNoRigidbody    = errors.New("game object has no rigidbody")
)

// ImpulseReceiver is the movement simulation handle gravity is forwarded to.
// With velocityChange set the impulse is applied as a raw velocity change,
// ignoring mass.
type ImpulseReceiver interface {
	AddImpulse(impulse rl.Vector3, velocityChange bool)
}
