package components

import (
	"fmt"

	"boardingaction/internal/engine"
	"boardingaction/internal/gravity"
	"boardingaction/internal/logger"
	"boardingaction/internal/orient"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ReorientFrame selects what a gravity change is measured against.
type ReorientFrame int

const (
	// FrameActor rotates the actor's current down onto the new gravity.
	// Interrupted transitions continue from wherever the actor is.
	FrameActor ReorientFrame = iota
	// FrameWorld rotates between the absolute targets of the previous and
	// new gravity, both measured from the fixed world down.
	FrameWorld
)

func (f ReorientFrame) String() string {
	switch f {
	case FrameActor:
		return "actor"
	case FrameWorld:
		return "world"
	default:
		return fmt.Sprintf("ReorientFrame(%d)", int(f))
	}
}

// ParseReorientFrame maps a config name onto a frame.
func ParseReorientFrame(s string) (ReorientFrame, error) {
	switch s {
	case "actor", "":
		return FrameActor, nil
	case "world":
		return FrameWorld, nil
	default:
		return FrameActor, fmt.Errorf("unknown reorient frame %q", s)
	}
}

type ReorientState int

const (
	StateStable ReorientState = iota
	StateTransitioning
)

func (s ReorientState) String() string {
	if s == StateTransitioning {
		return "transitioning"
	}
	return "stable"
}

// GravityReorienter turns an actor so its down axis follows the scene's
// gravity, easing in over several ticks, and forwards gravity to the actor's
// movement every tick.
type GravityReorienter struct {
	engine.BaseComponent

	// RotationRate is the fraction of a transition completed per second.
	RotationRate float32
	Frame        ReorientFrame

	store *gravity.Store
	mover ImpulseReceiver
	log   *zap.Logger

	previousGravity  rl.Vector3
	target           orient.Delta // axis in the actor's local frame
	fraction         float32
	previousFraction float32
	base             rl.Quaternion
}

func NewGravityReorienter() *GravityReorienter {
	return &GravityReorienter{
		RotationRate:     2.0,
		Frame:            FrameActor,
		previousGravity:  gravity.DefaultGravity,
		fraction:         1,
		previousFraction: 1,
		base:             rl.QuaternionIdentity(),
	}
}

// Attach resolves the scene gravity store and the movement handle.
// CharacterMovement is preferred over any other ImpulseReceiver.
func (r *GravityReorienter) Attach() error {
	g := r.GetGameObject()
	if g == nil {
		return ErrNoGameObject
	}
	if g.Scene == nil || g.Scene.Gravity == nil {
		return ErrNoGravityStore
	}
	var mover ImpulseReceiver
	if cm := engine.GetComponent[*CharacterMovement](g); cm != nil {
		mover = cm
	} else {
		mover = engine.GetComponent[ImpulseReceiver](g)
	}
	if mover == nil {
		return ErrNoMover
	}

	r.store = g.Scene.Gravity
	r.mover = mover
	r.base = g.Transform.Rotation
	r.log = logger.Named("reorient").With(zap.String("actor", g.Name))
	return nil
}

func (r *GravityReorienter) Start() {
	if err := r.Attach(); err != nil {
		panic(fmt.Errorf("components: GravityReorienter on %q: %w", objectName(r.GetGameObject()), err))
	}
}

func (r *GravityReorienter) Update(deltaTime float32) {
	if r.store == nil {
		r.Start()
	}
	g := r.GetGameObject()

	now := r.store.Get()
	if now != r.previousGravity {
		r.begin(g, now)
	}

	if r.fraction < 1 {
		r.fraction += deltaTime * r.RotationRate
		if r.fraction > 1 {
			r.fraction = 1
		}
		// Only the arc between the last and current fraction is applied, so
		// other rotations of the actor in the meantime are kept.
		step := r.target.Scale(r.fraction - r.previousFraction)
		g.Transform.AddLocalRotation(step.Quaternion())
		r.previousFraction = r.fraction

		if r.fraction == 1 {
			r.log.Debug("reorientation complete",
				zap.Float32("downX", g.Transform.Down().X),
				zap.Float32("downY", g.Transform.Down().Y),
				zap.Float32("downZ", g.Transform.Down().Z))
		}
	}

	r.mover.AddImpulse(rl.Vector3Scale(now, deltaTime), true)
	r.previousGravity = now
}

func (r *GravityReorienter) begin(g *engine.GameObject, now rl.Vector3) {
	var delta orient.Delta
	switch r.Frame {
	case FrameWorld:
		delta = orient.Between(
			orient.SolveAbsolute(r.previousGravity).Quaternion(),
			orient.SolveAbsolute(now).Quaternion(),
		)
		// The world targets chain from where the previous transition was
		// headed, so its unapplied arc runs first.
		if r.fraction < 1 {
			rest := r.target.Scale(1 - r.previousFraction)
			restWorld := orient.Delta{Axis: g.Transform.TransformDirection(rest.Axis), Angle: rest.Angle}
			delta = orient.DeltaFromQuaternion(rl.QuaternionMultiply(delta.Quaternion(), restWorld.Quaternion()))
		}
	default:
		// A reversal turns about the actor's own forward so it keeps facing
		// the same way.
		delta = orient.SolveAround(g.Transform.Down(), now, g.Transform.Forward())
	}

	r.target = orient.Delta{
		Axis:  g.Transform.InverseTransformDirection(delta.Axis),
		Angle: delta.Angle,
	}
	r.base = g.Transform.Rotation
	r.fraction = 0
	r.previousFraction = 0

	r.log.Debug("gravity changed",
		zap.String("frame", r.Frame.String()),
		zap.Float32("angle", delta.Angle),
		zap.Float32("gx", now.X), zap.Float32("gy", now.Y), zap.Float32("gz", now.Z))
}

func (r *GravityReorienter) State() ReorientState {
	if r.fraction < 1 {
		return StateTransitioning
	}
	return StateStable
}

// Fraction returns the progress of the current transition in [0, 1].
func (r *GravityReorienter) Fraction() float32 {
	return r.fraction
}

// Target returns the active transition's rotation, axis in actor space.
func (r *GravityReorienter) Target() orient.Delta {
	return r.target
}

// Base returns the actor orientation captured when the transition began.
func (r *GravityReorienter) Base() rl.Quaternion {
	return r.base
}
