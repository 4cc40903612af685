// Package world assembles the playable scene: a closed room, the player and
// loose crates, stepped at a fixed rate.
package world

import (
	"fmt"

	"boardingaction/internal/components"
	"boardingaction/internal/config"
	"boardingaction/internal/engine"
	"boardingaction/internal/gravity"
	"boardingaction/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Room dimensions. The floor top sits at Z=0 and the ceiling bottom at
// RoomHeight; walls stand at ±RoomHalfExtent on X and Y.
const (
	RoomHalfExtent = 8.0
	RoomHeight     = 6.0
	WallThickness  = 1.0
	CrateSize      = 1.0
)

// Tags used by the renderer to pick colors.
const (
	TagStatic = "static"
	TagCrate  = "crate"
	TagPlayer = "player"
)

var crateSpawns = []rl.Vector3{
	{X: 3, Y: 2, Z: 0.5},
	{X: -4, Y: 3, Z: 0.5},
	{X: 2, Y: -5, Z: 2.5},
	{X: -3, Y: -3, Z: 0.5},
}

type World struct {
	Scene   *engine.Scene
	Physics *PhysicsWorld
	Cycle   gravity.Cycle

	player     *engine.GameObject
	reorienter *components.GravityReorienter
	movement   *components.CharacterMovement
	look       *components.LookController
	log        *zap.Logger
}

// New builds and starts the scene described by cfg. A nil cfg uses
// config.Default.
func New(cfg *config.Config) (*World, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: NewPhysicsWorld(),
		log:     logger.Named("world"),
	}
	w.Scene.World = w
	w.Scene.Gravity.Set(cfg.Gravity.Default.Vector3())
	w.Scene.Gravity.OnChanged(func(previous, current rl.Vector3) {
		w.log.Info("gravity changed",
			zap.Float32s("from", []float32{previous.X, previous.Y, previous.Z}),
			zap.Float32s("to", []float32{current.X, current.Y, current.Z}))
	})

	w.createRoom()
	w.createCrates()
	w.createPlayer()

	if err := w.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	w.Scene.Start()
	return w, nil
}

func (w *World) createRoom() {
	span := float32(2*RoomHalfExtent + 2*WallThickness)
	h := float32(RoomHeight)
	e := float32(RoomHalfExtent)
	t := float32(WallThickness)

	w.addStatic("Floor", rl.Vector3{Z: -t / 2}, rl.Vector3{X: span, Y: span, Z: t})
	w.addStatic("Ceiling", rl.Vector3{Z: h + t/2}, rl.Vector3{X: span, Y: span, Z: t})
	w.addStatic("Wall_PosX", rl.Vector3{X: e + t/2, Z: h / 2}, rl.Vector3{X: t, Y: span, Z: h})
	w.addStatic("Wall_NegX", rl.Vector3{X: -e - t/2, Z: h / 2}, rl.Vector3{X: t, Y: span, Z: h})
	w.addStatic("Wall_PosY", rl.Vector3{Y: e + t/2, Z: h / 2}, rl.Vector3{X: span, Y: t, Z: h})
	w.addStatic("Wall_NegY", rl.Vector3{Y: -e - t/2, Z: h / 2}, rl.Vector3{X: span, Y: t, Z: h})
}

func (w *World) addStatic(name string, center, size rl.Vector3) {
	obj := engine.NewGameObject(name)
	obj.Tags = append(obj.Tags, TagStatic)
	obj.Transform.Position = center
	obj.AddComponent(components.NewBoxCollider(size))
	w.Scene.AddGameObject(obj)
	w.Physics.AddObject(obj)
}

func (w *World) createCrates() {
	size := rl.Vector3{X: CrateSize, Y: CrateSize, Z: CrateSize}
	for i, pos := range crateSpawns {
		crate := engine.NewGameObject(fmt.Sprintf("Crate_%d", i))
		crate.Tags = append(crate.Tags, TagCrate)
		crate.Transform.Position = pos

		crate.AddComponent(components.NewRigidbody())
		crate.AddComponent(components.NewGravityBody())
		crate.AddComponent(components.NewBoxCollider(size))

		w.Scene.AddGameObject(crate)
		w.Physics.AddObject(crate)
	}
}

func (w *World) createPlayer() {
	player := engine.NewGameObject("Player")
	player.Tags = append(player.Tags, TagPlayer)

	w.movement = components.NewCharacterMovement()
	w.reorienter = components.NewGravityReorienter()
	w.look = components.NewLookController()
	player.Transform.Position = rl.Vector3{Z: w.movement.Height / 2}

	player.AddComponent(w.movement)
	player.AddComponent(w.reorienter)
	player.AddComponent(w.look)
	player.AddComponent(components.NewCamera())

	w.player = player
	w.Scene.AddGameObject(player)
}

// ApplyConfig pushes tunables into the live components. The current gravity
// vector is left alone; only the cycle is replaced.
func (w *World) ApplyConfig(cfg *config.Config) error {
	frame, err := components.ParseReorientFrame(cfg.Reorient.Frame)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}

	w.reorienter.RotationRate = cfg.Reorient.RotationRate
	w.reorienter.Frame = frame
	w.movement.SlopeLimit = cfg.Movement.SlopeLimit
	w.movement.MoveSpeed = cfg.Movement.MoveSpeed
	w.movement.JumpSpeed = cfg.Movement.JumpSpeed
	w.look.TurnRate = cfg.Look.TurnRate
	w.look.LookUpRate = cfg.Look.LookUpRate

	if steps := cfg.CycleVectors(); len(steps) > 0 {
		w.Cycle = gravity.Cycle{Steps: steps}
	} else {
		w.Cycle = gravity.DefaultCycle()
	}

	w.log.Debug("config applied",
		zap.Float32("rotationRate", cfg.Reorient.RotationRate),
		zap.String("frame", frame.String()),
		zap.Float32("slopeLimit", cfg.Movement.SlopeLimit))
	return nil
}

// Step advances the scene then the physics by deltaTime.
func (w *World) Step(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Update(deltaTime)
}

// CycleGravity moves gravity to the next step of the cycle.
func (w *World) CycleGravity() rl.Vector3 {
	return w.Cycle.Advance(w.Scene.Gravity)
}

func (w *World) Gravity() *gravity.Store {
	return w.Scene.Gravity
}

func (w *World) Player() *engine.GameObject {
	return w.player
}

func (w *World) Movement() *components.CharacterMovement {
	return w.movement
}

func (w *World) Reorienter() *components.GravityReorienter {
	return w.reorienter
}

func (w *World) Look() *components.LookController {
	return w.look
}

// GetCollidableObjects implements engine.WorldAccess.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.Physics.GetCollidableObjects()
}
