// Package game runs the windowed demo: raylib input and drawing around a
// fixed-step world.
package game

import (
	"fmt"
	"time"

	"boardingaction/internal/components"
	"boardingaction/internal/config"
	"boardingaction/internal/engine"
	"boardingaction/internal/logger"
	"boardingaction/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// MouseSensitivity scales mouse deltas into look input.
const MouseSensitivity = 0.1

// maxStepsPerFrame bounds catch-up after a long frame.
const maxStepsPerFrame = 8

type Game struct {
	World     *world.World
	Config    *config.Config
	DebugMode bool

	// Reloads delivers hot-reloaded configs; nil disables reloading.
	Reloads <-chan *config.Config

	accumulator float32
	log         *zap.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	w, err := world.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return &Game{
		World:  w,
		Config: cfg,
		log:    logger.Named("game"),
	}, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "Boarding Action")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime(), ReadInput())
		g.Draw()
	}
}

// ReadInput samples keyboard and mouse for one frame.
func ReadInput() Input {
	mouse := rl.GetMouseDelta()
	in := Input{
		Turn:         mouse.X * MouseSensitivity,
		LookUp:       mouse.Y * MouseSensitivity,
		Jump:         rl.IsKeyPressed(rl.KeySpace),
		Fire:         rl.IsMouseButtonPressed(rl.MouseLeftButton),
		CycleGravity: rl.IsMouseButtonPressed(rl.MouseRightButton) || rl.IsKeyPressed(rl.KeyG),
		ToggleDebug:  rl.IsKeyPressed(rl.KeyF1),
	}
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right--
	}
	return in
}

// Update applies input once per frame and steps the world at the configured
// tick rate.
func (g *Game) Update(frameTime float32, in Input) {
	updateStart := time.Now()

	g.applyReloads()
	Apply(g.World, in)

	if in.ToggleDebug {
		g.DebugMode = !g.DebugMode
	}

	dt := g.Config.TickDelta()
	g.accumulator += frameTime
	steps := 0
	for g.accumulator >= dt && steps < maxStepsPerFrame {
		g.World.Step(dt)
		g.accumulator -= dt
		steps++
	}
	if steps == maxStepsPerFrame {
		g.accumulator = 0
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) applyReloads() {
	if g.Reloads == nil {
		return
	}
	select {
	case cfg, ok := <-g.Reloads:
		if !ok {
			g.Reloads = nil
			return
		}
		if err := g.World.ApplyConfig(cfg); err != nil {
			g.log.Warn("config reload rejected", zap.Error(err))
			return
		}
		g.Config = cfg
		g.log.Info("config reloaded")
	default:
	}
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.World.Player())
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	drawScene(g.World)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("Right click or G to change gravity, F1 for debug view", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if g.DebugMode {
		gv := g.World.Gravity().Get()
		r := g.World.Reorienter()
		down := g.World.Player().Transform.Down()
		rl.DrawText(fmt.Sprintf("Gravity: (%.1f, %.1f, %.1f)", gv.X, gv.Y, gv.Z), 10, 85, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Down:    (%.2f, %.2f, %.2f)", down.X, down.Y, down.Z), 10, 105, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Reorient: %s %.2f", r.State(), r.Fraction()), 10, 125, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Grounded: %v", g.World.Movement().IsGrounded()), 10, 145, 16, rl.Yellow)

		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 170, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 190, 16, rl.Green)
	}
}
