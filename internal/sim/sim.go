// Package sim runs the world headless at a fixed tick rate, cycling gravity
// on a schedule and taking config reloads between ticks.
package sim

import (
	"context"
	"time"

	"boardingaction/internal/components"
	"boardingaction/internal/config"
	"boardingaction/internal/engine"
	"boardingaction/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Options control one run. Zero Ticks means cfg.Sim.Ticks.
type Options struct {
	Ticks int
	// Realtime paces ticks with a wall clock ticker instead of running as
	// fast as possible.
	Realtime bool
	// Reloads delivers configs to apply between ticks; may be nil.
	Reloads <-chan *config.Config
}

// Report summarizes a finished run.
type Report struct {
	Ticks          int
	GravityChanges int
	Reloads        int
	Gravity        rl.Vector3
	PlayerDown     rl.Vector3
	Grounded       bool
	SleepingCrates int
}

func (r Report) fields() []zap.Field {
	return []zap.Field{
		zap.Int("ticks", r.Ticks),
		zap.Int("gravityChanges", r.GravityChanges),
		zap.Int("reloads", r.Reloads),
		zap.Float32s("gravity", []float32{r.Gravity.X, r.Gravity.Y, r.Gravity.Z}),
		zap.Float32s("playerDown", []float32{r.PlayerDown.X, r.PlayerDown.Y, r.PlayerDown.Z}),
		zap.Bool("grounded", r.Grounded),
		zap.Int("sleepingCrates", r.SleepingCrates),
	}
}

// Runner owns the world for the duration of a run.
type Runner struct {
	World *world.World
	cfg   *config.Config
	log   *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Runner, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	w, err := world.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Runner{World: w, cfg: cfg, log: log}, nil
}

// Run steps the world until the tick budget is spent or ctx is done. A
// cancelled context ends the run early without error.
func (r *Runner) Run(ctx context.Context, opts Options) (Report, error) {
	ticks := opts.Ticks
	if ticks <= 0 {
		ticks = r.cfg.Sim.Ticks
	}

	var report Report
	var pace <-chan time.Time
	if opts.Realtime {
		ticker := time.NewTicker(time.Duration(float64(time.Second) * float64(r.cfg.TickDelta())))
		defer ticker.Stop()
		pace = ticker.C
	}
	reloads := opts.Reloads

	r.log.Info("simulation started", zap.Int("ticks", ticks), zap.Int("tickRate", r.cfg.Sim.TickRate))

	for report.Ticks < ticks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return r.finish(report), nil
			case <-pace:
			}
		} else if ctx.Err() != nil {
			return r.finish(report), nil
		}

		// Reloads land between ticks only.
		select {
		case cfg, ok := <-reloads:
			if !ok {
				reloads = nil
				break
			}
			if err := r.World.ApplyConfig(cfg); err != nil {
				r.log.Warn("config reload rejected", zap.Error(err))
				break
			}
			r.cfg = cfg
			report.Reloads++
			r.log.Info("config reloaded")
		default:
		}

		if every := r.cfg.Sim.CycleEvery; every > 0 && report.Ticks > 0 && report.Ticks%every == 0 {
			g := r.World.CycleGravity()
			report.GravityChanges++
			r.log.Debug("gravity cycled", zap.Int("tick", report.Ticks),
				zap.Float32s("gravity", []float32{g.X, g.Y, g.Z}))
		}

		r.World.Step(r.cfg.TickDelta())
		report.Ticks++
	}

	return r.finish(report), nil
}

func (r *Runner) finish(report Report) Report {
	report.Gravity = r.World.Gravity().Get()
	report.PlayerDown = r.World.Player().Transform.Down()
	report.Grounded = r.World.Movement().IsGrounded()
	for _, crate := range r.World.Physics.Objects {
		if rb := engine.GetComponent[*components.Rigidbody](crate); rb != nil && rb.IsSleeping {
			report.SleepingCrates++
		}
	}
	r.log.Info("simulation finished", report.fields()...)
	return report
}
