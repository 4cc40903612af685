// Package config loads the game's tunables from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Gravity  GravityConfig  `yaml:"gravity"`
	Reorient ReorientConfig `yaml:"reorient"`
	Movement MovementConfig `yaml:"movement"`
	Look     LookConfig     `yaml:"look"`
	Sim      SimConfig      `yaml:"sim"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// Vec3 is a vector written as a three-element YAML sequence.
type Vec3 [3]float32

func (v Vec3) Vector3() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

type GravityConfig struct {
	Default Vec3   `yaml:"default"`
	Cycle   []Vec3 `yaml:"cycle"`
}

type ReorientConfig struct {
	RotationRate float32 `yaml:"rotation_rate"`
	Frame        string  `yaml:"frame"` // actor or world
}

type MovementConfig struct {
	SlopeLimit float32 `yaml:"slope_limit"` // degrees
	MoveSpeed  float32 `yaml:"move_speed"`
	JumpSpeed  float32 `yaml:"jump_speed"`
}

type LookConfig struct {
	TurnRate   float32 `yaml:"turn_rate"`
	LookUpRate float32 `yaml:"look_up_rate"`
}

type SimConfig struct {
	TickRate   int `yaml:"tick_rate"`   // ticks per second
	Ticks      int `yaml:"ticks"`       // headless run length
	CycleEvery int `yaml:"cycle_every"` // ticks between gravity changes, 0 disables
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	FrameActor = "actor"
	FrameWorld = "world"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Gravity: GravityConfig{
			Default: Vec3{0, 0, -9.8},
			Cycle: []Vec3{
				{0, 0, -9.8},
				{0, 0, 9.8},
				{9.8, 9.8, 0},
				{0, 9.8, 0},
			},
		},
		Reorient: ReorientConfig{RotationRate: 2, Frame: FrameActor},
		Movement: MovementConfig{SlopeLimit: 45, MoveSpeed: 6, JumpSpeed: 6},
		Look:     LookConfig{TurnRate: 1, LookUpRate: 1},
		Sim:      SimConfig{TickRate: 60, Ticks: 600, CycleEvery: 120},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults and validates the result.
// A missing file surfaces as an error wrapping os.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise break the simulation.
func (c *Config) Validate() error {
	var errs []error
	if c.Reorient.RotationRate <= 0 {
		errs = append(errs, fmt.Errorf("reorient.rotation_rate must be positive, got %v", c.Reorient.RotationRate))
	}
	if c.Reorient.Frame != FrameActor && c.Reorient.Frame != FrameWorld {
		errs = append(errs, fmt.Errorf("reorient.frame must be %q or %q, got %q", FrameActor, FrameWorld, c.Reorient.Frame))
	}
	if c.Movement.SlopeLimit < 0 || c.Movement.SlopeLimit >= 90 {
		errs = append(errs, fmt.Errorf("movement.slope_limit must be in [0, 90), got %v", c.Movement.SlopeLimit))
	}
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tick_rate must be positive, got %d", c.Sim.TickRate))
	}
	if c.Sim.Ticks < 0 || c.Sim.CycleEvery < 0 {
		errs = append(errs, errors.New("sim.ticks and sim.cycle_every must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// CycleVectors returns the gravity cycle as vectors.
func (c *Config) CycleVectors() []rl.Vector3 {
	out := make([]rl.Vector3, len(c.Gravity.Cycle))
	for i, v := range c.Gravity.Cycle {
		out[i] = v.Vector3()
	}
	return out
}

// TickDelta is the fixed simulation step in seconds.
func (c *Config) TickDelta() float32 {
	return 1 / float32(c.Sim.TickRate)
}
