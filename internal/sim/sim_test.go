package sim

import (
	"context"
	"testing"

	"boardingaction/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRunner(t *testing.T, cfg *config.Config) (*Runner, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	r, err := New(cfg, zap.New(core))
	require.NoError(t, err)
	return r, logs
}

func TestRunSettles(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.CycleEvery = 0
	r, logs := newRunner(t, cfg)

	report, err := r.Run(context.Background(), Options{Ticks: 300})
	require.NoError(t, err)

	assert.Equal(t, 300, report.Ticks)
	assert.Zero(t, report.GravityChanges)
	assert.True(t, report.Grounded)
	assert.Equal(t, 4, report.SleepingCrates)
	assert.Equal(t, rl.Vector3{Z: -9.8}, report.Gravity)
	assert.InDelta(t, -1, report.PlayerDown.Z, 1e-4)
	assert.Equal(t, 1, logs.FilterMessage("simulation finished").Len())
}

func TestRunCyclesGravity(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.CycleEvery = 120
	r, logs := newRunner(t, cfg)

	report, err := r.Run(context.Background(), Options{Ticks: 360})
	require.NoError(t, err)

	assert.Equal(t, 2, report.GravityChanges)
	assert.Equal(t, rl.Vector3{X: 9.8, Y: 9.8}, report.Gravity)
	assert.Equal(t, 2, logs.FilterMessage("gravity cycled").Len())
}

func TestRunUsesConfiguredTicks(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.Ticks = 12
	r, _ := newRunner(t, cfg)

	report, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 12, report.Ticks)
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _ := newRunner(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx, Options{Ticks: 100})
	require.NoError(t, err)
	assert.Zero(t, report.Ticks)
}

func TestRunAppliesReloads(t *testing.T) {
	r, logs := newRunner(t, nil)
	reloads := make(chan *config.Config, 2)

	next := config.Default()
	next.Reorient.RotationRate = 3
	reloads <- next

	report, err := r.Run(context.Background(), Options{Ticks: 1, Reloads: reloads})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Reloads)
	assert.Equal(t, float32(3), r.World.Reorienter().RotationRate)
	assert.Equal(t, 1, logs.FilterMessage("config reloaded").Len())
}

func TestRunRejectsBadReload(t *testing.T) {
	r, logs := newRunner(t, nil)
	reloads := make(chan *config.Config, 1)

	bad := config.Default()
	bad.Reorient.Frame = "camera"
	reloads <- bad
	close(reloads)

	report, err := r.Run(context.Background(), Options{Ticks: 3, Reloads: reloads})
	require.NoError(t, err)

	assert.Zero(t, report.Reloads)
	assert.Equal(t, 1, logs.FilterMessage("config reload rejected").Len())
}

func TestRunRealtime(t *testing.T) {
	cfg := config.Default()
	cfg.Sim.TickRate = 1000
	r, _ := newRunner(t, cfg)

	report, err := r.Run(context.Background(), Options{Ticks: 5, Realtime: true})
	require.NoError(t, err)
	assert.Equal(t, 5, report.Ticks)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Reorient.RotationRate = 0
	_, err := New(cfg, nil)
	assert.Error(t, err)
}
