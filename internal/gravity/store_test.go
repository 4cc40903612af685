package gravity

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreHoldsDefault(t *testing.T) {
	s := NewStore()
	assert.Equal(t, rl.Vector3{Z: -9.8}, s.Get())
}

func TestStoreSetAcceptsAnything(t *testing.T) {
	s := NewStore()

	s.Set(rl.Vector3{})
	assert.Equal(t, rl.Vector3{}, s.Get())
	assert.Equal(t, rl.Vector3{}, s.Direction())

	s.Set(rl.Vector3{X: 3, Y: -4})
	assert.Equal(t, rl.Vector3{X: 3, Y: -4}, s.Get())
	dir := s.Direction()
	assert.InDelta(t, 0.6, dir.X, 1e-6)
	assert.InDelta(t, -0.8, dir.Y, 1e-6)

	s.Initialize()
	assert.Equal(t, DefaultGravity, s.Get())
}

func TestStoreChangeListeners(t *testing.T) {
	s := NewStore()

	var calls [][2]rl.Vector3
	s.OnChanged(func(previous, current rl.Vector3) {
		calls = append(calls, [2]rl.Vector3{previous, current})
	})
	s.OnChanged(nil)

	up := rl.Vector3{Z: 9.8}
	s.Set(up)
	s.Set(up) // unchanged, no notification

	require.Len(t, calls, 1)
	assert.Equal(t, DefaultGravity, calls[0][0])
	assert.Equal(t, up, calls[0][1])
}
