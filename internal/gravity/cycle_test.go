package gravity

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestCycleFollowsRing(t *testing.T) {
	c := DefaultCycle()
	s := NewStore()

	want := []rl.Vector3{
		{Z: 9.8},
		{X: 9.8, Y: 9.8},
		{Y: 9.8},
		{Z: -9.8},
	}
	for i, w := range want {
		got := c.Advance(s)
		assert.Equal(t, w, got, "step %d", i)
		assert.Equal(t, w, s.Get(), "store at step %d", i)
	}
}

func TestCycleUnknownAndEmpty(t *testing.T) {
	c := DefaultCycle()
	assert.Equal(t, c.Steps[0], c.Next(rl.Vector3{X: 1}))

	empty := Cycle{}
	v := rl.Vector3{X: 2}
	assert.Equal(t, v, empty.Next(v))
}
