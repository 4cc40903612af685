package gravity

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestIsWalkable(t *testing.T) {
	maxCos := SlopeCosine(45)

	tests := []struct {
		name    string
		normal  rl.Vector3
		gravity rl.Vector3
		want    bool
	}{
		{"flat floor", rl.Vector3{Z: 1}, rl.Vector3{Z: -9.8}, true},
		{"wall", rl.Vector3{X: 1}, rl.Vector3{Z: -9.8}, false},
		{"ceiling", rl.Vector3{Z: -1}, rl.Vector3{Z: -9.8}, false},
		{"ceiling under flipped gravity", rl.Vector3{Z: -1}, rl.Vector3{Z: 9.8}, true},
		{"wall under sideways gravity", rl.Vector3{X: -1}, rl.Vector3{X: 9.8}, true},
		{"gentle slope", rl.Vector3Normalize(rl.Vector3{X: 0.3, Z: 1}), rl.Vector3{Z: -9.8}, true},
		{"steep slope", rl.Vector3Normalize(rl.Vector3{X: 2, Z: 1}), rl.Vector3{Z: -9.8}, false},
		{"unnormalized normal", rl.Vector3{Z: 5}, rl.Vector3{Z: -1}, true},
		{"no gravity", rl.Vector3{Z: 1}, rl.Vector3{}, false},
		{"no normal", rl.Vector3{}, rl.Vector3{Z: -9.8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWalkable(tt.normal, tt.gravity, maxCos))
		})
	}
}

func TestAlignmentRange(t *testing.T) {
	g := rl.Vector3{Z: -9.8}
	assert.InDelta(t, 2, Alignment(rl.Vector3{Z: 1}, g), 1e-6)
	assert.InDelta(t, 1, Alignment(rl.Vector3{Y: 1}, g), 1e-6)
	assert.InDelta(t, 0, Alignment(rl.Vector3{Z: -1}, g), 1e-6)
}

func TestSlopeCosine(t *testing.T) {
	assert.InDelta(t, 1, SlopeCosine(0), 1e-6)
	assert.InDelta(t, 0.5, SlopeCosine(60), 1e-6)

	// A 60 degree incline sits right at the limit.
	g := rl.Vector3{Z: -9.8}
	steep := rl.Vector3{X: 0.866, Z: 0.5}
	assert.True(t, IsWalkable(steep, g, SlopeCosine(61)))
	assert.False(t, IsWalkable(steep, g, SlopeCosine(59)))
}
