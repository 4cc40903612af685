package gravity

import rl "github.com/gen2brain/raylib-go/raylib"

// Cycle is an ordered ring of gravity vectors stepped through by the
// "change gravity direction" action.
type Cycle struct {
	Steps []rl.Vector3
}

// DefaultCycle walks down, up, a diagonal wall and a side wall.
func DefaultCycle() Cycle {
	return Cycle{Steps: []rl.Vector3{
		{X: 0, Y: 0, Z: -StandardMagnitude},
		{X: 0, Y: 0, Z: StandardMagnitude},
		{X: StandardMagnitude, Y: StandardMagnitude, Z: 0},
		{X: 0, Y: StandardMagnitude, Z: 0},
	}}
}

// Next returns the step following current. A vector that is not part of the
// ring maps to the first step. An empty ring returns current unchanged.
func (c Cycle) Next(current rl.Vector3) rl.Vector3 {
	if len(c.Steps) == 0 {
		return current
	}
	for i, step := range c.Steps {
		if step == current {
			return c.Steps[(i+1)%len(c.Steps)]
		}
	}
	return c.Steps[0]
}

// Advance moves the store to the next step and returns the new vector.
func (c Cycle) Advance(s *Store) rl.Vector3 {
	next := c.Next(s.Get())
	s.Set(next)
	return next
}
