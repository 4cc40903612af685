// Package gravity holds the world-scoped gravity vector and the predicates
// that reinterpret "floor" relative to it.
package gravity

import rl "github.com/gen2brain/raylib-go/raylib"

// StandardMagnitude is the magnitude of the default gravity vector.
const StandardMagnitude = 9.8

// DefaultGravity points straight down the world Z axis.
var DefaultGravity = rl.Vector3{X: 0, Y: 0, Z: -StandardMagnitude}

// ChangeListener is called after the stored vector changes.
type ChangeListener func(previous, current rl.Vector3)

// Store is a single gravity register owned by one simulation world.
// It is read and written from the simulation thread only.
type Store struct {
	gravity   rl.Vector3
	listeners []ChangeListener
}

// NewStore creates a store holding DefaultGravity.
func NewStore() *Store {
	s := &Store{}
	s.Initialize()
	return s
}

// Initialize resets the vector to DefaultGravity. Listeners are kept.
func (s *Store) Initialize() {
	s.gravity = DefaultGravity
}

// Get returns the current gravity vector.
func (s *Store) Get() rl.Vector3 {
	return s.gravity
}

// Set replaces the gravity vector. Zero and arbitrary directions are accepted.
func (s *Store) Set(v rl.Vector3) {
	previous := s.gravity
	s.gravity = v
	if previous == v {
		return
	}
	for _, l := range s.listeners {
		l(previous, v)
	}
}

// Direction returns the normalized gravity vector, or zero when there is no gravity.
func (s *Store) Direction() rl.Vector3 {
	return Normalize(s.gravity)
}

// OnChanged registers a listener fired by Set when the value differs.
func (s *Store) OnChanged(l ChangeListener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// Normalize returns v scaled to unit length, or the zero vector for a zero input.
func Normalize(v rl.Vector3) rl.Vector3 {
	length := rl.Vector3Length(v)
	if length == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, 1/length)
}
