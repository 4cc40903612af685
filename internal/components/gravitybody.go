package components

import (
	"fmt"

	"boardingaction/internal/engine"
	"boardingaction/internal/gravity"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GravityBody pulls a Rigidbody along the scene's gravity vector. Resting
// bodies are left asleep until the gravity vector changes.
type GravityBody struct {
	engine.BaseComponent

	store    *gravity.Store
	body     *Rigidbody
	previous rl.Vector3
}

func NewGravityBody() *GravityBody {
	return &GravityBody{}
}

// Attach resolves the scene gravity store and the sibling Rigidbody.
func (b *GravityBody) Attach() error {
	g := b.GetGameObject()
	if g == nil {
		return ErrNoGameObject
	}
	if g.Scene == nil || g.Scene.Gravity == nil {
		return ErrNoGravityStore
	}
	rb := engine.GetComponent[*Rigidbody](g)
	if rb == nil {
		return ErrNoRigidbody
	}
	b.store = g.Scene.Gravity
	b.body = rb
	b.previous = b.store.Get()
	return nil
}

func (b *GravityBody) Start() {
	if err := b.Attach(); err != nil {
		panic(fmt.Errorf("components: GravityBody on %q: %w", objectName(b.GetGameObject()), err))
	}
}

func (b *GravityBody) Update(deltaTime float32) {
	if b.store == nil {
		b.Start()
	}
	now := b.store.Get()
	if now != b.previous {
		b.body.Wake()
		b.previous = now
	}
	if !b.body.UseGravity || b.body.IsKinematic || b.body.IsSleeping {
		return
	}
	b.body.AddImpulse(rl.Vector3Scale(now, deltaTime), true)
}

func objectName(g *engine.GameObject) string {
	if g == nil {
		return "<detached>"
	}
	return g.Name
}
