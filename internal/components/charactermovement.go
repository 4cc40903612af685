package components

import (
	"math"

	"boardingaction/internal/engine"
	"boardingaction/internal/gravity"
	"boardingaction/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxResolvePasses bounds the push-out iterations of one move.
const maxResolvePasses = 3

// CharacterMovement moves a character box through the scene's static box
// colliders. Gravity is not applied here; it arrives as impulses through
// AddImpulse. Which contacts count as floor is delegated to Floor.
type CharacterMovement struct {
	engine.BaseComponent

	// Configuration
	Height     float32 // extent along the character's local up axis
	Radius     float32 // half-width in the local horizontal plane
	SlopeLimit float32 // max walkable slope in degrees
	Mass       float32
	MoveSpeed  float32
	JumpSpeed  float32
	Floor      FloorPolicy

	// Landed fires when the character touches down on a valid landing spot.
	Landed engine.EventWithArg[physics.Hit]

	// Runtime state
	velocity   rl.Vector3
	moveInput  rl.Vector3 // X forward, Y right, in the character's frame
	isGrounded bool
	floor      physics.Hit
	hits       []physics.Hit
}

// NewCharacterMovement creates a character mover with defaults
func NewCharacterMovement() *CharacterMovement {
	return &CharacterMovement{
		Height:     1.8,
		Radius:     0.4,
		SlopeLimit: 45.0,
		Mass:       1.0,
		MoveSpeed:  6.0,
		JumpSpeed:  6.0,
	}
}

// Start installs the gravity-relative floor policy unless one was injected.
func (c *CharacterMovement) Start() {
	if c.Floor != nil {
		return
	}
	g := c.GetGameObject()
	if g != nil && g.Scene != nil && g.Scene.Gravity != nil {
		c.Floor = GravityFloorPolicy{Store: g.Scene.Gravity}
	} else {
		c.Floor = DefaultFloorPolicy{}
	}
}

// AddImpulse implements ImpulseReceiver.
func (c *CharacterMovement) AddImpulse(impulse rl.Vector3, velocityChange bool) {
	if !velocityChange && c.Mass > 0 {
		impulse = rl.Vector3Scale(impulse, 1/c.Mass)
	}
	c.velocity = rl.Vector3Add(c.velocity, impulse)
}

// SetMoveInput sets the desired walk direction in the character's frame
// (X forward, Y right). Input longer than 1 is normalized.
func (c *CharacterMovement) SetMoveInput(forward, right float32) {
	in := rl.Vector3{X: forward, Y: right}
	if l := rl.Vector3Length(in); l > 1 {
		in = rl.Vector3Scale(in, 1/l)
	}
	c.moveInput = in
}

// Jump launches the character against gravity.
func (c *CharacterMovement) Jump() bool {
	if !c.isGrounded {
		return false
	}
	c.velocity = rl.Vector3Add(c.velocity, rl.Vector3Scale(c.upDirection(c.floor), c.JumpSpeed))
	c.isGrounded = false
	return true
}

func (c *CharacterMovement) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	if c.Floor == nil {
		c.Start()
	}

	walk := rl.Vector3Add(
		rl.Vector3Scale(g.Transform.Forward(), c.moveInput.X*c.MoveSpeed),
		rl.Vector3Scale(g.Transform.Right(), c.moveInput.Y*c.MoveSpeed),
	)
	motion := rl.Vector3Scale(rl.Vector3Add(c.velocity, walk), deltaTime)

	c.Move(motion)
}

// Move displaces the character by motion, resolves penetrations and updates
// the grounded state. It returns the actual displacement.
func (c *CharacterMovement) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	if c.Floor == nil {
		c.Start()
	}

	originalPos := g.Transform.Position
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)

	wasGrounded := c.isGrounded
	c.isGrounded = false
	c.hits = c.hits[:0]
	maxCos := gravity.SlopeCosine(c.SlopeLimit)
	incoming := c.velocity

	colliders := collidableObjects(g)
	for pass := 0; pass < maxResolvePasses; pass++ {
		pushed := false
		for _, other := range colliders {
			if other == g {
				continue
			}
			box := engine.GetComponent[*BoxCollider](other)
			if box == nil {
				continue
			}

			body := c.Bounds()
			pushOut := body.Resolve(box.GetAABB())
			if pushOut == (rl.Vector3{}) {
				continue
			}
			pushed = true
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)

			hit := physics.NewHit(body, pushOut, other)
			c.hits = append(c.hits, hit)

			if c.Floor.IsWalkable(hit, maxCos) && c.Floor.IsValidLandingSpot(hit, incoming, maxCos) {
				c.isGrounded = true
				c.floor = hit
				c.velocity = physics.RemoveAlong(c.velocity, c.upDirection(hit))
			}
			c.velocity = physics.RemoveAlong(c.velocity, hit.Normal)
		}
		if !pushed {
			break
		}
	}

	if c.isGrounded && !wasGrounded {
		c.Landed.Invoke(c.floor)
	}

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

// Bounds returns the world AABB enclosing the character box in its current
// orientation.
func (c *CharacterMovement) Bounds() physics.AABB {
	g := c.GetGameObject()
	t := g.Transform
	ax := rl.Vector3Scale(t.Forward(), c.Radius)
	ay := rl.Vector3Scale(t.Right(), c.Radius)
	az := rl.Vector3Scale(t.Up(), c.Height/2)
	half := rl.Vector3{
		X: abs32(ax.X) + abs32(ay.X) + abs32(az.X),
		Y: abs32(ax.Y) + abs32(ay.Y) + abs32(az.Y),
		Z: abs32(ax.Z) + abs32(ay.Z) + abs32(az.Z),
	}
	return physics.NewAABBFromCenter(g.Transform.Position, rl.Vector3Scale(half, 2))
}

// IsGrounded returns whether the character is on the ground
func (c *CharacterMovement) IsGrounded() bool {
	return c.isGrounded
}

// FloorHit returns the last walkable contact.
func (c *CharacterMovement) FloorHit() physics.Hit {
	return c.floor
}

// Hits returns the contacts found by the last move.
func (c *CharacterMovement) Hits() []physics.Hit {
	return c.hits
}

// GetVelocity returns the current physics velocity (without walk input)
func (c *CharacterMovement) GetVelocity() rl.Vector3 {
	return c.velocity
}

func (c *CharacterMovement) SetVelocity(v rl.Vector3) {
	c.velocity = v
}

// upDirection is the direction opposite gravity, or the floor normal when
// the scene has no gravity.
func (c *CharacterMovement) upDirection(floor physics.Hit) rl.Vector3 {
	g := c.GetGameObject()
	if g != nil && g.Scene != nil && g.Scene.Gravity != nil {
		if down := g.Scene.Gravity.Direction(); down != (rl.Vector3{}) {
			return rl.Vector3Negate(down)
		}
	}
	return floor.Normal
}

// collidableObjects prefers the world's collider list and falls back to
// scanning the scene.
func collidableObjects(g *engine.GameObject) []*engine.GameObject {
	if g.Scene == nil {
		return nil
	}
	if g.Scene.World != nil {
		return g.Scene.World.GetCollidableObjects()
	}
	var out []*engine.GameObject
	for _, obj := range g.Scene.GameObjects {
		if engine.GetComponent[*BoxCollider](obj) != nil {
			out = append(out, obj)
		}
	}
	return out
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
