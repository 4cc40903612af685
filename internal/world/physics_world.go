package world

import (
	"boardingaction/internal/components"
	"boardingaction/internal/engine"
	"boardingaction/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(pos.X / CellSize),
		Y: int(pos.Y / CellSize),
		Z: int(pos.Z / CellSize),
	}
}

// pairKey orders two UIDs so each dynamic pair is checked once per step.
type pairKey struct {
	A, B uint64
}

func makePairKey(a, b *engine.GameObject) pairKey {
	if a.UID > b.UID {
		return pairKey{A: b.UID, B: a.UID}
	}
	return pairKey{A: a.UID, B: b.UID}
}

// PhysicsWorld integrates rigidbodies and resolves their box colliders.
// It applies no gravity of its own; GravityBody feeds it through impulses.
type PhysicsWorld struct {
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (moving platforms)
	Statics    []*engine.GameObject // box colliders without a rigidbody (walls, floor)
	grid       map[CellKey][]*engine.GameObject

	contacts int
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Objects:    make([]*engine.GameObject, 0),
		Kinematics: make([]*engine.GameObject, 0),
		Statics:    make([]*engine.GameObject, 0),
		grid:       make(map[CellKey][]*engine.GameObject),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else if rb.IsKinematic {
		p.Kinematics = append(p.Kinematics, g)
	} else {
		p.Objects = append(p.Objects, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Objects = removeObject(p.Objects, g)
	p.Kinematics = removeObject(p.Kinematics, g)
	p.Statics = removeObject(p.Statics, g)
}

func removeObject(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// DynamicObjectCount returns the number of dynamic physics objects
func (p *PhysicsWorld) DynamicObjectCount() int {
	return len(p.Objects)
}

// Contacts returns the number of contacts resolved by the last Update.
func (p *PhysicsWorld) Contacts() int {
	return p.contacts
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	p.contacts = 0

	// 1. Integrate velocity
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping {
			continue
		}

		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)

		if spin := rl.Vector3Length(rb.AngularVelocity); spin > 0 {
			axis := rl.Vector3Scale(rb.AngularVelocity, 1/spin)
			step := rl.QuaternionFromAxisAngle(axis, spin*deltaTime*rl.Deg2rad)
			obj.Transform.AddWorldRotation(step)
		}

		// Apply angular damping (time-based so it's framerate independent)
		damping := float32(1.0) - (1.0-rb.AngularDamping)*deltaTime*60
		if damping < 0 {
			damping = 0
		}
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, damping)

		rb.TrySleep(deltaTime)
	}

	// 2. Dynamic vs dynamic, CPU spatial hashing
	p.rebuildGrid()
	checked := make(map[pairKey]bool)
	for _, obj := range p.Objects {
		for _, other := range p.getNeighborObjects(obj) {
			if obj == other {
				continue
			}
			key := makePairKey(obj, other)
			if checked[key] {
				continue
			}
			checked[key] = true
			p.resolveCollision(obj, other)
		}
	}

	// 3. Kinematic vs dynamic (kinematic pushes dynamic)
	for _, kinematic := range p.Kinematics {
		for _, obj := range p.Objects {
			p.resolveKinematicCollision(kinematic, obj)
		}
	}

	// 4. Dynamic vs static
	for _, obj := range p.Objects {
		for _, static := range p.Statics {
			p.resolveStaticCollision(obj, static)
		}
	}
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid() {
	for k := range p.grid {
		delete(p.grid, k)
	}
	for _, obj := range p.Objects {
		cell := posToCell(obj.Transform.Position)
		p.grid[cell] = append(p.grid[cell], obj)
	}
}

// getNeighborObjects returns all objects in same cell and 26 neighboring cells
func (p *PhysicsWorld) getNeighborObjects(obj *engine.GameObject) []*engine.GameObject {
	cell := posToCell(obj.Transform.Position)
	var neighbors []*engine.GameObject
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				neighbors = append(neighbors, p.grid[key]...)
			}
		}
	}
	return neighbors
}

// recordContact counts a contact and wakes sleeping bodies hit hard enough.
// Micro-contacts inside a settled stack leave it asleep.
func (p *PhysicsWorld) recordContact(a, b *components.Rigidbody) {
	p.contacts++
	if a == nil || b == nil {
		return
	}
	relSpeed := rl.Vector3Length(rl.Vector3Subtract(a.Velocity, b.Velocity))
	if relSpeed > components.SleepVelocityThreshold*2.0 {
		a.Wake()
		b.Wake()
	}
}

func (p *PhysicsWorld) resolveCollision(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	boxA := engine.GetComponent[*components.BoxCollider](a)
	boxB := engine.GetComponent[*components.BoxCollider](b)
	if rbA == nil || rbB == nil || boxA == nil || boxB == nil {
		return
	}
	if rbA.IsSleeping && rbB.IsSleeping {
		return
	}

	pushOut := boxA.GetAABB().Resolve(boxB.GetAABB())
	if pushOut == (rl.Vector3{}) {
		return
	}
	p.recordContact(rbA, rbB)

	// Split the push based on mass ratio
	totalMass := rbA.Mass + rbB.Mass
	ratioA := rbB.Mass / totalMass
	ratioB := rbA.Mass / totalMass
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(pushOut, ratioA))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(pushOut, ratioB))

	normal := physics.PushNormal(pushOut)
	relVel := rl.Vector3Subtract(rbA.Velocity, rbB.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	// Only resolve if objects are moving toward each other
	if velAlongNormal > 0 {
		return
	}

	e := (rbA.Bounciness + rbB.Bounciness) / 2
	j := -(1 + e) * velAlongNormal
	j /= (1/rbA.Mass + 1/rbB.Mass)

	impulse := rl.Vector3Scale(normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, 1/rbA.Mass))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, 1/rbB.Mass))
}

func (p *PhysicsWorld) resolveKinematicCollision(kinematic, obj *engine.GameObject) {
	boxK := engine.GetComponent[*components.BoxCollider](kinematic)
	boxO := engine.GetComponent[*components.BoxCollider](obj)
	rbK := engine.GetComponent[*components.Rigidbody](kinematic)
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if boxK == nil || boxO == nil || rb == nil {
		return
	}

	pushOut := boxO.GetAABB().Resolve(boxK.GetAABB())
	if pushOut == (rl.Vector3{}) {
		return
	}
	p.recordContact(rbK, rb)
	rb.Wake()

	// Kinematic bodies are immovable; the dynamic side takes the whole push.
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	normal := physics.PushNormal(pushOut)
	var kinVel rl.Vector3
	if rbK != nil {
		kinVel = rbK.Velocity
	}
	rel := rl.Vector3DotProduct(rl.Vector3Subtract(rb.Velocity, kinVel), normal)
	if rel < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, rel))
	}
}

func (p *PhysicsWorld) resolveStaticCollision(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	colObj := engine.GetComponent[*components.BoxCollider](obj)
	colStatic := engine.GetComponent[*components.BoxCollider](static)
	if rb == nil || colObj == nil || colStatic == nil {
		return
	}

	pushOut := colObj.GetAABB().Resolve(colStatic.GetAABB())
	if pushOut == (rl.Vector3{}) {
		return
	}
	p.recordContact(rb, nil)

	// Push fully out (static doesn't move)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	normal := physics.PushNormal(pushOut)
	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal >= 0 {
		return
	}

	// Reflect the normal part scaled by bounciness, damp the tangential part.
	// The surface can be any face, so friction works in the contact plane.
	normalPart := rl.Vector3Scale(normal, velAlongNormal)
	tangent := rl.Vector3Subtract(rb.Velocity, normalPart)
	tangent = rl.Vector3Scale(tangent, 1-rb.Friction)
	rb.Velocity = rl.Vector3Add(tangent, rl.Vector3Scale(normalPart, -rb.Bounciness))
	rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, 1-rb.Friction*0.5)
}

// GetCollidableObjects returns the static box colliders and the dynamic and
// kinematic bodies, in that order.
func (p *PhysicsWorld) GetCollidableObjects() []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(p.Statics)+len(p.Objects)+len(p.Kinematics))
	out = append(out, p.Statics...)
	out = append(out, p.Objects...)
	out = append(out, p.Kinematics...)
	return out
}
