package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeCharacter
	collisionTypeGroundSensor
)

// groundGraceTicks keeps a body grounded briefly after the sensor loses
// contact so a single missed PreSolve does not read as leaving the floor.
const groundGraceTicks = 2

// Stage is the playable area. X runs along the floor, Y is height above the
// floor and Z is depth into the screen.
type Stage struct {
	Width   float64
	Height  float64
	Depth   float64
	Gravity float64
}

// Body is the physics state attached to one character.
type Body struct {
	Body        *cp.Body
	Shape       *cp.Shape
	GroundShape *cp.Shape
}

type contactState struct {
	grounded bool
	grace    int
}

// PhysicsWorld owns the Chipmunk space, the stage bounds and each
// character's ground sensor.
type PhysicsWorld struct {
	stage Stage
	space *cp.Space

	bodies         map[Entity]*Body
	groundToEntity map[*cp.Shape]Entity
	contacts       map[Entity]*contactState
}

// NewPhysicsWorld builds a space with a floor at y=0 and walls at both ends
// of the stage.
func NewPhysicsWorld(stage Stage) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -stage.Gravity})

	pw := &PhysicsWorld{
		stage:          stage,
		space:          space,
		bodies:         make(map[Entity]*Body),
		groundToEntity: make(map[*cp.Shape]Entity),
		contacts:       make(map[Entity]*contactState),
	}
	pw.buildStage()
	pw.setupHandlers()
	return pw
}

// Stage returns the stage bounds.
func (pw *PhysicsWorld) Stage() Stage {
	return pw.stage
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// EnsureBody creates a box body for e centred at (x, y) if it has none.
func (pw *PhysicsWorld) EnsureBody(e Entity, x, y, width, height float64) *Body {
	if b, ok := pw.bodies[e]; ok {
		return b
	}

	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)

	bb := cp.BB{
		L: -width * 0.45,
		B: -height/2 - 1,
		R: width * 0.45,
		T: -height/2 + 1,
	}
	ground := cp.NewBox2(body, bb, 0)
	ground.SetSensor(true)
	ground.SetCollisionType(collisionTypeGroundSensor)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.space.AddShape(ground)

	b := &Body{Body: body, Shape: shape, GroundShape: ground}
	pw.bodies[e] = b
	pw.groundToEntity[ground] = e
	pw.contacts[e] = &contactState{}
	return b
}

// RemoveBody detaches e's body from the space.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	b, ok := pw.bodies[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(b.GroundShape)
	pw.space.RemoveShape(b.Shape)
	pw.space.RemoveBody(b.Body)
	delete(pw.groundToEntity, b.GroundShape)
	delete(pw.bodies, e)
	delete(pw.contacts, e)
}

// Body returns e's body.
func (pw *PhysicsWorld) Body(e Entity) (*Body, bool) {
	b, ok := pw.bodies[e]
	return b, ok
}

// Grounded reports whether e's ground sensor touched the floor recently.
func (pw *PhysicsWorld) Grounded(e Entity) bool {
	c, ok := pw.contacts[e]
	return ok && (c.grounded || c.grace > 0)
}

// Step advances the simulation and refreshes ground contacts.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	for _, c := range pw.contacts {
		if c.grace > 0 && !c.grounded {
			c.grace--
		}
		c.grounded = false
	}
	pw.space.Step(dt)
}

func (pw *PhysicsWorld) buildStage() {
	w, h := pw.stage.Width, pw.stage.Height
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		pw.space.AddShape(shape)
	}
}

func (pw *PhysicsWorld) setupHandlers() {
	groundHandler := pw.space.NewCollisionHandler(collisionTypeGroundSensor, collisionTypeSolid)
	groundHandler.UserData = pw
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		e, ok := world.groundToEntity[shapeA]
		if !ok {
			if e, ok = world.groundToEntity[shapeB]; !ok {
				return true
			}
		}
		// walls touch the sensor too; only a floor-like normal grounds
		if n := arb.Normal(); math.Abs(n.Y) < 0.5 {
			return true
		}
		if c := world.contacts[e]; c != nil {
			c.grounded = true
			c.grace = groundGraceTicks
		}
		return true
	}
}
