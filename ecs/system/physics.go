package system

import (
	"math"

	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// Landed is the payload of ecs.EventLanded.
type Landed struct {
	Entity ecs.Entity
}

// PhysicsSystem steps the Chipmunk space in the X/Y plane and integrates
// depth separately. Transforms hold the feet position, bodies are centred.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (p *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	entities := ecs.Query(w,
		component.TransformComponent.ID(),
		component.VelocityComponent.ID(),
		component.ColliderComponent.ID(),
	)
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())

		b := pw.EnsureBody(e, t.Position.X, t.Position.Y+c.Height/2, c.Width, c.Height)
		b.Body.SetVelocity(v.Vec.X, v.Vec.Y)
	}

	pw.Step(1)

	depth := pw.Stage().Depth
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		b, ok := pw.Body(e)
		if !ok {
			continue
		}

		pos := b.Body.Position()
		vel := b.Body.Velocity()
		t.Position.X = pos.X
		t.Position.Y = pos.Y - c.Height/2
		v.Vec.X = vel.X
		v.Vec.Y = vel.Y

		t.Position.Z = math.Min(math.Max(t.Position.Z+v.Vec.Z, 0), depth)

		g, ok := ecs.Get(w, e, component.GroundingComponent.Kind())
		if !ok {
			continue
		}
		next := character.Airborne
		if pw.Grounded(e) {
			next = character.OnGround
		}
		if g.State == character.Airborne && next == character.OnGround {
			w.Events().Push(ecs.Event{Type: ecs.EventLanded, Data: Landed{Entity: e}})
		}
		g.State = next
	}
}
