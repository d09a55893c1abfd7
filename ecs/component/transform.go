package component

import "github.com/milk9111/brawler/character"

// Transform is the world position of the centre of a character's feet.
type Transform struct {
	Position character.Vec3
}

var TransformComponent = NewComponent[Transform]()

type Velocity struct {
	Vec character.Vec3
}

var VelocityComponent = NewComponent[Velocity]()

type Grounding struct {
	State character.Grounding
}

var GroundingComponent = NewComponent[Grounding]()
