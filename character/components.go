package character

import "github.com/milk9111/brawler/sequence"

// Components is the read-only view a check evaluates against.
type Components struct {
	Input          ControllerInput
	HealthPoints   HealthPoints
	SequenceID     SequenceID
	SequenceStatus sequence.Status
	Position       Vec3
	Velocity       Vec3
	Mirrored       bool
	Grounding      Grounding
	RunCounter     RunCounter
	End            sequence.EndTransition[SequenceID]
}

// sameDirection reports whether x input points the way the character faces.
func (c Components) sameDirection() bool {
	return (c.Input.XAxis > 0 && !c.Mirrored) || (c.Input.XAxis < 0 && c.Mirrored)
}

func (c Components) ended() bool {
	return c.SequenceStatus == sequence.End
}
