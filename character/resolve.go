package character

import (
	"github.com/milk9111/brawler/logicclock"
	"github.com/milk9111/brawler/sequence"
)

// Environment is everything outside Status that one tick reads.
type Environment struct {
	Input         ControllerInput
	Events        ControlEvents
	HealthPoints  HealthPoints
	SkillPoints   SkillPoints
	Charge        logicclock.Clock
	ChargeUseMode ChargeUseMode
	Position      Vec3
	Velocity      Vec3
	Grounding     Grounding
}

// Resolve advances st by one tick. Frame clocks move first, then a matching
// control transition wins over the sequence's handler chain, and the result
// is merged back into the status.
func Resolve(def *Definition, st Status, env Environment) Status {
	seq := def.Sequence(st.SequenceID)
	st.setCursor(sequence.Advance(st.cursor(), seq.Frames))

	if env.HealthPoints > 0 {
		params := RequirementParams{
			HealthPoints:  env.HealthPoints,
			SkillPoints:   env.SkillPoints,
			Charge:        env.Charge,
			ChargeUseMode: env.ChargeUseMode,
			Input:         env.Input,
			Mirrored:      st.Mirrored,
		}
		if next, ok := def.ControlTransition(st.SequenceID, st.FrameIndex.Value, env.Events, params); ok {
			u := SwitchTo(next)
			if rc := transitionRunCounter(next, st.RunCounter); rc != st.RunCounter {
				u = u.WithRunCounter(rc)
			}
			return st.Apply(u, def)
		}
	}

	return st.Apply(Update(Snapshot(st, env, seq)), def)
}

// transitionRunCounter is the counter carried into next by a control
// transition. Only Walk keeps counting; Stand gets the same decay the walk
// chain applies on release, everything else starts unused.
func transitionRunCounter(next SequenceID, rc RunCounter) RunCounter {
	switch next {
	case Walk:
		return rc
	case Stand:
		return rc.decay()
	default:
		return RunCounter{}
	}
}

// Snapshot builds the view the handler chain evaluates.
func Snapshot(st Status, env Environment, seq *Sequence) Components {
	return Components{
		Input:          env.Input,
		HealthPoints:   env.HealthPoints,
		SequenceID:     st.SequenceID,
		SequenceStatus: st.SequenceStatus,
		Position:       env.Position,
		Velocity:       env.Velocity,
		Mirrored:       st.Mirrored,
		Grounding:      env.Grounding,
		RunCounter:     st.RunCounter,
		End:            seq.End,
	}
}
