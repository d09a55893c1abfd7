package system

import (
	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/sequence"
)

const runStopFriction = 0.8

// KinematicsSystem turns each character's sequence into a desired velocity.
// Airborne sequences keep whatever velocity physics produced, apart from the
// launch impulse on their first tick.
type KinematicsSystem struct{}

func NewKinematicsSystem() *KinematicsSystem {
	return &KinematicsSystem{}
}

func (k *KinematicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w,
		component.CharacterStatusComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.MovementComponent.Kind(),
		func(e ecs.Entity, st *character.Status, vel *component.Velocity, move *component.Movement) {
			var in character.ControllerInput
			if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
				in = input.Current
			}
			vel.Vec = Velocity(*st, vel.Vec, in, *move)
		},
	)
}

// Velocity returns the velocity a character in st should move with this tick.
func Velocity(st character.Status, v character.Vec3, in character.ControllerInput, move component.Movement) character.Vec3 {
	facing := 1.0
	if st.Mirrored {
		facing = -1
	}
	begin := st.SequenceStatus == sequence.Begin

	switch st.SequenceID {
	case character.Walk:
		v.X = in.XAxis * move.WalkSpeed
		v.Z = in.ZAxis * move.DepthSpeed
	case character.Run:
		v.X = facing * move.RunSpeed
		v.Z = in.ZAxis * move.DepthSpeed
	case character.RunStop:
		v.X *= runStopFriction
		v.Z = 0
	case character.Dodge:
		v.X = -facing * move.DodgeSpeed
		v.Z = 0
	case character.JumpOff:
		if begin {
			v.Y = move.JumpVelocity
		}
	case character.DashForward:
		if begin {
			v.X = facing * move.DashVelocityX
			v.Y = move.DashVelocityY
			v.Z = 0
		}
	case character.DashBack:
		if begin {
			v.X = -facing * move.DashVelocityX
			v.Y = move.DashVelocityY
			v.Z = 0
		}
	case character.JumpAscend, character.JumpDescend, character.JumpAttack,
		character.DashDescend, character.FallForwardDescend:
	default:
		v.X = 0
		v.Z = 0
	}
	return v
}
