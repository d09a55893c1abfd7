package character

import "fmt"

// Handler computes the update for one sequence. An empty update holds.
type Handler func(c Components) StatusUpdate

var handlers = [sequenceIDCount]Handler{
	Stand:              standHandler,
	StandAttack0:       chain(AliveCheck, AirborneCheck, SequenceEndCheck),
	StandAttack1:       chain(AliveCheck, AirborneCheck, SequenceEndCheck),
	Walk:               walkHandler,
	Run:                chain(AliveCheck, AirborneCheck, DashForwardCheck, DashBackCheck, DodgeCheck, RunStopCheck),
	RunStop:            chain(AliveCheck, AirborneCheck, SequenceEndCheck),
	Dodge:              chain(AliveCheck, AirborneCheck, SequenceEndCheck),
	Jump:               settled(chain(AliveCheck, SequenceEndCheck)),
	JumpOff:            settled(chain(AliveCheck, switchWhenFalling(JumpDescend), switchOnEnd(JumpAscend))),
	JumpAscend:         settled(chain(AliveCheck, JumpAttackCheck, switchWhenFalling(JumpDescend), SequenceEndCheck)),
	JumpDescend:        settled(chain(AliveCheck, JumpAttackCheck, switchWhenGrounded(JumpDescendLand), SequenceEndCheck)),
	JumpDescendLand:    settled(chain(AliveCheck, AirborneCheck, switchOnEnd(Stand))),
	JumpAttack:         settled(chain(AliveCheck, switchWhenGrounded(JumpDescendLand), SequenceEndCheck)),
	DashForward:        chain(AliveCheck, SequenceEndCheck),
	DashBack:           chain(AliveCheck, SequenceEndCheck),
	DashDescend:        chain(AliveCheck, switchWhenGrounded(DashDescendLand), SequenceEndCheck),
	DashDescendLand:    chain(AliveCheck, AirborneCheck, SequenceEndCheck),
	FallForwardDescend: chain(switchWhenGrounded(FallForwardLand), SequenceEndCheck),
	FallForwardLand:    chain(FallCheck, SequenceEndCheck),
	LieFaceDown:        chain(FallCheck, ReviveCheck, SequenceEndCheck),
}

// Update runs the handler chain of the snapshot's current sequence.
func Update(c Components) StatusUpdate {
	if !c.SequenceID.Valid() {
		panic(fmt.Sprintf("character: no handler for sequence `%s`", c.SequenceID))
	}
	return handlers[c.SequenceID](c)
}

func chain(checks ...Check) Handler {
	return func(c Components) StatusUpdate {
		u, _ := firstMatch(c, checks...)
		return u
	}
}

// settled guards sequences that must never see a counting run counter.
func settled(h Handler) Handler {
	return func(c Components) StatusUpdate {
		mustBeSettled(c)
		return h(c)
	}
}

func standHandler(c Components) StatusUpdate {
	mustBeSettled(c)
	u, _ := firstMatch(c,
		AliveCheck,
		AirborneCheck,
		JumpCheck,
		StandAttackCheck,
		StandXMovementCheck,
		StandZMovementCheck,
		SequenceRepeatCheck,
	)
	return withRunCounter(c, u, standRunCounter(c))
}

func walkHandler(c Components) StatusUpdate {
	u, _ := firstMatch(c,
		AliveCheck,
		AirborneCheck,
		JumpCheck,
		StandAttackCheck,
		WalkNoMovementCheck,
		WalkXMovementCheck,
		SequenceRepeatCheck,
	)
	return withRunCounter(c, u, walkRunCounter(c))
}

// withRunCounter attaches the counter progression to u unless the matching
// check already decided it, and records it only when it changed.
func withRunCounter(c Components, u StatusUpdate, rc RunCounter) StatusUpdate {
	if u.RunCounter != nil {
		rc = *u.RunCounter
	}
	if u.SequenceID != nil && !u.SequenceID.keepsRunCounter() {
		rc = RunCounter{}
	}
	if rc == c.RunCounter {
		u.RunCounter = nil
		return u
	}
	return u.WithRunCounter(rc)
}
