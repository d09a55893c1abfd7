package character

// Check inspects a snapshot and returns an update when it matches.
type Check func(c Components) (StatusUpdate, bool)

// firstMatch returns the result of the first check that matches.
func firstMatch(c Components, checks ...Check) (StatusUpdate, bool) {
	for _, check := range checks {
		if u, ok := check(c); ok {
			return u, true
		}
	}
	return StatusUpdate{}, false
}

// AliveCheck knocks out a character with no health left.
func AliveCheck(c Components) (StatusUpdate, bool) {
	if c.HealthPoints == 0 && !c.SequenceID.IsDeath() {
		return SwitchTo(FallForwardDescend), true
	}
	return StatusUpdate{}, false
}

// AirborneCheck drops a character that lost its footing into JumpDescend.
func AirborneCheck(c Components) (StatusUpdate, bool) {
	if c.Grounding == Airborne && !c.SequenceID.IsAirborne() {
		return SwitchTo(JumpDescend), true
	}
	return StatusUpdate{}, false
}

// SequenceEndCheck applies the configured end transition.
func SequenceEndCheck(c Components) (StatusUpdate, bool) {
	if !c.ended() {
		return StatusUpdate{}, false
	}
	if next, ok := c.End.Target(c.SequenceID); ok {
		return SwitchTo(next), true
	}
	return StatusUpdate{}, false
}

// SequenceRepeatCheck restarts the current sequence once it ends.
func SequenceRepeatCheck(c Components) (StatusUpdate, bool) {
	if c.ended() {
		return SwitchTo(c.SequenceID), true
	}
	return StatusUpdate{}, false
}

func switchOnEnd(next SequenceID) Check {
	return func(c Components) (StatusUpdate, bool) {
		if c.ended() {
			return SwitchTo(next), true
		}
		return StatusUpdate{}, false
	}
}

func switchWhenGrounded(next SequenceID) Check {
	return func(c Components) (StatusUpdate, bool) {
		if c.Grounding == OnGround {
			return SwitchTo(next), true
		}
		return StatusUpdate{}, false
	}
}

func switchWhenFalling(next SequenceID) Check {
	return func(c Components) (StatusUpdate, bool) {
		if c.Velocity.Y <= 0 {
			return SwitchTo(next), true
		}
		return StatusUpdate{}, false
	}
}

// JumpCheck starts a jump while the jump button is held.
func JumpCheck(c Components) (StatusUpdate, bool) {
	if c.Input.Jump {
		return SwitchTo(Jump), true
	}
	return StatusUpdate{}, false
}

// StandAttackCheck starts the grounded attack.
func StandAttackCheck(c Components) (StatusUpdate, bool) {
	if c.Input.Attack {
		return SwitchTo(StandAttack0), true
	}
	return StatusUpdate{}, false
}

// JumpAttackCheck attacks in the air.
func JumpAttackCheck(c Components) (StatusUpdate, bool) {
	if c.Input.Attack {
		return SwitchTo(JumpAttack), true
	}
	return StatusUpdate{}, false
}

// StandXMovementCheck leaves Stand on x input: Run when resumed within the
// grace window in the facing direction, otherwise Walk facing the input.
func StandXMovementCheck(c Components) (StatusUpdate, bool) {
	if c.Input.XAxis == 0 {
		return StatusUpdate{}, false
	}
	if c.RunCounter.Phase == RunDecrease && c.sameDirection() {
		return SwitchTo(Run).WithRunCounter(RunCounter{}), true
	}
	return SwitchTo(Walk).
		WithMirrored(c.Input.XAxis < 0).
		WithRunCounter(RunCounterIncrease(RunCounterResetTickCount)), true
}

// StandZMovementCheck walks on depth input alone.
func StandZMovementCheck(c Components) (StatusUpdate, bool) {
	if c.Input.ZAxis != 0 {
		return SwitchTo(Walk), true
	}
	return StatusUpdate{}, false
}

// WalkNoMovementCheck stands once every axis is released.
func WalkNoMovementCheck(c Components) (StatusUpdate, bool) {
	if c.Input.XAxis == 0 && c.Input.ZAxis == 0 {
		return SwitchTo(Stand), true
	}
	return StatusUpdate{}, false
}

// WalkXMovementCheck turns around on reversed input and breaks into a run
// when input resumes in the grace window.
func WalkXMovementCheck(c Components) (StatusUpdate, bool) {
	switch {
	case c.Input.XAxis == 0:
		return StatusUpdate{}, false
	case !c.sameDirection():
		return SwitchTo(Walk).
			WithMirrored(c.Input.XAxis < 0).
			WithRunCounter(RunCounterIncrease(RunCounterResetTickCount)), true
	case c.RunCounter.Phase == RunDecrease:
		return SwitchTo(Run).WithRunCounter(RunCounter{}), true
	case c.RunCounter.Phase == RunUnused:
		return SwitchTo(Walk).
			WithMirrored(c.Input.XAxis < 0).
			WithRunCounter(RunCounterIncrease(RunCounterResetTickCount)), true
	}
	return StatusUpdate{}, false
}

// DashForwardCheck dashes when jumping while running forward.
func DashForwardCheck(c Components) (StatusUpdate, bool) {
	if c.Input.Jump && c.sameDirection() {
		return SwitchTo(DashForward), true
	}
	return StatusUpdate{}, false
}

// DashBackCheck dashes backwards when jumping against the run.
func DashBackCheck(c Components) (StatusUpdate, bool) {
	if c.Input.Jump && c.Input.XAxis != 0 && !c.sameDirection() {
		return SwitchTo(DashBack), true
	}
	return StatusUpdate{}, false
}

// DodgeCheck dodges while defending.
func DodgeCheck(c Components) (StatusUpdate, bool) {
	if c.Input.Defend {
		return SwitchTo(Dodge), true
	}
	return StatusUpdate{}, false
}

// RunStopCheck keeps running while x input matches facing. Depth input is
// ignored.
func RunStopCheck(c Components) (StatusUpdate, bool) {
	switch {
	case !c.sameDirection():
		return SwitchTo(RunStop), true
	case c.ended():
		return SwitchTo(Run), true
	}
	return StatusUpdate{}, false
}

// ReviveCheck stands a knocked out character back up once healed.
func ReviveCheck(c Components) (StatusUpdate, bool) {
	if c.HealthPoints > 0 {
		return SwitchTo(Stand), true
	}
	return StatusUpdate{}, false
}

// FallCheck drops a knocked out body that left the ground.
func FallCheck(c Components) (StatusUpdate, bool) {
	if c.Grounding == Airborne {
		return SwitchTo(FallForwardDescend), true
	}
	return StatusUpdate{}, false
}
