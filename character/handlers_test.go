package character

import (
	"fmt"
	"testing"

	"github.com/milk9111/brawler/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func components(id SequenceID) Components {
	return Components{
		HealthPoints:   100,
		SequenceID:     id,
		SequenceStatus: sequence.Ongoing,
		Grounding:      OnGround,
		Velocity:       Vec3{},
	}
}

func seqOf(u StatusUpdate) *SequenceID {
	return u.SequenceID
}

func ptr[T any](v T) *T { return &v }

func TestAliveCheckPreemptsEveryLivingSequence(t *testing.T) {
	for _, id := range SequenceIDs() {
		if id.IsDeath() {
			continue
		}
		t.Run(id.String(), func(t *testing.T) {
			c := components(id)
			c.HealthPoints = 0
			c.Input = ControllerInput{XAxis: 1, Jump: true, Attack: true, Defend: true}
			c.SequenceStatus = sequence.End
			c.Grounding = Airborne
			c.Velocity = Vec3{Y: -2}

			assert.Equal(t, ptr(FallForwardDescend), seqOf(Update(c)))
		})
	}
}

func TestAirborneCheckPreemptsGroundSequences(t *testing.T) {
	for _, id := range SequenceIDs() {
		if id.IsAirborne() || id.IsDeath() {
			continue
		}
		t.Run(id.String(), func(t *testing.T) {
			c := components(id)
			c.Grounding = Airborne
			c.Input = ControllerInput{XAxis: -1, ZAxis: 1, Jump: true, Attack: true, Defend: true}
			c.SequenceStatus = sequence.End

			assert.Equal(t, ptr(JumpDescend), seqOf(Update(c)))
		})
	}
}

func TestDeathFamilyFallsWhenAirborne(t *testing.T) {
	tests := []struct {
		id   SequenceID
		hp   HealthPoints
		want *SequenceID
	}{
		{id: FallForwardLand, hp: 100, want: ptr(FallForwardDescend)},
		{id: FallForwardLand, hp: 0, want: ptr(FallForwardDescend)},
		{id: LieFaceDown, hp: 100, want: ptr(FallForwardDescend)},
		{id: LieFaceDown, hp: 0, want: ptr(FallForwardDescend)},
		{id: FallForwardDescend, hp: 100, want: nil},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s hp %d", tt.id, tt.hp), func(t *testing.T) {
			c := components(tt.id)
			c.HealthPoints = tt.hp
			c.Grounding = Airborne
			c.Input = ControllerInput{XAxis: 1, Jump: true}
			c.SequenceStatus = sequence.End

			got := seqOf(Update(c))
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, ptr(JumpDescend), got, "knocked down characters never enter the jump family")
		})
	}
}

func TestStandHandler(t *testing.T) {
	tests := []struct {
		name  string
		input ControllerInput
		rc    RunCounter
		end   bool
		want  *SequenceID
	}{
		{name: "no input holds", want: nil},
		{name: "no input restarts on end", end: true, want: ptr(Stand)},
		{name: "jump", input: ControllerInput{Jump: true, Attack: true}, want: ptr(Jump)},
		{name: "attack", input: ControllerInput{Attack: true, XAxis: 1}, want: ptr(StandAttack0)},
		{name: "x walks", input: ControllerInput{XAxis: 1}, want: ptr(Walk)},
		{name: "z walks", input: ControllerInput{ZAxis: -1}, want: ptr(Walk)},
		{name: "x in grace window runs", input: ControllerInput{XAxis: 1}, rc: RunCounterDecrease(3), want: ptr(Run)},
		{name: "reversed x in grace window walks", input: ControllerInput{XAxis: -1}, rc: RunCounterDecrease(3), want: ptr(Walk)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components(Stand)
			c.Input = tt.input
			c.RunCounter = tt.rc
			if tt.end {
				c.SequenceStatus = sequence.End
			}
			assert.Equal(t, tt.want, seqOf(Update(c)))
		})
	}
}

func TestStandWalkFacesInput(t *testing.T) {
	c := components(Stand)
	c.Input.XAxis = -1
	u := Update(c)
	require.Equal(t, ptr(Walk), u.SequenceID)
	assert.Equal(t, ptr(true), u.Mirrored)
	assert.Equal(t, ptr(RunCounterIncrease(RunCounterResetTickCount)), u.RunCounter)
}

func TestStandRunCounterDecays(t *testing.T) {
	c := components(Stand)
	c.RunCounter = RunCounterDecrease(4)
	assert.Equal(t, ptr(RunCounterDecrease(3)), Update(c).RunCounter)

	c.RunCounter = RunCounterDecrease(0)
	assert.Equal(t, ptr(RunCounter{}), Update(c).RunCounter)
}

func TestStandLeavingToJumpSettlesRunCounter(t *testing.T) {
	c := components(Stand)
	c.RunCounter = RunCounterDecrease(4)
	c.Input.Jump = true
	u := Update(c)
	assert.Equal(t, ptr(Jump), u.SequenceID)
	assert.Equal(t, ptr(RunCounter{}), u.RunCounter)
}

func TestStandPanicsOnCountingRunCounter(t *testing.T) {
	for _, rc := range []RunCounter{RunCounterIncrease(3), RunCounterExceeded()} {
		c := components(Stand)
		c.RunCounter = rc
		assert.Panics(t, func() { Update(c) }, rc.String())
	}
}

func TestJumpFamilyPanicsOnCountingRunCounter(t *testing.T) {
	for _, id := range SequenceIDs() {
		if !id.IsJump() {
			continue
		}
		c := components(id)
		c.RunCounter = RunCounterIncrease(1)
		assert.Panics(t, func() { Update(c) }, id.String())
	}
}

func TestWalkHandler(t *testing.T) {
	tests := []struct {
		name     string
		input    ControllerInput
		mirrored bool
		rc       RunCounter
		end      bool
		want     *SequenceID
	}{
		{name: "no input stands", rc: RunCounterIncrease(10), want: ptr(Stand)},
		{name: "no input after exceeding stands", rc: RunCounterExceeded(), want: ptr(Stand)},
		{name: "reversed input turns", input: ControllerInput{XAxis: 1}, mirrored: true, rc: RunCounterIncrease(11), want: ptr(Walk)},
		{name: "z input holds", input: ControllerInput{ZAxis: 1}, rc: RunCounterIncrease(0), want: nil},
		{name: "z input restarts on end", input: ControllerInput{ZAxis: 1}, rc: RunCounterIncrease(0), end: true, want: ptr(Walk)},
		{name: "negative z restarts on end", input: ControllerInput{ZAxis: -1}, rc: RunCounterIncrease(0), end: true, want: ptr(Walk)},
		{name: "same direction restarts on end", input: ControllerInput{XAxis: 1, ZAxis: 1}, rc: RunCounterIncrease(1), end: true, want: ptr(Walk)},
		{name: "same direction holds", input: ControllerInput{XAxis: 1}, rc: RunCounterIncrease(5), want: nil},
		{name: "resumed forward runs", input: ControllerInput{XAxis: 1, ZAxis: -1}, rc: RunCounterDecrease(10), want: ptr(Run)},
		{name: "resumed forward mirrored runs", input: ControllerInput{XAxis: -1}, mirrored: true, rc: RunCounterDecrease(10), want: ptr(Run)},
		{name: "jump", input: ControllerInput{XAxis: 1, Jump: true}, rc: RunCounterIncrease(5), want: ptr(Jump)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components(Walk)
			c.Input = tt.input
			c.Mirrored = tt.mirrored
			c.RunCounter = tt.rc
			if tt.end {
				c.SequenceStatus = sequence.End
			}
			assert.Equal(t, tt.want, seqOf(Update(c)))
		})
	}
}

func TestWalkRunCounterProgression(t *testing.T) {
	tests := []struct {
		name  string
		input ControllerInput
		rc    RunCounter
		want  *RunCounter
	}{
		{name: "sustain counts down", input: ControllerInput{XAxis: 1}, rc: RunCounterIncrease(4), want: ptr(RunCounterIncrease(3))},
		{name: "sustain exceeds", input: ControllerInput{XAxis: 1}, rc: RunCounterIncrease(0), want: ptr(RunCounterExceeded())},
		{name: "exceeded stays", input: ControllerInput{XAxis: 1}, rc: RunCounterExceeded(), want: nil},
		{name: "release opens grace window", input: ControllerInput{ZAxis: 1}, rc: RunCounterIncrease(2), want: ptr(RunCounterDecrease(RunCounterResetTickCount))},
		{name: "release after exceeding resets", rc: RunCounterExceeded(), want: ptr(RunCounter{})},
		{name: "grace window counts down", input: ControllerInput{ZAxis: 1}, rc: RunCounterDecrease(2), want: ptr(RunCounterDecrease(1))},
		{name: "turning restarts count", input: ControllerInput{XAxis: -1}, rc: RunCounterIncrease(2), want: ptr(RunCounterIncrease(RunCounterResetTickCount))},
		{name: "jumping settles", input: ControllerInput{XAxis: 1, Jump: true}, rc: RunCounterIncrease(2), want: ptr(RunCounter{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components(Walk)
			c.Input = tt.input
			c.RunCounter = tt.rc
			assert.Equal(t, tt.want, Update(c).RunCounter)
		})
	}
}

func TestRunHandler(t *testing.T) {
	tests := []struct {
		name     string
		input    ControllerInput
		mirrored bool
		end      bool
		want     *SequenceID
	}{
		{name: "forward keeps running", input: ControllerInput{XAxis: 1}, want: nil},
		{name: "depth is ignored", input: ControllerInput{XAxis: 1, ZAxis: 1}, want: nil},
		{name: "mirrored forward keeps running", input: ControllerInput{XAxis: -1, ZAxis: -1}, mirrored: true, want: nil},
		{name: "restarts on end", input: ControllerInput{XAxis: 1}, end: true, want: ptr(Run)},
		{name: "no input stops", want: ptr(RunStop)},
		{name: "reversed input stops", input: ControllerInput{XAxis: -1}, want: ptr(RunStop)},
		{name: "forward jump dashes", input: ControllerInput{XAxis: 1, Jump: true}, want: ptr(DashForward)},
		{name: "backward jump dashes back", input: ControllerInput{XAxis: 1, Jump: true}, mirrored: true, want: ptr(DashBack)},
		{name: "defend dodges", input: ControllerInput{Defend: true}, want: ptr(Dodge)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components(Run)
			c.Input = tt.input
			c.Mirrored = tt.mirrored
			if tt.end {
				c.SequenceStatus = sequence.End
			}
			assert.Equal(t, tt.want, seqOf(Update(c)))
		})
	}
}

func TestJumpOffHandler(t *testing.T) {
	c := components(JumpOff)
	c.Grounding = Airborne
	c.Velocity.Y = 1

	assert.True(t, Update(c).IsEmpty())

	c.SequenceStatus = sequence.End
	assert.Equal(t, ptr(JumpAscend), seqOf(Update(c)))

	for _, status := range []sequence.Status{sequence.Begin, sequence.Ongoing, sequence.End} {
		c.SequenceStatus = status
		c.Velocity.Y = 0
		assert.Equal(t, ptr(JumpDescend), seqOf(Update(c)), status.String())
		c.Velocity.Y = -1
		assert.Equal(t, ptr(JumpDescend), seqOf(Update(c)), status.String())
	}
}

func TestJumpCascade(t *testing.T) {
	tests := []struct {
		name      string
		id        SequenceID
		grounding Grounding
		vy        float64
		input     ControllerInput
		end       bool
		want      *SequenceID
	}{
		{name: "jump ends into jump off", id: Jump, end: true, want: ptr(JumpOff)},
		{name: "jump holds", id: Jump, want: nil},
		{name: "ascend attacks", id: JumpAscend, grounding: Airborne, vy: 2, input: ControllerInput{Attack: true}, want: ptr(JumpAttack)},
		{name: "ascend peaks", id: JumpAscend, grounding: Airborne, vy: 0, want: ptr(JumpDescend)},
		{name: "descend lands", id: JumpDescend, grounding: OnGround, vy: -1, want: ptr(JumpDescendLand)},
		{name: "descend falls", id: JumpDescend, grounding: Airborne, vy: -1, want: nil},
		{name: "land ends standing", id: JumpDescendLand, end: true, want: ptr(Stand)},
		{name: "land holds", id: JumpDescendLand, want: nil},
		{name: "attack lands", id: JumpAttack, grounding: OnGround, want: ptr(JumpDescendLand)},
		{name: "attack ends descending", id: JumpAttack, grounding: Airborne, end: true, want: ptr(JumpDescend)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components(tt.id)
			c.Grounding = tt.grounding
			c.Velocity.Y = tt.vy
			c.Input = tt.input
			c.End = testSequences()[tt.id].End
			if tt.end {
				c.SequenceStatus = sequence.End
			}
			assert.Equal(t, tt.want, seqOf(Update(c)))
		})
	}
}

func TestDeathCascade(t *testing.T) {
	c := components(FallForwardDescend)
	c.HealthPoints = 0
	c.Grounding = Airborne
	assert.True(t, Update(c).IsEmpty())

	c.Grounding = OnGround
	assert.Equal(t, ptr(FallForwardLand), seqOf(Update(c)))

	c = components(FallForwardLand)
	c.HealthPoints = 0
	c.End = sequence.Next(LieFaceDown)
	c.SequenceStatus = sequence.End
	assert.Equal(t, ptr(LieFaceDown), seqOf(Update(c)))

	c = components(LieFaceDown)
	c.HealthPoints = 0
	c.SequenceStatus = sequence.End
	assert.True(t, Update(c).IsEmpty())

	c.HealthPoints = 1
	assert.Equal(t, ptr(Stand), seqOf(Update(c)))
}

func TestUpdatePanicsOnUnknownSequence(t *testing.T) {
	assert.Panics(t, func() { Update(components(sequenceIDCount)) })
}
