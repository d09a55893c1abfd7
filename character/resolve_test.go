package character

import (
	"testing"

	"github.com/milk9111/brawler/logicclock"
	"github.com/milk9111/brawler/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	def := testDefinition(t)
	st := NewStatus(def)
	assert.Equal(t, Stand, st.SequenceID)
	assert.Equal(t, sequence.Begin, st.SequenceStatus)
	assert.Equal(t, logicclock.New(1), st.FrameIndex)
	assert.Equal(t, logicclock.New(1), st.FrameWait)
	assert.False(t, st.Mirrored)
	assert.Equal(t, RunCounter{}, st.RunCounter)
}

func TestResolveWalkStandRoundTrip(t *testing.T) {
	def := testDefinition(t)
	st := NewStatus(def)
	env := Environment{HealthPoints: 100}

	for i := 0; i < 2; i++ {
		st = Resolve(def, st, env)
		require.Equal(t, Stand, st.SequenceID)
		require.Equal(t, RunCounter{}, st.RunCounter)
	}

	env.Input.XAxis = 1
	st = Resolve(def, st, env)
	require.Equal(t, Walk, st.SequenceID)
	assert.False(t, st.Mirrored)
	assert.Equal(t, RunCounterIncrease(RunCounterResetTickCount), st.RunCounter)

	for i := 0; i < int(RunCounterResetTickCount)+1; i++ {
		st = Resolve(def, st, env)
		require.Equal(t, Walk, st.SequenceID, "tick %d", i)
	}
	assert.Equal(t, RunCounterExceeded(), st.RunCounter)

	env.Input.XAxis = 0
	st = Resolve(def, st, env)
	assert.Equal(t, Stand, st.SequenceID)
	assert.Equal(t, RunCounter{}, st.RunCounter)
}

func TestResolveDoubleTapRuns(t *testing.T) {
	def := testDefinition(t)
	st := NewStatus(def)
	right := Environment{HealthPoints: 100, Input: ControllerInput{XAxis: 1}}
	idle := Environment{HealthPoints: 100}

	st = Resolve(def, st, right)
	require.Equal(t, Walk, st.SequenceID)

	st = Resolve(def, st, idle)
	require.Equal(t, Stand, st.SequenceID)
	require.Equal(t, RunCounterDecrease(RunCounterResetTickCount), st.RunCounter)

	st = Resolve(def, st, idle)
	require.Equal(t, RunCounterDecrease(RunCounterResetTickCount-1), st.RunCounter)

	st = Resolve(def, st, right)
	assert.Equal(t, Run, st.SequenceID)
	assert.Equal(t, RunCounter{}, st.RunCounter)
}

func TestResolveWalkToRun(t *testing.T) {
	def := testDefinition(t)
	st := Status{
		SequenceID:     Walk,
		SequenceStatus: sequence.Ongoing,
		FrameIndex:     logicclock.New(1),
		FrameWait:      logicclock.New(1),
		RunCounter:     RunCounterDecrease(10),
	}
	st = Resolve(def, st, Environment{HealthPoints: 100, Input: ControllerInput{XAxis: 1}})

	assert.Equal(t, Run, st.SequenceID)
	assert.Equal(t, sequence.Begin, st.SequenceStatus)
	assert.Equal(t, RunCounter{}, st.RunCounter)
}

func TestApplyEmptyUpdateIsIdentity(t *testing.T) {
	def := testDefinition(t)
	statuses := []Status{
		NewStatus(def),
		{
			SequenceID:     JumpDescend,
			SequenceStatus: sequence.End,
			FrameIndex:     logicclock.Clock{Value: 1, Limit: 1},
			FrameWait:      logicclock.Clock{Value: 1, Limit: 1},
			Mirrored:       true,
		},
		{
			SequenceID:     Walk,
			SequenceStatus: sequence.Ongoing,
			FrameIndex:     logicclock.Clock{Value: 0, Limit: 1},
			FrameWait:      logicclock.Clock{Value: 1, Limit: 1},
			RunCounter:     RunCounterIncrease(3),
		},
	}
	for _, st := range statuses {
		assert.Equal(t, st, st.Apply(StatusUpdate{}, def))
	}
}

func TestApplyRestartResetsCursor(t *testing.T) {
	def := testDefinition(t)
	st := Status{
		SequenceID:     Walk,
		SequenceStatus: sequence.Ongoing,
		FrameIndex:     logicclock.Clock{Value: 1, Limit: 1},
		FrameWait:      logicclock.Clock{Value: 1, Limit: 1},
		RunCounter:     RunCounterIncrease(2),
	}
	got := st.Apply(SwitchTo(Walk).WithMirrored(true), def)

	assert.Equal(t, Walk, got.SequenceID)
	assert.Equal(t, sequence.Begin, got.SequenceStatus)
	assert.Equal(t, logicclock.New(1), got.FrameIndex)
	assert.Equal(t, logicclock.New(1), got.FrameWait)
	assert.True(t, got.Mirrored)
	assert.Equal(t, RunCounterIncrease(2), got.RunCounter)
}

func TestApplyPanicsOnUnknownSequence(t *testing.T) {
	def := testDefinition(t)
	assert.Panics(t, func() { NewStatus(def).Apply(SwitchTo(sequenceIDCount), def) })
}

func TestResolveSequenceEndRestart(t *testing.T) {
	def := testDefinition(t)
	for _, id := range []SequenceID{Stand, Walk} {
		t.Run(id.String(), func(t *testing.T) {
			st := Status{
				SequenceID:     id,
				SequenceStatus: sequence.Ongoing,
				FrameIndex:     logicclock.Clock{Value: 1, Limit: 1},
				FrameWait:      logicclock.Clock{Value: 0, Limit: 1},
			}
			env := Environment{HealthPoints: 100}
			if id == Walk {
				env.Input.ZAxis = 1
			}
			st = Resolve(def, st, env)

			assert.Equal(t, id, st.SequenceID)
			assert.Equal(t, sequence.Begin, st.SequenceStatus)
			assert.Equal(t, uint32(0), st.FrameIndex.Value)
			assert.Equal(t, uint32(0), st.FrameWait.Value)
		})
	}
}

func TestResolveFollowsConfiguredNext(t *testing.T) {
	def := testDefinition(t)
	st := Status{
		SequenceID:     Dodge,
		SequenceStatus: sequence.Ongoing,
		FrameIndex:     logicclock.Clock{Value: 1, Limit: 1},
		FrameWait:      logicclock.Clock{Value: 0, Limit: 1},
	}
	env := Environment{HealthPoints: 100}

	st = Resolve(def, st, env)
	assert.Equal(t, Stand, st.SequenceID)
	assert.Equal(t, sequence.Begin, st.SequenceStatus)
}

func TestResolveJumpOffScenario(t *testing.T) {
	def := testDefinition(t)
	mid := Status{
		SequenceID:     JumpOff,
		SequenceStatus: sequence.Ongoing,
		FrameIndex:     logicclock.Clock{Value: 0, Limit: 1},
		FrameWait:      logicclock.Clock{Value: 0, Limit: 1},
	}
	last := mid
	last.FrameIndex.Value = 1

	rising := Environment{HealthPoints: 100, Grounding: Airborne, Velocity: Vec3{Y: 1}}
	falling := Environment{HealthPoints: 100, Grounding: Airborne, Velocity: Vec3{Y: 0}}

	st := Resolve(def, mid, rising)
	assert.Equal(t, JumpOff, st.SequenceID)
	assert.Equal(t, sequence.Ongoing, st.SequenceStatus)

	st = Resolve(def, last, rising)
	assert.Equal(t, JumpAscend, st.SequenceID)
	assert.Equal(t, sequence.Begin, st.SequenceStatus)

	for _, from := range []Status{mid, last} {
		st = Resolve(def, from, falling)
		assert.Equal(t, JumpDescend, st.SequenceID)
		assert.Equal(t, sequence.Begin, st.SequenceStatus)
	}
}

func TestResolveControlTransition(t *testing.T) {
	pressSpecial := ControlEvent{Kind: EventPress, Action: ActionSpecial}
	def := testDefinition(t, func(s map[SequenceID]Sequence) {
		for _, id := range []SequenceID{Stand, Walk} {
			seq := s[id]
			seq.Transitions = []ControlTransition{{
				Event:        pressSpecial,
				Next:         DashForward,
				Requirements: []Requirement{SkillRequirement(10)},
			}}
			s[id] = seq
		}
	})
	events := ControlEventsBetween(ControllerInput{}, ControllerInput{Special: true})

	t.Run("overrides chain", func(t *testing.T) {
		st := NewStatus(def)
		env := Environment{HealthPoints: 100, SkillPoints: 10, Events: events, Input: ControllerInput{Special: true, XAxis: 1}}
		st = Resolve(def, st, env)
		assert.Equal(t, DashForward, st.SequenceID)
		assert.Equal(t, sequence.Begin, st.SequenceStatus)
	})

	t.Run("unmet requirement falls back to chain", func(t *testing.T) {
		st := NewStatus(def)
		env := Environment{HealthPoints: 100, SkillPoints: 9, Events: events, Input: ControllerInput{Special: true, XAxis: 1}}
		st = Resolve(def, st, env)
		assert.Equal(t, Walk, st.SequenceID)
	})

	t.Run("skipped when knocked out", func(t *testing.T) {
		st := NewStatus(def)
		env := Environment{HealthPoints: 0, SkillPoints: 10, Events: events}
		st = Resolve(def, st, env)
		assert.Equal(t, FallForwardDescend, st.SequenceID)
	})

	t.Run("settles run counter", func(t *testing.T) {
		st := Status{
			SequenceID:     Walk,
			SequenceStatus: sequence.Ongoing,
			FrameIndex:     logicclock.New(1),
			FrameWait:      logicclock.New(1),
			RunCounter:     RunCounterIncrease(4),
		}
		env := Environment{HealthPoints: 100, SkillPoints: 10, Events: events, Input: ControllerInput{Special: true, XAxis: 1}}
		st = Resolve(def, st, env)
		assert.Equal(t, DashForward, st.SequenceID)
		assert.Equal(t, RunCounter{}, st.RunCounter)
	})
}

func TestResolveControlTransitionRunCounter(t *testing.T) {
	pressDefend := ControlEvent{Kind: EventPress, Action: ActionDefend}
	events := ControlEvents(0).With(pressDefend)

	tests := []struct {
		name string
		next SequenceID
		from RunCounter
		want RunCounter
	}{
		{name: "walk keeps counting", next: Walk, from: RunCounterIncrease(4), want: RunCounterIncrease(4)},
		{name: "stand decays increase", next: Stand, from: RunCounterIncrease(4), want: RunCounterDecrease(RunCounterResetTickCount)},
		{name: "stand decays exceeded", next: Stand, from: RunCounterExceeded(), want: RunCounter{}},
		{name: "stand decays grace", next: Stand, from: RunCounterDecrease(3), want: RunCounterDecrease(2)},
		{name: "run starts unused", next: Run, from: RunCounterIncrease(4), want: RunCounter{}},
		{name: "run from exceeded", next: Run, from: RunCounterExceeded(), want: RunCounter{}},
		{name: "dodge settles", next: Dodge, from: RunCounterIncrease(2), want: RunCounter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDefinition(t, func(s map[SequenceID]Sequence) {
				seq := s[Walk]
				seq.Transitions = []ControlTransition{{Event: pressDefend, Next: tt.next}}
				s[Walk] = seq
			})
			st := Status{
				SequenceID:     Walk,
				SequenceStatus: sequence.Ongoing,
				FrameIndex:     logicclock.New(1),
				FrameWait:      logicclock.New(1),
				RunCounter:     tt.from,
			}
			in := ControllerInput{Defend: true}

			st = Resolve(def, st, Environment{HealthPoints: 100, Input: in, Events: events})
			require.Equal(t, tt.next, st.SequenceID)
			assert.Equal(t, tt.want, st.RunCounter)

			// the following ticks must not trip the settled-counter checks
			assert.NotPanics(t, func() {
				for i := 0; i < 3; i++ {
					st = Resolve(def, st, Environment{HealthPoints: 100, Input: in, Grounding: Airborne})
				}
			})
		})
	}
}

func TestResolveScriptRuntimeErrorHolds(t *testing.T) {
	pressSpecial := ControlEvent{Kind: EventPress, Action: ActionSpecial}
	req, err := CompileScriptRequirement(`100 / sp > 1`)
	require.NoError(t, err)
	def := testDefinition(t, func(s map[SequenceID]Sequence) {
		seq := s[Stand]
		seq.Transitions = []ControlTransition{{Event: pressSpecial, Next: Dodge, Requirements: []Requirement{req}}}
		s[Stand] = seq
	})

	env := Environment{HealthPoints: 100, Events: ControlEvents(0).With(pressSpecial)}
	var st Status
	require.NotPanics(t, func() { st = Resolve(def, NewStatus(def), env) })
	assert.Equal(t, Stand, st.SequenceID)

	env.SkillPoints = 10
	st = Resolve(def, NewStatus(def), env)
	assert.Equal(t, Dodge, st.SequenceID)
}

func TestResolveIsDeterministic(t *testing.T) {
	def := testDefinition(t)
	inputs := []ControllerInput{
		{}, {XAxis: 1}, {XAxis: 1}, {}, {XAxis: 1}, {XAxis: 1, Jump: true},
		{ZAxis: -1}, {XAxis: -1}, {XAxis: -1, Attack: true}, {}, {Defend: true},
	}
	run := func() []Status {
		st := NewStatus(def)
		var prev ControllerInput
		out := make([]Status, 0, len(inputs))
		for _, in := range inputs {
			st = Resolve(def, st, Environment{HealthPoints: 50, Input: in, Events: ControlEventsBetween(prev, in)})
			prev = in
			out = append(out, st)
		}
		return out
	}
	assert.Equal(t, run(), run())
}
