package character

import "fmt"

// RunCounterResetTickCount is how many ticks of sustained input promote Walk
// to Run, and how long the grace window after releasing lasts.
const RunCounterResetTickCount uint8 = 10

// RunPhase is the variant tag of a RunCounter.
type RunPhase uint8

const (
	RunUnused RunPhase = iota
	RunIncrease
	RunDecrease
	RunExceeded
)

// RunCounter tracks sustained directional input. The zero value is unused.
type RunCounter struct {
	Phase RunPhase
	Ticks uint8
}

// RunCounterIncrease counts down sustained input before Exceeded.
func RunCounterIncrease(ticks uint8) RunCounter {
	return RunCounter{Phase: RunIncrease, Ticks: ticks}
}

// RunCounterDecrease counts down the window in which resuming input runs.
func RunCounterDecrease(ticks uint8) RunCounter {
	return RunCounter{Phase: RunDecrease, Ticks: ticks}
}

// RunCounterExceeded is the terminal state once input was sustained long enough.
func RunCounterExceeded() RunCounter {
	return RunCounter{Phase: RunExceeded}
}

// Settled reports whether the counter may be carried into sequences that
// are not actively walking.
func (rc RunCounter) Settled() bool {
	return rc.Phase == RunUnused || rc.Phase == RunDecrease
}

func (rc RunCounter) String() string {
	switch rc.Phase {
	case RunUnused:
		return "Unused"
	case RunIncrease:
		return fmt.Sprintf("Increase(%d)", rc.Ticks)
	case RunDecrease:
		return fmt.Sprintf("Decrease(%d)", rc.Ticks)
	case RunExceeded:
		return "Exceeded"
	default:
		return fmt.Sprintf("RunCounter(%d, %d)", rc.Phase, rc.Ticks)
	}
}

// decay steps the counter for a tick without x input.
func (rc RunCounter) decay() RunCounter {
	switch rc.Phase {
	case RunExceeded:
		return RunCounter{}
	case RunDecrease:
		if rc.Ticks == 0 {
			return RunCounter{}
		}
		return RunCounterDecrease(rc.Ticks - 1)
	case RunIncrease:
		return RunCounterDecrease(RunCounterResetTickCount)
	}
	return rc
}

// sustain steps the counter for a tick of input in the committed direction.
func (rc RunCounter) sustain() RunCounter {
	switch rc.Phase {
	case RunUnused:
		return RunCounterIncrease(RunCounterResetTickCount)
	case RunDecrease:
		return RunCounter{}
	case RunIncrease:
		if rc.Ticks == 0 {
			return RunCounterExceeded()
		}
		return RunCounterIncrease(rc.Ticks - 1)
	}
	return rc
}

// walkRunCounter is the counter progression while walking.
func walkRunCounter(c Components) RunCounter {
	switch {
	case c.Input.XAxis == 0:
		return c.RunCounter.decay()
	case !c.sameDirection():
		return RunCounterIncrease(RunCounterResetTickCount)
	default:
		return c.RunCounter.sustain()
	}
}

// standRunCounter is the counter progression while standing. Only the grace
// window decays; x input is handled by the transition that leaves Stand.
func standRunCounter(c Components) RunCounter {
	if c.Input.XAxis == 0 && c.RunCounter.Phase == RunDecrease {
		return c.RunCounter.decay()
	}
	return c.RunCounter
}

func mustBeSettled(c Components) {
	if !c.RunCounter.Settled() {
		panic(fmt.Sprintf("character: invalid run counter %s during `%s` sequence", c.RunCounter, c.SequenceID))
	}
}
