// Package logicclock provides a saturating tick counter used for frame timing
// and charge tracking.
package logicclock

import "fmt"

// Clock counts ticks from 0 up to Limit. It never wraps.
type Clock struct {
	Value uint32
	Limit uint32
}

// New returns a clock at 0 with the given limit.
func New(limit uint32) Clock {
	return Clock{Limit: limit}
}

// Tick returns the clock advanced by one, saturating at Limit.
func (c Clock) Tick() Clock {
	if c.Value < c.Limit {
		c.Value++
	}
	return c
}

// IsComplete reports whether Value has reached Limit.
func (c Clock) IsComplete() bool {
	return c.Value >= c.Limit
}

// Reset returns the clock with Value set back to 0.
func (c Clock) Reset() Clock {
	c.Value = 0
	return c
}

// Clamp keeps Value within a new limit.
func (c Clock) Clamp(limit uint32) Clock {
	c.Limit = limit
	if c.Value > limit {
		c.Value = limit
	}
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%d/%d", c.Value, c.Limit)
}
