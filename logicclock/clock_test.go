package logicclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockTick(t *testing.T) {
	cases := []struct {
		name  string
		start Clock
		ticks int
		want  Clock
	}{
		{"zero_limit_stays_complete", New(0), 3, Clock{Value: 0, Limit: 0}},
		{"advances_below_limit", New(5), 2, Clock{Value: 2, Limit: 5}},
		{"saturates_at_limit", New(3), 10, Clock{Value: 3, Limit: 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clock := c.start
			for i := 0; i < c.ticks; i++ {
				clock = clock.Tick()
			}
			assert.Equal(t, c.want, clock)
			assert.True(t, clock.Value <= clock.Limit)
		})
	}
}

func TestClockIsComplete(t *testing.T) {
	assert.True(t, New(0).IsComplete())
	assert.False(t, New(1).IsComplete())
	assert.True(t, New(1).Tick().IsComplete())
}

func TestClockResetAndClamp(t *testing.T) {
	clock := New(4).Tick().Tick().Tick()
	assert.Equal(t, Clock{Value: 0, Limit: 4}, clock.Reset())
	assert.Equal(t, Clock{Value: 1, Limit: 1}, clock.Clamp(1))
	assert.Equal(t, Clock{Value: 3, Limit: 9}, clock.Clamp(9))
	assert.Equal(t, "3/4", clock.String())
}
