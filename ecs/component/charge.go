package component

import (
	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/logicclock"
)

// Charge builds up while defend is held and is read by charge requirements.
type Charge struct {
	Clock   logicclock.Clock
	UseMode character.ChargeUseMode
	// TicksPerPoint is how long defend must be held for one point.
	TicksPerPoint int
	held          int
}

// Hold advances the charge by one held tick.
func (c *Charge) Hold() {
	c.held++
	if c.TicksPerPoint <= 0 || c.held%c.TicksPerPoint == 0 {
		c.Clock = c.Clock.Tick()
	}
}

// Release drops all built up charge.
func (c *Charge) Release() {
	c.held = 0
	c.Clock = c.Clock.Reset()
}

var ChargeComponent = NewComponent[Charge]()
