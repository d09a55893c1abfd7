package system

import (
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// ChargeSystem builds charge while defend is held and drops it on release.
// It runs after sequence resolution so a release transition still sees the
// charge that was built.
type ChargeSystem struct{}

func NewChargeSystem() *ChargeSystem {
	return &ChargeSystem{}
}

func (c *ChargeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.ChargeComponent.Kind(), component.InputComponent.Kind(), func(_ ecs.Entity, charge *component.Charge, input *component.Input) {
		switch {
		case input.Current.Defend:
			charge.Hold()
		case input.Previous.Defend:
			charge.Release()
		}
	})
}
