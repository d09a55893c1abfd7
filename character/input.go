package character

import (
	"fmt"
	"strings"
)

// ControllerInput is the per-tick controller state of one entity.
type ControllerInput struct {
	XAxis   float64
	ZAxis   float64
	Defend  bool
	Jump    bool
	Attack  bool
	Special bool
}

// ControlAction is a discrete controller button.
type ControlAction uint8

const (
	ActionDefend ControlAction = iota
	ActionJump
	ActionAttack
	ActionSpecial

	controlActionCount
)

var controlActionNames = [controlActionCount]string{
	ActionDefend:  "defend",
	ActionJump:    "jump",
	ActionAttack:  "attack",
	ActionSpecial: "special",
}

func (a ControlAction) String() string {
	if a >= controlActionCount {
		return fmt.Sprintf("action(%d)", uint8(a))
	}
	return controlActionNames[a]
}

// Pressed reports whether the action's button is down.
func (in ControllerInput) Pressed(a ControlAction) bool {
	switch a {
	case ActionDefend:
		return in.Defend
	case ActionJump:
		return in.Jump
	case ActionAttack:
		return in.Attack
	case ActionSpecial:
		return in.Special
	}
	return false
}

// ControlEventKind distinguishes the edge of a button state.
type ControlEventKind uint8

const (
	EventPress ControlEventKind = iota
	EventHold
	EventRelease

	controlEventKindCount
)

var controlEventKindNames = [controlEventKindCount]string{
	EventPress:   "press",
	EventHold:    "hold",
	EventRelease: "release",
}

// ControlEvent is a button edge such as press_attack.
type ControlEvent struct {
	Kind   ControlEventKind
	Action ControlAction
}

func (e ControlEvent) String() string {
	if e.Kind >= controlEventKindCount {
		return fmt.Sprintf("event(%d)_%s", uint8(e.Kind), e.Action)
	}
	return controlEventKindNames[e.Kind] + "_" + e.Action.String()
}

func (e ControlEvent) bit() ControlEvents {
	return 1 << (uint(e.Kind)*uint(controlActionCount) + uint(e.Action))
}

// ParseControlEvent parses names like "press_attack" or "release_defend".
func ParseControlEvent(name string) (ControlEvent, error) {
	kindName, actionName, ok := strings.Cut(name, "_")
	if !ok {
		return ControlEvent{}, fmt.Errorf("character: invalid control event %q", name)
	}
	var ev ControlEvent
	found := false
	for k, n := range controlEventKindNames {
		if n == kindName {
			ev.Kind = ControlEventKind(k)
			found = true
			break
		}
	}
	if !found {
		return ControlEvent{}, fmt.Errorf("character: invalid control event kind %q", kindName)
	}
	found = false
	for a, n := range controlActionNames {
		if n == actionName {
			ev.Action = ControlAction(a)
			found = true
			break
		}
	}
	if !found {
		return ControlEvent{}, fmt.Errorf("character: invalid control action %q", actionName)
	}
	return ev, nil
}

// ControlEvents is the set of button edges that happened in one tick.
type ControlEvents uint16

// Has reports whether ev is in the set.
func (e ControlEvents) Has(ev ControlEvent) bool {
	return e&ev.bit() != 0
}

// With returns the set with ev added.
func (e ControlEvents) With(ev ControlEvent) ControlEvents {
	return e | ev.bit()
}

// ControlEventsBetween derives the button edges from two consecutive inputs.
func ControlEventsBetween(prev, curr ControllerInput) ControlEvents {
	var events ControlEvents
	for a := ControlAction(0); a < controlActionCount; a++ {
		was, is := prev.Pressed(a), curr.Pressed(a)
		switch {
		case !was && is:
			events = events.With(ControlEvent{Kind: EventPress, Action: a})
		case was && is:
			events = events.With(ControlEvent{Kind: EventHold, Action: a})
		case was && !is:
			events = events.With(ControlEvent{Kind: EventRelease, Action: a})
		}
	}
	return events
}
