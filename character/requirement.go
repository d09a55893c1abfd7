package character

import (
	"fmt"

	"github.com/milk9111/brawler/logicclock"
)

// RequirementParams is what a control transition requirement may inspect.
type RequirementParams struct {
	HealthPoints  HealthPoints
	SkillPoints   SkillPoints
	Charge        logicclock.Clock
	ChargeUseMode ChargeUseMode
	Input         ControllerInput
	Mirrored      bool
}

// Requirement gates a control transition.
type Requirement interface {
	Met(p RequirementParams) bool
}

// HealthRequirement needs at least n health points.
type HealthRequirement HealthPoints

func (r HealthRequirement) Met(p RequirementParams) bool {
	return p.HealthPoints >= HealthPoints(r)
}

// SkillRequirement needs at least n skill points.
type SkillRequirement SkillPoints

func (r SkillRequirement) Met(p RequirementParams) bool {
	return p.SkillPoints >= SkillPoints(r)
}

// ChargeUseMode decides how much charge an attack consumes.
type ChargeUseMode uint8

const (
	ChargeExact ChargeUseMode = iota
	ChargeNearestWhole
	ChargeNearestPartial
)

// ParseChargeUseMode parses "exact", "nearest_whole" or "nearest_partial".
func ParseChargeUseMode(name string) (ChargeUseMode, error) {
	switch name {
	case "", "exact":
		return ChargeExact, nil
	case "nearest_whole":
		return ChargeNearestWhole, nil
	case "nearest_partial":
		return ChargeNearestPartial, nil
	}
	return 0, fmt.Errorf("character: invalid charge use mode %q", name)
}

func (m ChargeUseMode) String() string {
	switch m {
	case ChargeNearestWhole:
		return "nearest_whole"
	case ChargeNearestPartial:
		return "nearest_partial"
	}
	return "exact"
}

// ChargeRequirement needs n points of charge. With nearest_partial any
// charge at all is enough.
type ChargeRequirement uint32

func (r ChargeRequirement) Met(p RequirementParams) bool {
	if p.ChargeUseMode == ChargeNearestPartial {
		return p.Charge.Value > 0
	}
	return p.Charge.Value >= uint32(r)
}

// InputDirection constrains the sign of an axis.
type InputDirection uint8

const (
	DirNone InputDirection = iota
	DirNotNone
	DirLeft
	DirRight
	DirNotLeft
	DirNotRight
	DirForward
	DirBack
	DirUp
	DirDown
)

var inputDirectionNames = map[string]InputDirection{
	"none":      DirNone,
	"not_none":  DirNotNone,
	"left":      DirLeft,
	"right":     DirRight,
	"not_left":  DirNotLeft,
	"not_right": DirNotRight,
	"forward":   DirForward,
	"back":      DirBack,
	"up":        DirUp,
	"down":      DirDown,
}

// ParseInputDirection parses a direction name such as "not_left".
func ParseInputDirection(name string) (InputDirection, error) {
	d, ok := inputDirectionNames[name]
	if !ok {
		return 0, fmt.Errorf("character: invalid input direction %q", name)
	}
	return d, nil
}

// InputDirXRequirement constrains the x axis. Forward and back are relative
// to the way the character faces.
type InputDirXRequirement InputDirection

func (r InputDirXRequirement) Met(p RequirementParams) bool {
	x := p.Input.XAxis
	switch InputDirection(r) {
	case DirNone:
		return x == 0
	case DirNotNone:
		return x != 0
	case DirLeft:
		return x < 0
	case DirRight:
		return x > 0
	case DirNotLeft:
		return x >= 0
	case DirNotRight:
		return x <= 0
	case DirForward:
		return (x > 0 && !p.Mirrored) || (x < 0 && p.Mirrored)
	case DirBack:
		return (x < 0 && !p.Mirrored) || (x > 0 && p.Mirrored)
	}
	return false
}

// InputDirZRequirement constrains the z axis. Up is into the screen.
type InputDirZRequirement InputDirection

func (r InputDirZRequirement) Met(p RequirementParams) bool {
	z := p.Input.ZAxis
	switch InputDirection(r) {
	case DirNone:
		return z == 0
	case DirNotNone:
		return z != 0
	case DirUp:
		return z < 0
	case DirDown:
		return z > 0
	}
	return false
}

func allMet(reqs []Requirement, p RequirementParams) bool {
	for _, r := range reqs {
		if !r.Met(p) {
			return false
		}
	}
	return true
}
