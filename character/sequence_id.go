package character

import (
	"errors"
	"fmt"
)

// ErrUnknownSequence is returned when a sequence name does not map to a SequenceID.
var ErrUnknownSequence = errors.New("character: unknown sequence")

// SequenceID identifies a character behavior sequence.
type SequenceID uint8

const (
	Stand SequenceID = iota
	StandAttack0
	StandAttack1
	Walk
	Run
	RunStop
	Dodge
	Jump
	JumpOff
	JumpAscend
	JumpDescend
	JumpDescendLand
	JumpAttack
	DashForward
	DashBack
	DashDescend
	DashDescendLand
	FallForwardDescend
	FallForwardLand
	LieFaceDown

	sequenceIDCount
)

// DefaultSequenceID is the sequence a character spawns in.
const DefaultSequenceID = Stand

var sequenceIDNames = [sequenceIDCount]string{
	Stand:              "stand",
	StandAttack0:       "stand_attack_0",
	StandAttack1:       "stand_attack_1",
	Walk:               "walk",
	Run:                "run",
	RunStop:            "run_stop",
	Dodge:              "dodge",
	Jump:               "jump",
	JumpOff:            "jump_off",
	JumpAscend:         "jump_ascend",
	JumpDescend:        "jump_descend",
	JumpDescendLand:    "jump_descend_land",
	JumpAttack:         "jump_attack",
	DashForward:        "dash_forward",
	DashBack:           "dash_back",
	DashDescend:        "dash_descend",
	DashDescendLand:    "dash_descend_land",
	FallForwardDescend: "fall_forward_descend",
	FallForwardLand:    "fall_forward_land",
	LieFaceDown:        "lie_face_down",
}

// SequenceIDs returns every SequenceID in declaration order.
func SequenceIDs() []SequenceID {
	ids := make([]SequenceID, 0, sequenceIDCount)
	for id := SequenceID(0); id < sequenceIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ParseSequenceID maps a configuration name such as "jump_descend" to its SequenceID.
func ParseSequenceID(name string) (SequenceID, error) {
	for id, n := range sequenceIDNames {
		if n == name {
			return SequenceID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSequence, name)
}

// Valid reports whether id is part of the enumeration.
func (id SequenceID) Valid() bool {
	return id < sequenceIDCount
}

func (id SequenceID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("sequence(%d)", uint8(id))
	}
	return sequenceIDNames[id]
}

// IsAirborne reports whether the sequence is played while off the ground.
func (id SequenceID) IsAirborne() bool {
	switch id {
	case Jump, JumpOff, JumpAscend, JumpDescend, JumpAttack,
		DashForward, DashBack, DashDescend, FallForwardDescend:
		return true
	}
	return false
}

// IsDeath reports whether the sequence belongs to the knocked out family.
func (id SequenceID) IsDeath() bool {
	switch id {
	case FallForwardDescend, FallForwardLand, LieFaceDown:
		return true
	}
	return false
}

// IsJump reports whether the sequence is part of the jump cascade.
func (id SequenceID) IsJump() bool {
	switch id {
	case Jump, JumpOff, JumpAscend, JumpDescend, JumpDescendLand, JumpAttack:
		return true
	}
	return false
}

// keepsRunCounter reports whether the run counter may stay unsettled in id.
func (id SequenceID) keepsRunCounter() bool {
	return id == Stand || id == Walk || id == Run
}
