package character

import (
	"github.com/milk9111/brawler/logicclock"
	"github.com/milk9111/brawler/sequence"
)

// Status is the per-entity state owned by the sequence resolver.
type Status struct {
	SequenceID     SequenceID
	SequenceStatus sequence.Status
	FrameIndex     logicclock.Clock
	FrameWait      logicclock.Clock
	Mirrored       bool
	RunCounter     RunCounter
}

// NewStatus returns the spawn status for def.
func NewStatus(def *Definition) Status {
	st := Status{SequenceID: DefaultSequenceID}
	st.setCursor(sequence.Start(def.Sequence(DefaultSequenceID).Frames))
	return st
}

func (s Status) cursor() sequence.Cursor {
	return sequence.Cursor{
		FrameIndex: s.FrameIndex,
		FrameWait:  s.FrameWait,
		Status:     s.SequenceStatus,
	}
}

func (s *Status) setCursor(c sequence.Cursor) {
	s.FrameIndex = c.FrameIndex
	s.FrameWait = c.FrameWait
	s.SequenceStatus = c.Status
}

// Apply merges u into s. A present sequence id always rebuilds the frame
// cursor, including when it equals the current one.
func (s Status) Apply(u StatusUpdate, def *Definition) Status {
	if u.Mirrored != nil {
		s.Mirrored = *u.Mirrored
	}
	if u.RunCounter != nil {
		s.RunCounter = *u.RunCounter
	}
	if u.SequenceID != nil {
		id := *u.SequenceID
		s.SequenceID = id
		s.setCursor(sequence.Start(def.Sequence(id).Frames))
	}
	return s
}

// StatusUpdate is a sparse set of changes produced by a check. Nil fields
// are left untouched.
type StatusUpdate struct {
	SequenceID *SequenceID
	Mirrored   *bool
	RunCounter *RunCounter
}

// SwitchTo returns an update that enters id from its first frame.
func SwitchTo(id SequenceID) StatusUpdate {
	return StatusUpdate{SequenceID: &id}
}

// WithMirrored returns u with the mirrored flag set.
func (u StatusUpdate) WithMirrored(m bool) StatusUpdate {
	u.Mirrored = &m
	return u
}

// WithRunCounter returns u with the run counter set.
func (u StatusUpdate) WithRunCounter(rc RunCounter) StatusUpdate {
	u.RunCounter = &rc
	return u
}

// IsEmpty reports whether applying u would be a no-op.
func (u StatusUpdate) IsEmpty() bool {
	return u.SequenceID == nil && u.Mirrored == nil && u.RunCounter == nil
}

// Rebind keeps the frame cursor inside the current sequence's frames of def.
// It is used when a definition is swapped while an entity is mid-sequence.
func (s Status) Rebind(def *Definition) Status {
	s.setCursor(sequence.Clamp(s.cursor(), def.Sequence(s.SequenceID).Frames))
	return s
}
