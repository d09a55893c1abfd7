package character

import (
	"errors"
	"fmt"

	"github.com/milk9111/brawler/sequence"
)

var (
	ErrMissingSequence = errors.New("character: missing sequence")
	ErrEmptyFrames     = errors.New("character: sequence has no frames")
)

// ControlTransition switches sequence when Event happens and every
// requirement holds.
type ControlTransition struct {
	Event        ControlEvent
	Next         SequenceID
	Requirements []Requirement
}

// Frame is one step of a sequence.
type Frame struct {
	Wait        sequence.Wait
	Transitions []ControlTransition
}

func (f Frame) FrameWait() sequence.Wait { return f.Wait }

// Sequence is the configuration of a single SequenceID.
type Sequence struct {
	End         sequence.EndTransition[SequenceID]
	Frames      []Frame
	Transitions []ControlTransition
}

// Definition holds every sequence of a character. It is read-only once built.
type Definition struct {
	Name      string
	sequences [sequenceIDCount]*Sequence
}

// NewDefinition validates seqs and builds a Definition. Every SequenceID must
// be present with at least one frame.
func NewDefinition(name string, seqs map[SequenceID]Sequence) (*Definition, error) {
	def := &Definition{Name: name}
	for id, seq := range seqs {
		if !id.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownSequence, uint8(id))
		}
		if len(seq.Frames) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFrames, id)
		}
		if err := checkTargets(id, seq); err != nil {
			return nil, err
		}
		def.sequences[id] = &seq
	}
	for _, id := range SequenceIDs() {
		if def.sequences[id] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingSequence, id)
		}
	}
	return def, nil
}

func checkTargets(id SequenceID, seq Sequence) error {
	if seq.End.Kind == sequence.EndNext && !seq.End.Next.Valid() {
		return fmt.Errorf("%w: %s next", ErrUnknownSequence, id)
	}
	check := func(ts []ControlTransition) error {
		for _, t := range ts {
			if !t.Next.Valid() {
				return fmt.Errorf("%w: %s transition on %s", ErrUnknownSequence, id, t.Event)
			}
		}
		return nil
	}
	if err := check(seq.Transitions); err != nil {
		return err
	}
	for _, f := range seq.Frames {
		if err := check(f.Transitions); err != nil {
			return err
		}
	}
	return nil
}

// Sequence returns the configuration of id. Asking for an id the definition
// does not hold is an invariant violation.
func (d *Definition) Sequence(id SequenceID) *Sequence {
	if !id.Valid() || d.sequences[id] == nil {
		panic(fmt.Sprintf("character: definition %q has no sequence `%s`", d.Name, id))
	}
	return d.sequences[id]
}

// ControlTransition returns the target of the first transition of the
// active frame, or of the sequence when the frame has none, whose event
// happened this tick and whose requirements are met.
func (d *Definition) ControlTransition(id SequenceID, frame uint32, events ControlEvents, p RequirementParams) (SequenceID, bool) {
	if events == 0 {
		return 0, false
	}
	seq := d.Sequence(id)
	transitions := seq.Transitions
	if int(frame) < len(seq.Frames) && len(seq.Frames[frame].Transitions) > 0 {
		transitions = seq.Frames[frame].Transitions
	}
	for _, t := range transitions {
		if events.Has(t.Event) && allMet(t.Requirements, p) {
			return t.Next, true
		}
	}
	return 0, false
}
