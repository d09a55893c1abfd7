package sequence

import "fmt"

// EndKind selects what happens when a sequence reaches its last frame.
type EndKind uint8

const (
	// EndNone holds the last frame.
	EndNone EndKind = iota
	// EndRepeat restarts the same sequence.
	EndRepeat
	// EndNext switches to another sequence.
	EndNext
)

// EndTransition is a sequence's configured `next`.
type EndTransition[ID comparable] struct {
	Kind EndKind
	Next ID
}

// None holds on the last frame.
func None[ID comparable]() EndTransition[ID] {
	return EndTransition[ID]{Kind: EndNone}
}

// Repeat loops the sequence.
func Repeat[ID comparable]() EndTransition[ID] {
	return EndTransition[ID]{Kind: EndRepeat}
}

// Next switches to id once the sequence ends.
func Next[ID comparable](id ID) EndTransition[ID] {
	return EndTransition[ID]{Kind: EndNext, Next: id}
}

// Target resolves the transition for a sequence currently on id.
// It returns false for EndNone.
func (t EndTransition[ID]) Target(current ID) (ID, bool) {
	switch t.Kind {
	case EndRepeat:
		return current, true
	case EndNext:
		return t.Next, true
	default:
		var zero ID
		return zero, false
	}
}

func (t EndTransition[ID]) String() string {
	switch t.Kind {
	case EndRepeat:
		return "repeat"
	case EndNext:
		return fmt.Sprint(t.Next)
	default:
		return "none"
	}
}
