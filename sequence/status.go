// Package sequence holds the object-agnostic pieces of sequence playback:
// status markers, frame cursors and end-of-sequence transitions.
package sequence

// Status describes where an entity is within its current sequence.
type Status uint8

const (
	// Begin holds for the single tick after a sequence (re)starts.
	Begin Status = iota
	// Ongoing is every tick that is neither the first nor the last.
	Ongoing
	// End holds for the single tick the last frame's wait completes.
	End
)

func (s Status) String() string {
	switch s {
	case Begin:
		return "begin"
	case Ongoing:
		return "ongoing"
	case End:
		return "end"
	default:
		return "unknown"
	}
}
