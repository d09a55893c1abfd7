package sequence

import "github.com/milk9111/brawler/logicclock"

// Wait is the number of ticks a frame is held after the tick it appears on.
type Wait uint32

// Frame is anything carrying per-frame timing.
type Frame interface {
	FrameWait() Wait
}

// Cursor tracks the active frame of a sequence.
//
// FrameIndex has limit len(frames)-1 and FrameWait has the active frame's
// wait as its limit.
type Cursor struct {
	FrameIndex logicclock.Clock
	FrameWait  logicclock.Clock
	Status     Status
}

// Start returns a cursor on the first frame with status Begin.
func Start[F Frame](frames []F) Cursor {
	return Cursor{
		FrameIndex: logicclock.New(lastIndex(frames)),
		FrameWait:  logicclock.New(waitAt(frames, 0)),
		Status:     Begin,
	}
}

// Advance moves the cursor forward by one tick.
//
// The wait clock ticks until complete, then the index clock ticks and the wait
// clock is rebuilt for the new frame. Once the last frame has completed the
// cursor holds there with status Ongoing until something restarts it.
func Advance[F Frame](c Cursor, frames []F) Cursor {
	c = Clamp(c, frames)
	if c.FrameIndex.IsComplete() && c.FrameWait.IsComplete() {
		// A single zero-wait frame ends on the tick after it begins.
		if c.Status == Begin {
			c.Status = End
		} else {
			c.Status = Ongoing
		}
		return c
	}

	if c.FrameWait.IsComplete() {
		c.FrameIndex = c.FrameIndex.Tick()
		c.FrameWait = logicclock.New(waitAt(frames, int(c.FrameIndex.Value)))
	} else {
		c.FrameWait = c.FrameWait.Tick()
	}

	if c.FrameIndex.IsComplete() && c.FrameWait.IsComplete() {
		c.Status = End
	} else {
		c.Status = Ongoing
	}
	return c
}

// Clamp keeps the cursor within the bounds of frames.
func Clamp[F Frame](c Cursor, frames []F) Cursor {
	c.FrameIndex = c.FrameIndex.Clamp(lastIndex(frames))
	c.FrameWait = c.FrameWait.Clamp(waitAt(frames, int(c.FrameIndex.Value)))
	return c
}

func lastIndex[F Frame](frames []F) uint32 {
	if len(frames) == 0 {
		return 0
	}
	return uint32(len(frames) - 1)
}

func waitAt[F Frame](frames []F, i int) uint32 {
	if i < 0 || i >= len(frames) {
		return 0
	}
	return uint32(frames[i].FrameWait())
}
