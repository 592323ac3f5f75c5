package player

import "github.com/arkagimt/DSA-LEARNING-HUB/internal/step"

// Cursor steps through collected frames by hand. It starts before the
// first frame; Prev and Seek allow scrubbing back over history.
type Cursor struct {
	frames []step.Frame
	pos    int
}

func NewCursor(seq step.Sequence) *Cursor {
	return &Cursor{frames: step.Collect(seq), pos: -1}
}

// NewCursorFrames wraps already collected frames, e.g. a recorded run.
func NewCursorFrames(frames []step.Frame) *Cursor {
	return &Cursor{frames: frames, pos: -1}
}

func (c *Cursor) Len() int      { return len(c.frames) }
func (c *Cursor) Position() int { return c.pos }
func (c *Cursor) Started() bool { return c.pos >= 0 }
func (c *Cursor) Reset()        { c.pos = -1 }

// Done reports whether the last frame is showing.
func (c *Cursor) Done() bool {
	return len(c.frames) > 0 && c.pos == len(c.frames)-1
}

func (c *Cursor) Current() (step.Frame, bool) {
	if c.pos < 0 || c.pos >= len(c.frames) {
		return step.Frame{}, false
	}
	return c.frames[c.pos], true
}

func (c *Cursor) Next() (step.Frame, bool) {
	if c.pos+1 >= len(c.frames) {
		return c.Current()
	}
	c.pos++
	return c.frames[c.pos], true
}

// Prev moves back one frame and stays on the first.
func (c *Cursor) Prev() (step.Frame, bool) {
	if c.pos > 0 {
		c.pos--
	}
	return c.Current()
}

// Seek jumps to frame i, clamped to the available frames.
func (c *Cursor) Seek(i int) (step.Frame, bool) {
	if len(c.frames) == 0 {
		return step.Frame{}, false
	}
	c.pos = min(max(i, 0), len(c.frames)-1)
	return c.frames[c.pos], true
}

// Progress is the fraction of frames shown, in [0, 1].
func (c *Cursor) Progress() float64 {
	if len(c.frames) == 0 {
		return 0
	}
	return float64(c.pos+1) / float64(len(c.frames))
}

// History returns every frame up to and including the current one.
func (c *Cursor) History() []step.Frame {
	return c.frames[:c.pos+1]
}
