package step

import (
	"time"

	"github.com/pkg/errors"
)

// Sequence yields frames in order. It must be finite and restartable.
type Sequence func(yield func(Frame) bool)

// Builder accumulates frames and stamps indices so lessons only describe
// content. It is used inside a Sequence body; Emit reports false once the
// consumer stopped ranging.
type Builder struct {
	yield  func(Frame) bool
	next   int
	delay  time.Duration
	values []int
	series []float64
}

// NewBuilder wraps yield. delay is applied to frames that set none.
func NewBuilder(yield func(Frame) bool, delay time.Duration) *Builder {
	return &Builder{yield: yield, delay: delay}
}

// SetValues fixes the array shown by subsequent frames that set none.
func (b *Builder) SetValues(v []int) { b.values = append([]int(nil), v...) }

// Plot appends a point to the running series carried by later frames.
func (b *Builder) Plot(v float64) { b.series = append(b.series, v) }

// Emit stamps f and hands it to the consumer.
func (b *Builder) Emit(f Frame) bool {
	f.Index = b.next
	b.next++
	if f.Values == nil {
		f.Values = b.values
	}
	if f.Series == nil && len(b.series) > 0 {
		f.Series = b.series
	}
	if f.Delay == 0 {
		f.Delay = b.delay
	}
	return b.yield(f.Clone())
}

// Finish emits the closing frame.
func (b *Builder) Finish(f Frame) bool {
	f.Final = true
	return b.Emit(f)
}

// Emitted is the number of frames handed out so far.
func (b *Builder) Emitted() int { return b.next }

// Collect materialises seq.
func Collect(seq Sequence) []Frame {
	var frames []Frame
	for f := range seq {
		frames = append(frames, f)
	}
	return frames
}

// Len counts the frames of seq.
func Len(seq Sequence) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Duration sums the pacing delays of seq.
func Duration(seq Sequence) time.Duration {
	var d time.Duration
	for f := range seq {
		d += f.Delay
	}
	return d
}

// FromFrames replays recorded frames as a Sequence.
func FromFrames(frames []Frame) Sequence {
	return func(yield func(Frame) bool) {
		for _, f := range frames {
			if !yield(f.Clone()) {
				return
			}
		}
	}
}

// Validate checks that indices run 0..n-1, only the last frame is final
// and every mark points inside the frame's values.
func Validate(frames []Frame) error {
	if len(frames) == 0 {
		return ErrEmptySequence
	}
	for i, f := range frames {
		if f.Index != i {
			return &FrameError{Index: i, Wrapped: errors.Wrapf(ErrInvalidFrame, "index %d out of order", f.Index)}
		}
		if f.Final != (i == len(frames)-1) {
			return &FrameError{Index: i, Wrapped: errors.Wrap(ErrInvalidFrame, "final flag misplaced")}
		}
		for _, m := range f.Marks {
			if m.Index < 0 || m.Index >= len(f.Values) {
				return &FrameError{Index: i, Wrapped: errors.Wrapf(ErrInvalidFrame, "mark %s=%d outside values", m.Name, m.Index)}
			}
		}
		if f.Delay < 0 {
			return &FrameError{Index: i, Wrapped: errors.Wrap(ErrInvalidFrame, "negative delay")}
		}
	}
	return nil
}
