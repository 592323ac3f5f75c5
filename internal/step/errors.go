package step

import "github.com/pkg/errors"

// Domain errors for frame sequences.
var (
	// ErrEmptySequence indicates a sequence that produced no frames.
	ErrEmptySequence = errors.New("step: sequence produced no frames")

	// ErrInvalidFrame indicates a frame that breaks sequence invariants.
	ErrInvalidFrame = errors.New("step: invalid frame")
)

// FrameError wraps an error with the offending frame index.
type FrameError struct {
	Index   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return errors.Wrapf(e.Wrapped, "frame %d", e.Index).Error()
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
