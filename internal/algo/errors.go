package algo

import "github.com/pkg/errors"

var (
	ErrWindowSize       = errors.New("algo: window size must be between 1 and the number of values")
	ErrFactorialRange   = errors.New("algo: factorial input must be between 0 and 20")
	ErrUnknownVertex    = errors.New("algo: vertex not found")
	ErrEmptyGraph       = errors.New("algo: graph has no vertices")
	ErrInvalidRate      = errors.New("algo: produce and consume rates must be positive")
	ErrInvalidThreshold = errors.New("algo: backpressure threshold must be positive")
	ErrUnknownMode      = errors.New("algo: unknown buffer mode")
	ErrInvalidTopK      = errors.New("algo: top-k needs positive workers, size and k")
)
