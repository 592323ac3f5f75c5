package algo

import "fmt"

// CallKind distinguishes entering and leaving a recursive call.
type CallKind int

const (
	Call CallKind = iota
	Return
)

// CallEvent is emitted when a frame is pushed or popped. Stack lists the
// live calls, outermost first.
type CallEvent struct {
	Kind   CallKind
	N      int
	Depth  int
	Result int64
	Stack  []string
}

// Factorial computes n! recursively. n must be in [0, 20] so the result fits
// in an int64. The bool result is false when the hook stopped the run.
func Factorial(n int, hook Hook[CallEvent]) (int64, bool, error) {
	if n < 0 || n > 20 {
		return 0, false, ErrFactorialRange
	}
	var stack []string
	stopped := false
	var fact func(k, depth int) int64
	fact = func(k, depth int) int64 {
		if stopped {
			return 0
		}
		stack = append(stack, fmt.Sprintf("fact(%d)", k))
		if !hook.emit(CallEvent{Kind: Call, N: k, Depth: depth, Stack: copyIDs(stack)}) {
			stopped = true
			return 0
		}
		result := int64(1)
		if k > 1 {
			result = int64(k) * fact(k-1, depth+1)
		}
		if stopped {
			return 0
		}
		stack = stack[:len(stack)-1]
		if !hook.emit(CallEvent{Kind: Return, N: k, Depth: depth, Result: result, Stack: copyIDs(stack)}) {
			stopped = true
		}
		return result
	}
	result := fact(n, 0)
	return result, !stopped, nil
}
