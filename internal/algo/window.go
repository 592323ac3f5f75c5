package algo

// WindowPhase tells whether the window is still filling or sliding.
type WindowPhase int

const (
	WindowGrow WindowPhase = iota
	WindowSlide
)

func (p WindowPhase) String() string {
	if p == WindowGrow {
		return "grow"
	}
	return "slide"
}

// WindowStep describes the window after one pointer move.
type WindowStep struct {
	Phase       WindowPhase
	Left, Right int
	Added       int
	Removed     int
	HasRemoved  bool
	Sum         int
	// Full is true once the window spans k values.
	Full     bool
	Best     int
	BestLeft int
}

// Window is the outcome of WindowSums.
type Window struct {
	Sums     []int
	Best     int
	BestLeft int
	Aborted  bool
}

// WindowSums computes the running sum of every window of size k.
// Sums[i] covers values[i : i+k].
func WindowSums(values []int, k int, hook Hook[WindowStep]) (Window, error) {
	if k < 1 || k > len(values) {
		return Window{}, ErrWindowSize
	}
	res := Window{Sums: make([]int, 0, len(values)-k+1), BestLeft: -1}
	sum := 0
	for right := 0; right < len(values); right++ {
		ev := WindowStep{Phase: WindowGrow, Right: right, Added: values[right]}
		sum += values[right]
		left := right - k + 1
		if right >= k {
			ev.Phase = WindowSlide
			ev.Removed = values[right-k]
			ev.HasRemoved = true
			sum -= values[right-k]
		}
		if left < 0 {
			left = 0
		}
		ev.Left, ev.Sum = left, sum
		if right >= k-1 {
			ev.Full = true
			res.Sums = append(res.Sums, sum)
			if res.BestLeft < 0 || sum > res.Best {
				res.Best, res.BestLeft = sum, left
			}
		}
		ev.Best, ev.BestLeft = res.Best, res.BestLeft
		if !hook.emit(ev) {
			res.Aborted = true
			return res, nil
		}
	}
	return res, nil
}

// BruteWindowSums recomputes every window from scratch.
func BruteWindowSums(values []int, k int) []int {
	if k < 1 || k > len(values) {
		return nil
	}
	sums := make([]int, 0, len(values)-k+1)
	for i := 0; i+k <= len(values); i++ {
		s := 0
		for _, v := range values[i : i+k] {
			s += v
		}
		sums = append(sums, s)
	}
	return sums
}
