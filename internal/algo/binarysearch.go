package algo

// Probe is one iteration of a binary search.
type Probe struct {
	Low, High, Mid int
	Value, Target  int
	// Cmp is -1 when Value < Target, 1 when Value > Target, 0 on a hit.
	Cmp int
}

// Search is the outcome of BinarySearch. Index is -1 when absent.
type Search struct {
	Index   int
	Probes  int
	Aborted bool
}

// BinarySearch looks for target in sorted (ascending).
func BinarySearch(sorted []int, target int, hook Hook[Probe]) Search {
	low, high := 0, len(sorted)-1
	res := Search{Index: -1}
	for low <= high {
		// low + (high-low)/2 keeps the midpoint in range for large bounds.
		mid := low + (high-low)/2
		p := Probe{Low: low, High: high, Mid: mid, Value: sorted[mid], Target: target}
		switch {
		case sorted[mid] < target:
			p.Cmp = -1
		case sorted[mid] > target:
			p.Cmp = 1
		}
		res.Probes++
		if !hook.emit(p) {
			res.Aborted = true
			return res
		}
		switch p.Cmp {
		case 0:
			res.Index = mid
			return res
		case -1:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return res
}

// MaxProbes is the worst-case number of probes for n sorted values.
func MaxProbes(n int) int {
	probes := 0
	for n > 0 {
		probes++
		n /= 2
	}
	return probes
}
