package algo

// CompactStep is one comparison of the fast pointer against the slow one.
type CompactStep struct {
	Slow, Fast int
	Kept       bool
	Working    []int
}

// Compaction is the outcome of Compact.
type Compaction struct {
	Count    int
	Distinct []int
	Aborted  bool
}

// Compact removes adjacent duplicates from sorted with a slow/fast pointer
// pair, keeping first occurrences in their original order. The input is not
// modified.
func Compact(sorted []int, hook Hook[CompactStep]) Compaction {
	if len(sorted) == 0 {
		return Compaction{}
	}
	work := append([]int(nil), sorted...)
	slow := 0
	for fast := 1; fast < len(work); fast++ {
		kept := work[fast] != work[slow]
		if kept {
			slow++
			work[slow] = work[fast]
		}
		ev := CompactStep{Slow: slow, Fast: fast, Kept: kept, Working: append([]int(nil), work...)}
		if !hook.emit(ev) {
			return Compaction{Count: slow + 1, Distinct: work[:slow+1], Aborted: true}
		}
	}
	return Compaction{Count: slow + 1, Distinct: work[:slow+1]}
}
