package lesson

import (
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

// TwoPointers compacts a sorted array in place with a slow and a fast
// pointer. The analog is deduplicating a sorted change stream.
type TwoPointers struct{}

func (TwoPointers) ID() string    { return "two-pointers" }
func (TwoPointers) Title() string { return "Two Pointers" }

func (TwoPointers) Deck() Deck {
	return Deck{
		Summary: "Remove duplicates from a sorted array in place: fast scans every element, slow marks the end of the distinct prefix.",
		Sections: []Section{
			{Heading: "Invariant", Body: "values[0..slow] holds the distinct values seen so far, in their original order."},
			{Heading: "Step", Body: "When values[fast] differs from values[slow], advance slow and copy values[fast] into it. Otherwise skip."},
		},
		Complexity: "O(n) time, O(1) extra space",
		Analog:     "CDC rows arrive ordered by key; keeping the first row per key is QUALIFY ROW_NUMBER() OVER (PARTITION BY key ORDER BY ts) = 1.",
	}
}

func (TwoPointers) Build(ds config.Dataset) (step.Sequence, error) {
	values, err := checkValues(ds.Values)
	if err != nil {
		return nil, err
	}
	sorted, resorted := sortedCopy(values)
	delay := ds.Delay(DefaultDelay)

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues(sorted)

		intro := step.Frame{
			Caption:  fmt.Sprintf("Deduplicate %d sorted values", len(sorted)),
			Marks:    []step.Mark{{Name: "slow", Index: 0}},
			Counters: counters("distinct", 1),
			Log:      "stream cdc_orders: reading ordered batch",
			Analog:   "MERGE INTO dim_orders USING (SELECT ... QUALIFY ROW_NUMBER() = 1)",
		}
		if resorted {
			intro.Log = "input was not sorted; sorted ascending before compaction"
		}
		if !b.Emit(intro) {
			return
		}

		working := sorted
		res := algo.Compact(sorted, func(s algo.CompactStep) bool {
			working = s.Working
			f := step.Frame{
				Values:    s.Working,
				Marks:     []step.Mark{{Name: "slow", Index: s.Slow}, {Name: "fast", Index: s.Fast}},
				Highlight: span(0, s.Slow),
				Counters:  counters("distinct", s.Slow+1, "scanned", s.Fast+1),
			}
			if s.Kept {
				f.Caption = fmt.Sprintf("values[%d] = %d is new: copy to slot %d", s.Fast, s.Working[s.Slow], s.Slow)
				f.Log = fmt.Sprintf("keep key=%d", s.Working[s.Slow])
				f.Analog = fmt.Sprintf("ROW_NUMBER() = 1 for key %d: row emitted.", s.Working[s.Slow])
			} else {
				f.Caption = fmt.Sprintf("values[%d] = %d repeats slot %d: skip", s.Fast, s.Working[s.Fast], s.Slow)
				f.Log = fmt.Sprintf("drop duplicate key=%d", s.Working[s.Fast])
				f.Analog = fmt.Sprintf("ROW_NUMBER() > 1 for key %d: row filtered by QUALIFY.", s.Working[s.Fast])
			}
			return b.Emit(f)
		})
		if res.Aborted {
			return
		}

		b.Finish(step.Frame{
			Caption:   fmt.Sprintf("%d distinct values: %v", res.Count, res.Distinct),
			Values:    working,
			Marks:     []step.Mark{{Name: "slow", Index: res.Count - 1}},
			Highlight: span(0, res.Count-1),
			Items:     ints(res.Distinct),
			Counters:  counters("distinct", res.Count, "dropped", len(sorted)-res.Count),
			Log:       fmt.Sprintf("merged %d rows, %d duplicates discarded", res.Count, len(sorted)-res.Count),
			Analog:    "Target table now holds exactly one row per key.",
		})
	}, nil
}
