package lesson

import (
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

// BinarySearch halves a sorted array per probe. The analog is Snowflake
// pruning micro-partitions by their min/max metadata.
type BinarySearch struct{}

func (BinarySearch) ID() string    { return "binary-search" }
func (BinarySearch) Title() string { return "Binary Search" }

func (BinarySearch) Deck() Deck {
	return Deck{
		Summary: "Find a target in a sorted array by comparing it with the middle element and discarding the half that cannot contain it.",
		Sections: []Section{
			{Heading: "Invariant", Body: "If the target is present, it lies in values[low..high]. Every probe shrinks that range by at least one."},
			{Heading: "Midpoint", Body: "mid = low + (high-low)/2 never overflows, unlike (low+high)/2 on large bounds."},
			{Heading: "Precondition", Body: "The input must be sorted. Unsorted input is sorted before the search starts."},
		},
		Complexity: "O(log n) time, O(1) space; at most floor(log2 n)+1 probes",
		Analog:     "A point lookup reads min/max metadata of each micro-partition and skips every partition whose range cannot hold the key.",
	}
}

func (BinarySearch) Build(ds config.Dataset) (step.Sequence, error) {
	values, err := checkValues(ds.Values)
	if err != nil {
		return nil, err
	}
	if ds.Target == nil {
		return nil, ErrNoTarget
	}
	target := *ds.Target
	sorted, resorted := sortedCopy(values)
	delay := ds.Delay(DefaultDelay)
	bound := algo.MaxProbes(len(sorted))

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues(sorted)

		intro := step.Frame{
			Caption:   fmt.Sprintf("Search for %d in %d sorted values", target, len(sorted)),
			Marks:     []step.Mark{{Name: "low", Index: 0}, {Name: "high", Index: len(sorted) - 1}},
			Highlight: span(0, len(sorted)-1),
			Counters:  counters("probes", 0, "bound", bound),
			Log:       fmt.Sprintf("SELECT * FROM orders WHERE order_id = %d", target),
			Analog:    fmt.Sprintf("Query plan: %d micro-partitions are candidates before pruning.", len(sorted)),
		}
		if resorted {
			intro.Log = "input was not sorted; sorted ascending before searching"
		}
		if !b.Emit(intro) {
			return
		}

		res := algo.BinarySearch(sorted, target, func(p algo.Probe) bool {
			f := step.Frame{
				Marks:     []step.Mark{{Name: "low", Index: p.Low}, {Name: "mid", Index: p.Mid}, {Name: "high", Index: p.High}},
				Highlight: span(p.Low, p.High),
				Counters:  counters("probes", b.Emitted(), "low", p.Low, "mid", p.Mid, "high", p.High),
			}
			switch p.Cmp {
			case 0:
				f.Caption = fmt.Sprintf("values[%d] = %d: found", p.Mid, p.Value)
				f.Log = fmt.Sprintf("probe hit at index %d", p.Mid)
				f.Analog = fmt.Sprintf("Partition %d min/max contains %d: scan it.", p.Mid, target)
			case -1:
				f.Caption = fmt.Sprintf("values[%d] = %d < %d: search right half", p.Mid, p.Value, target)
				f.Log = fmt.Sprintf("low moves to %d", p.Mid+1)
				f.Analog = fmt.Sprintf("Partitions %d..%d have max <= %d: pruned.", p.Low, p.Mid, p.Value)
			default:
				f.Caption = fmt.Sprintf("values[%d] = %d > %d: search left half", p.Mid, p.Value, target)
				f.Log = fmt.Sprintf("high moves to %d", p.Mid-1)
				f.Analog = fmt.Sprintf("Partitions %d..%d have min >= %d: pruned.", p.Mid, p.High, p.Value)
			}
			return b.Emit(f)
		})
		if res.Aborted {
			return
		}

		last := step.Frame{Counters: counters("probes", res.Probes, "bound", bound, "index", res.Index)}
		if res.Index >= 0 {
			last.Caption = fmt.Sprintf("Found %d at index %d after %d probes", target, res.Index, res.Probes)
			last.Marks = []step.Mark{{Name: "found", Index: res.Index}}
			last.Highlight = []int{res.Index}
			last.Log = fmt.Sprintf("1 row returned, %d partitions pruned", len(sorted)-1)
			last.Analog = fmt.Sprintf("Scanned 1 of %d micro-partitions.", len(sorted))
		} else {
			last.Caption = fmt.Sprintf("%d is not present (%d probes)", target, res.Probes)
			last.Log = "0 rows returned"
			last.Analog = fmt.Sprintf("Every one of %d micro-partitions was pruned by metadata alone.", len(sorted))
		}
		b.Finish(last)
	}, nil
}
