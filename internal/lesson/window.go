package lesson

import (
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

// SlidingWindow keeps a running sum over a fixed-size window. The analog
// is a rolling aggregate over a Kafka topic partition.
type SlidingWindow struct{}

func (SlidingWindow) ID() string    { return "sliding-window" }
func (SlidingWindow) Title() string { return "Sliding Window" }

func (SlidingWindow) Deck() Deck {
	return Deck{
		Summary: "Compute the sum of every k consecutive values by adding the element entering the window and subtracting the one leaving it.",
		Sections: []Section{
			{Heading: "Grow", Body: "Until the window spans k values, only the right edge moves."},
			{Heading: "Slide", Body: "Afterwards both edges move together: sum += values[right]; sum -= values[right-k]."},
			{Heading: "Window size", Body: "k must satisfy 1 <= k <= n."},
		},
		Complexity: "O(n) time instead of O(n*k) for recomputing each window",
		Analog:     "A stream processor keeps a tumbling/rolling aggregate per partition and only touches the offsets entering and leaving the window.",
	}
}

func (SlidingWindow) Build(ds config.Dataset) (step.Sequence, error) {
	values, err := checkValues(ds.Values)
	if err != nil {
		return nil, err
	}
	k := ds.Window
	if k < 1 || k > len(values) {
		return nil, errors.Wrapf(algo.ErrWindowSize, "k=%d n=%d", k, len(values))
	}
	delay := ds.Delay(DefaultDelay)

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues(values)

		if !b.Emit(step.Frame{
			Caption:  fmt.Sprintf("Rolling sum over windows of %d", k),
			Counters: counters("k", k, "sum", 0),
			Log:      fmt.Sprintf("consumer joined topic orders, partition 0, %d offsets", len(values)),
			Analog:   fmt.Sprintf("WINDOW rolling AS (ROWS BETWEEN %d PRECEDING AND CURRENT ROW)", k-1),
		}) {
			return
		}

		res, _ := algo.WindowSums(values, k, func(w algo.WindowStep) bool {
			f := step.Frame{
				Marks:     []step.Mark{{Name: "L", Index: w.Left}, {Name: "R", Index: w.Right}},
				Highlight: span(w.Left, w.Right),
				Counters:  counters("k", k, "sum", w.Sum),
				Log:       fmt.Sprintf("offset %d consumed (+%d)", w.Right, w.Added),
			}
			if w.HasRemoved {
				f.Caption = fmt.Sprintf("Slide: +%d -%d = %d", w.Added, w.Removed, w.Sum)
				f.Log += fmt.Sprintf(", offset %d evicted (-%d)", w.Right-k, w.Removed)
			} else {
				f.Caption = fmt.Sprintf("Grow: +%d = %d", w.Added, w.Sum)
			}
			if w.Full {
				b.Plot(float64(w.Sum))
				f.Counters = append(f.Counters, step.Counter{Name: "best", Value: w.Best})
				f.Analog = fmt.Sprintf("Emit rolling_sum=%d for offsets %d..%d.", w.Sum, w.Left, w.Right)
			} else {
				f.Analog = fmt.Sprintf("Buffering: %d of %d offsets in the window.", w.Right+1, k)
			}
			return b.Emit(f)
		})
		if res.Aborted {
			return
		}

		b.Finish(step.Frame{
			Caption:   fmt.Sprintf("Best window starts at %d with sum %d", res.BestLeft, res.Best),
			Marks:     []step.Mark{{Name: "L", Index: res.BestLeft}, {Name: "R", Index: res.BestLeft + k - 1}},
			Highlight: span(res.BestLeft, res.BestLeft+k-1),
			Counters:  counters("k", k, "best", res.Best, "windows", len(res.Sums)),
			Items:     ints(res.Sums),
			Log:       fmt.Sprintf("committed offset %d", len(values)-1),
			Analog:    fmt.Sprintf("%d aggregates emitted downstream; peak %d.", len(res.Sums), res.Best),
		})
	}, nil
}
