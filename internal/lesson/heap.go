package lesson

import (
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

// Heap inserts prioritised jobs into a max-heap, then drains it. The analog
// is a warehouse admitting queued queries by priority.
type Heap struct{}

func (Heap) ID() string    { return "heap" }
func (Heap) Title() string { return "Heaps" }

func (Heap) Deck() Deck {
	return Deck{
		Summary: "A binary max-heap keeps the highest priority at the root. Insert appends and bubbles up; extract moves the last slot to the root and sifts it down.",
		Sections: []Section{
			{Heading: "Layout", Body: "Slot i has children 2i+1 and 2i+2 and parent (i-1)/2."},
			{Heading: "Invariant", Body: "Every parent's priority is at least each child's priority."},
			{Heading: "Bubble-up", Body: "Swap the new job with its parent while the parent has lower priority."},
		},
		Complexity: "O(log n) per insert or extract, O(1) peek",
		Analog:     "A warehouse with saturated compute queues incoming queries and always admits the highest-priority one next.",
	}
}

// Jobs names one job per priority, cycling through names.
func Jobs(priorities []int, names []string) []algo.Job {
	jobs := make([]algo.Job, len(priorities))
	for i, p := range priorities {
		name := fmt.Sprintf("job-%d", i+1)
		if len(names) > 0 {
			name = names[i%len(names)]
		}
		jobs[i] = algo.Job{ID: i + 1, Priority: p, Name: name}
	}
	return jobs
}

func (Heap) Build(ds config.Dataset) (step.Sequence, error) {
	values, err := checkValues(ds.Values)
	if err != nil {
		return nil, err
	}
	jobs := Jobs(values, ds.Jobs)
	delay := ds.Delay(DefaultDelay)

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues([]int{})
		swaps := 0
		var popped []string

		if !b.Emit(step.Frame{
			Caption:  fmt.Sprintf("Queue %d jobs by priority", len(jobs)),
			Counters: counters("size", 0, "swaps", 0),
			Log:      "warehouse ANALYTICS_WH: all slots busy, queuing",
			Analog:   "Queries wait in the warehouse queue ordered by priority.",
		}) {
			return
		}

		h := algo.NewMaxHeap(func(ev algo.HeapEvent) bool {
			prios := priorities(ev.Jobs)
			f := step.Frame{
				Values: prios,
				Items:  names(ev.Jobs),
				Marks:  inRange(len(prios), step.Mark{Name: "i", Index: ev.I}, step.Mark{Name: "j", Index: ev.J}),
			}
			switch ev.Op {
			case algo.HeapInsert:
				f.Caption = fmt.Sprintf("Insert %s at slot %d", ev.Job, ev.I)
				f.Log = fmt.Sprintf("query %s queued", ev.Job.Name)
				f.Analog = fmt.Sprintf("%s enters the queue with priority %d.", ev.Job.Name, ev.Job.Priority)
			case algo.HeapCompare:
				f.Caption = fmt.Sprintf("Compare slot %d (p%d) with slot %d (p%d)", ev.I, prios[ev.I], ev.J, prios[ev.J])
				f.Highlight = []int{ev.I, ev.J}
			case algo.HeapSwap:
				swaps++
				f.Caption = fmt.Sprintf("Swap slots %d and %d", ev.I, ev.J)
				f.Highlight = []int{ev.I, ev.J}
				f.Analog = fmt.Sprintf("%s overtakes a lower-priority query.", ev.Job.Name)
			case algo.HeapSettle:
				f.Caption = fmt.Sprintf("%s settles at slot %d", ev.Job, ev.I)
				f.Highlight = []int{ev.I}
			case algo.HeapPop:
				popped = append(popped, ev.Job.String())
				f.Caption = fmt.Sprintf("Extract %s; move last job to the root", ev.Job)
				f.Log = fmt.Sprintf("query %s admitted", ev.Job.Name)
				f.Analog = fmt.Sprintf("A slot frees up: %s starts running.", ev.Job.Name)
			}
			if f.Log == "" {
				f.Log = fmt.Sprintf("heap %s", ev.Op)
			}
			f.Counters = counters("size", len(ev.Jobs), "swaps", swaps, "admitted", len(popped))
			return b.Emit(f)
		})

		for _, j := range jobs {
			h.Push(j)
			if h.Aborted() {
				return
			}
		}
		if top, ok := h.Peek(); ok {
			if !b.Emit(step.Frame{
				Caption:  fmt.Sprintf("Heap built; root is %s", top),
				Values:   priorities(h.Jobs()),
				Items:    names(h.Jobs()),
				Marks:    []step.Mark{{Name: "root", Index: 0}},
				Counters: counters("size", h.Len(), "swaps", swaps, "admitted", 0),
				Log:      fmt.Sprintf("heap valid: %t", h.Valid()),
				Analog:   "Compute frees up: drain the queue by priority.",
			}) {
				return
			}
		}
		for h.Len() > 0 {
			h.Pop()
			if h.Aborted() {
				return
			}
		}

		b.Finish(step.Frame{
			Caption:  "Admission order: " + fmt.Sprint(popped),
			Values:   []int{},
			Items:    popped,
			Counters: counters("size", 0, "swaps", swaps, "admitted", len(popped)),
			Log:      "queue drained",
			Analog:   "Every queued query ran in priority order.",
		})
	}, nil
}

func priorities(jobs []algo.Job) []int {
	out := make([]int, len(jobs))
	for i, j := range jobs {
		out[i] = j.Priority
	}
	return out
}

func names(jobs []algo.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.String()
	}
	return out
}
