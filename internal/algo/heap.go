package algo

import "fmt"

// Job is a record in the priority queue.
type Job struct {
	ID       int
	Priority int
	Name     string
}

func (j Job) String() string {
	return fmt.Sprintf("%s(p%d)", j.Name, j.Priority)
}

// HeapOp names the kind of heap event.
type HeapOp int

const (
	HeapInsert HeapOp = iota
	HeapCompare
	HeapSwap
	HeapSettle
	HeapPop
)

func (op HeapOp) String() string {
	switch op {
	case HeapInsert:
		return "insert"
	case HeapCompare:
		return "compare"
	case HeapSwap:
		return "swap"
	case HeapSettle:
		return "settle"
	case HeapPop:
		return "pop"
	default:
		return "unknown"
	}
}

// HeapEvent is emitted for every structural step of Push and Pop.
// I and J are the array slots involved (J is -1 when unused).
type HeapEvent struct {
	Op   HeapOp
	I, J int
	Job  Job
	Jobs []Job
}

// MaxHeap is an array-backed binary heap ordered by Job.Priority.
// Once the hook stops the run, operations still complete but emit nothing.
type MaxHeap struct {
	jobs    []Job
	hook    Hook[HeapEvent]
	aborted bool
}

func NewMaxHeap(hook Hook[HeapEvent]) *MaxHeap {
	return &MaxHeap{hook: hook}
}

func (h *MaxHeap) Len() int { return len(h.jobs) }

// Aborted reports whether the hook asked to stop.
func (h *MaxHeap) Aborted() bool { return h.aborted }

// Jobs returns the heap array in slot order.
func (h *MaxHeap) Jobs() []Job { return append([]Job(nil), h.jobs...) }

func (h *MaxHeap) Peek() (Job, bool) {
	if len(h.jobs) == 0 {
		return Job{}, false
	}
	return h.jobs[0], true
}

// Push appends j and bubbles it up while its parent has lower priority.
func (h *MaxHeap) Push(j Job) {
	h.jobs = append(h.jobs, j)
	i := len(h.jobs) - 1
	h.notify(HeapEvent{Op: HeapInsert, I: i, J: -1, Job: j})
	for i > 0 {
		parent := (i - 1) / 2
		h.notify(HeapEvent{Op: HeapCompare, I: i, J: parent, Job: j})
		if h.jobs[parent].Priority >= h.jobs[i].Priority {
			break
		}
		h.jobs[parent], h.jobs[i] = h.jobs[i], h.jobs[parent]
		h.notify(HeapEvent{Op: HeapSwap, I: i, J: parent, Job: j})
		i = parent
	}
	h.notify(HeapEvent{Op: HeapSettle, I: i, J: -1, Job: j})
}

// Pop removes the highest-priority job and sifts the last job down.
func (h *MaxHeap) Pop() (Job, bool) {
	if len(h.jobs) == 0 {
		return Job{}, false
	}
	top := h.jobs[0]
	last := len(h.jobs) - 1
	h.jobs[0] = h.jobs[last]
	h.jobs = h.jobs[:last]
	h.notify(HeapEvent{Op: HeapPop, I: 0, J: -1, Job: top})

	i := 0
	for {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < len(h.jobs) && h.jobs[l].Priority > h.jobs[largest].Priority {
			largest = l
		}
		if r < len(h.jobs) && h.jobs[r].Priority > h.jobs[largest].Priority {
			largest = r
		}
		if largest == i {
			break
		}
		h.notify(HeapEvent{Op: HeapCompare, I: i, J: largest, Job: h.jobs[i]})
		h.jobs[i], h.jobs[largest] = h.jobs[largest], h.jobs[i]
		h.notify(HeapEvent{Op: HeapSwap, I: i, J: largest, Job: h.jobs[largest]})
		i = largest
	}
	if len(h.jobs) > 0 {
		h.notify(HeapEvent{Op: HeapSettle, I: i, J: -1, Job: h.jobs[i]})
	}
	return top, true
}

// Valid checks parent priority >= child priority at every slot.
func (h *MaxHeap) Valid() bool {
	for i := 1; i < len(h.jobs); i++ {
		if h.jobs[(i-1)/2].Priority < h.jobs[i].Priority {
			return false
		}
	}
	return true
}

func (h *MaxHeap) notify(ev HeapEvent) {
	if h.aborted {
		return
	}
	ev.Jobs = h.Jobs()
	if !h.hook.emit(ev) {
		h.aborted = true
	}
}
