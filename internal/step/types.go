package step

import (
	"fmt"
	"strings"
	"time"
)

// Mark is a named pointer into Frame.Values (low, mid, slow, fast, ...).
type Mark struct {
	Name  string
	Index int
}

// Counter is a named scalar shown next to the array (sum, depth, lag, ...).
type Counter struct {
	Name  string
	Value int
}

// Frame is one step of an animation.
type Frame struct {
	Index     int
	Caption   string
	Values    []int
	Marks     []Mark
	Highlight []int
	Counters  []Counter
	Items     []string
	Log       string
	Analog    string
	Alert     string
	Series    []float64
	Delay     time.Duration
	Final     bool
}

// Clone returns a deep copy so later frames never alias earlier ones.
func (f Frame) Clone() Frame {
	c := f
	c.Values = append([]int(nil), f.Values...)
	c.Marks = append([]Mark(nil), f.Marks...)
	c.Highlight = append([]int(nil), f.Highlight...)
	c.Counters = append([]Counter(nil), f.Counters...)
	c.Items = append([]string(nil), f.Items...)
	c.Series = append([]float64(nil), f.Series...)
	return c
}

// Mark returns the index of the named mark and whether it exists.
func (f Frame) Mark(name string) (int, bool) {
	for _, m := range f.Marks {
		if m.Name == name {
			return m.Index, true
		}
	}
	return 0, false
}

// Counter returns the value of the named counter and whether it exists.
func (f Frame) Counter(name string) (int, bool) {
	for _, c := range f.Counters {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// Highlighted reports whether index i is highlighted.
func (f Frame) Highlighted(i int) bool {
	for _, h := range f.Highlight {
		if h == i {
			return true
		}
	}
	return false
}

func (f Frame) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s", f.Index, f.Caption)
	if len(f.Values) > 0 {
		fmt.Fprintf(&b, " %v", f.Values)
	}
	for _, m := range f.Marks {
		fmt.Fprintf(&b, " %s=%d", m.Name, m.Index)
	}
	for _, c := range f.Counters {
		fmt.Fprintf(&b, " %s:%d", c.Name, c.Value)
	}
	return b.String()
}
