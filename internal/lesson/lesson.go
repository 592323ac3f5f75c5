// Package lesson turns the textbook procedures of package algo into
// animated, narrated frame sequences.
//
// A Lesson is one module of the hub: an algorithm topic, its theory deck
// and the simulated data-engineering story told next to it. Build validates
// the dataset eagerly and returns a lazy step.Sequence; every range over the
// sequence re-runs the algorithm from scratch, so sequences are restartable
// and share no state between runs.
package lesson

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/input"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

// DefaultDelay paces frames when the dataset sets none.
const DefaultDelay = time.Duration(config.DefaultDelayMS) * time.Millisecond

var (
	ErrUnknownLesson = errors.New("lesson: unknown lesson")
	ErrNoTarget      = errors.New("lesson: binary search needs a target")
	ErrNoInput       = errors.New("lesson: recursion needs a value")
)

// Section is one heading of a theory deck.
type Section struct {
	Heading string
	Body    string
}

// Deck is the collapsible theory panel shown next to a lesson.
type Deck struct {
	Summary    string
	Sections   []Section
	Complexity string
	Analog     string
}

// String renders the deck as plain text.
func (d Deck) String() string {
	var b strings.Builder
	b.WriteString(d.Summary)
	b.WriteString("\n")
	for _, s := range d.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n", s.Heading, s.Body)
	}
	if d.Complexity != "" {
		fmt.Fprintf(&b, "\nComplexity: %s\n", d.Complexity)
	}
	if d.Analog != "" {
		fmt.Fprintf(&b, "\nIn the warehouse: %s\n", d.Analog)
	}
	return b.String()
}

type Lesson interface {
	ID() string
	Title() string
	Deck() Deck
	Build(ds config.Dataset) (step.Sequence, error)
}

func checkValues(values []int) ([]int, error) {
	if len(values) == 0 {
		return nil, input.ErrNoValues
	}
	if len(values) > input.MaxValues {
		return nil, errors.Wrapf(input.ErrTooManyValues, "got %d, at most %d", len(values), input.MaxValues)
	}
	return append([]int(nil), values...), nil
}

// sortedCopy returns values in ascending order and whether it had to sort.
func sortedCopy(values []int) ([]int, bool) {
	if slices.IsSorted(values) {
		return append([]int(nil), values...), false
	}
	s := slices.Clone(values)
	slices.Sort(s)
	return s, true
}

func counters(kv ...any) []step.Counter {
	cs := make([]step.Counter, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		cs = append(cs, step.Counter{Name: kv[i].(string), Value: kv[i+1].(int)})
	}
	return cs
}

func ints(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// inRange keeps only the marks that point inside n values.
func inRange(n int, marks ...step.Mark) []step.Mark {
	out := marks[:0:0]
	for _, m := range marks {
		if m.Index >= 0 && m.Index < n {
			out = append(out, m)
		}
	}
	return out
}

func span(from, to int) []int {
	var out []int
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
