package lesson

import (
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

// Recursion animates the call stack of factorial. The analog is a
// recursive CTE expanding an org hierarchy one level per iteration.
type Recursion struct{}

func (Recursion) ID() string    { return "recursion" }
func (Recursion) Title() string { return "Recursion" }

func (Recursion) Deck() Deck {
	return Deck{
		Summary: "A function that calls itself on a smaller input until it reaches a base case, then combines results as the calls return.",
		Sections: []Section{
			{Heading: "Base case", Body: "fact(0) = fact(1) = 1 stops the descent."},
			{Heading: "Call stack", Body: "Every pending call keeps a frame on the stack; depth n means n+1 live frames."},
			{Heading: "Unwinding", Body: "Results flow back up: fact(k) = k * fact(k-1)."},
		},
		Complexity: "O(n) time, O(n) stack",
		Analog:     "WITH RECURSIVE walks a manager/report hierarchy: the anchor selects the CEO, each iteration joins the next level until no rows are added.",
	}
}

func (Recursion) Build(ds config.Dataset) (step.Sequence, error) {
	if len(ds.Values) == 0 {
		return nil, ErrNoInput
	}
	n := ds.Values[0]
	if n < 0 || n > 20 {
		return nil, errors.Wrapf(algo.ErrFactorialRange, "got %d", n)
	}
	delay := ds.Delay(DefaultDelay)

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues([]int{n})

		if !b.Emit(step.Frame{
			Caption:  fmt.Sprintf("Compute %d! recursively", n),
			Counters: counters("n", n, "depth", 0),
			Log:      "WITH RECURSIVE org AS (SELECT ... WHERE manager_id IS NULL UNION ALL ...)",
			Analog:   "Anchor member: select the root of the hierarchy.",
		}) {
			return
		}

		maxDepth := 0
		result, completed, _ := algo.Factorial(n, func(ev algo.CallEvent) bool {
			maxDepth = max(maxDepth, ev.Depth)
			f := step.Frame{
				Items:    ev.Stack,
				Counters: counters("n", ev.N, "depth", ev.Depth, "frames", len(ev.Stack)),
			}
			if ev.Kind == algo.Call {
				f.Caption = fmt.Sprintf("Call fact(%d) at depth %d", ev.N, ev.Depth)
				if ev.N <= 1 {
					f.Caption += ": base case"
				}
				f.Log = fmt.Sprintf("push fact(%d)", ev.N)
				f.Analog = fmt.Sprintf("Iteration %d: join employees reporting to level %d.", ev.Depth+1, ev.Depth)
			} else {
				f.Caption = fmt.Sprintf("fact(%d) returns %d", ev.N, ev.Result)
				f.Log = fmt.Sprintf("pop fact(%d) = %d", ev.N, ev.Result)
				f.Analog = fmt.Sprintf("Level %d rows folded into the result set.", ev.Depth)
			}
			return b.Emit(f)
		})
		if !completed {
			return
		}

		b.Finish(step.Frame{
			Caption:  fmt.Sprintf("%d! = %d", n, result),
			Counters: counters("n", n, "max_depth", maxDepth),
			Log:      fmt.Sprintf("recursion finished at depth %d", maxDepth),
			Analog:   fmt.Sprintf("No new rows after %d iterations: CTE terminates.", maxDepth+1),
		})
	}, nil
}
