package lesson_test

import (
	"reflect"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/input"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

func build(id string, ds config.Dataset) []step.Frame {
	GinkgoHelper()
	l, err := lesson.NewRegistry().Get(id)
	Expect(err).NotTo(HaveOccurred())
	seq, err := l.Build(ds)
	Expect(err).NotTo(HaveOccurred())
	frames := step.Collect(seq)
	Expect(step.Validate(frames)).To(Succeed())
	return frames
}

func counter(f step.Frame, name string) int {
	GinkgoHelper()
	v, ok := f.Counter(name)
	Expect(ok).To(BeTrue(), "counter %s missing in %s", name, f)
	return v
}

func mark(f step.Frame, name string) int {
	GinkgoHelper()
	v, ok := f.Mark(name)
	Expect(ok).To(BeTrue(), "mark %s missing in %s", name, f)
	return v
}

func last(frames []step.Frame) step.Frame { return frames[len(frames)-1] }

var _ = Describe("every built-in lesson", func() {
	reg := lesson.NewRegistry()

	for _, id := range reg.IDs() {
		It("builds a valid, restartable sequence for "+id, func() {
			l, err := reg.Get(id)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.ID()).To(Equal(id))
			Expect(l.Title()).NotTo(BeEmpty())
			Expect(l.Deck().Summary).NotTo(BeEmpty())
			Expect(l.Deck().Analog).NotTo(BeEmpty())

			seq, err := l.Build(config.DefaultConfig().DatasetFor(id))
			Expect(err).NotTo(HaveOccurred())

			first := step.Collect(seq)
			Expect(step.Validate(first)).To(Succeed())
			second := step.Collect(seq)
			Expect(reflect.DeepEqual(first, second)).To(BeTrue(), "second run differs")

			for _, f := range first {
				Expect(f.Delay).To(Equal(lesson.DefaultDelay))
				Expect(f.Caption).NotTo(BeEmpty())
			}
		})

		It("stops "+id+" when the consumer breaks early", func() {
			l, _ := reg.Get(id)
			seq, err := l.Build(config.DefaultConfig().DatasetFor(id))
			Expect(err).NotTo(HaveOccurred())
			n := 0
			for range seq {
				n++
				if n == 2 {
					break
				}
			}
			Expect(n).To(Equal(2))
		})
	}

	It("rejects unknown ids", func() {
		_, err := reg.Get("quicksort")
		Expect(err).To(MatchError(lesson.ErrUnknownLesson))
	})
})

var _ = Describe("binary-search", func() {
	It("finds the default target within the probe bound", func() {
		frames := build("binary-search", config.DefaultConfig().DatasetFor("binary-search"))
		end := last(frames)
		Expect(counter(end, "index")).To(Equal(6))
		Expect(counter(end, "probes")).To(Equal(4))
		Expect(counter(end, "probes")).To(BeNumerically("<=", algo.MaxProbes(10)))
		Expect(mark(end, "found")).To(Equal(6))
		Expect(frames).To(HaveLen(6))
	})

	It("reports a miss", func() {
		ds := config.Dataset{Values: []int{1, 3, 5, 7}, Target: config.IntPtr(4)}
		end := last(build("binary-search", ds))
		Expect(counter(end, "index")).To(Equal(-1))
		Expect(end.Caption).To(ContainSubstring("not present"))
	})

	It("sorts unsorted input first", func() {
		ds := config.Dataset{Values: []int{9, 1, 5}, Target: config.IntPtr(9)}
		frames := build("binary-search", ds)
		Expect(frames[0].Values).To(Equal([]int{1, 5, 9}))
		Expect(frames[0].Log).To(ContainSubstring("not sorted"))
		Expect(counter(last(frames), "index")).To(Equal(2))
	})

	It("needs values and a target", func() {
		l := lesson.BinarySearch{}
		_, err := l.Build(config.Dataset{Target: config.IntPtr(1)})
		Expect(err).To(MatchError(input.ErrNoValues))
		_, err = l.Build(config.Dataset{Values: []int{1}})
		Expect(err).To(MatchError(lesson.ErrNoTarget))
	})
})

var _ = Describe("two-pointers", func() {
	It("compacts to the distinct values in order", func() {
		frames := build("two-pointers", config.DefaultConfig().DatasetFor("two-pointers"))
		end := last(frames)
		Expect(end.Items).To(Equal([]string{"1", "2", "3", "5", "8", "13"}))
		Expect(counter(end, "distinct")).To(Equal(6))
		Expect(counter(end, "dropped")).To(Equal(4))
		Expect(end.Values[:6]).To(Equal([]int{1, 2, 3, 5, 8, 13}))
		Expect(frames).To(HaveLen(11))
	})
})

var _ = Describe("sliding-window", func() {
	It("matches the brute-force sums", func() {
		ds := config.DefaultConfig().DatasetFor("sliding-window")
		end := last(build("sliding-window", ds))
		Expect(end.Items).To(Equal([]string{"18", "17", "23", "12", "16", "17", "18", "16"}))
		Expect(counter(end, "best")).To(Equal(23))
		Expect(mark(end, "L")).To(Equal(2))
		Expect(end.Series).To(HaveLen(len(algo.BruteWindowSums(ds.Values, ds.Window))))
	})

	It("rejects a window larger than the input", func() {
		_, err := lesson.SlidingWindow{}.Build(config.Dataset{Values: []int{1, 2}, Window: 3})
		Expect(err).To(MatchError(algo.ErrWindowSize))
	})
})

var _ = Describe("graph", func() {
	It("visits breadth first", func() {
		end := last(build("graph", config.Dataset{Mode: "bfs", Start: "A"}))
		Expect(end.Items).To(Equal([]string{"A", "B", "C", "D"}))
		Expect(counter(end, "depth")).To(Equal(2))
		Expect(end.Analog).To(ContainSubstring("Shortest chain to D: A -> "))
	})

	It("visits depth first", func() {
		end := last(build("graph", config.Dataset{Mode: "dfs", Start: "A"}))
		Expect(end.Items).To(Equal([]string{"A", "B", "D", "C"}))
	})

	It("walks a configured DAG", func() {
		ds := *config.GetPreset("graph", "dag")
		tr, err := lesson.Walk(ds)
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Order).To(Equal([]string{"extract", "clean", "audit", "join", "report", "aggregate"}))
		build("graph", ds)
	})

	It("rejects bad modes and start vertices", func() {
		_, err := lesson.Traversal{}.Build(config.Dataset{Mode: "astar"})
		Expect(err).To(MatchError(lesson.ErrUnknownTraversal))
		_, err = lesson.Traversal{}.Build(config.Dataset{Start: "Z"})
		Expect(err).To(MatchError(algo.ErrUnknownVertex))
	})
})

var _ = Describe("recursion", func() {
	It("unwinds to n!", func() {
		frames := build("recursion", config.Dataset{Values: []int{5}})
		Expect(last(frames).Caption).To(Equal("5! = 120"))
		Expect(counter(last(frames), "max_depth")).To(Equal(4))
		Expect(frames).To(HaveLen(12))
	})

	It("rejects out-of-range input", func() {
		_, err := lesson.Recursion{}.Build(config.Dataset{Values: []int{21}})
		Expect(err).To(MatchError(algo.ErrFactorialRange))
		_, err = lesson.Recursion{}.Build(config.Dataset{})
		Expect(err).To(MatchError(lesson.ErrNoInput))
	})
})

var _ = Describe("heap", func() {
	It("admits jobs in priority order", func() {
		end := last(build("heap", config.DefaultConfig().DatasetFor("heap")))
		Expect(end.Items).To(Equal([]string{
			"exec-dashboard(p9)", "billing-close(p8)", "fraud-model(p7)",
			"backfill(p4)", "nightly-etl(p3)", "vacuum(p1)",
		}))
	})

	It("keeps the heap property on every settled frame", func() {
		settled := 0
		for _, f := range build("heap", config.Dataset{Values: []int{1, 2, 3, 4, 5, 6, 7}}) {
			if !strings.Contains(f.Caption, " settles at slot ") {
				continue
			}
			settled++
			for i := 1; i < len(f.Values); i++ {
				Expect(f.Values[(i-1)/2]).To(BeNumerically(">=", f.Values[i]), "frame %d: %s", f.Index, f.Caption)
			}
		}
		Expect(settled).To(BeNumerically(">=", 7), "every insert settles")
	})

	It("names jobs by cycling through names", func() {
		jobs := lesson.Jobs([]int{4, 2, 9}, []string{"a", "b"})
		Expect(jobs[2].Name).To(Equal("a"))
		Expect(lesson.Jobs([]int{1}, nil)[0].Name).To(Equal("job-1"))
	})
})

var _ = Describe("stack-queue", func() {
	It("raises one backpressure alert for the default stream", func() {
		frames := build("stack-queue", config.DefaultConfig().DatasetFor("stack-queue"))
		end := last(frames)
		Expect(counter(end, "alerts")).To(Equal(1))
		Expect(counter(end, "max_depth")).To(Equal(6))
		Expect(counter(end, "ticks")).To(Equal(10))
		Expect(end.Items[0]).To(Equal("101"))

		alerted := 0
		for _, f := range frames {
			if f.Alert != "" {
				alerted++
			}
		}
		Expect(alerted).To(Equal(3))
		Expect(end.Series).To(HaveLen(10))
	})

	It("pops newest first as a stack", func() {
		ds := config.Dataset{Values: []int{1, 2, 3}, Mode: "stack", ProduceRate: 3, ConsumeRate: 1, Threshold: 5}
		end := last(build("stack-queue", ds))
		Expect(end.Items).To(Equal([]string{"3", "2", "1"}))
	})

	It("rejects unknown modes", func() {
		_, err := lesson.StackQueue{}.Build(config.Dataset{Values: []int{1}, Mode: "deque", ProduceRate: 1, ConsumeRate: 1, Threshold: 1})
		Expect(err).To(MatchError(algo.ErrUnknownMode))
	})
})

var _ = Describe("top-k", func() {
	It("merges local results into the global top k", func() {
		end := last(build("top-k", *config.GetPreset("top-k", "given")))
		Expect(end.Values).To(Equal([]int{41, 33, 27}))
		Expect(counter(end, "rows")).To(Equal(9))
		Expect(counter(end, "shipped")).To(Equal(9))
	})

	It("is reproducible for a seed", func() {
		ds := config.DefaultConfig().DatasetFor("top-k")
		a := last(build("top-k", ds))
		b := last(build("top-k", ds))
		Expect(a.Values).To(Equal(b.Values))
		Expect(a.Values).To(HaveLen(ds.K))
	})
})
