package lesson

import (
	"github.com/pkg/errors"
)

type Registry struct {
	order   []string
	lessons map[string]func() Lesson
}

// NewRegistry returns a registry holding every built-in lesson in menu
// order.
func NewRegistry() *Registry {
	r := &Registry{lessons: make(map[string]func() Lesson)}

	r.Register("sliding-window", func() Lesson { return SlidingWindow{} })
	r.Register("two-pointers", func() Lesson { return TwoPointers{} })
	r.Register("graph", func() Lesson { return Traversal{} })
	r.Register("binary-search", func() Lesson { return BinarySearch{} })
	r.Register("recursion", func() Lesson { return Recursion{} })
	r.Register("heap", func() Lesson { return Heap{} })
	r.Register("stack-queue", func() Lesson { return StackQueue{} })
	r.Register("top-k", func() Lesson { return TopK{} })

	return r
}

// Register adds or replaces a lesson factory. New ids go to the end of the
// menu.
func (r *Registry) Register(id string, fn func() Lesson) {
	if _, ok := r.lessons[id]; !ok {
		r.order = append(r.order, id)
	}
	r.lessons[id] = fn
}

func (r *Registry) Get(id string) (Lesson, error) {
	fn, ok := r.lessons[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLesson, "%q", id)
	}
	return fn(), nil
}

// IDs returns lesson ids in menu order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// List returns fresh lessons in menu order.
func (r *Registry) List() []Lesson {
	out := make([]Lesson, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.lessons[id]())
	}
	return out
}
