// Package algo implements the textbook procedures animated by the lessons.
//
// Each procedure works on its own and returns its result. It also accepts an
// optional [Hook] that receives typed events as the procedure advances;
// lessons turn those events into frames. A hook returning false stops the
// procedure early, which is how a viewer's reset propagates.
//
// Inputs are small (the lessons cap arrays at 20 elements), so the
// implementations favour clarity over allocation.
package algo

// Hook receives algorithm events. Returning false stops the procedure.
type Hook[E any] func(E) bool

func (h Hook[E]) emit(e E) bool {
	if h == nil {
		return true
	}
	return h(e)
}
