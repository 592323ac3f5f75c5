// Package step provides the animation primitives shared by every lesson.
//
// A lesson never drives timers itself. Instead it describes its run as a
// finite sequence of frames:
//
//   - [Frame]: an immutable snapshot of one step plus the pause after it
//   - [Sequence]: a lazy, restartable iterator over frames
//   - [Collect], [Len]: helpers that materialise a sequence
//
// Pacing is left to a driver (see package player) that sleeps between
// frames, so "what happens at step i" stays separate from "how fast a
// viewer sees it".
//
// # Example
//
//	seq := lesson.Build(dataset)
//	for f := range seq {
//		fmt.Println(f.Index, f.Caption)
//	}
//
// Ranging over the same Sequence twice yields identical frames.
package step
