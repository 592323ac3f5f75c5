package algo

import (
	"cmp"
	"context"
	"math/rand"
	"slices"

	"golang.org/x/sync/errgroup"
)

// TopKConfig describes the simulated pushdown. When Values is set it is
// dealt round-robin to the workers instead of drawing random data.
type TopKConfig struct {
	Workers int
	Size    int
	K       int
	Max     int
	Seed    int64
	Values  []int
}

// WorkerResult is one worker's partition and its local top-k.
type WorkerResult struct {
	Worker int
	Data   []int
	Sorted []int
	Local  []int
}

// TopKStage names the kind of top-k event.
type TopKStage int

const (
	TopKLocal TopKStage = iota
	TopKMerge
)

// TopKEvent is emitted once per worker, then once per merged value.
type TopKEvent struct {
	Stage  TopKStage
	Worker WorkerResult
	Value  int
	Merged []int
}

// TopKResult is the outcome of TopK.
type TopKResult struct {
	Workers []WorkerResult
	Global  []int
	Aborted bool
}

// TopK runs every worker concurrently, then merges their local results on
// the caller's goroutine. Hooks are only called from the caller's goroutine.
func TopK(ctx context.Context, cfg TopKConfig, hook Hook[TopKEvent]) (TopKResult, error) {
	if cfg.Workers < 1 || cfg.K < 1 || (cfg.Size < 1 && len(cfg.Values) == 0) {
		return TopKResult{}, ErrInvalidTopK
	}
	if cfg.Max < 1 {
		cfg.Max = 100
	}
	parts := partition(cfg)
	results := make([]WorkerResult, cfg.Workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sorted := append([]int(nil), parts[w]...)
			slices.SortFunc(sorted, descending)
			local := sorted[:min(cfg.K, len(sorted))]
			results[w] = WorkerResult{Worker: w, Data: parts[w], Sorted: sorted, Local: append([]int(nil), local...)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return TopKResult{}, err
	}

	res := TopKResult{Workers: results}
	for _, r := range results {
		if !hook.emit(TopKEvent{Stage: TopKLocal, Worker: r}) {
			res.Aborted = true
			return res, nil
		}
	}

	var pool []int
	for _, r := range results {
		pool = append(pool, r.Local...)
	}
	slices.SortFunc(pool, descending)
	for _, v := range pool[:min(cfg.K, len(pool))] {
		res.Global = append(res.Global, v)
		if !hook.emit(TopKEvent{Stage: TopKMerge, Value: v, Merged: append([]int(nil), res.Global...)}) {
			res.Aborted = true
			return res, nil
		}
	}
	return res, nil
}

func descending(a, b int) int { return cmp.Compare(b, a) }

func partition(cfg TopKConfig) [][]int {
	parts := make([][]int, cfg.Workers)
	if len(cfg.Values) > 0 {
		for i, v := range cfg.Values {
			parts[i%cfg.Workers] = append(parts[i%cfg.Workers], v)
		}
		return parts
	}
	for w := range parts {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(w)))
		parts[w] = make([]int, cfg.Size)
		for i := range parts[w] {
			parts[w][i] = rng.Intn(cfg.Max) + 1
		}
	}
	return parts
}
