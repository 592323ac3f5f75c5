package lesson

import (
	"context"
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/input"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

// TopK simulates a top-k pushdown: workers sort their own partition, keep
// their local top k, and a coordinator merges the partial results. Random
// data is for visual effect only.
type TopK struct{}

func (TopK) ID() string    { return "top-k" }
func (TopK) Title() string { return "Top-K Pushdown" }

func (TopK) Deck() Deck {
	return Deck{
		Summary: "To find the k largest values across partitions, each partition only needs to send its own k largest; the coordinator merges those.",
		Sections: []Section{
			{Heading: "Local phase", Body: "Every worker sorts its partition descending and keeps the first k values."},
			{Heading: "Merge phase", Body: "The coordinator sorts at most workers*k candidates and keeps the first k."},
			{Heading: "Why it is correct", Body: "A value outside its partition's top k has k larger values in that partition alone, so it cannot be in the global top k."},
		},
		Complexity: "O(n log n) per worker, O(w*k log(w*k)) merge; only w*k values cross the network",
		Analog:     "ORDER BY amount DESC LIMIT k is pushed below the exchange so each node ships k rows instead of its whole partition.",
	}
}

func topKConfig(ds config.Dataset) (algo.TopKConfig, error) {
	cfg := algo.TopKConfig{Workers: ds.Workers, Size: ds.Size, K: ds.K, Seed: ds.Seed, Values: ds.Values}
	if len(cfg.Values) > input.MaxValues {
		return cfg, errors.Wrapf(input.ErrTooManyValues, "got %d, at most %d", len(cfg.Values), input.MaxValues)
	}
	if cfg.Workers < 1 || cfg.K < 1 || (cfg.Size < 1 && len(cfg.Values) == 0) {
		return cfg, errors.Wrapf(algo.ErrInvalidTopK, "workers=%d size=%d k=%d", cfg.Workers, cfg.Size, cfg.K)
	}
	return cfg, nil
}

func (TopK) Build(ds config.Dataset) (step.Sequence, error) {
	cfg, err := topKConfig(ds)
	if err != nil {
		return nil, err
	}
	delay := ds.Delay(DefaultDelay)

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues([]int{})

		if !b.Emit(step.Frame{
			Caption:  fmt.Sprintf("Top %d across %d workers", cfg.K, cfg.Workers),
			Counters: counters("workers", cfg.Workers, "k", cfg.K),
			Log:      fmt.Sprintf("SELECT amount FROM sales ORDER BY amount DESC LIMIT %d", cfg.K),
			Analog:   "Plan: TableScan -> SortWithLimit (per node) -> Exchange -> SortWithLimit.",
		}) {
			return
		}

		shipped := 0
		res, err := algo.TopK(context.Background(), cfg, func(ev algo.TopKEvent) bool {
			if ev.Stage == algo.TopKLocal {
				w := ev.Worker
				shipped += len(w.Local)
				return b.Emit(step.Frame{
					Values:    w.Sorted,
					Highlight: span(0, len(w.Local)-1),
					Items:     ints(w.Local),
					Caption:   fmt.Sprintf("Worker %d sorts %v and keeps %v", w.Worker+1, w.Data, w.Local),
					Counters:  counters("worker", w.Worker+1, "rows", len(w.Data), "shipped", shipped),
					Log:       fmt.Sprintf("node-%d: scanned %d rows, shipped %d", w.Worker+1, len(w.Data), len(w.Local)),
					Analog:    fmt.Sprintf("Node %d sends only its local top %d over the exchange.", w.Worker+1, len(w.Local)),
				})
			}
			return b.Emit(step.Frame{
				Values:    ev.Merged,
				Highlight: []int{len(ev.Merged) - 1},
				Items:     ints(ev.Merged),
				Caption:   fmt.Sprintf("Merge picks %d", ev.Value),
				Counters:  counters("merged", len(ev.Merged), "k", cfg.K, "shipped", shipped),
				Log:       fmt.Sprintf("coordinator: emit %d", ev.Value),
				Analog:    "Coordinator merges candidate rows from every node.",
			})
		})
		if err != nil || res.Aborted {
			return
		}

		total := 0
		for _, w := range res.Workers {
			total += len(w.Data)
		}
		b.Finish(step.Frame{
			Caption:  fmt.Sprintf("Global top %d: %v", cfg.K, res.Global),
			Values:   res.Global,
			Items:    ints(res.Global),
			Counters: counters("rows", total, "shipped", shipped, "k", len(res.Global)),
			Log:      fmt.Sprintf("%d rows returned", len(res.Global)),
			Analog:   fmt.Sprintf("Shipped %d of %d rows across the network.", shipped, total),
		})
	}, nil
}
