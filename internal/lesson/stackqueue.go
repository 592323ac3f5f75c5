package lesson

import (
	"fmt"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

// StackQueue runs a producer and a consumer against a LIFO or FIFO buffer
// and raises a backpressure alert when the buffer grows past a threshold.
// The analog is consumer lag on a Kafka topic.
type StackQueue struct{}

func (StackQueue) ID() string    { return "stack-queue" }
func (StackQueue) Title() string { return "Stacks & Queues" }

func (StackQueue) Deck() Deck {
	return Deck{
		Summary: "A stack hands back the newest element first (LIFO); a queue hands back the oldest (FIFO). Both buffer work between a producer and a consumer.",
		Sections: []Section{
			{Heading: "Stack", Body: "push and pop at the top. Used for undo, call stacks and DFS."},
			{Heading: "Queue", Body: "enqueue at the tail, dequeue at the head. Used for BFS, job queues and streams."},
			{Heading: "Backpressure", Body: "When the producer outpaces the consumer the buffer grows. Past a threshold the system should slow the producer down."},
		},
		Complexity: "O(1) push and pop",
		Analog:     "A Kafka consumer group falls behind the producers; consumer lag is the queue depth and alerts fire when it crosses a threshold.",
	}
}

func (StackQueue) Build(ds config.Dataset) (step.Sequence, error) {
	values, err := checkValues(ds.Values)
	if err != nil {
		return nil, err
	}
	mode, err := algo.ParseMode(ds.Mode)
	if err != nil {
		return nil, err
	}
	cfg := algo.FlowConfig{Mode: mode, ProduceRate: ds.ProduceRate, ConsumeRate: ds.ConsumeRate, Threshold: ds.Threshold}
	if cfg.ProduceRate < 1 || cfg.ConsumeRate < 1 {
		return nil, errors.Wrapf(algo.ErrInvalidRate, "produce=%d consume=%d", cfg.ProduceRate, cfg.ConsumeRate)
	}
	if cfg.Threshold < 1 {
		return nil, errors.Wrapf(algo.ErrInvalidThreshold, "got %d", cfg.Threshold)
	}
	delay := ds.Delay(DefaultDelay)

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		b.SetValues([]int{})
		consumed := 0

		if !b.Emit(step.Frame{
			Caption:  fmt.Sprintf("%s buffer: produce %d/tick, consume %d/tick, alert above %d", mode, cfg.ProduceRate, cfg.ConsumeRate, cfg.Threshold),
			Counters: counters("depth", 0, "threshold", cfg.Threshold),
			Log:      fmt.Sprintf("consumer group etl-loader subscribed, %d messages pending", len(values)),
			Analog:   "Producers write to topic events; one consumer drains it.",
		}) {
			return
		}

		res, _ := algo.Backpressure(values, cfg, func(t algo.FlowTick) bool {
			consumed += len(t.Consumed)
			b.Plot(float64(t.Depth))
			f := step.Frame{
				Values:   t.Items,
				Items:    ints(t.Items),
				Caption:  fmt.Sprintf("Tick %d: produced %v, consumed %v", t.Tick, t.Produced, t.Consumed),
				Counters: counters("depth", t.Depth, "peak", t.Peak, "consumed", consumed, "threshold", cfg.Threshold),
				Log:      fmt.Sprintf("poll returned %d records, lag=%d", len(t.Consumed), t.Depth),
				Analog:   fmt.Sprintf("Consumer lag %d messages.", t.Depth),
			}
			next := 0
			if mode == algo.LIFO {
				next = len(t.Items) - 1
			}
			f.Marks = inRange(len(t.Items), step.Mark{Name: "next", Index: next})
			if t.Pressure {
				f.Alert = fmt.Sprintf("BACKPRESSURE: depth %d > %d", t.Peak, cfg.Threshold)
				f.Analog = fmt.Sprintf("Consumer lag %d exceeds %d: throttle producers or scale consumers.", t.Peak, cfg.Threshold)
			}
			return b.Emit(f)
		})
		if res.Aborted {
			return
		}

		b.Finish(step.Frame{
			Caption:  fmt.Sprintf("Drained in %d ticks; consume order %v", res.Ticks, res.Consumed),
			Items:    ints(res.Consumed),
			Counters: counters("depth", 0, "max_depth", res.MaxDepth, "alerts", res.Alerts, "ticks", res.Ticks),
			Log:      "consumer caught up, lag=0",
			Analog:   fmt.Sprintf("Peak lag %d, %d backpressure alerts.", res.MaxDepth, res.Alerts),
		})
	}, nil
}
