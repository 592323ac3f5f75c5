package algo

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects the buffer discipline.
type Mode int

const (
	LIFO Mode = iota
	FIFO
)

func (m Mode) String() string {
	if m == LIFO {
		return "stack"
	}
	return "queue"
}

// ParseMode accepts stack/lifo and queue/fifo.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stack", "lifo":
		return LIFO, nil
	case "", "queue", "fifo":
		return FIFO, nil
	default:
		return FIFO, errors.Wrapf(ErrUnknownMode, "%q", s)
	}
}

// Buffer is a stack or queue of ints.
type Buffer struct {
	mode  Mode
	items []int
}

func NewBuffer(mode Mode) *Buffer { return &Buffer{mode: mode} }

func (b *Buffer) Mode() Mode { return b.mode }

func (b *Buffer) Len() int { return len(b.items) }

// Items returns the contents, oldest first.
func (b *Buffer) Items() []int { return append([]int(nil), b.items...) }

func (b *Buffer) Push(v int) { b.items = append(b.items, v) }

// Peek returns the element Pop would remove.
func (b *Buffer) Peek() (int, bool) {
	if len(b.items) == 0 {
		return 0, false
	}
	if b.mode == LIFO {
		return b.items[len(b.items)-1], true
	}
	return b.items[0], true
}

func (b *Buffer) Pop() (int, bool) {
	v, ok := b.Peek()
	if !ok {
		return 0, false
	}
	if b.mode == LIFO {
		b.items = b.items[:len(b.items)-1]
	} else {
		b.items = b.items[1:]
	}
	return v, true
}

// FlowConfig paces the producer and consumer of Backpressure.
type FlowConfig struct {
	Mode        Mode
	ProduceRate int
	ConsumeRate int
	Threshold   int
}

// FlowTick describes one tick of the producer/consumer loop. Pressure is
// true while the depth after producing exceeds the threshold; Crossed marks
// the tick where it first became true.
type FlowTick struct {
	Tick     int
	Produced []int
	Consumed []int
	Peak     int
	Depth    int
	Pressure bool
	Crossed  bool
	Items    []int
}

// Flow is the outcome of Backpressure.
type Flow struct {
	Consumed []int
	MaxDepth int
	Alerts   int
	Ticks    int
	Aborted  bool
}

// Backpressure feeds items through a buffer, producing and consuming a fixed
// number of items per tick until everything has been consumed.
func Backpressure(items []int, cfg FlowConfig, hook Hook[FlowTick]) (Flow, error) {
	if cfg.ProduceRate < 1 || cfg.ConsumeRate < 1 {
		return Flow{}, ErrInvalidRate
	}
	if cfg.Threshold < 1 {
		return Flow{}, ErrInvalidThreshold
	}
	buf := NewBuffer(cfg.Mode)
	var res Flow
	next := 0
	pressured := false
	for next < len(items) || buf.Len() > 0 {
		res.Ticks++
		tick := FlowTick{Tick: res.Ticks}
		for i := 0; i < cfg.ProduceRate && next < len(items); i++ {
			buf.Push(items[next])
			tick.Produced = append(tick.Produced, items[next])
			next++
		}
		tick.Peak = buf.Len()
		if tick.Peak > res.MaxDepth {
			res.MaxDepth = tick.Peak
		}
		tick.Pressure = tick.Peak > cfg.Threshold
		if tick.Pressure && !pressured {
			tick.Crossed = true
			res.Alerts++
		}
		pressured = tick.Pressure
		for i := 0; i < cfg.ConsumeRate; i++ {
			v, ok := buf.Pop()
			if !ok {
				break
			}
			tick.Consumed = append(tick.Consumed, v)
			res.Consumed = append(res.Consumed, v)
		}
		tick.Depth = buf.Len()
		tick.Items = buf.Items()
		if !hook.emit(tick) {
			res.Aborted = true
			return res, nil
		}
	}
	return res, nil
}
