// Package player paces frame sequences for a viewer.
package player

import (
	"context"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

const (
	MinSpeed = 0.25
	MaxSpeed = 8.0
)

// Observer is notified of every frame the player shows.
type Observer interface {
	OnFrame(lesson string, f step.Frame)
}

// RunObserver is implemented by observers that also want the outcome of a
// run. err is nil when the sequence played to the end.
type RunObserver interface {
	OnRunEnd(lesson string, frames int, err error)
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real-time Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ClampSpeed limits s to [MinSpeed, MaxSpeed].
func ClampSpeed(s float64) float64 {
	return min(max(s, MinSpeed), MaxSpeed)
}

// Scale returns the wall-clock pause for delay at speed s.
func Scale(delay time.Duration, s float64) time.Duration {
	return time.Duration(float64(delay) / ClampSpeed(s))
}

type Player struct {
	lesson    string
	speed     float64
	sleep     Sleeper
	observers []Observer
}

func New(lesson string, speed float64) *Player {
	return &Player{
		lesson:    lesson,
		speed:     ClampSpeed(speed),
		sleep:     Sleep,
		observers: make([]Observer, 0),
	}
}

func (p *Player) Lesson() string         { return p.lesson }
func (p *Player) Speed() float64         { return p.speed }
func (p *Player) AddObserver(o Observer) { p.observers = append(p.observers, o) }
func (p *Player) SetSleeper(s Sleeper)   { p.sleep = s }

// SetSpeed clamps and stores s, returning the speed in effect.
func (p *Player) SetSpeed(s float64) float64 {
	p.speed = ClampSpeed(s)
	return p.speed
}

// Run plays seq, notifying observers of each frame and pausing for the
// frame's delay divided by the speed. Cancelling ctx stops playback; the
// pending pause is abandoned and ctx.Err() is returned with the number of
// frames already shown.
func (p *Player) Run(ctx context.Context, seq step.Sequence, observers ...Observer) (int, error) {
	all := append(append([]Observer(nil), p.observers...), observers...)
	n, err := p.play(ctx, seq, all)
	if err == nil && n == 0 {
		err = step.ErrEmptySequence
	}
	for _, o := range all {
		if ro, ok := o.(RunObserver); ok {
			ro.OnRunEnd(p.lesson, n, err)
		}
	}
	return n, err
}

func (p *Player) play(ctx context.Context, seq step.Sequence, observers []Observer) (int, error) {
	n := 0
	for f := range seq {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}

		for _, o := range observers {
			o.OnFrame(p.lesson, f)
		}
		n++

		if f.Final {
			break
		}
		if err := p.sleep(ctx, Scale(f.Delay, p.speed)); err != nil {
			return n, err
		}
	}
	return n, nil
}
