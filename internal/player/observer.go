package player

import (
	"context"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/logging"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

// LogObserver writes each frame's synthetic log line through a logger.
type LogObserver struct {
	Log logging.Logger
}

func (o LogObserver) OnFrame(lesson string, f step.Frame) {
	fields := []logging.Field{
		logging.String("lesson", lesson),
		logging.Int("frame", f.Index),
		logging.String("caption", f.Caption),
	}
	if f.Log != "" {
		fields = append(fields, logging.String("log", f.Log))
	}
	if f.Alert != "" {
		o.Log.Warn(context.Background(), f.Alert, fields...)
		return
	}
	o.Log.Debug(context.Background(), "frame", fields...)
}

func (o LogObserver) OnRunEnd(lesson string, frames int, err error) {
	if err != nil {
		o.Log.Info(context.Background(), "run stopped", logging.String("lesson", lesson), logging.Int("frames", frames), logging.Err(err))
		return
	}
	o.Log.Info(context.Background(), "run finished", logging.String("lesson", lesson), logging.Int("frames", frames))
}

// FuncObserver adapts a function to Observer.
type FuncObserver func(lesson string, f step.Frame)

func (fn FuncObserver) OnFrame(lesson string, f step.Frame) { fn(lesson, f) }
