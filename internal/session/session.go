// Package session runs one lesson on one dataset and collects the result.
package session

import (
	"context"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/player"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

var (
	ErrNotSetup      = errors.New("session: not set up")
	ErrUnknownPreset = errors.New("session: unknown preset")
)

// Result is what one run of a lesson produced.
type Result struct {
	Lesson  string
	Dataset config.Dataset
	Frames  []step.Frame
	Elapsed time.Duration
	// Summary holds the counters of the last frame plus "frames".
	Summary map[string]int
	// Completed is false when the run was cancelled before the final frame.
	Completed bool
}

// Final returns the last recorded frame.
func (r *Result) Final() (step.Frame, bool) {
	if len(r.Frames) == 0 {
		return step.Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

type Session struct {
	cfg     *config.Config
	lesson  lesson.Lesson
	dataset config.Dataset
	seq     step.Sequence
}

func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Session{cfg: cfg}
}

// Setup builds the lesson's sequence for ds. Invalid datasets fail here,
// before anything is played.
func (s *Session) Setup(l lesson.Lesson, ds config.Dataset) error {
	seq, err := l.Build(ds)
	if err != nil {
		return errors.Wrapf(err, "unable to set up %s", l.ID())
	}
	s.lesson, s.dataset, s.seq = l, ds, seq
	return nil
}

func (s *Session) Lesson() lesson.Lesson   { return s.lesson }
func (s *Session) Dataset() config.Dataset { return s.dataset }
func (s *Session) Sequence() step.Sequence { return s.seq }

// Player returns a player for the session's lesson at the configured speed.
func (s *Session) Player() *player.Player {
	return player.New(s.lesson.ID(), s.cfg.Speed)
}

// Run plays the sequence through p and records every frame shown. A
// cancelled run returns its partial result together with ctx.Err().
func (s *Session) Run(ctx context.Context, p *player.Player, observers ...player.Observer) (*Result, error) {
	if s.seq == nil {
		return nil, ErrNotSetup
	}

	res := &Result{Lesson: s.lesson.ID(), Dataset: s.dataset}
	record := player.FuncObserver(func(_ string, f step.Frame) {
		res.Frames = append(res.Frames, f)
	})

	start := time.Now()
	_, err := p.Run(ctx, s.seq, append([]player.Observer{record}, observers...)...)
	res.Elapsed = time.Since(start)
	res.Summary = Summarize(res.Frames)
	if last, ok := res.Final(); ok {
		res.Completed = last.Final
	}
	return res, err
}

// Summarize returns the counters of the last frame plus the frame count.
func Summarize(frames []step.Frame) map[string]int {
	summary := map[string]int{"frames": len(frames)}
	if len(frames) == 0 {
		return summary
	}
	for _, c := range frames[len(frames)-1].Counters {
		summary[c.Name] = c.Value
	}
	return summary
}

// Resolve layers a lesson's dataset: built-in defaults paced at the global
// delay, then the preset, then the config file, then flags.
func Resolve(cfg *config.Config, lessonID, preset string, flags config.Dataset) (config.Dataset, error) {
	ds := config.DefaultDatasets()[lessonID]
	if cfg != nil {
		ds.DelayMS = cfg.DelayMS
	}
	if preset != "" {
		p := config.GetPreset(lessonID, preset)
		if p == nil {
			return ds, errors.Wrapf(ErrUnknownPreset, "%s (available: %v)", preset, config.ListPresets(lessonID))
		}
		ds = ds.Merge(*p)
	}
	if cfg != nil {
		ds = ds.Merge(cfg.Lessons[lessonID])
	}
	return ds.Merge(flags), nil
}
