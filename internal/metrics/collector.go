// Package metrics exposes lesson playback as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	pkgerrors "github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DepthCounter is the frame counter mirrored into the buffer depth gauge.
const DepthCounter = "depth"

// Collector counts frames, runs and backpressure alerts. It implements the
// player's Observer and RunObserver.
type Collector struct {
	gatherer prometheus.Gatherer

	Frames *prometheus.CounterVec
	Runs   *prometheus.CounterVec
	Alerts *prometheus.CounterVec
	Depth  *prometheus.GaugeVec

	mu       sync.Mutex
	alerting map[string]bool
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frames, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dsahub_frames_total",
		Help: "Frames shown, labeled by lesson.",
	}, []string{"lesson"}), "dsahub_frames_total")
	if err != nil {
		return nil, err
	}
	runs, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dsahub_runs_total",
		Help: "Lesson runs, labeled by lesson and outcome (completed, cancelled, failed).",
	}, []string{"lesson", "outcome"}), "dsahub_runs_total")
	if err != nil {
		return nil, err
	}
	alerts, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dsahub_alerts_total",
		Help: "Times a lesson crossed into an alert state, e.g. backpressure.",
	}, []string{"lesson"}), "dsahub_alerts_total")
	if err != nil {
		return nil, err
	}
	depth, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "dsahub_buffer_depth",
		Help: "Simulated buffer depth of the last frame shown.",
	}, []string{"lesson"}), "dsahub_buffer_depth")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer: gatherer,
		Frames:   frames,
		Runs:     runs,
		Alerts:   alerts,
		Depth:    depth,
		alerting: make(map[string]bool),
	}, nil
}

func (c *Collector) OnFrame(lesson string, f step.Frame) {
	if c == nil {
		return
	}
	c.Frames.WithLabelValues(lesson).Inc()
	if d, ok := f.Counter(DepthCounter); ok {
		c.Depth.WithLabelValues(lesson).Set(float64(d))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	on := f.Alert != ""
	if on && !c.alerting[lesson] {
		c.Alerts.WithLabelValues(lesson).Inc()
	}
	c.alerting[lesson] = on
}

func (c *Collector) OnRunEnd(lesson string, frames int, err error) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(lesson, Outcome(err)).Inc()

	c.mu.Lock()
	delete(c.alerting, lesson)
	c.mu.Unlock()
}

// Outcome maps a run error to the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "completed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "failed"
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return pkgerrors.Wrapf(err, "unable to serve metrics on %s", addr)
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, pkgerrors.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, pkgerrors.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
