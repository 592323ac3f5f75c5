package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/player"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorRecordsStackQueueRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	seq, err := lesson.StackQueue{}.Build(config.DefaultDatasets()["stack-queue"])
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	p := player.New("stack-queue", 1)
	p.SetSleeper(func(context.Context, time.Duration) error { return nil })
	n, err := p.Run(context.Background(), seq, c)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if got := testutil.ToFloat64(c.Frames.WithLabelValues("stack-queue")); got != float64(n) {
		t.Errorf("dsahub_frames_total = %v, want %d", got, n)
	}
	if got := testutil.ToFloat64(c.Alerts.WithLabelValues("stack-queue")); got != 1 {
		t.Errorf("dsahub_alerts_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Runs.WithLabelValues("stack-queue", "completed")); got != 1 {
		t.Errorf("dsahub_runs_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.Depth.WithLabelValues("stack-queue")); got != 0 {
		t.Errorf("dsahub_buffer_depth = %v, want 0 after draining", got)
	}
}

func TestCollectorReregisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	a.Frames.WithLabelValues("heap").Inc()
	if got := testutil.ToFloat64(b.Frames.WithLabelValues("heap")); got != 1 {
		t.Errorf("expected shared counter, got %v", got)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "completed"},
		{context.Canceled, "cancelled"},
		{context.DeadlineExceeded, "cancelled"},
		{errors.New("boom"), "failed"},
	}
	for _, tt := range tests {
		if got := Outcome(tt.err); got != tt.want {
			t.Errorf("Outcome(%v): expected %s, got %s", tt.err, tt.want, got)
		}
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	c.OnRunEnd("graph", 3, context.Canceled)

	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `dsahub_runs_total{lesson="graph",outcome="cancelled"} 1`) {
		t.Errorf("missing runs metric in %s", rr.Body.String())
	}
}

func TestServeStopsWithContext(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return")
	}
}
