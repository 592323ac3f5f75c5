package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/lesson"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/session"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
)

func sampleResult(t *testing.T) *session.Result {
	t.Helper()
	ds := config.DefaultDatasets()["stack-queue"]
	seq, err := lesson.StackQueue{}.Build(ds)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	frames := step.Collect(seq)
	return &session.Result{
		Lesson:    "stack-queue",
		Dataset:   ds,
		Frames:    frames,
		Elapsed:   1500 * time.Millisecond,
		Summary:   session.Summarize(frames),
		Completed: true,
	}
}

func fixedStore(dir string) *Store {
	st := New(dir)
	st.now = func() time.Time { return time.Unix(1700000000, 0) }
	return st
}

func TestStoreSaveLoad(t *testing.T) {
	st := fixedStore(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	res := sampleResult(t)

	runID, err := st.Save(res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID != "stack-queue_1700000000" {
		t.Errorf("unexpected run id %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Lesson != "stack-queue" {
		t.Errorf("expected lesson stack-queue, got %s", meta.Lesson)
	}
	if meta.Summary["alerts"] != 1 {
		t.Errorf("expected 1 alert in summary, got %d", meta.Summary["alerts"])
	}
	if meta.ElapsedMS != 1500 {
		t.Errorf("expected 1500ms, got %d", meta.ElapsedMS)
	}
	if meta.Dataset.Mode != "queue" {
		t.Errorf("expected dataset to round trip, got %+v", meta.Dataset)
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(frames) != len(res.Frames) {
		t.Fatalf("expected %d frames, got %d", len(res.Frames), len(frames))
	}
	for i := range frames {
		got, want := frames[i], res.Frames[i]
		if got.String() != want.String() || got.Alert != want.Alert || got.Final != want.Final {
			t.Errorf("frame %d: expected %s, got %s", i, want, got)
		}
		if len(got.Series) != len(want.Series) || len(got.Items) != len(want.Items) {
			t.Errorf("frame %d: series or items lost", i)
		}
		if got.Delay != want.Delay {
			t.Errorf("frame %d: expected delay %v, got %v", i, want.Delay, got.Delay)
		}
	}
	if err := step.Validate(frames); err != nil {
		t.Errorf("reloaded frames should validate: %v", err)
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := fixedStore(dir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	first, _ := st.Save(sampleResult(t))
	st.now = func() time.Time { return time.Unix(1700000100, 0) }
	second, _ := st.Save(sampleResult(t))
	third, err := st.Save(sampleResult(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if third == second {
		t.Error("expected distinct ids for runs saved in the same second")
	}

	if err := os.MkdirAll(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[2].ID != first {
		t.Errorf("expected oldest run last, got %s", runs[2].ID)
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runID, err := st.Save(sampleResult(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	for _, name := range []string{"metadata.json", "frames.csv"} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadFrames("nope"); err == nil {
		t.Error("expected error for missing frames")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(sampleResult(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Run.ID != runID {
		t.Errorf("expected run %s, got %s", runID, data.Run.ID)
	}
	last := data.Frames[len(data.Frames)-1]
	if !last.Final || last.Counters["alerts"] != 1 {
		t.Errorf("unexpected final frame %+v", last)
	}
}

func TestDecodeFrameErrors(t *testing.T) {
	good := encodeFrame(step.Frame{Index: 1, Caption: "x", Values: []int{1}, Final: true})
	if _, err := decodeFrame(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := append([]string(nil), good...)
	bad[4] = "low"
	if _, err := decodeFrame(bad); err == nil {
		t.Error("expected malformed mark to fail")
	}
	if _, err := decodeFrame(good[:3]); err == nil {
		t.Error("expected short row to fail")
	}
}
