package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Output: &buf}).With(String("lesson", "heap"))

	log.Debug(context.Background(), "frame played", Int("index", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if rec["lesson"] != "heap" {
		t.Errorf("expected lesson heap, got %v", rec["lesson"])
	}
	if rec["index"] != float64(3) {
		t.Errorf("expected index 3, got %v", rec["index"])
	}
	if rec["msg"] != "frame played" {
		t.Errorf("expected msg, got %v", rec["msg"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn should be written")
	}
}

func TestOpen(t *testing.T) {
	log, closeLog, err := Open(Config{Level: "info"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.With(String("lesson", "graph")).Error(context.Background(), "dropped")
	if err := closeLog(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}

	var buf bytes.Buffer
	log, closeLog, err = Open(Config{Output: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info(context.Background(), "to writer")
	if err := closeLog(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if !strings.Contains(buf.String(), "to writer") {
		t.Errorf("expected output without a file, got %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "dsahub.log")
	log, closeLog, err = Open(Config{Level: "info", Format: "text", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info(context.Background(), "written", String("k", "v"))
	if err := closeLog(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "k=v") {
		t.Errorf("expected text record, got %q", data)
	}

	if _, _, err := Open(Config{File: filepath.Join(t.TempDir(), "missing", "x.log")}); err == nil {
		t.Error("expected error for missing directory")
	}
}
