// Package storage keeps recorded lesson runs on disk: one directory per run
// holding metadata.json and frames.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/session"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

var ErrRunNotFound = errors.New("storage: run not found")

var header = []string{"index", "delay_ms", "caption", "values", "marks", "highlight", "items", "counters", "log", "analog", "alert", "series", "final"}

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string         `json:"id"`
	Lesson    string         `json:"lesson"`
	Timestamp time.Time      `json:"timestamp"`
	Dataset   config.Dataset `json:"dataset"`
	Frames    int            `json:"frames"`
	Completed bool           `json:"completed"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Summary   map[string]int `json:"summary"`
}

// Save writes res as a new run and returns its id.
func (s *Store) Save(res *session.Result) (string, error) {
	ts := s.now()
	runID := fmt.Sprintf("%s_%d", res.Lesson, ts.Unix())
	runDir := filepath.Join(s.baseDir, runID)
	for i := 2; exists(runDir); i++ {
		runID = fmt.Sprintf("%s_%d_%d", res.Lesson, ts.Unix(), i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "unable to create run dir %s", runDir)
	}

	meta := RunMetadata{
		ID:        runID,
		Lesson:    res.Lesson,
		Timestamp: ts,
		Dataset:   res.Dataset,
		Frames:    len(res.Frames),
		Completed: res.Completed,
		ElapsedMS: res.Elapsed.Milliseconds(),
		Summary:   res.Summary,
	}
	if err := writeMetadata(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeFrames(filepath.Join(runDir, "frames.csv"), res.Frames); err != nil {
		return "", err
	}
	return runID, nil
}

func writeMetadata(path string, meta RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create metadata")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(meta), "unable to encode metadata")
}

func writeFrames(path string, frames []step.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create frames.csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "unable to write header")
	}
	for _, fr := range frames {
		if err := w.Write(encodeFrame(fr)); err != nil {
			return errors.Wrapf(err, "unable to write frame %d", fr.Index)
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "unable to flush frames.csv")
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrapf(err, "unable to read %s", s.baseDir)
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRunNotFound, "%s", runID)
		}
		return nil, errors.Wrapf(err, "unable to read run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "unable to decode run %s", runID)
	}
	return &meta, nil
}

// LoadFrames reads the recorded frames of a run back.
func (s *Store) LoadFrames(runID string) ([]step.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRunNotFound, "%s", runID)
		}
		return nil, errors.Wrapf(err, "unable to open frames of %s", runID)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse frames of %s", runID)
	}
	if len(records) < 2 {
		return []step.Frame{}, nil
	}

	frames := make([]step.Frame, 0, len(records)-1)
	for i, rec := range records[1:] {
		f, err := decodeFrame(rec)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d of %s", i+1, runID)
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func encodeFrame(f step.Frame) []string {
	marks := make([]string, len(f.Marks))
	for i, m := range f.Marks {
		marks[i] = fmt.Sprintf("%s=%d", m.Name, m.Index)
	}
	cs := make([]string, len(f.Counters))
	for i, c := range f.Counters {
		cs[i] = fmt.Sprintf("%s=%d", c.Name, c.Value)
	}
	series := make([]string, len(f.Series))
	for i, v := range f.Series {
		series[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(f.Index),
		strconv.FormatInt(f.Delay.Milliseconds(), 10),
		f.Caption,
		joinInts(f.Values),
		strings.Join(marks, " "),
		joinInts(f.Highlight),
		strings.Join(f.Items, "|"),
		strings.Join(cs, " "),
		f.Log,
		f.Analog,
		f.Alert,
		strings.Join(series, " "),
		strconv.FormatBool(f.Final),
	}
}

func decodeFrame(rec []string) (step.Frame, error) {
	if len(rec) != len(header) {
		return step.Frame{}, errors.Errorf("expected %d columns, got %d", len(header), len(rec))
	}
	var f step.Frame
	var err error
	if f.Index, err = strconv.Atoi(rec[0]); err != nil {
		return f, errors.Wrap(err, "index")
	}
	ms, err := strconv.ParseInt(rec[1], 10, 64)
	if err != nil {
		return f, errors.Wrap(err, "delay_ms")
	}
	f.Delay = time.Duration(ms) * time.Millisecond
	f.Caption = rec[2]
	if f.Values, err = splitInts(rec[3]); err != nil {
		return f, errors.Wrap(err, "values")
	}
	for _, kv := range strings.Fields(rec[4]) {
		name, v, err := splitPair(kv)
		if err != nil {
			return f, errors.Wrap(err, "marks")
		}
		f.Marks = append(f.Marks, step.Mark{Name: name, Index: v})
	}
	if f.Highlight, err = splitInts(rec[5]); err != nil {
		return f, errors.Wrap(err, "highlight")
	}
	if rec[6] != "" {
		f.Items = strings.Split(rec[6], "|")
	}
	for _, kv := range strings.Fields(rec[7]) {
		name, v, err := splitPair(kv)
		if err != nil {
			return f, errors.Wrap(err, "counters")
		}
		f.Counters = append(f.Counters, step.Counter{Name: name, Value: v})
	}
	f.Log, f.Analog, f.Alert = rec[8], rec[9], rec[10]
	for _, s := range strings.Fields(rec[11]) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return f, errors.Wrap(err, "series")
		}
		f.Series = append(f.Series, v)
	}
	if f.Final, err = strconv.ParseBool(rec[12]); err != nil {
		return f, errors.Wrap(err, "final")
	}
	return f, nil
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func splitInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func splitPair(kv string) (string, int, error) {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, errors.Errorf("malformed pair %q", kv)
	}
	v, err := strconv.Atoi(raw)
	return name, v, err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
