package storage

import (
	"encoding/json"
	"io"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

type ExportData struct {
	Run    RunMetadata   `json:"run"`
	Frames []ExportFrame `json:"frames"`
}

type ExportFrame struct {
	Index    int            `json:"index"`
	DelayMS  int64          `json:"delay_ms"`
	Caption  string         `json:"caption"`
	Values   []int          `json:"values,omitempty"`
	Marks    map[string]int `json:"marks,omitempty"`
	Items    []string       `json:"items,omitempty"`
	Counters map[string]int `json:"counters,omitempty"`
	Log      string         `json:"log,omitempty"`
	Analog   string         `json:"analog,omitempty"`
	Alert    string         `json:"alert,omitempty"`
	Final    bool           `json:"final,omitempty"`
}

// ExportJSON writes a run and its frames as one indented JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, err := s.LoadFrames(runID)
	if err != nil {
		return err
	}

	data := ExportData{Run: *meta, Frames: make([]ExportFrame, len(frames))}
	for i, f := range frames {
		data.Frames[i] = exportFrame(f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrapf(enc.Encode(data), "unable to encode run %s", runID)
}

func exportFrame(f step.Frame) ExportFrame {
	ef := ExportFrame{
		Index:   f.Index,
		DelayMS: f.Delay.Milliseconds(),
		Caption: f.Caption,
		Values:  f.Values,
		Items:   f.Items,
		Log:     f.Log,
		Analog:  f.Analog,
		Alert:   f.Alert,
		Final:   f.Final,
	}
	if len(f.Marks) > 0 {
		ef.Marks = make(map[string]int, len(f.Marks))
		for _, m := range f.Marks {
			ef.Marks[m.Name] = m.Index
		}
	}
	if len(f.Counters) > 0 {
		ef.Counters = make(map[string]int, len(f.Counters))
		for _, c := range f.Counters {
			ef.Counters[c.Name] = c.Value
		}
	}
	return ef
}
