package viz

import (
	"strings"
	"testing"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/stretchr/testify/assert"
)

func TestMarkLabels(t *testing.T) {
	f := step.Frame{
		Values: []int{1, 2, 3},
		Marks: []step.Mark{
			{Name: "low", Index: 0},
			{Name: "mid", Index: 0},
			{Name: "high", Index: 2},
			{Name: "ghost", Index: 9},
		},
	}
	assert.Equal(t, []string{"low,m", "", "high"}, markLabels(f))
}

func TestRenderCells(t *testing.T) {
	st := NewStyles(ThemeMinimal)
	f := step.Frame{Values: []int{40, 30, 60}, Marks: []step.Mark{{Name: "L", Index: 1}}, Highlight: []int{2}}
	out := renderCells(f, st)
	for _, want := range []string{"40", "30", "60", "L"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, renderCells(step.Frame{}, st), "(empty)")
}

func TestRenderChartNeedsTwoPoints(t *testing.T) {
	st := NewStyles(ThemeCyberpunk)
	assert.Empty(t, renderChart(step.Frame{Series: []float64{1}}, st, 40))
	assert.Contains(t, renderChart(step.Frame{Series: []float64{1, 4, 2}}, st, 40), "trend")
}

func TestLogLines(t *testing.T) {
	frames := []step.Frame{
		{Index: 0, Log: "scan started"},
		{Index: 1},
		{Index: 2, Log: "pruned 3 partitions"},
	}
	lines := strings.Split(logLines(frames), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], "pruned 3 partitions")
}

func TestNextThemeWraps(t *testing.T) {
	assert.Equal(t, "retro", NextTheme(ThemeCyberpunk).Name)
	assert.Equal(t, "cyberpunk", NextTheme(ThemeSunset).Name)
	assert.Equal(t, "cyberpunk", GetTheme("nope").Name)
	assert.Equal(t, "#ff3355", ThemeCyberpunk.Palette().Alert)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██░░", ProgressBar(0.5, 4))
	assert.Equal(t, "████", ProgressBar(1.5, 4))
	assert.Equal(t, "░░░░", ProgressBar(-1, 4))
}

func TestRenderFrame(t *testing.T) {
	f := step.Frame{
		Index:    3,
		Caption:  "Tick 3",
		Values:   []int{101, 102},
		Items:    []string{"101", "102"},
		Counters: []step.Counter{{Name: "depth", Value: 2}},
		Alert:    "BACKPRESSURE: depth 5 > 4",
		Analog:   "Consumer lag 2 messages.",
	}
	out := RenderFrame(f, ThemeMinimal, false)
	for _, want := range []string{"[03]", "Tick 3", "depth=", "BACKPRESSURE", "Consumer lag"} {
		assert.Contains(t, out, want)
	}
}
