package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradient(t *testing.T) {
	got, err := Gradient("#000000", "#ffffff", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "#000000", strings.ToLower(got[0]))
	assert.Equal(t, "#808080", strings.ToLower(got[1]))
	assert.Equal(t, "#ffffff", strings.ToLower(got[2]))

	one, err := Gradient("#ff0000", "#0000ff", 1)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", strings.ToLower(one[0]))

	none, err := Gradient("#ff0000", "#0000ff", 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = Gradient("red", "#0000ff", 2)
	assert.Error(t, err)
}

func TestFrameSVG(t *testing.T) {
	f := step.Frame{
		Caption:   "values[2] = 5 < 7 & more",
		Values:    []int{1, 3, 5, -7},
		Marks:     []step.Mark{{Name: "low", Index: 0}, {Name: "mid", Index: 2}, {Name: "high", Index: 2}},
		Highlight: []int{2},
		Items:     []string{"a", "b"},
		Alert:     "BACKPRESSURE",
	}
	svg := FrameSVG(f, 400, 200, DefaultPalette)

	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 5, strings.Count(svg, "<rect"), "background plus one bar per value")
	assert.Equal(t, 1, strings.Count(svg, DefaultPalette.Highlight))
	assert.Contains(t, svg, "mid,high")
	assert.Contains(t, svg, "&lt; 7 &amp; more")
	assert.Contains(t, svg, "BACKPRESSURE")
	assert.Contains(t, svg, "[a b]")
}

func TestFrameSVGEmpty(t *testing.T) {
	svg := FrameSVG(step.Frame{Caption: "nothing"}, 100, 100, DefaultPalette)
	assert.Equal(t, 1, strings.Count(svg, "<rect"))
}

func TestSeriesSVG(t *testing.T) {
	assert.Empty(t, SeriesSVG([]float64{1}, 100, 50, DefaultPalette))

	svg := SeriesSVG([]float64{1, 4, 2, 2}, 300, 100, DefaultPalette)
	assert.Contains(t, svg, `d="M0.0,`)
	assert.Equal(t, 3, strings.Count(svg, " L"))

	flat := SeriesSVG([]float64{3, 3}, 100, 100, DefaultPalette)
	assert.Contains(t, flat, "L100.0,")
}

func TestGraphDOT(t *testing.T) {
	g := algo.DefaultGraph()
	tr, err := g.BFS("A", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, GraphDOT(&buf, g, tr.Order, "BFS from A"))
	out := buf.String()

	assert.Contains(t, out, "strict graph")
	assert.Contains(t, out, `label="BFS from A"`)
	assert.Contains(t, out, `label="A (1)"`)
	assert.Contains(t, out, `label="D (4)"`)
	assert.Equal(t, 4, strings.Count(out, `style="filled"`))
	assert.Equal(t, 8, strings.Count(out, " -- "), "each undirected edge once per endpoint")
}

func TestGraphDOTDirected(t *testing.T) {
	g, err := algo.NewGraph(map[string][]string{
		"extract": {"load"},
		"load":    {"report"},
		"report":  {},
		"orphan":  {},
	})
	require.NoError(t, err)
	tr, err := g.DFS("extract", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, GraphDOT(&buf, g, tr.Order, "dag"))
	out := buf.String()

	assert.Contains(t, out, "strict digraph")
	assert.Contains(t, out, `"extract" -> "load"`)
	assert.Equal(t, 3, strings.Count(out, `style="filled"`))
	assert.Contains(t, out, `label="orphan"`)
}
