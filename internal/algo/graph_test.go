package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraph(t *testing.T) {
	t.Parallel()

	g := DefaultGraph()
	require.NotNil(t, g)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.True(t, g.Undirected())
	assert.Len(t, g.Edges(), 8)
}

func TestBFSOrderAndDistances(t *testing.T) {
	t.Parallel()

	g := DefaultGraph()
	var visits []TraversalEvent
	res, err := g.BFS("A", func(ev TraversalEvent) bool {
		if ev.Kind == Visit {
			visits = append(visits, ev)
		}
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["D"])

	for i := 1; i < len(visits); i++ {
		assert.LessOrEqual(t, visits[i-1].Depth, visits[i].Depth, "visits must be in non-decreasing distance")
	}
	for _, v := range res.Order[1:] {
		path, err := g.Shortest("A", v)
		require.NoError(t, err)
		assert.Equal(t, res.Depth[v], len(path)-1, "distance to %s", v)
	}
}

func TestBFSNonDecreasingOnLargerGraph(t *testing.T) {
	t.Parallel()

	g, err := NewGraph(map[string][]string{
		"extract":   {"clean", "audit"},
		"clean":     {"join"},
		"audit":     {"report"},
		"join":      {"aggregate"},
		"aggregate": {"report"},
		"report":    {},
	})
	require.NoError(t, err)
	assert.False(t, g.Undirected())

	var depths []int
	res, err := g.BFS("extract", func(ev TraversalEvent) bool {
		if ev.Kind == Visit {
			depths = append(depths, ev.Depth)
		}
		return true
	})
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
	assert.IsNonDecreasing(t, depths)
	assert.Equal(t, 2, res.Depth["report"])
}

func TestDFSPreOrder(t *testing.T) {
	t.Parallel()

	g := DefaultGraph()
	var enters []string
	var maxPath int
	res, err := g.DFS("A", func(ev TraversalEvent) bool {
		if ev.Kind == Enter {
			enters = append(enters, ev.Vertex)
		}
		if len(ev.Frontier) > maxPath {
			maxPath = len(ev.Frontier)
		}
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, res.Order, enters)
	assert.Equal(t, 4, maxPath)
	assert.Equal(t, 3, res.Depth["C"])

	again, err := g.DFS("A", nil)
	require.NoError(t, err)
	assert.Equal(t, res.Order, again.Order, "pre-order must be stable across runs")
}

func TestTraversalUnknownStart(t *testing.T) {
	t.Parallel()

	g := DefaultGraph()
	_, err := g.BFS("Z", nil)
	assert.ErrorIs(t, err, ErrUnknownVertex)
	_, err = g.DFS("Z", nil)
	assert.ErrorIs(t, err, ErrUnknownVertex)
}

func TestNewGraphErrors(t *testing.T) {
	t.Parallel()

	_, err := NewGraph(nil)
	assert.ErrorIs(t, err, ErrEmptyGraph)

	_, err = NewGraph(map[string][]string{"A": {"B"}})
	assert.ErrorIs(t, err, ErrUnknownVertex)

	g, err := NewGraph(map[string][]string{"A": {"B", "B"}, "B": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
}

func TestTraversalAbort(t *testing.T) {
	t.Parallel()

	g := DefaultGraph()
	res, err := g.BFS("A", func(TraversalEvent) bool { return false })
	require.NoError(t, err)
	assert.True(t, res.Aborted)

	res, err = g.DFS("A", func(TraversalEvent) bool { return false })
	require.NoError(t, err)
	assert.True(t, res.Aborted)
	assert.Equal(t, []string{"A"}, res.Order)
}
