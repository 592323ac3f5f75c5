package lesson

import (
	"fmt"
	"strings"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/config"
	"github.com/arkagimt/DSA-LEARNING-HUB/internal/step"
	"github.com/pkg/errors"
)

var ErrUnknownTraversal = errors.New("lesson: traversal mode must be bfs or dfs")

// Traversal walks a small graph breadth- or depth-first. The analog is an
// orchestrator scheduling the task DAG of a pipeline.
type Traversal struct{}

func (Traversal) ID() string    { return "graph" }
func (Traversal) Title() string { return "Graph Traversal" }

func (Traversal) Deck() Deck {
	return Deck{
		Summary: "Visit every vertex reachable from a start vertex. BFS uses a queue and visits by distance; DFS follows one path as deep as it goes before backtracking.",
		Sections: []Section{
			{Heading: "BFS", Body: "Dequeue a vertex, visit it, enqueue unseen neighbors in adjacency order. Visits happen in non-decreasing distance from the start."},
			{Heading: "DFS", Body: "Enter a vertex, then recurse into each unseen neighbor in adjacency order. The visit order is a pre-order of the DFS tree."},
			{Heading: "Seen set", Body: "Marking a vertex when it is discovered keeps each vertex from being expanded twice, even in cyclic graphs."},
		},
		Complexity: "O(V + E) time, O(V) space",
		Analog:     "An orchestrator resolves task dependencies level by level (BFS) or runs one branch to completion first (DFS).",
	}
}

// GraphFor returns the dataset's graph, or the default diamond when none is
// configured.
func GraphFor(ds config.Dataset) (*algo.Graph, error) {
	if len(ds.Graph) == 0 {
		return algo.DefaultGraph(), nil
	}
	return algo.NewGraph(ds.Graph)
}

// Walk runs the dataset's traversal without animation.
func Walk(ds config.Dataset) (algo.Traversal, error) {
	g, err := GraphFor(ds)
	if err != nil {
		return algo.Traversal{}, err
	}
	start := startVertex(g, ds.Start)
	switch strings.ToLower(ds.Mode) {
	case "", "bfs":
		return g.BFS(start, nil)
	case "dfs":
		return g.DFS(start, nil)
	default:
		return algo.Traversal{}, errors.Wrapf(ErrUnknownTraversal, "%q", ds.Mode)
	}
}

func startVertex(g *algo.Graph, start string) string {
	if start == "" {
		return g.Vertices()[0]
	}
	return start
}

func (Traversal) Build(ds config.Dataset) (step.Sequence, error) {
	g, err := GraphFor(ds)
	if err != nil {
		return nil, err
	}
	start := startVertex(g, ds.Start)
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(algo.ErrUnknownVertex, "start %q", start)
	}
	mode := strings.ToLower(ds.Mode)
	if mode == "" {
		mode = "bfs"
	}
	if mode != "bfs" && mode != "dfs" {
		return nil, errors.Wrapf(ErrUnknownTraversal, "%q", ds.Mode)
	}
	delay := ds.Delay(DefaultDelay)
	edges := len(g.Edges())

	return func(yield func(step.Frame) bool) {
		b := step.NewBuilder(yield, delay)
		visited := 0

		if !b.Emit(step.Frame{
			Caption:  fmt.Sprintf("%s from %s over %d vertices, %d edges", strings.ToUpper(mode), start, len(g.Vertices()), edges),
			Counters: counters("visited", 0, "vertices", len(g.Vertices())),
			Log:      fmt.Sprintf("dag_run started, root task %s", start),
			Analog:   "Scheduler parses the DAG and resolves upstream dependencies.",
		}) {
			return
		}

		hook := func(ev algo.TraversalEvent) bool {
			f := step.Frame{Items: ev.Frontier}
			switch ev.Kind {
			case algo.Enqueue:
				f.Caption = fmt.Sprintf("Enqueue %s at distance %d", ev.Vertex, ev.Depth)
				f.Log = fmt.Sprintf("task %s queued", ev.Vertex)
				f.Analog = fmt.Sprintf("%s is ready once %s succeeds.", ev.Vertex, orRoot(ev.From))
			case algo.Visit, algo.Enter:
				visited++
				f.Caption = fmt.Sprintf("Visit %s (depth %d), order %s", ev.Vertex, ev.Depth, strings.Join(ev.Order, " "))
				f.Log = fmt.Sprintf("task %s running", ev.Vertex)
				f.Analog = fmt.Sprintf("Worker picks up %s at level %d.", ev.Vertex, ev.Depth)
			case algo.Exit:
				f.Caption = fmt.Sprintf("Backtrack from %s", ev.Vertex)
				f.Log = fmt.Sprintf("task %s success", ev.Vertex)
				f.Analog = fmt.Sprintf("All downstream branches of %s finished.", ev.Vertex)
			case algo.Skip:
				f.Caption = fmt.Sprintf("%s already seen, skip", ev.Vertex)
				f.Log = fmt.Sprintf("task %s skipped: already scheduled", ev.Vertex)
				f.Analog = "Dependency already satisfied; no duplicate run."
			}
			f.Counters = counters("visited", visited, "depth", ev.Depth, "frontier", len(ev.Frontier))
			return b.Emit(f)
		}

		var res algo.Traversal
		if mode == "dfs" {
			res, _ = g.DFS(start, hook)
		} else {
			res, _ = g.BFS(start, hook)
		}
		if res.Aborted {
			return
		}

		maxDepth := 0
		for _, d := range res.Depth {
			maxDepth = max(maxDepth, d)
		}
		analog := fmt.Sprintf("Pipeline completed in %d levels.", maxDepth+1)
		last := res.Order[len(res.Order)-1]
		if path, err := g.Shortest(start, last); err == nil && len(path) > 1 {
			analog += fmt.Sprintf(" Shortest chain to %s: %s.", last, strings.Join(path, " -> "))
		}
		b.Finish(step.Frame{
			Caption:  fmt.Sprintf("%s order: %s", strings.ToUpper(mode), strings.Join(res.Order, " -> ")),
			Items:    res.Order,
			Counters: counters("visited", len(res.Order), "depth", maxDepth),
			Log:      fmt.Sprintf("dag_run finished: %d tasks", len(res.Order)),
			Analog:   analog,
		})
	}, nil
}

func orRoot(v string) string {
	if v == "" {
		return "the root"
	}
	return v
}
