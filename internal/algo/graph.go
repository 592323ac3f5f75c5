package algo

import (
	"sort"

	dgraph "github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// TraversalKind names the kind of traversal event.
type TraversalKind int

const (
	Enqueue TraversalKind = iota
	Visit
	Enter
	Exit
	Skip
)

func (k TraversalKind) String() string {
	switch k {
	case Enqueue:
		return "enqueue"
	case Visit:
		return "visit"
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// TraversalEvent is emitted by BFS and DFS. Frontier holds the BFS queue or
// the DFS path from the start vertex, oldest first.
type TraversalEvent struct {
	Kind     TraversalKind
	Vertex   string
	From     string
	Depth    int
	Frontier []string
	Order    []string
}

// Traversal is the outcome of BFS or DFS.
type Traversal struct {
	Order   []string
	Depth   map[string]int
	Parent  map[string]string
	Aborted bool
}

// Graph is a directed graph with ordered adjacency lists. An undirected
// graph lists every edge in both directions.
type Graph struct {
	vertices []string
	adj      map[string][]string
	g        dgraph.Graph[string, string]
}

// DefaultGraph is the 4-node diamond used by the traversal lesson.
func DefaultGraph() *Graph {
	g, _ := NewGraph(map[string][]string{
		"A": {"B", "C"},
		"B": {"A", "D"},
		"C": {"A", "D"},
		"D": {"B", "C"},
	})
	return g
}

// NewGraph builds a graph from adjacency lists. Vertices are ordered by
// name; each adjacency list keeps its given order.
func NewGraph(adj map[string][]string) (*Graph, error) {
	if len(adj) == 0 {
		return nil, ErrEmptyGraph
	}
	g := &Graph{
		adj: make(map[string][]string, len(adj)),
		g:   dgraph.New(dgraph.StringHash, dgraph.Directed()),
	}
	for v := range adj {
		g.vertices = append(g.vertices, v)
	}
	sort.Strings(g.vertices)
	for _, v := range g.vertices {
		if err := g.g.AddVertex(v); err != nil {
			return nil, errors.Wrapf(err, "unable to add vertex %s", v)
		}
	}
	for _, v := range g.vertices {
		for _, n := range adj[v] {
			err := g.g.AddEdge(v, n)
			switch {
			case errors.Is(err, dgraph.ErrVertexNotFound):
				return nil, errors.Wrapf(ErrUnknownVertex, "edge %s -> %s", v, n)
			case errors.Is(err, dgraph.ErrEdgeAlreadyExists):
				continue
			case err != nil:
				return nil, errors.Wrapf(err, "unable to add edge %s -> %s", v, n)
			}
			g.adj[v] = append(g.adj[v], n)
		}
	}
	return g, nil
}

func (g *Graph) Vertices() []string { return append([]string(nil), g.vertices...) }

func (g *Graph) Neighbors(v string) []string { return append([]string(nil), g.adj[v]...) }

func (g *Graph) HasVertex(v string) bool {
	for _, x := range g.vertices {
		if x == v {
			return true
		}
	}
	return false
}

// Undirected reports whether every edge is listed in both directions.
func (g *Graph) Undirected() bool {
	for _, v := range g.vertices {
		for _, n := range g.adj[v] {
			if _, err := g.g.Edge(n, v); err != nil {
				return false
			}
		}
	}
	return true
}

// Edges returns every edge once per listed direction, in adjacency order.
func (g *Graph) Edges() [][2]string {
	var edges [][2]string
	for _, v := range g.vertices {
		for _, n := range g.adj[v] {
			edges = append(edges, [2]string{v, n})
		}
	}
	return edges
}

// Shortest returns one unweighted shortest path from a to b.
func (g *Graph) Shortest(a, b string) ([]string, error) {
	path, err := dgraph.ShortestPath(g.g, a, b)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to find path %s -> %s", a, b)
	}
	return path, nil
}

// BFS visits vertices reachable from start in non-decreasing distance,
// expanding neighbors in adjacency order.
func (g *Graph) BFS(start string, hook Hook[TraversalEvent]) (Traversal, error) {
	if !g.HasVertex(start) {
		return Traversal{}, errors.Wrapf(ErrUnknownVertex, "start %q", start)
	}
	res := newTraversal(len(g.vertices))
	type item struct {
		id    string
		depth int
	}
	queue := []item{{id: start}}
	res.Depth[start] = 0
	frontier := func() []string {
		ids := make([]string, len(queue))
		for i, it := range queue {
			ids[i] = it.id
		}
		return ids
	}
	if !hook.emit(TraversalEvent{Kind: Enqueue, Vertex: start, Frontier: frontier()}) {
		res.Aborted = true
		return res, nil
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, cur.id)
		ev := TraversalEvent{Kind: Visit, Vertex: cur.id, From: res.Parent[cur.id], Depth: cur.depth, Frontier: frontier(), Order: copyIDs(res.Order)}
		if !hook.emit(ev) {
			res.Aborted = true
			return res, nil
		}
		for _, n := range g.adj[cur.id] {
			if _, seen := res.Depth[n]; seen {
				continue
			}
			res.Depth[n] = cur.depth + 1
			res.Parent[n] = cur.id
			queue = append(queue, item{id: n, depth: cur.depth + 1})
			ev := TraversalEvent{Kind: Enqueue, Vertex: n, From: cur.id, Depth: cur.depth + 1, Frontier: frontier(), Order: copyIDs(res.Order)}
			if !hook.emit(ev) {
				res.Aborted = true
				return res, nil
			}
		}
	}
	return res, nil
}

// DFS visits vertices reachable from start in pre-order, following
// adjacency lists in order.
func (g *Graph) DFS(start string, hook Hook[TraversalEvent]) (Traversal, error) {
	if !g.HasVertex(start) {
		return Traversal{}, errors.Wrapf(ErrUnknownVertex, "start %q", start)
	}
	res := newTraversal(len(g.vertices))
	var path []string
	var walk func(id, from string, depth int) bool
	walk = func(id, from string, depth int) bool {
		res.Depth[id] = depth
		if from != "" {
			res.Parent[id] = from
		}
		res.Order = append(res.Order, id)
		path = append(path, id)
		if !hook.emit(TraversalEvent{Kind: Enter, Vertex: id, From: from, Depth: depth, Frontier: copyIDs(path), Order: copyIDs(res.Order)}) {
			return false
		}
		for _, n := range g.adj[id] {
			if _, seen := res.Depth[n]; seen {
				if !hook.emit(TraversalEvent{Kind: Skip, Vertex: n, From: id, Depth: depth + 1, Frontier: copyIDs(path), Order: copyIDs(res.Order)}) {
					return false
				}
				continue
			}
			if !walk(n, id, depth+1) {
				return false
			}
		}
		path = path[:len(path)-1]
		return hook.emit(TraversalEvent{Kind: Exit, Vertex: id, From: from, Depth: depth, Frontier: copyIDs(path), Order: copyIDs(res.Order)})
	}
	if !walk(start, "", 0) {
		res.Aborted = true
	}
	return res, nil
}

func newTraversal(n int) Traversal {
	return Traversal{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
}

func copyIDs(ids []string) []string { return append([]string(nil), ids...) }
