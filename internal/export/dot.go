package export

import (
	"fmt"
	"io"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/algo"
	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/pkg/errors"
)

// GraphDOT writes g in DOT. Vertices in order are filled along a gradient
// from the first visit to the last and labelled with their visit number;
// unvisited vertices stay unfilled.
func GraphDOT(w io.Writer, g *algo.Graph, order []string, title string) error {
	fills, err := Gradient(DefaultPalette.Highlight, DefaultPalette.Mark, len(order))
	if err != nil {
		return err
	}
	visit := make(map[string]int, len(order))
	for i, v := range order {
		visit[v] = i
	}

	opts := []func(*graph.Traits){}
	undirected := g.Undirected()
	if !undirected {
		opts = append(opts, graph.Directed())
	}
	out := graph.New(graph.StringHash, opts...)

	for _, v := range g.Vertices() {
		attrs := []func(*graph.VertexProperties){graph.VertexAttribute("label", v)}
		if i, ok := visit[v]; ok {
			attrs = []func(*graph.VertexProperties){
				graph.VertexAttribute("label", fmt.Sprintf("%s (%d)", v, i+1)),
				graph.VertexAttribute("style", "filled"),
				graph.VertexAttribute("fillcolor", fills[i]),
			}
		}
		if err := out.AddVertex(v, attrs...); err != nil {
			return errors.Wrapf(err, "unable to add vertex %s", v)
		}
	}

	for _, e := range g.Edges() {
		err := out.AddEdge(e[0], e[1])
		if undirected && errors.Is(err, graph.ErrEdgeAlreadyExists) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "unable to add edge from %s to %s", e[0], e[1])
		}
	}

	if err := draw.DOT(out, w, draw.GraphAttribute("label", title)); err != nil {
		return errors.Wrap(err, "unable to render dot")
	}
	return nil
}
